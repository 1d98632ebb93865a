package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Parse bool
	Diff  bool
	Patch bool
	Eval  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("VT_DEBUG_PARSE")
	d.Diff = boolEnv("VT_DEBUG_DIFF")
	d.Patch = boolEnv("VT_DEBUG_PATCH")
	d.Eval = boolEnv("VT_DEBUG_EVAL")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Diff() bool {
	return d.Diff
}
func Patch() bool {
	return d.Patch
}
func Eval() bool {
	return d.Eval
}
