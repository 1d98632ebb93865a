package main

import (
	"fmt"
	"io"
	"os"

	"github.com/yiroth/libvariant/parse"
	"github.com/yiroth/libvariant/variant"
)

func getObjFile(in io.Reader, path string, opts ...parse.ParseOption) ([]variant.Container, error) {
	var (
		r io.Reader
	)
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = in
	}

	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return parse.Parse(d, opts...)
}

// fileArgs returns the input files, reading stdin when there are none.
func fileArgs(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}
