package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		cfg.Check.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	n, err := checkFiles(cfg.MainConfig, cc.In, fileArgs(args))
	if err != nil {
		return err
	}
	if n > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// checkFiles logs each container holding a kind other than the one it
// declares and returns how many there are.
func checkFiles(cfg *MainConfig, in io.Reader, files []string) (int, error) {
	n := 0
	for _, file := range files {
		doc, err := getObjFile(in, file, cfg.parseOpts(file)...)
		if err != nil {
			return n, fmt.Errorf("error decoding %s: %w", file, err)
		}
		for i := range doc {
			c := &doc[i]
			if !c.KindMismatch() {
				continue
			}
			n++
			theLog.Warn("kind mismatch", "file", file, "name", c.Name, "declared", c.Kind, "holds", c.ValueKind())
		}
	}
	return n, nil
}
