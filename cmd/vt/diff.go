package main

import (
	"fmt"
	"io"

	"github.com/yiroth/libvariant/libdiff"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	differs, err := diffFiles(cfg, cc.In, cc.Out, args[0], args[1])
	if err != nil {
		return err
	}
	if differs {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// diffFiles writes the changes from file a to file b and reports whether
// there were any.
func diffFiles(cfg *DiffConfig, in io.Reader, w io.Writer, a, b string) (bool, error) {
	da, err := getObjFile(in, a, cfg.parseOpts(a)...)
	if err != nil {
		return false, fmt.Errorf("error decoding %s: %w", a, err)
	}
	db, err := getObjFile(in, b, cfg.parseOpts(b)...)
	if err != nil {
		return false, fmt.Errorf("error decoding %s: %w", b, err)
	}
	d := libdiff.Diff(da, db)
	if d == nil {
		return false, nil
	}
	if cfg.Reverse {
		d = d.Reverse()
	}
	if _, err := io.WriteString(w, d.String()); err != nil {
		return true, err
	}
	return true, nil
}
