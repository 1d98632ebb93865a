package main

import (
	"fmt"
	"io"
	"os"

	"github.com/yiroth/libvariant/encode"
	vtpatch "github.com/yiroth/libvariant/patch"

	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 || len(args) > 2 {
		return fmt.Errorf("%w: patch requires a patch argument and at most one file", cli.ErrUsage)
	}
	p, err := getPatch(cfg, cc, args[0])
	if err != nil {
		return err
	}
	file := "-"
	if len(args) == 2 {
		file = args[1]
	}
	target, err := getObjFile(cc.In, file, cfg.parseOpts(file)...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", file, err)
	}
	apply := vtpatch.Apply
	if cfg.Merge {
		apply = vtpatch.Merge
	}
	res, err := apply(target, p)
	if err != nil {
		return fmt.Errorf("error patching %s: %w", file, err)
	}
	if err := encode.Encode(res, cc.Out, cfg.encOpts(cc.Out, file)...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	return nil
}

// getPatch reads the patch argument, which is JSON text or with -f a file.
func getPatch(cfg *PatchConfig, cc *cli.Context, arg string) ([]byte, error) {
	if !cfg.File {
		return []byte(arg), nil
	}
	var r io.Reader
	switch arg {
	case "-":
		r = cc.In
	default:
		f, err := os.Open(arg)
		if err != nil {
			return nil, fmt.Errorf("%w: error opening %s: %w", cli.ErrUsage, arg, err)
		}
		defer f.Close()
		r = f
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading patch: %w", err)
	}
	return d, nil
}
