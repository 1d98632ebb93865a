package main

import (
	"fmt"
	"io"

	"github.com/yiroth/libvariant/encode"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	files := fileArgs(args)
	for i, file := range files {
		if err := viewFile(cfg, cc, cc.Out, file); err != nil {
			return err
		}
		if i < len(files)-1 {
			if _, err := cc.Out.Write([]byte("---\n")); err != nil {
				return err
			}
		}
	}
	return nil
}

func viewFile(cfg *ViewConfig, cc *cli.Context, w io.Writer, file string) error {
	doc, err := getObjFile(cc.In, file, cfg.parseOpts(file)...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", file, err)
	}
	opts := cfg.encOpts(w, file)
	if cfg.Encode {
		if err := encode.Encode(doc, w, opts...); err != nil {
			return fmt.Errorf("error encoding %s: %w", file, err)
		}
		return nil
	}
	opts = append(opts, encode.InspectSlots(cfg.Slots))
	if err := encode.Inspect(doc, w, opts...); err != nil {
		return fmt.Errorf("error inspecting %s: %w", file, err)
	}
	return nil
}
