package main

import (
	"fmt"

	"github.com/yiroth/libvariant/encode"
	vteval "github.com/yiroth/libvariant/eval"

	"github.com/scott-cotton/cli"
)

func eval(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		cfg.Eval.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 || len(args) > 2 {
		return fmt.Errorf("%w: eval requires an expression and at most one file", cli.ErrUsage)
	}
	input := args[0]
	file := "-"
	if len(args) == 2 {
		file = args[1]
	}
	doc, err := getObjFile(cc.In, file, cfg.parseOpts(file)...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", file, err)
	}
	if cfg.Set != "" {
		if err := vteval.Assign(doc, cfg.Set, input); err != nil {
			return fmt.Errorf("error evaluating %q: %w", input, err)
		}
		if err := encode.Encode(doc, cc.Out, cfg.encOpts(cc.Out, file)...); err != nil {
			return fmt.Errorf("error encoding result: %w", err)
		}
		return nil
	}
	v, err := vteval.Eval(doc, input)
	if err != nil {
		return fmt.Errorf("error evaluating %q: %w", input, err)
	}
	fmt.Fprintf(cc.Out, "%s %s\n", v.Kind(), encode.ValueText(v))
	return nil
}
