package main

import (
	"fmt"
	"strings"

	"github.com/yiroth/libvariant/encode"
	"github.com/yiroth/libvariant/parse"
	"github.com/yiroth/libvariant/variant"

	"github.com/scott-cotton/cli"
)

func set(cfg *SetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Set.Parse(cc, args)
	if err != nil {
		cfg.Set.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 || len(args) > 2 {
		return fmt.Errorf("%w: set requires a name=value argument and at most one file", cli.ErrUsage)
	}
	name, text, ok := strings.Cut(args[0], "=")
	if !ok || name == "" {
		return fmt.Errorf("%w: expected name=value, got %q", cli.ErrUsage, args[0])
	}
	v, err := setValue(cfg, text)
	if err != nil {
		return fmt.Errorf("error parsing value for %s: %w", name, err)
	}
	file := "-"
	if len(args) == 2 {
		file = args[1]
	}
	doc, err := getObjFile(cc.In, file, cfg.parseOpts(file)...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", file, err)
	}
	doc = setContainer(doc, name, v, cfg.Declare)
	if err := encode.Encode(doc, cc.Out, cfg.encOpts(cc.Out, file)...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	return nil
}

func setValue(cfg *SetConfig, text string) (variant.Variant, error) {
	if cfg.Kind == "" {
		return parse.ParseValue(text)
	}
	k, err := variant.ParseKind(cfg.Kind)
	if err != nil {
		return variant.Variant{}, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	return variant.ParseAs(k, text)
}

// setContainer stores v in the first container named name, appending a new
// container declared with the kind of v when there is none.
func setContainer(doc []variant.Container, name string, v variant.Variant, declare bool) []variant.Container {
	for i := range doc {
		c := &doc[i]
		if c.Name != name {
			continue
		}
		c.Value = v
		if declare {
			c.Kind = v.Kind()
		} else if c.KindMismatch() {
			theLog.Warn("kind mismatch", "name", name, "declared", c.Kind, "holds", c.ValueKind())
		}
		return doc
	}
	return append(doc, variant.NewContainer(name, v.Kind(), v))
}
