package main

import (
	"fmt"

	"github.com/yiroth/libvariant/encode"
	"github.com/yiroth/libvariant/variant"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a container name", cli.ErrUsage)
	}
	name := args[0]
	k, convert, err := cfg.asKind()
	if err != nil {
		return err
	}
	found := false
	for _, file := range fileArgs(args[1:]) {
		doc, err := getObjFile(cc.In, file, cfg.parseOpts(file)...)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		for i := range doc {
			c := &doc[i]
			if c.Name != name {
				continue
			}
			found = true
			v := c.Value
			if convert {
				v, err = getAs(cfg, c, k)
				if err != nil {
					return err
				}
			}
			fmt.Fprintf(cc.Out, "%s\n", encode.ValueText(v))
		}
	}
	if !found {
		return fmt.Errorf("no container named %q", name)
	}
	return nil
}

// getAs converts the value of c to k. Unless -strict is given a value
// that does not convert gives the zero value of k.
func getAs(cfg *GetConfig, c *variant.Container, k variant.Kind) (variant.Variant, error) {
	v, err := variant.Convert(c, k)
	if err == nil {
		return v, nil
	}
	if cfg.Strict {
		return variant.Variant{}, fmt.Errorf("%s: %w", c.Name, err)
	}
	theLog.Warn("using zero value", "name", c.Name, "holds", c.ValueKind(), "as", k, "error", err)
	return variant.FromRecord(variant.Record{Kind: k}), nil
}
