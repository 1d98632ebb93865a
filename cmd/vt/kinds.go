package main

import (
	"fmt"

	"github.com/yiroth/libvariant/variant"

	"github.com/scott-cotton/cli"
)

func kinds(cmd *cli.Command, cc *cli.Context, args []string) error {
	args, err := cmd.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: kinds takes no arguments", cli.ErrUsage)
	}
	for _, k := range variant.Kinds() {
		fmt.Fprintf(cc.Out, "%d\t%s\n", int(k), k)
	}
	return nil
}
