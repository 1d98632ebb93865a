package main

import (
	"fmt"
	"io"
	"os"

	"github.com/yiroth/libvariant/encode"
	"github.com/yiroth/libvariant/format"
	"github.com/yiroth/libvariant/parse"
	"github.com/yiroth/libvariant/variant"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='inspect with color'"`
	WireOut bool `cli:"name=wire desc='output in compact format'"`
	Gops    bool `cli:"name=gops desc='start a gops agent'"`
	Quiet   bool `cli:"name=q desc='only log errors'"`

	J bool `cli:"name=j aliases=json desc='do i/o in json'"`
	Y bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

// inFormat picks the input format for path: the -I option, then -j or -y,
// then the file suffix.
func (cfg *MainConfig) inFormat(path string) format.Format {
	switch {
	case cfg.InFormat != nil:
		return *cfg.InFormat
	case cfg.J:
		return format.JSONFormat
	case cfg.Y:
		return format.YAMLFormat
	}
	return format.FromPath(path)
}

func (cfg *MainConfig) parseOpts(path string) []parse.ParseOption {
	return []parse.ParseOption{parse.ParseFormat(cfg.inFormat(path))}
}

// outFormat follows the input format of path unless set explicitly.
func (cfg *MainConfig) outFormat(path string) format.Format {
	switch {
	case cfg.OutFormat != nil:
		return *cfg.OutFormat
	case cfg.J:
		return format.JSONFormat
	case cfg.Y:
		return format.YAMLFormat
	}
	return cfg.inFormat(path)
}

func (cfg *MainConfig) encOpts(w io.Writer, path string) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeFormat(cfg.outFormat(path)),
		encode.EncodeWire(cfg.WireOut),
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	return res
}

type ViewConfig struct {
	*MainConfig

	Slots  bool `cli:"name=slots desc='show every payload slot'"`
	Encode bool `cli:"name=e desc='encode documents instead of inspecting them'"`
	View   *cli.Command
}

type GetConfig struct {
	*MainConfig

	As     string `cli:"name=as desc='convert the value to this kind'"`
	Strict bool   `cli:"name=strict desc='fail when the value does not convert'"`
	Get    *cli.Command
}

// asKind returns the kind requested with -as, or EmptyKind with ok false.
func (cfg *GetConfig) asKind() (k variant.Kind, ok bool, err error) {
	if cfg.As == "" {
		return variant.EmptyKind, false, nil
	}
	k, err = variant.ParseKind(cfg.As)
	if err != nil {
		return k, false, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	return k, true, nil
}

type SetConfig struct {
	*MainConfig

	Kind    string `cli:"name=k desc='parse the value as this kind'"`
	Declare bool   `cli:"name=declare desc='also set the declared kind'"`
	Set     *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r desc='reverse the diff'"`

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig
	Merge bool `cli:"name=merge desc='apply a merge patch keyed by container name'"`
	File  bool `cli:"name=f desc='patch arg as file'"`

	Patch *cli.Command
}

type EvalConfig struct {
	*MainConfig
	Set string `cli:"name=set desc='store the result in this container and output the document'"`

	Eval *cli.Command
}

type CheckConfig struct {
	*MainConfig

	Check *cli.Command
}
