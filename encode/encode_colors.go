package encode

import (
	"strings"

	"github.com/yiroth/libvariant/variant"

	"github.com/fatih/color"
)

type Colorable struct {
	Kind variant.Kind
	Attr ColorAttr
}

type ColorAttr int

const (
	NameColor ColorAttr = iota
	KindColor
	ValueColor
	MismatchColor
	SlotColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	for _, k := range variant.Kinds() {
		able := Colorable{Kind: k, Attr: NameColor}
		colors.Map[able] = color.RGB(128, 168, 196).SprintfFunc()
		able.Attr = KindColor
		colors.Map[able] = color.RGB(74, 92, 138).SprintfFunc()
		able.Attr = MismatchColor
		colors.Map[able] = color.New(color.FgRed, color.Bold).SprintfFunc()
		able.Attr = SlotColor
		colors.Map[able] = color.RGB(96, 96, 96).SprintfFunc()
	}
	able := Colorable{Attr: ValueColor}

	able.Kind = variant.EmptyKind
	colors.Map[able] = color.RGB(168, 0, 196).SprintfFunc()

	able.Kind = variant.IntKind
	colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()

	able.Kind = variant.FloatKind
	colors.Map[able] = color.RGB(196, 96, 16).SprintfFunc()

	able.Kind = variant.BoolKind
	colors.Map[able] = color.CyanString

	able.Kind = variant.StringKind
	colors.Map[able] = color.RGB(8, 196, 16).SprintfFunc()

	able.Kind = variant.Vector2Kind
	colors.Map[able] = color.RGB(198, 198, 46).SprintfFunc()
	able.Kind = variant.Vector3Kind
	colors.Map[able] = color.RGB(196, 168, 128).SprintfFunc()

	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(k variant.Kind, a ColorAttr, s string) string {
	return c.Get(k, a)(s)
}

func (c *Colors) Get(k variant.Kind, a ColorAttr) func(string, ...any) string {
	f := c.Map[Colorable{Kind: k, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}

func noColor(_ variant.Kind, _ ColorAttr, s string) string { return s }
