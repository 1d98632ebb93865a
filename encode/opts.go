package encode

import (
	"github.com/yiroth/libvariant/format"
	"github.com/yiroth/libvariant/variant"
)

type EncState struct {
	format format.Format
	wire   bool
	slots  bool

	Color func(variant.Kind, ColorAttr, string) string
}

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

// EncodeWire selects compact output: single line JSON or flow style YAML.
func EncodeWire(v bool) EncodeOption {
	return func(es *EncState) { es.wire = v }
}
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}

// InspectSlots makes Inspect list every payload slot of each value,
// including the inactive ones.
func InspectSlots(v bool) EncodeOption {
	return func(es *EncState) { es.slots = v }
}

func newEncState(opts []EncodeOption) *EncState {
	es := &EncState{Color: noColor}
	for _, opt := range opts {
		opt(es)
	}
	return es
}
