package parse

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/yiroth/libvariant/debug"
	"github.com/yiroth/libvariant/format"
	"github.com/yiroth/libvariant/variant"

	"github.com/goccy/go-yaml"
)

// Parse reads a document of containers. The document is either a list of
// containers or a single container object.
func Parse(d []byte, opts ...ParseOption) ([]variant.Container, error) {
	po := &parseOpts{}
	for _, opt := range opts {
		opt(po)
	}
	var (
		res []variant.Container
		err error
	)
	switch po.format {
	case format.JSONFormat:
		res, err = parseJSON(d)
	default:
		res, err = parseYAML(d)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	if debug.Parse() {
		debug.Logf("parsed %d containers (%s):\n%s\n", len(res), po.format, res)
	}
	return res, nil
}

func parseJSON(d []byte) ([]variant.Container, error) {
	t := bytes.TrimSpace(d)
	if len(t) == 0 || bytes.Equal(t, []byte("null")) {
		return nil, nil
	}
	if t[0] == '{' {
		c := variant.Container{}
		if err := json.Unmarshal(t, &c); err != nil {
			return nil, err
		}
		return []variant.Container{c}, nil
	}
	res := []variant.Container{}
	if err := json.Unmarshal(t, &res); err != nil {
		return nil, err
	}
	return res, nil
}

func parseYAML(d []byte) ([]variant.Container, error) {
	var shape any
	if err := yaml.Unmarshal(d, &shape); err != nil {
		return nil, err
	}
	switch shape.(type) {
	case nil:
		return nil, nil
	case map[string]any:
		c := variant.Container{}
		if err := yaml.Unmarshal(d, &c); err != nil {
			return nil, err
		}
		return []variant.Container{c}, nil
	case []any:
		res := []variant.Container{}
		if err := yaml.Unmarshal(d, &res); err != nil {
			return nil, err
		}
		return res, nil
	default:
		return nil, fmt.Errorf("expected a container or a list of containers, got %T", shape)
	}
}

// ParseValue infers a variant from a YAML scalar: integers, floats, bools
// and strings map to their kinds, null to Empty, and a sequence of two or
// three numbers to a vector.
func ParseValue(text string) (variant.Variant, error) {
	var x any
	if err := yaml.Unmarshal([]byte(text), &x); err != nil {
		return variant.Variant{}, fmt.Errorf("%w: %w", ErrParse, err)
	}
	if seq, ok := x.([]any); ok {
		return vectorValue(seq)
	}
	return variant.NewStrict(x)
}

func vectorValue(seq []any) (variant.Variant, error) {
	cs := make([]float64, len(seq))
	for i, e := range seq {
		f, err := variant.Get[float64](variant.New(e))
		if err != nil {
			return variant.Variant{}, fmt.Errorf("%w: vector component %d: %w", ErrParse, i, err)
		}
		cs[i] = f
	}
	switch len(cs) {
	case 2:
		return variant.FromVector2(variant.Vector2{X: cs[0], Y: cs[1]}), nil
	case 3:
		return variant.FromVector3(variant.Vector3{X: cs[0], Y: cs[1], Z: cs[2]}), nil
	default:
		return variant.Variant{}, fmt.Errorf("%w: vectors have 2 or 3 components, got %d", ErrParse, len(cs))
	}
}
