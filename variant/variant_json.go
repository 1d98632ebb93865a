package variant

import (
	"encoding/json"
	"fmt"
	"math"
)

// wireVariant is the encoded form of a Variant: the kind name and the
// active slot only.
type wireVariant struct {
	Kind    string     `json:"kind" yaml:"kind"`
	Int     *int       `json:"int,omitempty" yaml:"int,omitempty"`
	Float   *wireFloat `json:"float,omitempty" yaml:"float,omitempty"`
	Bool    *bool      `json:"bool,omitempty" yaml:"bool,omitempty"`
	String  *string    `json:"string,omitempty" yaml:"string,omitempty"`
	Vector2 *Vector2   `json:"vector2,omitempty" yaml:"vector2,omitempty"`
	Vector3 *Vector3   `json:"vector3,omitempty" yaml:"vector3,omitempty"`
}

type wireContainer struct {
	Name  string       `json:"name" yaml:"name"`
	Kind  string       `json:"kind,omitempty" yaml:"kind,omitempty"`
	Value *wireVariant `json:"value" yaml:"value"`
}

func (v Variant) toWire() (*wireVariant, error) {
	d, err := v.kind.MarshalText()
	if err != nil {
		return nil, err
	}
	res := &wireVariant{Kind: string(d)}
	switch v.kind {
	case IntKind:
		i := v.i
		res.Int = &i
	case FloatKind:
		f := wireFloat(v.f)
		res.Float = &f
	case BoolKind:
		b := v.b
		res.Bool = &b
	case StringKind:
		s := v.s
		res.String = &s
	case Vector2Kind:
		v2 := v.v2
		res.Vector2 = &v2
	case Vector3Kind:
		v3 := v.v3
		res.Vector3 = &v3
	}
	return res, nil
}

func (w *wireVariant) toVariant() (Variant, error) {
	if w == nil || w.Kind == "" {
		return Variant{}, nil
	}
	k, err := ParseKind(w.Kind)
	if err != nil {
		return Variant{}, err
	}
	res := Variant{}
	switch k {
	case EmptyKind:
	case IntKind:
		Set(&res, deref(w.Int))
	case FloatKind:
		Set(&res, float64(deref(w.Float)))
	case BoolKind:
		Set(&res, deref(w.Bool))
	case StringKind:
		Set(&res, deref(w.String))
	case Vector2Kind:
		Set(&res, deref(w.Vector2))
	case Vector3Kind:
		Set(&res, deref(w.Vector3))
	}
	return res, nil
}

// wireFloat writes NaN and the infinities as the JSON strings "NaN",
// "+Inf" and "-Inf". Finite values stay plain numbers.
type wireFloat float64

func (f wireFloat) MarshalJSON() ([]byte, error) {
	x := float64(f)
	switch {
	case math.IsNaN(x):
		return []byte(`"NaN"`), nil
	case math.IsInf(x, 1):
		return []byte(`"+Inf"`), nil
	case math.IsInf(x, -1):
		return []byte(`"-Inf"`), nil
	}
	return json.Marshal(x)
}

func (f *wireFloat) UnmarshalJSON(d []byte) error {
	if len(d) == 0 || d[0] != '"' {
		var x float64
		if err := json.Unmarshal(d, &x); err != nil {
			return err
		}
		*f = wireFloat(x)
		return nil
	}
	var s string
	if err := json.Unmarshal(d, &s); err != nil {
		return err
	}
	return f.setNonFinite(s)
}

func (f *wireFloat) setNonFinite(s string) error {
	switch s {
	case "NaN":
		*f = wireFloat(math.NaN())
	case "+Inf", "Inf":
		*f = wireFloat(math.Inf(1))
	case "-Inf":
		*f = wireFloat(math.Inf(-1))
	default:
		return fmt.Errorf("%w: float %q", ErrConvert, s)
	}
	return nil
}

func (f wireFloat) MarshalYAML() (any, error) {
	return float64(f), nil
}

// UnmarshalYAML also accepts the JSON spellings, since YAML input may be
// JSON text.
func (f *wireFloat) UnmarshalYAML(unmarshal func(any) error) error {
	var x float64
	if err := unmarshal(&x); err == nil {
		*f = wireFloat(x)
		return nil
	}
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	return f.setNonFinite(s)
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

func (c Container) toWire() (*wireContainer, error) {
	kd, err := c.Kind.MarshalText()
	if err != nil {
		return nil, fmt.Errorf("container %q: %w", c.Name, err)
	}
	wv, err := c.Value.toWire()
	if err != nil {
		return nil, fmt.Errorf("container %q: %w", c.Name, err)
	}
	return &wireContainer{Name: c.Name, Kind: string(kd), Value: wv}, nil
}

// A missing declared kind is taken from the value.
func (w *wireContainer) toContainer() (Container, error) {
	v, err := w.Value.toVariant()
	if err != nil {
		return Container{}, fmt.Errorf("container %q: %w", w.Name, err)
	}
	k := v.Kind()
	if w.Kind != "" {
		k, err = ParseKind(w.Kind)
		if err != nil {
			return Container{}, fmt.Errorf("container %q: %w", w.Name, err)
		}
	}
	return Container{Name: w.Name, Kind: k, Value: v}, nil
}

func (v Variant) MarshalJSON() ([]byte, error) {
	w, err := v.toWire()
	if err != nil {
		return nil, err
	}
	return json.Marshal(w)
}

func (v *Variant) UnmarshalJSON(d []byte) error {
	w := &wireVariant{}
	if err := json.Unmarshal(d, w); err != nil {
		return err
	}
	res, err := w.toVariant()
	if err != nil {
		return err
	}
	*v = res
	return nil
}

func (c Container) MarshalJSON() ([]byte, error) {
	w, err := c.toWire()
	if err != nil {
		return nil, err
	}
	return json.Marshal(w)
}

func (c *Container) UnmarshalJSON(d []byte) error {
	w := &wireContainer{}
	if err := json.Unmarshal(d, w); err != nil {
		return err
	}
	res, err := w.toContainer()
	if err != nil {
		return err
	}
	*c = res
	return nil
}

// MarshalYAML implements the goccy/go-yaml InterfaceMarshaler.
func (v Variant) MarshalYAML() (any, error) {
	return v.toWire()
}

func (v *Variant) UnmarshalYAML(unmarshal func(any) error) error {
	w := &wireVariant{}
	if err := unmarshal(w); err != nil {
		return err
	}
	res, err := w.toVariant()
	if err != nil {
		return err
	}
	*v = res
	return nil
}

func (c Container) MarshalYAML() (any, error) {
	return c.toWire()
}

func (c *Container) UnmarshalYAML(unmarshal func(any) error) error {
	w := &wireContainer{}
	if err := unmarshal(w); err != nil {
		return err
	}
	res, err := w.toContainer()
	if err != nil {
		return err
	}
	*c = res
	return nil
}
