package variant

import (
	"fmt"
	"math"
)

// Variant holds exactly one value of one Kind. Only the slot matching the
// active kind is meaningful; the others keep whatever they last held.
type Variant struct {
	kind Kind

	i  int
	f  float64
	b  bool
	s  string
	v2 Vector2
	v3 Vector3
}

// Native is the set of Go types stored directly in a Variant slot.
type Native interface {
	int | float64 | bool | string | Vector2 | Vector3
}

// Holder is implemented by Variant and Container so the generic accessors
// work on either.
type Holder interface {
	held() Variant
}

func (v Variant) held() Variant { return v }

func FromInt(i int) Variant         { return Of(i) }
func FromFloat(f float64) Variant   { return Of(f) }
func FromBool(b bool) Variant       { return Of(b) }
func FromString(s string) Variant   { return Of(s) }
func FromVector2(v Vector2) Variant { return Of(v) }
func FromVector3(v Vector3) Variant { return Of(v) }

// Of builds a Variant whose kind is determined by T.
func Of[T Native](x T) Variant {
	res := Variant{}
	Set(&res, x)
	return res
}

// New infers the kind from the dynamic type of x. nil and unsupported
// types yield an Empty variant.
func New(x any) Variant {
	res, _ := NewStrict(x)
	return res
}

// NewStrict is New, but reports unsupported input with ErrUnsupported.
// The returned variant is Empty in that case.
func NewStrict(x any) (Variant, error) {
	res := Variant{}
	err := res.SetAny(x)
	return res, err
}

// KindOf returns the kind New would assign to x.
func KindOf(x any) Kind {
	return New(x).kind
}

// Set stores x, retagging v with the kind of T.
func Set[T Native](v *Variant, x T) {
	switch t := any(x).(type) {
	case int:
		v.kind, v.i = IntKind, t
	case float64:
		v.kind, v.f = FloatKind, t
	case bool:
		v.kind, v.b = BoolKind, t
	case string:
		v.kind, v.s = StringKind, t
	case Vector2:
		v.kind, v.v2 = Vector2Kind, t
	case Vector3:
		v.kind, v.v3 = Vector3Kind, t
	}
}

// SetAny stores x using the same dispatch as New. Integer types other
// than int are accepted when the value fits in an int, and float32 is
// widened to float64. For unsupported input v becomes Empty and
// ErrUnsupported is returned.
func (v *Variant) SetAny(x any) error {
	switch t := x.(type) {
	case nil:
		v.kind = EmptyKind
	case int:
		Set(v, t)
	case float64:
		Set(v, t)
	case bool:
		Set(v, t)
	case string:
		Set(v, t)
	case Vector2:
		Set(v, t)
	case Vector3:
		Set(v, t)
	case Variant:
		*v = t
	case float32:
		Set(v, float64(t))
	case int8:
		Set(v, int(t))
	case int16:
		Set(v, int(t))
	case int32:
		Set(v, int(t))
	case int64:
		return v.setInt64(t)
	case uint8:
		Set(v, int(t))
	case uint16:
		Set(v, int(t))
	case uint32:
		return v.setUint64(uint64(t))
	case uint:
		return v.setUint64(uint64(t))
	case uint64:
		return v.setUint64(t)
	default:
		v.kind = EmptyKind
		return fmt.Errorf("%w: %T", ErrUnsupported, x)
	}
	return nil
}

func (v *Variant) setInt64(i int64) error {
	if i < math.MinInt || i > math.MaxInt {
		v.kind = EmptyKind
		return fmt.Errorf("%w: int64 %d overflows int", ErrUnsupported, i)
	}
	Set(v, int(i))
	return nil
}

func (v *Variant) setUint64(u uint64) error {
	if u > math.MaxInt {
		v.kind = EmptyKind
		return fmt.Errorf("%w: %d overflows int", ErrUnsupported, u)
	}
	Set(v, int(u))
	return nil
}

func (v Variant) Kind() Kind {
	return v.kind
}

func (v Variant) IsEmpty() bool {
	return v.Raw() == nil
}

// Raw returns the active slot boxed in an interface, or nil when the
// variant is Empty or carries an unrecognized kind.
func (v Variant) Raw() any {
	switch v.kind {
	case IntKind:
		return v.i
	case FloatKind:
		return v.f
	case BoolKind:
		return v.b
	case StringKind:
		return v.s
	case Vector2Kind:
		return v.v2
	case Vector3Kind:
		return v.v3
	default:
		return nil
	}
}

func (v Variant) Int() int       { return GetOrDefault[int](v) }
func (v Variant) Float() float64 { return GetOrDefault[float64](v) }
func (v Variant) Bool() bool     { return GetOrDefault[bool](v) }
func (v Variant) Text() string   { return GetOrDefault[string](v) }
func (v Variant) Vec2() Vector2  { return GetOrDefault[Vector2](v) }
func (v Variant) Vec3() Vector3  { return GetOrDefault[Vector3](v) }

func (v Variant) String() string {
	raw := v.Raw()
	switch x := raw.(type) {
	case nil:
		return EmptyKind.String()
	case string:
		return fmt.Sprintf("%s(%q)", v.kind, x)
	case float64:
		return fmt.Sprintf("%s(%s)", v.kind, formatFloat(x))
	default:
		return fmt.Sprintf("%s(%v)", v.kind, x)
	}
}
