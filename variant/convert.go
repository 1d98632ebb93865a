package variant

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

var (
	vector2Type = reflect.TypeFor[Vector2]()
	vector3Type = reflect.TypeFor[Vector3]()
)

// Get returns the held value as T. A T matching the active kind's native
// type is returned as is; otherwise the value is converted if it is
// representable as T. Empty variants give ErrEmpty and failed conversions
// ErrConvert.
func Get[T any](h Holder) (T, error) {
	var zero T
	raw := h.held().Raw()
	if raw == nil {
		return zero, ErrEmpty
	}
	if t, ok := raw.(T); ok {
		return t, nil
	}
	dst := reflect.New(reflect.TypeFor[T]()).Elem()
	if err := assign(dst, raw); err != nil {
		return zero, err
	}
	return dst.Interface().(T), nil
}

// GetOrDefault is Get with every failure mapped to the zero value of T.
// Callers that must tell "absent" from "not convertible" check Kind first.
func GetOrDefault[T any](h Holder) T {
	res, _ := Get[T](h)
	return res
}

// As returns the held value only when its kind's native type is T.
func As[T Native](h Holder) (T, bool) {
	t, ok := h.held().Raw().(T)
	return t, ok
}

// Convert builds a variant of kind k from the held value, following the
// same rules as Get. Converting to EmptyKind always succeeds.
func Convert(h Holder, k Kind) (Variant, error) {
	var (
		res Variant
		err error
	)
	switch k {
	case EmptyKind:
		return Variant{}, nil
	case IntKind:
		res, err = convertTo[int](h)
	case FloatKind:
		res, err = convertTo[float64](h)
	case BoolKind:
		res, err = convertTo[bool](h)
	case StringKind:
		res, err = convertTo[string](h)
	case Vector2Kind:
		res, err = convertTo[Vector2](h)
	case Vector3Kind:
		res, err = convertTo[Vector3](h)
	default:
		return Variant{}, fmt.Errorf("%w: %d", ErrBadKind, int(k))
	}
	return res, err
}

func convertTo[T Native](h Holder) (Variant, error) {
	t, err := Get[T](h)
	if err != nil {
		return Variant{}, err
	}
	return Of(t), nil
}

// ParseAs interprets text as a value of kind k.
func ParseAs(k Kind, text string) (Variant, error) {
	return Convert(FromString(text), k)
}

func assign(dst reflect.Value, raw any) error {
	switch dst.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := toInt64(raw)
		if err != nil {
			return convErr(raw, dst.Type(), err)
		}
		if dst.OverflowInt(n) {
			return convErr(raw, dst.Type(), errOverflow)
		}
		dst.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		n, err := toInt64(raw)
		if err != nil {
			return convErr(raw, dst.Type(), err)
		}
		if n < 0 || dst.OverflowUint(uint64(n)) {
			return convErr(raw, dst.Type(), errOverflow)
		}
		dst.SetUint(uint64(n))
	case reflect.Float32, reflect.Float64:
		f, err := toFloat64(raw)
		if err != nil {
			return convErr(raw, dst.Type(), err)
		}
		if !math.IsInf(f, 0) && !math.IsNaN(f) && dst.OverflowFloat(f) {
			return convErr(raw, dst.Type(), errOverflow)
		}
		dst.SetFloat(f)
	case reflect.Bool:
		b, err := toBool(raw)
		if err != nil {
			return convErr(raw, dst.Type(), err)
		}
		dst.SetBool(b)
	case reflect.String:
		s, err := toString(raw)
		if err != nil {
			return convErr(raw, dst.Type(), err)
		}
		dst.SetString(s)
	case reflect.Struct:
		var (
			v   any
			err error
		)
		switch dst.Type() {
		case vector2Type:
			v, err = toVector2(raw)
		case vector3Type:
			v, err = toVector3(raw)
		default:
			err = errNoRule
		}
		if err != nil {
			return convErr(raw, dst.Type(), err)
		}
		dst.Set(reflect.ValueOf(v))
	case reflect.Interface:
		rv := reflect.ValueOf(raw)
		if !rv.Type().Implements(dst.Type()) {
			return convErr(raw, dst.Type(), errNoRule)
		}
		dst.Set(rv)
	default:
		return convErr(raw, dst.Type(), errNoRule)
	}
	return nil
}

var (
	errOverflow = errors.New("value out of range")
	errNoRule   = errors.New("no conversion")
)

func convErr(raw any, to reflect.Type, err error) error {
	return fmt.Errorf("%w: %T to %s: %w", ErrConvert, raw, to, err)
}

func toInt64(raw any) (int64, error) {
	switch x := raw.(type) {
	case int:
		return int64(x), nil
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return 0, errOverflow
		}
		r := math.RoundToEven(x)
		if r < math.MinInt64 || r >= math.MaxInt64 {
			return 0, errOverflow
		}
		return int64(r), nil
	case bool:
		if x {
			return 1, nil
		}
		return 0, nil
	case string:
		return strconv.ParseInt(strings.TrimSpace(x), 10, 64)
	default:
		return 0, errNoRule
	}
}

func toFloat64(raw any) (float64, error) {
	switch x := raw.(type) {
	case int:
		return float64(x), nil
	case float64:
		return x, nil
	case bool:
		if x {
			return 1, nil
		}
		return 0, nil
	case string:
		return strconv.ParseFloat(strings.TrimSpace(x), 64)
	default:
		return 0, errNoRule
	}
}

func toBool(raw any) (bool, error) {
	switch x := raw.(type) {
	case int:
		return x != 0, nil
	case float64:
		return x != 0, nil
	case bool:
		return x, nil
	case string:
		return strconv.ParseBool(strings.TrimSpace(x))
	default:
		return false, errNoRule
	}
}

func toString(raw any) (string, error) {
	switch x := raw.(type) {
	case int:
		return strconv.Itoa(x), nil
	case float64:
		return formatFloat(x), nil
	case bool:
		return strconv.FormatBool(x), nil
	case string:
		return x, nil
	case Vector2:
		return x.String(), nil
	case Vector3:
		return x.String(), nil
	default:
		return "", errNoRule
	}
}

func toVector2(raw any) (Vector2, error) {
	switch x := raw.(type) {
	case Vector2:
		return x, nil
	case Vector3:
		return x.Vector2(), nil
	case string:
		return ParseVector2(x)
	default:
		return Vector2{}, errNoRule
	}
}

func toVector3(raw any) (Vector3, error) {
	switch x := raw.(type) {
	case Vector3:
		return x, nil
	case Vector2:
		return x.Vector3(), nil
	case string:
		return ParseVector3(x)
	default:
		return Vector3{}, errNoRule
	}
}
