package variant

import (
	"errors"
	"fmt"
	"math"
	"testing"
)

type hitPoints int

type label string

func checkGet[T comparable](t *testing.T, v Variant, want T, wantErr error) {
	t.Helper()
	got, err := Get[T](v)
	if !errors.Is(err, wantErr) {
		t.Errorf("Get[%T](%s) error = %v, want %v", want, v, err, wantErr)
	}
	if got != want {
		t.Errorf("Get[%T](%s) = %v, want %v", want, v, got, want)
	}
	if d := GetOrDefault[T](v); d != want {
		t.Errorf("GetOrDefault[%T](%s) = %v, want %v", want, v, d, want)
	}
}

func TestGetFromInt(t *testing.T) {
	v := FromInt(5)
	checkGet(t, v, 5, nil)
	checkGet(t, v, 5.0, nil)
	checkGet(t, v, float32(5), nil)
	checkGet(t, v, int8(5), nil)
	checkGet(t, v, uint(5), nil)
	checkGet(t, v, true, nil)
	checkGet(t, v, "5", nil)
	checkGet(t, v, hitPoints(5), nil)
	checkGet(t, v, label("5"), nil)
	checkGet(t, v, Vector2{}, ErrConvert)

	checkGet(t, FromInt(-1), uint(0), ErrConvert)
	checkGet(t, FromInt(300), int8(0), ErrConvert)
	checkGet(t, FromInt(0), false, nil)
}

func TestGetFromFloat(t *testing.T) {
	checkGet(t, FromFloat(3.5), 4, nil)
	checkGet(t, FromFloat(2.5), 2, nil)
	checkGet(t, FromFloat(-2.5), int64(-2), nil)
	checkGet(t, FromFloat(3.5), "3.5", nil)
	checkGet(t, FromFloat(3.5), true, nil)
	checkGet(t, FromFloat(1e300), float32(0), ErrConvert)
	checkGet(t, FromFloat(math.NaN()), 0, ErrConvert)
	checkGet(t, FromFloat(math.Inf(1)), 0, ErrConvert)
	checkGet(t, FromFloat(1e30), 0, ErrConvert)
	checkGet(t, FromFloat(math.Inf(-1)), float32(math.Inf(-1)), nil)
}

func TestGetFromBool(t *testing.T) {
	checkGet(t, FromBool(true), 1, nil)
	checkGet(t, FromBool(false), 0.0, nil)
	checkGet(t, FromBool(true), "true", nil)
}

func TestGetFromString(t *testing.T) {
	checkGet(t, FromString("42"), 42, nil)
	checkGet(t, FromString(" 42\n"), 42, nil)
	checkGet(t, FromString("hello"), 0, ErrConvert)
	checkGet(t, FromString("3.5"), 0, ErrConvert)
	checkGet(t, FromString("3.5"), 3.5, nil)
	checkGet(t, FromString("12abc"), 0.0, ErrConvert)
	checkGet(t, FromString("true"), true, nil)
	checkGet(t, FromString("yes"), false, ErrConvert)
	checkGet(t, FromString("(1, 2)"), Vector2{X: 1, Y: 2}, nil)
	checkGet(t, FromString("1.5,2,3"), Vector3{X: 1.5, Y: 2, Z: 3}, nil)
	checkGet(t, FromString("(1, 2"), Vector2{}, ErrConvert)
	checkGet(t, FromString("(1, 2, 3)"), Vector2{}, ErrConvert)
}

func TestGetFromVector(t *testing.T) {
	v2 := FromVector2(Vector2{X: 1, Y: 2})
	checkGet(t, v2, Vector3{X: 1, Y: 2}, nil)
	checkGet(t, v2, "(1, 2)", nil)
	checkGet(t, v2, 0, ErrConvert)
	checkGet(t, v2, false, ErrConvert)

	v3 := FromVector3(Vector3{X: 1, Y: 2, Z: 3})
	checkGet(t, v3, Vector2{X: 1, Y: 2}, nil)
	checkGet(t, v3, "(1, 2, 3)", nil)
}

func TestGetFromEmpty(t *testing.T) {
	var v Variant
	checkGet(t, v, 0, ErrEmpty)
	checkGet(t, v, "", ErrEmpty)
	checkGet(t, v, Vector3{}, ErrEmpty)
}

func TestGetInterface(t *testing.T) {
	got, err := Get[any](FromInt(5))
	if err != nil || got != 5 {
		t.Errorf("Get[any] = %v, %v", got, err)
	}
	s, err := Get[fmt.Stringer](FromVector2(Vector2{X: 1}))
	if err != nil {
		t.Fatal(err)
	}
	if s.String() != "(1, 0)" {
		t.Errorf("got %q", s.String())
	}
	if _, err := Get[fmt.Stringer](FromInt(1)); !errors.Is(err, ErrConvert) {
		t.Errorf("got %v, want ErrConvert", err)
	}
}

func TestAs(t *testing.T) {
	if i, ok := As[int](FromInt(3)); !ok || i != 3 {
		t.Errorf("As[int] = %d, %v", i, ok)
	}
	if _, ok := As[float64](FromInt(3)); ok {
		t.Errorf("As[float64] on int should not convert")
	}
	if _, ok := As[string](Variant{}); ok {
		t.Errorf("As on empty should fail")
	}
}

func TestConvert(t *testing.T) {
	tests := []struct {
		name string
		from Variant
		kind Kind
		want Variant
		err  error
	}{
		{"int to float", FromInt(2), FloatKind, FromFloat(2), nil},
		{"float to int", FromFloat(2.6), IntKind, FromInt(3), nil},
		{"to empty", FromInt(2), EmptyKind, Variant{}, nil},
		{"text to vector", FromString("(0.5, 1)"), Vector2Kind, FromVector2(Vector2{X: 0.5, Y: 1}), nil},
		{"bad text", FromString("x"), IntKind, Variant{}, ErrConvert},
		{"bad kind", FromInt(1), Kind(99), Variant{}, ErrBadKind},
		{"from empty", Variant{}, IntKind, Variant{}, ErrEmpty},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Convert(tt.from, tt.kind)
			if !errors.Is(err, tt.err) {
				t.Fatalf("error = %v, want %v", err, tt.err)
			}
			if got.Kind() != tt.want.Kind() || got.Raw() != tt.want.Raw() {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestParseAs(t *testing.T) {
	v, err := ParseAs(IntKind, "100")
	if err != nil {
		t.Fatal(err)
	}
	if v.Kind() != IntKind || v.Int() != 100 {
		t.Errorf("got %s", v)
	}
	v, err = ParseAs(StringKind, "100")
	if err != nil {
		t.Fatal(err)
	}
	if v.Kind() != StringKind {
		t.Errorf("got %s", v)
	}
}
