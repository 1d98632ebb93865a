package variant

import (
	"errors"
	"testing"
)

func TestKindOrder(t *testing.T) {
	for i, k := range Kinds() {
		if int(k) != i {
			t.Errorf("kind %s has value %d, want %d", k, int(k), i)
		}
	}
}

func TestKindText(t *testing.T) {
	for _, k := range Kinds() {
		d, err := k.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var back Kind
		if err := back.UnmarshalText(d); err != nil {
			t.Fatal(err)
		}
		if back != k {
			t.Errorf("%s came back as %s", k, back)
		}
	}
	var k Kind
	if err := k.UnmarshalText([]byte("Decimal")); !errors.Is(err, ErrBadKind) {
		t.Errorf("got %v, want ErrBadKind", err)
	}
	if _, err := Kind(12).MarshalText(); !errors.Is(err, ErrBadKind) {
		t.Errorf("got %v, want ErrBadKind", err)
	}
	if Kind(12).String() != "<unknown kind>" {
		t.Errorf("got %q", Kind(12).String())
	}
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		in   any
		want Kind
	}{
		{nil, EmptyKind},
		{1, IntKind},
		{uint16(1), IntKind},
		{1.0, FloatKind},
		{false, BoolKind},
		{"", StringKind},
		{Vector2{}, Vector2Kind},
		{Vector3{}, Vector3Kind},
		{[]byte("x"), EmptyKind},
	}
	for _, tt := range tests {
		if got := KindOf(tt.in); got != tt.want {
			t.Errorf("KindOf(%#v) = %s, want %s", tt.in, got, tt.want)
		}
	}
	if !Vector2Kind.IsVector() || IntKind.IsVector() {
		t.Errorf("IsVector")
	}
}
