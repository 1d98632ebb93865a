package variant

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestContainerHealth(t *testing.T) {
	c := IntContainer("Health", IntKind, 100)
	if c.ValueKind() != IntKind {
		t.Errorf("ValueKind() = %s", c.ValueKind())
	}
	if got := GetOrDefault[int](c); got != 100 {
		t.Errorf("GetOrDefault[int] = %d", got)
	}
	if got := c.Raw(); got != any(100) {
		t.Errorf("Raw() = %#v", got)
	}
	if c.KindMismatch() {
		t.Errorf("unexpected mismatch")
	}
}

func TestContainerDeclaredKindNotCorrected(t *testing.T) {
	c := StringContainer("Title", IntKind, "hi")
	if c.Kind != IntKind {
		t.Errorf("declared kind changed to %s", c.Kind)
	}
	if c.ValueKind() != StringKind {
		t.Errorf("ValueKind() = %s, want String", c.ValueKind())
	}
	if !c.KindMismatch() {
		t.Errorf("expected mismatch")
	}
	if got := GetOrDefault[int](c); got != 0 {
		t.Errorf("non numeric text as int = %d", got)
	}
}

func TestContainerConstructors(t *testing.T) {
	tests := []struct {
		c    Container
		kind Kind
		raw  any
	}{
		{FloatContainer("Speed", FloatKind, 2.5), FloatKind, 2.5},
		{BoolContainer("Alive", BoolKind, true), BoolKind, true},
		{Vector2Container("Pos", Vector2Kind, Vector2{X: 1}), Vector2Kind, Vector2{X: 1}},
		{Vector3Container("Dir", Vector3Kind, Vector3{Z: 1}), Vector3Kind, Vector3{Z: 1}},
		{ContainerOf("Lives", EmptyKind, 3), IntKind, 3},
		{NewContainer("None", EmptyKind, Variant{}), EmptyKind, nil},
		{NewContainer("Wrapped", IntKind, New(int32(8))), IntKind, 8},
	}
	for _, tt := range tests {
		t.Run(tt.c.Name, func(t *testing.T) {
			if tt.c.ValueKind() != tt.kind {
				t.Errorf("ValueKind() = %s, want %s", tt.c.ValueKind(), tt.kind)
			}
			if diff := cmp.Diff(tt.raw, tt.c.Raw()); diff != "" {
				t.Errorf("Raw() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestContainerClone(t *testing.T) {
	orig := IntContainer("Health", IntKind, 100)
	clone := orig.Clone()
	if diff := cmp.Diff(orig, clone, cmp.AllowUnexported(Variant{})); diff != "" {
		t.Fatalf("clone differs (-orig +clone):\n%s", diff)
	}
	Set(&clone.Value, "dead")
	clone.Name = "Status"
	if orig.Raw() != any(100) {
		t.Errorf("original value changed to %v", orig.Raw())
	}
	if orig.Name != "Health" {
		t.Errorf("original name changed to %q", orig.Name)
	}
	if clone.ValueKind() != StringKind {
		t.Errorf("clone kind = %s", clone.ValueKind())
	}
}

func TestContainerRecord(t *testing.T) {
	c := FloatContainer("Speed", IntKind, 1.5)
	rec := c.Record()
	if rec.Name != "Speed" || rec.Kind != IntKind || rec.Value.Kind != FloatKind || rec.Value.Float != 1.5 {
		t.Errorf("record = %+v", rec)
	}
	back := FromContainerRecord(rec)
	if diff := cmp.Diff(c, back, cmp.AllowUnexported(Variant{})); diff != "" {
		t.Errorf("record round trip (-want +got):\n%s", diff)
	}
}
