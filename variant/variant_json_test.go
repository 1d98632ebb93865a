package variant

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/google/go-cmp/cmp"
)

func TestMarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"empty", Variant{}, `{"kind":"Empty"}`},
		{"int", FromInt(100), `{"kind":"Int","int":100}`},
		{"zero int", FromInt(0), `{"kind":"Int","int":0}`},
		{"false", FromBool(false), `{"kind":"Bool","bool":false}`},
		{"string", FromString(""), `{"kind":"String","string":""}`},
		{"vector2", FromVector2(Vector2{X: 1, Y: 2}), `{"kind":"Vector2","vector2":{"x":1,"y":2}}`},
		{"container", IntContainer("Health", IntKind, 100),
			`{"name":"Health","kind":"Int","value":{"kind":"Int","int":100}}`},
		{"diverging container", FloatContainer("Speed", IntKind, 0.5),
			`{"name":"Speed","kind":"Int","value":{"kind":"Float","float":0.5}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := json.Marshal(tt.in)
			if err != nil {
				t.Fatal(err)
			}
			if string(d) != tt.want {
				t.Errorf("got %s, want %s", d, tt.want)
			}
		})
	}
}

func TestMarshalJSONDropsInactiveSlots(t *testing.T) {
	v := FromInt(5)
	Set(&v, "five")
	d, err := json.Marshal(v)
	if err != nil {
		t.Fatal(err)
	}
	if string(d) != `{"kind":"String","string":"five"}` {
		t.Errorf("got %s", d)
	}
}

func TestUnmarshalJSON(t *testing.T) {
	var c Container
	err := json.Unmarshal([]byte(`{"name":"Pos","value":{"kind":"Vector3","vector3":{"x":1,"y":2,"z":3}}}`), &c)
	if err != nil {
		t.Fatal(err)
	}
	want := Vector3Container("Pos", Vector3Kind, Vector3{X: 1, Y: 2, Z: 3})
	if diff := cmp.Diff(want, c, cmp.AllowUnexported(Variant{})); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}

	var v Variant
	if err := json.Unmarshal([]byte(`{"kind":"Int"}`), &v); err != nil {
		t.Fatal(err)
	}
	if v.Kind() != IntKind || v.Raw() != any(0) {
		t.Errorf("missing slot: got %s", v)
	}
	if err := json.Unmarshal([]byte(`{}`), &v); err != nil {
		t.Fatal(err)
	}
	if v.Kind() != EmptyKind {
		t.Errorf("missing kind: got %s", v)
	}
	err = json.Unmarshal([]byte(`{"kind":"Decimal"}`), &v)
	if !errors.Is(err, ErrBadKind) {
		t.Errorf("got %v, want ErrBadKind", err)
	}
}

func TestYAML(t *testing.T) {
	in := `
- name: Speed
  kind: Float
  value:
    kind: Float
    float: 2.5
- name: Pos
  value:
    kind: Vector2
    vector2:
      x: 1.5
      y: -0.5
- name: Label
  kind: Int
  value:
    kind: String
    string: hello
`
	var got []Container
	if err := yaml.Unmarshal([]byte(in), &got); err != nil {
		t.Fatal(err)
	}
	want := []Container{
		FloatContainer("Speed", FloatKind, 2.5),
		Vector2Container("Pos", Vector2Kind, Vector2{X: 1.5, Y: -0.5}),
		StringContainer("Label", IntKind, "hello"),
	}
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(Variant{})); diff != "" {
		t.Fatalf("decode (-want +got):\n%s", diff)
	}

	d, err := yaml.Marshal(got)
	if err != nil {
		t.Fatal(err)
	}
	var again []Container
	if err := yaml.Unmarshal(d, &again); err != nil {
		t.Fatalf("decoding %s: %v", d, err)
	}
	if diff := cmp.Diff(want, again, cmp.AllowUnexported(Variant{})); diff != "" {
		t.Errorf("re-decode (-want +got):\n%s", diff)
	}
}

func TestJSONNonFinite(t *testing.T) {
	tests := []struct {
		name string
		f    float64
		want string
	}{
		{"nan", math.NaN(), `{"kind":"Float","float":"NaN"}`},
		{"inf", math.Inf(1), `{"kind":"Float","float":"+Inf"}`},
		{"-inf", math.Inf(-1), `{"kind":"Float","float":"-Inf"}`},
		{"finite", -0.25, `{"kind":"Float","float":-0.25}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := json.Marshal(FromFloat(tt.f))
			if err != nil {
				t.Fatal(err)
			}
			if string(d) != tt.want {
				t.Fatalf("got %s, want %s", d, tt.want)
			}
			var v Variant
			if err := json.Unmarshal(d, &v); err != nil {
				t.Fatal(err)
			}
			got := v.Float()
			if v.Kind() != FloatKind || !(got == tt.f || math.IsNaN(got) && math.IsNaN(tt.f)) {
				t.Errorf("decoded %s, want %v", v, tt.f)
			}
			var y Variant
			if err := yaml.Unmarshal(d, &y); err != nil {
				t.Fatalf("yaml decoding %s: %v", d, err)
			}
			got = y.Float()
			if y.Kind() != FloatKind || !(got == tt.f || math.IsNaN(got) && math.IsNaN(tt.f)) {
				t.Errorf("yaml decoded %s, want %v", y, tt.f)
			}
		})
	}
	var v Variant
	if err := json.Unmarshal([]byte(`{"kind":"Float","float":"twelve"}`), &v); !errors.Is(err, ErrConvert) {
		t.Errorf("got %v, want ErrConvert", err)
	}
}
