package variant

// Record exposes every field of a Variant, including the slots that are
// not active, for serializers that persist values field by field.
type Record struct {
	Kind    Kind    `json:"kind" yaml:"kind"`
	Int     int     `json:"int" yaml:"int"`
	Float   float64 `json:"float" yaml:"float"`
	Bool    bool    `json:"bool" yaml:"bool"`
	String  string  `json:"string" yaml:"string"`
	Vector2 Vector2 `json:"vector2" yaml:"vector2"`
	Vector3 Vector3 `json:"vector3" yaml:"vector3"`
}

func (v Variant) Record() Record {
	return Record{
		Kind:    v.kind,
		Int:     v.i,
		Float:   v.f,
		Bool:    v.b,
		String:  v.s,
		Vector2: v.v2,
		Vector3: v.v3,
	}
}

// FromRecord restores a Variant exactly as recorded. The kind is taken
// verbatim, so a record may activate a slot that was written while another
// kind was active; this is how an editor retags a value in place.
func FromRecord(r Record) Variant {
	return Variant{
		kind: r.Kind,
		i:    r.Int,
		f:    r.Float,
		b:    r.Bool,
		s:    r.String,
		v2:   r.Vector2,
		v3:   r.Vector3,
	}
}

type ContainerRecord struct {
	Name  string `json:"name" yaml:"name"`
	Kind  Kind   `json:"kind" yaml:"kind"`
	Value Record `json:"value" yaml:"value"`
}

func (c Container) Record() ContainerRecord {
	return ContainerRecord{
		Name:  c.Name,
		Kind:  c.Kind,
		Value: c.Value.Record(),
	}
}

func FromContainerRecord(r ContainerRecord) Container {
	return Container{
		Name:  r.Name,
		Kind:  r.Kind,
		Value: FromRecord(r.Value),
	}
}
