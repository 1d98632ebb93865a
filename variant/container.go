package variant

// Container pairs a display name and a declared kind with one Variant.
//
// Kind is stored as given and is not checked against Value. Use ValueKind
// when the kind actually held is needed.
type Container struct {
	Name  string
	Kind  Kind
	Value Variant
}

func (c Container) held() Variant { return c.Value }

func NewContainer(name string, kind Kind, value Variant) Container {
	return Container{Name: name, Kind: kind, Value: value}
}

// ContainerOf builds the value from x; its kind follows T, whatever kind
// is declared.
func ContainerOf[T Native](name string, kind Kind, x T) Container {
	return Container{Name: name, Kind: kind, Value: Of(x)}
}

func IntContainer(name string, kind Kind, i int) Container {
	return ContainerOf(name, kind, i)
}

func FloatContainer(name string, kind Kind, f float64) Container {
	return ContainerOf(name, kind, f)
}

func BoolContainer(name string, kind Kind, b bool) Container {
	return ContainerOf(name, kind, b)
}

func StringContainer(name string, kind Kind, s string) Container {
	return ContainerOf(name, kind, s)
}

func Vector2Container(name string, kind Kind, v Vector2) Container {
	return ContainerOf(name, kind, v)
}

func Vector3Container(name string, kind Kind, v Vector3) Container {
	return ContainerOf(name, kind, v)
}

// Raw returns Value.Raw().
func (c Container) Raw() any {
	return c.Value.Raw()
}

// ValueKind returns the kind held by Value.
func (c Container) ValueKind() Kind {
	return c.Value.Kind()
}

// KindMismatch reports whether the declared kind differs from the held one.
func (c Container) KindMismatch() bool {
	return c.Kind != c.Value.Kind()
}

func (c Container) Clone() Container {
	return Container{
		Name:  c.Name,
		Kind:  c.Kind,
		Value: c.Value,
	}
}
