package variant

import "fmt"

// Kind tags the active payload slot of a Variant. The numeric values are
// persisted by host serializers and must keep their order.
type Kind int

const (
	EmptyKind Kind = iota
	IntKind
	FloatKind
	BoolKind
	StringKind
	Vector2Kind
	Vector3Kind
)

var kindNames = map[Kind]string{
	EmptyKind:   "Empty",
	IntKind:     "Int",
	FloatKind:   "Float",
	BoolKind:    "Bool",
	StringKind:  "String",
	Vector2Kind: "Vector2",
	Vector3Kind: "Vector3",
}

func (k Kind) String() string {
	s, ok := kindNames[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	s, ok := kindNames[k]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrBadKind, int(k))
	}
	return []byte(s), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, err := ParseKind(string(d))
	if err != nil {
		return err
	}
	*k = kk
	return nil
}

// ParseKind maps a kind name back to its Kind.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if name == s {
			return k, nil
		}
	}
	return EmptyKind, fmt.Errorf("%w: %q", ErrBadKind, s)
}

func Kinds() []Kind {
	return []Kind{
		EmptyKind,
		IntKind,
		FloatKind,
		BoolKind,
		StringKind,
		Vector2Kind,
		Vector3Kind,
	}
}

func (k Kind) IsVector() bool {
	return k == Vector2Kind || k == Vector3Kind
}

func (k Kind) valid() bool {
	_, ok := kindNames[k]
	return ok
}
