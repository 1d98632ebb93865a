// Package variant provides a small tagged union of primitive values and a
// named wrapper around it.
//
// # Variants
//
// A Variant holds one value of one Kind:
//
//   - EmptyKind: no value
//   - IntKind: int
//   - FloatKind: float64
//   - BoolKind: bool
//   - StringKind: string
//   - Vector2Kind, Vector3Kind: Vector2 and Vector3
//
// The Variant keeps one slot per kind. Only the slot of the active kind is
// read by accessors; the other slots keep whatever they last held, which
// matters to serializers that persist every field (see Record).
//
// # Creating Variants
//
//	v := variant.FromInt(100)
//	w := variant.Of(variant.Vector2{X: 1, Y: 2})
//	x := variant.New(someAny) // Empty if someAny is nil or unsupported
//
// Set and SetAny overwrite the kind tag and the slot together:
//
//	variant.Set(&v, "hello")
//	err := v.SetAny(struct{}{}) // v is now Empty, err wraps ErrUnsupported
//
// # Reading Variants
//
// Raw returns the active slot as an any, or nil for Empty. The generic
// accessors take either a Variant or a Container:
//
//	n, err := variant.Get[int](v)      // converts, reports failures
//	n := variant.GetOrDefault[int](v)  // converts, zero value on failure
//	n, ok := variant.As[int](v)        // no conversion at all
//
// When the requested type is the native type of the active kind, the value
// is returned unchanged. Otherwise it is converted: numbers convert to each
// other (floats round half to even into integers), bools are 1 and 0, text
// is parsed with strconv, and vectors convert to each other and to and from
// their "(x, y)" text form. GetOrDefault cannot distinguish an Empty variant
// from a failed conversion; check Kind first where that matters.
//
// # Containers
//
// A Container pairs a Name and a declared Kind with a Variant. The declared
// kind is stored verbatim and may differ from the kind held; ValueKind is
// authoritative and KindMismatch reports the divergence.
//
// # Encoding
//
// Variant and Container implement json.Marshaler and the goccy/go-yaml
// marshaler interfaces, writing the kind name and the active slot only:
//
//	{"name":"Health","kind":"Int","value":{"kind":"Int","int":100}}
//
// Record and FromRecord expose every field for field-by-field persistence.
//
// # Thread Safety
//
// Variants and Containers are plain values and are not internally
// synchronized. Give each goroutine its own copy.
package variant
