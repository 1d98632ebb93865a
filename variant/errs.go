package variant

import "errors"

var (
	// ErrEmpty is returned when a value is requested from an Empty variant.
	ErrEmpty = errors.New("empty variant")
	// ErrUnsupported is returned for input whose Go type has no kind.
	ErrUnsupported = errors.New("unsupported value type")
	// ErrConvert is returned when the stored value is not representable
	// as the requested type.
	ErrConvert = errors.New("conversion error")
	ErrBadKind = errors.New("bad kind")
)
