package debug

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/yiroth/libvariant/variant"
)

var out io.Writer = os.Stderr

// Logf writes to stderr, rendering containers and documents as JSON.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case variant.Container, []variant.Container:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("[raw] %v", x)
				continue
			}
			args[i] = string(d)
		case variant.Variant:
			args[i] = x.String()
		default:
		}
	}
	fmt.Fprintf(out, msg, args...)
}
