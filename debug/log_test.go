package debug

import (
	"bytes"
	"strings"
	"testing"

	"github.com/yiroth/libvariant/variant"
)

func TestLogf(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	old := out
	out = buf
	defer func() { out = old }()

	Logf("%s %s\n", variant.FromInt(3), variant.IntContainer("Health", variant.IntKind, 100))
	got := buf.String()
	if !strings.HasPrefix(got, "Int(3) {") {
		t.Errorf("unexpected prefix: %q", got)
	}
	if !strings.Contains(got, `"name": "Health"`) {
		t.Errorf("container not rendered as JSON: %q", got)
	}
}
