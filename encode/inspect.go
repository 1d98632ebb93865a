package encode

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/yiroth/libvariant/variant"
)

// Inspect writes one line per container: name, declared kind and the value
// of the slot selected by the held kind. A container whose held kind
// differs from its declared kind is marked.
func Inspect(doc []variant.Container, w io.Writer, opts ...EncodeOption) error {
	es := newEncState(opts)
	nameW, kindW := 0, 0
	for i := range doc {
		nameW = max(nameW, utf8.RuneCountInString(doc[i].Name))
		kindW = max(kindW, len(doc[i].Kind.String()))
	}
	for i := range doc {
		if err := inspectOne(&doc[i], w, es, nameW, kindW); err != nil {
			return err
		}
	}
	return nil
}

func inspectOne(c *variant.Container, w io.Writer, es *EncState, nameW, kindW int) error {
	held := c.ValueKind()
	buf := &strings.Builder{}
	buf.WriteString(es.Color(held, NameColor, pad(c.Name, nameW)))
	buf.WriteString("  ")
	buf.WriteString(es.Color(c.Kind, KindColor, pad(c.Kind.String(), kindW)))
	buf.WriteString("  ")
	buf.WriteString(es.Color(held, ValueColor, ValueText(c.Value)))
	if c.KindMismatch() {
		buf.WriteString("  ")
		buf.WriteString(es.Color(held, MismatchColor, "(holds "+held.String()+")"))
	}
	buf.WriteByte('\n')
	if es.slots {
		buf.WriteString("    ")
		buf.WriteString(es.Color(held, SlotColor, slotsText(c.Value)))
		buf.WriteByte('\n')
	}
	_, err := io.WriteString(w, buf.String())
	return err
}

func pad(s string, n int) string {
	k := utf8.RuneCountInString(s)
	if k >= n {
		return s
	}
	return s + strings.Repeat(" ", n-k)
}

// ValueText renders the active slot of v as an inspector shows it. Empty
// variants render as "-".
func ValueText(v variant.Variant) string {
	switch x := v.Raw().(type) {
	case nil:
		return "-"
	case string:
		return strconv.Quote(x)
	default:
		return v.Text()
	}
}

func slotsText(v variant.Variant) string {
	r := v.Record()
	slots := []struct {
		kind variant.Kind
		name string
		val  string
	}{
		{variant.IntKind, "int", strconv.Itoa(r.Int)},
		{variant.FloatKind, "float", strconv.FormatFloat(r.Float, 'g', -1, 64)},
		{variant.BoolKind, "bool", strconv.FormatBool(r.Bool)},
		{variant.StringKind, "string", strconv.Quote(r.String)},
		{variant.Vector2Kind, "vector2", r.Vector2.String()},
		{variant.Vector3Kind, "vector3", r.Vector3.String()},
	}
	parts := make([]string, len(slots))
	for i, s := range slots {
		mark := ""
		if s.kind == r.Kind {
			mark = "*"
		}
		parts[i] = fmt.Sprintf("%s%s=%s", s.name, mark, s.val)
	}
	return strings.Join(parts, " ")
}
