// Package libdiff computes and applies differences between two documents
// of containers.
//
// Containers are matched by name; when a name occurs more than once, the
// n-th occurrence in one document is matched with the n-th occurrence in
// the other.
package libdiff

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/yiroth/libvariant/debug"
	"github.com/yiroth/libvariant/encode"
	"github.com/yiroth/libvariant/variant"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

var ErrConflict = errors.New("diff does not apply")

type Op int

const (
	Changed Op = iota
	Added
	Removed
)

func (o Op) String() string {
	switch o {
	case Added:
		return "+"
	case Removed:
		return "-"
	default:
		return "~"
	}
}

// Change describes one container that differs. From is nil for Added and
// To is nil for Removed.
type Change struct {
	Name string
	// Nth is the occurrence of Name this change applies to.
	Nth  int
	Op   Op
	From *variant.Container
	To   *variant.Container
	// Text holds a character diff when both values are strings.
	Text []diffpatch.Diff
}

func (c *Change) KindChanged() bool {
	return c.Op == Changed && c.From.Kind != c.To.Kind
}

func (c *Change) ValueChanged() bool {
	return c.Op == Changed && !SameValue(c.From.Value, c.To.Value)
}

type Delta struct {
	Changes []Change
}

type key struct {
	name string
	nth  int
}

func keys(doc []variant.Container) []key {
	seen := map[string]int{}
	res := make([]key, len(doc))
	for i := range doc {
		n := doc[i].Name
		res[i] = key{name: n, nth: seen[n]}
		seen[n]++
	}
	return res
}

// Diff returns the changes turning from into to, or nil if there are none.
func Diff(from, to []variant.Container) *Delta {
	fromKeys := keys(from)
	toKeys := keys(to)
	toIndex := make(map[key]int, len(to))
	for i, k := range toKeys {
		toIndex[k] = i
	}
	matched := make(map[key]bool, len(from))
	res := &Delta{}
	for i, k := range fromKeys {
		f := from[i]
		j, ok := toIndex[k]
		if !ok {
			res.Changes = append(res.Changes, Change{Name: k.name, Nth: k.nth, Op: Removed, From: &f})
			continue
		}
		matched[k] = true
		t := to[j]
		if f.Kind == t.Kind && SameValue(f.Value, t.Value) {
			continue
		}
		res.Changes = append(res.Changes, Change{
			Name: k.name,
			Nth:  k.nth,
			Op:   Changed,
			From: &f,
			To:   &t,
			Text: textDiff(f.Value, t.Value),
		})
	}
	for j, k := range toKeys {
		if matched[k] {
			continue
		}
		t := to[j]
		res.Changes = append(res.Changes, Change{Name: k.name, Nth: k.nth, Op: Added, To: &t})
	}
	if len(res.Changes) == 0 {
		return nil
	}
	if debug.Diff() {
		debug.Logf("diff: %d changes\n", len(res.Changes))
	}
	return res
}

// SameValue reports whether two variants hold the same kind and value.
// NaN floats are the same as each other.
func SameValue(a, b variant.Variant) bool {
	if a.Kind() != b.Kind() {
		return false
	}
	if a.Kind() == variant.FloatKind {
		fa, fb := a.Float(), b.Float()
		if math.IsNaN(fa) && math.IsNaN(fb) {
			return true
		}
	}
	return a.Raw() == b.Raw()
}

func textDiff(a, b variant.Variant) []diffpatch.Diff {
	sa, ok := variant.As[string](a)
	if !ok {
		return nil
	}
	sb, ok := variant.As[string](b)
	if !ok {
		return nil
	}
	dmp := diffpatch.New()
	diffs := dmp.DiffMain(sa, sb, strings.Contains(sa, "\n") && strings.Contains(sb, "\n"))
	return dmp.DiffCleanupSemantic(diffs)
}

// Reverse returns the delta turning to back into from.
func (d *Delta) Reverse() *Delta {
	if d == nil {
		return nil
	}
	res := &Delta{Changes: make([]Change, len(d.Changes))}
	for i, c := range d.Changes {
		rc := Change{Name: c.Name, Nth: c.Nth, From: c.To, To: c.From}
		switch c.Op {
		case Added:
			rc.Op = Removed
		case Removed:
			rc.Op = Added
		default:
			rc.Op = Changed
		}
		if c.Text != nil {
			rc.Text = make([]diffpatch.Diff, len(c.Text))
			for j, td := range c.Text {
				switch td.Type {
				case diffpatch.DiffInsert:
					td.Type = diffpatch.DiffDelete
				case diffpatch.DiffDelete:
					td.Type = diffpatch.DiffInsert
				}
				rc.Text[j] = td
			}
		}
		res.Changes[i] = rc
	}
	return res
}

// Apply applies d to doc, returning a new document. Each changed or
// removed container must still hold the diff's From value.
func Apply(doc []variant.Container, d *Delta) ([]variant.Container, error) {
	res := make([]variant.Container, len(doc))
	for i := range doc {
		res[i] = doc[i].Clone()
	}
	if d == nil {
		return res, nil
	}
	index := map[key]int{}
	for i, k := range keys(res) {
		index[k] = i
	}
	removed := map[int]bool{}
	var added []variant.Container
	for i := range d.Changes {
		c := &d.Changes[i]
		k := key{name: c.Name, nth: c.Nth}
		j, ok := index[k]
		switch c.Op {
		case Added:
			if ok {
				return nil, fmt.Errorf("%w: %s already present", ErrConflict, c)
			}
			added = append(added, c.To.Clone())
			continue
		default:
			if !ok {
				return nil, fmt.Errorf("%w: %s not found", ErrConflict, c)
			}
		}
		cur := res[j]
		if cur.Kind != c.From.Kind || !SameValue(cur.Value, c.From.Value) {
			return nil, fmt.Errorf("%w: %s: found %s %s", ErrConflict, c, cur.Kind, cur.Value)
		}
		if c.Op == Removed {
			removed[j] = true
			continue
		}
		res[j] = c.To.Clone()
	}
	out := make([]variant.Container, 0, len(res)+len(added))
	for i := range res {
		if removed[i] {
			continue
		}
		out = append(out, res[i])
	}
	return append(out, added...), nil
}

func (c *Change) String() string {
	name := c.Name
	if c.Nth > 0 {
		name = fmt.Sprintf("%s[%d]", c.Name, c.Nth)
	}
	switch c.Op {
	case Added:
		return fmt.Sprintf("+ %s: %s", name, valueLabel(c.To.Value))
	case Removed:
		return fmt.Sprintf("- %s: %s", name, valueLabel(c.From.Value))
	}
	head := "~ " + name
	if c.KindChanged() {
		head += fmt.Sprintf(" (%s -> %s)", c.From.Kind, c.To.Kind)
	}
	if !c.ValueChanged() {
		return head
	}
	if c.Text != nil {
		return head + ": " + inlineText(c.Text)
	}
	from, to := c.From.Value, c.To.Value
	if from.Kind() == to.Kind() {
		return fmt.Sprintf("%s: %s %s -> %s", head, from.Kind(), encode.ValueText(from), encode.ValueText(to))
	}
	return fmt.Sprintf("%s: %s -> %s", head, valueLabel(from), valueLabel(to))
}

func valueLabel(v variant.Variant) string {
	return v.Kind().String() + " " + encode.ValueText(v)
}

func inlineText(diffs []diffpatch.Diff) string {
	buf := &strings.Builder{}
	buf.WriteByte('"')
	for _, d := range diffs {
		switch d.Type {
		case diffpatch.DiffEqual:
			buf.WriteString(d.Text)
		case diffpatch.DiffDelete:
			buf.WriteString("[-" + d.Text + "-]")
		case diffpatch.DiffInsert:
			buf.WriteString("{+" + d.Text + "+}")
		}
	}
	buf.WriteByte('"')
	return buf.String()
}

func (d *Delta) String() string {
	if d == nil {
		return ""
	}
	buf := &strings.Builder{}
	for i := range d.Changes {
		buf.WriteString(d.Changes[i].String())
		buf.WriteByte('\n')
	}
	return buf.String()
}
