package variant

import (
	"fmt"
	"strconv"
	"strings"
)

// Vector2 is the payload of a Vector2Kind variant.
type Vector2 struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Vector3 is the payload of a Vector3Kind variant.
type Vector3 struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	Z float64 `json:"z" yaml:"z"`
}

func (v Vector2) String() string {
	return "(" + formatFloat(v.X) + ", " + formatFloat(v.Y) + ")"
}

func (v Vector3) String() string {
	return "(" + formatFloat(v.X) + ", " + formatFloat(v.Y) + ", " + formatFloat(v.Z) + ")"
}

// Vector3 widens v with a zero Z.
func (v Vector2) Vector3() Vector3 {
	return Vector3{X: v.X, Y: v.Y}
}

// Vector2 drops Z.
func (v Vector3) Vector2() Vector2 {
	return Vector2{X: v.X, Y: v.Y}
}

// ParseVector2 parses the "(x, y)" form produced by Vector2.String.
// The parentheses are optional.
func ParseVector2(s string) (Vector2, error) {
	cs, err := parseComponents(s, 2)
	if err != nil {
		return Vector2{}, err
	}
	return Vector2{X: cs[0], Y: cs[1]}, nil
}

// ParseVector3 parses the "(x, y, z)" form produced by Vector3.String.
func ParseVector3(s string) (Vector3, error) {
	cs, err := parseComponents(s, 3)
	if err != nil {
		return Vector3{}, err
	}
	return Vector3{X: cs[0], Y: cs[1], Z: cs[2]}, nil
}

func parseComponents(s string, n int) ([]float64, error) {
	t := strings.TrimSpace(s)
	if strings.HasPrefix(t, "(") {
		if !strings.HasSuffix(t, ")") {
			return nil, fmt.Errorf("%w: unbalanced parentheses in %q", ErrConvert, s)
		}
		t = t[1 : len(t)-1]
	}
	parts := strings.Split(t, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("%w: %q has %d components, want %d", ErrConvert, s, len(parts), n)
	}
	res := make([]float64, n)
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: component %d of %q: %w", ErrConvert, i, s, err)
		}
		res[i] = f
	}
	return res, nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
