// Package eval evaluates expressions over a document of containers using
// github.com/expr-lang/expr.
//
// Each container is visible by name and evaluates to the raw value it
// holds. When a name occurs more than once, the first container wins.
// Vector components are reached as fields, e.g. Pos.X. The helpers
// kind(name), declared(name) and has(name) look up containers of the
// document being evaluated, and vec2/vec3 build vectors.
package eval

import (
	"errors"
	"fmt"

	"github.com/yiroth/libvariant/debug"
	"github.com/yiroth/libvariant/variant"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

var ErrNoContainer = errors.New("no such container")

// Env is the expression environment of a document. Besides the
// containers it holds the helpers kind, declared and has, which answer
// for that same document and shadow containers of the same name.
type Env = map[string]any

// NewEnv returns the environment for doc.
func NewEnv(doc []variant.Container) Env {
	env := make(Env, len(doc)+3)
	for i := range doc {
		c := &doc[i]
		if _, ok := env[c.Name]; ok {
			continue
		}
		env[c.Name] = c.Raw()
	}
	env["kind"] = func(name string) (string, error) {
		c, err := find(doc, name)
		if err != nil {
			return "", err
		}
		return c.ValueKind().String(), nil
	}
	env["declared"] = func(name string) (string, error) {
		c, err := find(doc, name)
		if err != nil {
			return "", err
		}
		return c.Kind.String(), nil
	}
	env["has"] = func(name string) bool {
		_, err := find(doc, name)
		return err == nil
	}
	return env
}

func find(doc []variant.Container, name string) (*variant.Container, error) {
	for i := range doc {
		if doc[i].Name == name {
			return &doc[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrNoContainer, name)
}

func exprOpts(env Env) []expr.Option {
	return []expr.Option{
		expr.Env(env),
		expr.Function("vec2", func(params ...any) (any, error) {
			return variant.Vector2{X: num(params[0]), Y: num(params[1])}, nil
		},
			new(func(float64, float64) variant.Vector2)),
		expr.Function("vec3", func(params ...any) (any, error) {
			return variant.Vector3{X: num(params[0]), Y: num(params[1]), Z: num(params[2])}, nil
		},
			new(func(float64, float64, float64) variant.Vector3)),
	}
}

func num(x any) float64 {
	return variant.GetOrDefault[float64](variant.New(x))
}

// Program is an expression compiled against the shape of a document.
type Program struct {
	src string
	prg *vm.Program
}

// Compile compiles input for evaluation over doc. Names that are not
// containers in doc are compile errors. The program may be run over other
// documents holding the same names.
func Compile(doc []variant.Container, input string) (*Program, error) {
	prg, err := expr.Compile(input, exprOpts(NewEnv(doc))...)
	if err != nil {
		return nil, err
	}
	return &Program{src: input, prg: prg}, nil
}

// Run runs p over doc and returns the result as a Variant. Results that
// are not one of the native kinds give an error wrapping
// variant.ErrUnsupported.
func (p *Program) Run(doc []variant.Container) (variant.Variant, error) {
	out, err := expr.Run(p.prg, NewEnv(doc))
	if err != nil {
		return variant.Variant{}, err
	}
	if debug.Eval() {
		debug.Logf("eval %q -> %v (%T)\n", p.src, out, out)
	}
	v, err := variant.NewStrict(out)
	if err != nil {
		return variant.Variant{}, fmt.Errorf("result of %q: %w", p.src, err)
	}
	return v, nil
}

func (p *Program) String() string {
	return p.src
}

// Eval compiles and runs input over doc.
func Eval(doc []variant.Container, input string) (variant.Variant, error) {
	p, err := Compile(doc, input)
	if err != nil {
		return variant.Variant{}, err
	}
	return p.Run(doc)
}

// Assign evaluates input over doc and stores the result in the first
// container named name. The declared kind is left as is.
func Assign(doc []variant.Container, name, input string) error {
	c, err := find(doc, name)
	if err != nil {
		return err
	}
	v, err := Eval(doc, input)
	if err != nil {
		return err
	}
	c.Value = v
	return nil
}
