package minipy

import (
	"errors"
	"io"
	"strings"
)

// Execute runs a program tree against a root closure and a context.
// The root node is typically a Compound produced by Parse; the root
// closure starts empty. A return executed outside any method body is
// a runtime fault.
func Execute(root Statement, closure Closure, ctx Context) (Value, error) {
	val, err := root.Execute(closure, ctx)
	if err != nil {
		var ret *returnSignal
		if errors.As(err, &ret) {
			return NewNone(), runtimeErrorf("return outside of a method body")
		}
		return NewNone(), err
	}
	return val, nil
}

// Program is a parsed source program ready to run.
type Program struct {
	body *Compound
}

// Parse lexes and parses a source program from r.
func Parse(r io.Reader) (*Program, error) {
	lx, err := NewLexer(r)
	if err != nil {
		return nil, err
	}
	body, err := newParser(lx).parseProgram()
	if err != nil {
		return nil, err
	}
	return &Program{body: body}, nil
}

// Compile parses a source program held in a string.
func Compile(src string) (*Program, error) {
	return Parse(strings.NewReader(src))
}

// Root returns the program's root node.
func (p *Program) Root() Statement { return p.body }

// Run executes the program in a fresh closure, writing print output
// to w.
func (p *Program) Run(w io.Writer) error {
	_, err := Execute(p.body, make(Closure), NewSimpleContext(w))
	return err
}
