package parslet

import (
	"fmt"
	"io"
)

// Grammar is a set of named productions with a designated root. Rules
// may reference each other (and themselves) through Ref; bodies are
// built lazily on first use, so declaration order does not matter.
type Grammar struct {
	rules map[string]*Entity
	root  *Entity
}

// NewGrammar returns an empty rule set.
func NewGrammar() *Grammar {
	return &Grammar{rules: make(map[string]*Entity)}
}

// Rule registers a production under name. The body function runs once,
// on the rule's first use during a parse.
func (g *Grammar) Rule(name string, body func() Atom) *Entity {
	e := g.Ref(name)
	e.maker = body

	return e
}

// Ref returns the entity registered under name, creating a forward
// reference if the rule is not defined yet. Parsing through a forward
// reference that never got a definition fails with ErrUndefinedRule.
func (g *Grammar) Ref(name string) *Entity {
	if e, ok := g.rules[name]; ok {
		return e
	}

	e := &Entity{name: name}
	g.rules[name] = e

	return e
}

// Root designates the start rule.
func (g *Grammar) Root(name string) *Grammar {
	g.root = g.Ref(name)

	return g
}

// MustRoot returns the grammar's root atom, panicking when no root
// rule was designated. It is meant for wiring grammars into static
// tables.
func (g *Grammar) MustRoot() Atom {
	if g.root == nil {
		panic("parslet: grammar has no root rule")
	}

	return g.root
}

// Parse matches the grammar's root rule against the whole input.
func (g *Grammar) Parse(input string, opts ...Option) (any, error) {
	if g.root == nil {
		return nil, fmt.Errorf("%w: grammar has no root rule", ErrUndefinedRule)
	}

	return Parse(g.root, input, opts...)
}

// MustParse is Parse for inputs known to be good; it panics on any
// parse failure.
func (g *Grammar) MustParse(input string, opts ...Option) any {
	tree, err := g.Parse(input, opts...)
	if err != nil {
		panic(err)
	}

	return tree
}

// ParseReader matches the grammar's root rule against the stream.
func (g *Grammar) ParseReader(r io.Reader, opts ...Option) (any, error) {
	if g.root == nil {
		return nil, fmt.Errorf("%w: grammar has no root rule", ErrUndefinedRule)
	}

	return ParseReader(g.root, r, opts...)
}
