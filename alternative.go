package parslet

import (
	"errors"
	"strings"
)

type alternative struct {
	alternatives []Atom
}

// Or returns an atom trying every child in order; the first success
// wins and its value is returned untagged. PEG choice is ordered, so
// later children are only attempted after earlier ones failed.
func Or(atoms ...Atom) Atom {
	return &alternative{alternatives: atoms}
}

func (a *alternative) match(c *context) (any, error) {
	pos := c.reader.Pos()

	for _, p := range a.alternatives {
		value, err := c.apply(p)
		if err == nil {
			return value, nil
		}

		if !errors.Is(err, ErrNoMatch) {
			return nil, err
		}
	}

	return nil, c.fail(a, pos, "Expected one of %s", a.list())
}

func (a *alternative) list() string {
	parts := make([]string, len(a.alternatives))
	for i, p := range a.alternatives {
		parts[i] = p.String()
	}

	return "[" + strings.Join(parts, ", ") + "]"
}

func (a *alternative) cause(c *context) string {
	return c.causes[a]
}

func (a *alternative) errorTree(c *context) *Cause {
	node := &Cause{Message: c.causes[a]}

	for _, p := range a.alternatives {
		if p.cause(c) != "" {
			node.Children = append(node.Children, p.errorTree(c))
		}
	}

	return node
}

func (a *alternative) String() string {
	parts := make([]string, len(a.alternatives))
	for i, p := range a.alternatives {
		parts[i] = render(p, precAlternative)
	}

	return strings.Join(parts, " / ")
}

func (a *alternative) prec() int {
	return precAlternative
}
