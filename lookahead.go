package parslet

import "errors"

type lookahead struct {
	bound    Atom
	positive bool
}

// Present returns an atom asserting that the child matches at the
// current position. It never consumes input and contributes nothing to
// the result tree.
func Present(a Atom) Atom {
	return &lookahead{bound: a, positive: true}
}

// Absent returns an atom asserting that the child does not match at
// the current position, without consuming input.
func Absent(a Atom) Atom {
	return &lookahead{bound: a, positive: false}
}

func (l *lookahead) match(c *context) (any, error) {
	pos := c.reader.Pos()

	_, err := c.apply(l.bound)

	// Restore unconditionally: lookahead does not consume even on
	// success.
	c.reader.Seek(pos)

	if err != nil && !errors.Is(err, ErrNoMatch) {
		return nil, err
	}

	matched := err == nil

	if l.positive {
		if matched {
			return nil, nil
		}

		return nil, c.fail(l, pos, "Input should start with %s", render(l.bound, precAtom))
	}

	if matched {
		return nil, c.fail(l, pos, "Input should not start with %s", render(l.bound, precAtom))
	}

	return nil, nil
}

func (l *lookahead) cause(c *context) string {
	return c.causes[l]
}

func (l *lookahead) errorTree(c *context) *Cause {
	return &Cause{Message: c.causes[l]}
}

func (l *lookahead) String() string {
	if l.positive {
		return "&" + render(l.bound, precAtom)
	}

	return "!" + render(l.bound, precAtom)
}

func (l *lookahead) prec() int {
	return precAtom
}
