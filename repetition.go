package parslet

import (
	"errors"
	"fmt"
)

// Unbounded marks a repetition without an upper bound.
const Unbounded = -1

type repetition struct {
	parslet Atom
	min     int
	max     int // Unbounded when negative
	tag     tag
}

// Repeat returns an atom matching the child between min and max times.
// Pass Unbounded as max for no upper bound.
func Repeat(a Atom, min, max int) Atom {
	return &repetition{parslet: a, min: min, max: max, tag: tagRepetition}
}

// ZeroOrMore matches the child any number of times, including none.
func ZeroOrMore(a Atom) Atom {
	return Repeat(a, 0, Unbounded)
}

// OneOrMore matches the child at least once.
func OneOrMore(a Atom) Atom {
	return Repeat(a, 1, Unbounded)
}

// Times matches the child exactly n times.
func Times(a Atom, n int) Atom {
	return Repeat(a, n, n)
}

// Maybe matches the child zero or one time. An absent match flattens
// to nil instead of an empty collection.
func Maybe(a Atom) Atom {
	return &repetition{parslet: a, min: 0, max: 1, tag: tagMaybe}
}

func (r *repetition) match(c *context) (any, error) {
	pos := c.reader.Pos()
	items := []any{}
	occ := 0

	for r.max < 0 || occ < r.max {
		before := c.reader.Pos()

		value, err := c.apply(r.parslet)
		if err != nil {
			if !errors.Is(err, ErrNoMatch) {
				return nil, err
			}

			break
		}

		items = append(items, value)
		occ++

		// A child that consumes nothing would loop forever.
		if c.reader.Pos() == before {
			break
		}
	}

	if occ < r.min {
		return nil, c.fail(r, pos, "Expected at least %d of %s", r.min, render(r.parslet, precAtom))
	}

	return &tagged{tag: r.tag, items: items}, nil
}

// cause falls back to the child's cause: when a repetition gives up,
// the child's failure is usually the real culprit.
func (r *repetition) cause(c *context) string {
	if own := c.causes[r]; own != "" {
		return own
	}

	return r.parslet.cause(c)
}

func (r *repetition) errorTree(c *context) *Cause {
	if own := c.causes[r]; own != "" {
		node := &Cause{Message: own}
		if r.parslet.cause(c) != "" {
			node.Children = append(node.Children, r.parslet.errorTree(c))
		}

		return node
	}

	return r.parslet.errorTree(c)
}

func (r *repetition) String() string {
	child := render(r.parslet, precAtom)
	if r.tag == tagMaybe {
		return child + "?"
	}

	if r.max < 0 {
		return fmt.Sprintf("%s{%d, }", child, r.min)
	}

	return fmt.Sprintf("%s{%d, %d}", child, r.min, r.max)
}

func (r *repetition) prec() int {
	return precAtom
}
