package parslet

import (
	"errors"
	"strings"
)

type sequence struct {
	parslets []Atom
}

// Seq returns an atom matching every child in order. The value of a
// sequence is the merge of its children's values; interleaved plain
// strings concatenate, named captures merge into one mapping.
func Seq(atoms ...Atom) Atom {
	return &sequence{parslets: atoms}
}

func (s *sequence) match(c *context) (any, error) {
	pos := c.reader.Pos()
	items := make([]any, 0, len(s.parslets))

	for _, p := range s.parslets {
		c.offending[s] = p

		value, err := c.apply(p)
		if err != nil {
			if !errors.Is(err, ErrNoMatch) {
				return nil, err
			}

			c.reader.Seek(pos)

			return nil, c.fail(s, pos, "Failed to match sequence (%s)", s)
		}

		items = append(items, value)
	}

	return &tagged{tag: tagSequence, items: items}, nil
}

func (s *sequence) cause(c *context) string {
	return c.causes[s]
}

func (s *sequence) errorTree(c *context) *Cause {
	node := &Cause{Message: c.causes[s]}

	if child, ok := c.offending[s]; ok && child.cause(c) != "" {
		node.Children = append(node.Children, child.errorTree(c))
	}

	return node
}

func (s *sequence) String() string {
	parts := make([]string, len(s.parslets))
	for i, p := range s.parslets {
		parts[i] = render(p, precSequence)
	}

	return strings.Join(parts, " ")
}

func (s *sequence) prec() int {
	return precSequence
}
