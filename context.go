package parslet

import (
	"fmt"

	"github.com/grobie/parslet/reader"
)

// WarnFunc receives non-fatal diagnostics emitted during a parse, such
// as duplicate keys met while merging mappings.
type WarnFunc func(msg string)

// context carries the mutable state of a single Parse call: the input
// reader, the failure cause recorded per atom, and the child a
// sequence was attempting when it failed. Atoms themselves stay
// immutable, so one grammar can serve concurrent parses.
type context struct {
	reader    *reader.Reader
	causes    map[Atom]string
	offending map[Atom]Atom
	warn      WarnFunc
}

func newContext(r *reader.Reader, warn WarnFunc) *context {
	return &context{
		reader:    r,
		causes:    make(map[Atom]string),
		offending: make(map[Atom]Atom),
		warn:      warn,
	}
}

// apply implements the universal try-and-restore discipline: remember
// the entry position, dispatch to the atom's matcher, and on failure
// put the reader back where it was. A successful apply clears the
// atom's recorded cause.
func (c *context) apply(a Atom) (any, error) {
	old := c.reader.Pos()

	value, err := a.match(c)
	if err != nil {
		c.reader.Seek(old)
		return nil, err
	}

	delete(c.causes, a)

	return value, nil
}

// fail records a formatted cause on the atom and returns the match
// failure that carries it. The position text is computed from pos, not
// from the current reader position, so callers report the offset they
// observed on entry.
func (c *context) fail(a Atom, pos int, format string, args ...any) error {
	line, col := c.reader.LineColumn(pos)
	msg := fmt.Sprintf(format, args...) + fmt.Sprintf(" at line %d char %d.", line, col)
	c.causes[a] = msg

	return &failError{atom: a, msg: msg, pos: pos}
}
