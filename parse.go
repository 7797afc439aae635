package parslet

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/grobie/parslet/reader"
)

// Option configures a single Parse call.
type Option func(*parseOptions)

type parseOptions struct {
	warn WarnFunc
}

// WithWarnFunc routes non-fatal diagnostics (duplicate keys during
// mapping merges) to fn instead of stderr.
func WithWarnFunc(fn WarnFunc) Option {
	return func(o *parseOptions) {
		o.warn = fn
	}
}

func stderrWarn(msg string) {
	fmt.Fprintf(os.Stderr, "parslet: %s\n", msg)
}

// Parse matches root against the whole input and returns the
// flattened result tree: a string, a map[string]any, a []any, or nil.
// A failed match returns a *ParseError; programmer errors (undefined
// rules, unmergeable grammars) are returned as plain errors.
func Parse(root Atom, input string, opts ...Option) (any, error) {
	return parse(root, reader.New(input), opts)
}

// ParseReader drains r and parses its contents. Backtracking needs
// random access, so the stream is buffered in full.
func ParseReader(root Atom, r io.Reader, opts ...Option) (any, error) {
	rd, err := reader.FromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	return parse(root, rd, opts)
}

func parse(root Atom, rd *reader.Reader, opts []Option) (any, error) {
	options := parseOptions{warn: stderrWarn}
	for _, opt := range opts {
		opt(&options)
	}

	c := newContext(rd, options.warn)

	value, err := c.apply(root)
	if err != nil {
		if !errors.Is(err, ErrNoMatch) {
			return nil, err
		}

		perr := &ParseError{Message: err.Error(), Tree: root.errorTree(c)}

		var fe *failError
		if errors.As(err, &fe) {
			perr.Pos = rd.PositionAt(fe.pos)
		}

		return nil, perr
	}

	if !rd.EOF() {
		pos := rd.Pos()

		if cause := root.cause(c); cause != "" {
			return nil, &ParseError{
				Message: "Unconsumed input, maybe because of this: " + cause,
				Pos:     rd.PositionAt(pos),
				Tree:    root.errorTree(c),
			}
		}

		line, col := rd.LineColumn(pos)

		return nil, &ParseError{
			Message: fmt.Sprintf("Don't know what to do with %q at line %d char %d.", excerpt(rd.Rest()), line, col),
			Pos:     rd.PositionAt(pos),
		}
	}

	return flatten(value, c.warn)
}

// excerpt truncates the unconsumed input shown in driver errors.
func excerpt(rest string) string {
	runes := []rune(rest)
	if len(runes) > 100 {
		return string(runes[:100])
	}

	return rest
}
