// Package reader provides the character window the parser consumes.
package reader

import (
	"io"
	"strings"
)

// Position is a location inside the input.
type Position struct {
	Line   int // 1-based
	Column int // 1-based, counted in runes
	Offset int // 0-based rune offset
}

// Reader is a random-access rune window over a finite input with a
// mutable position. It has no failure modes; reads past the end return
// short results.
type Reader struct {
	input []rune
	pos   int
}

// New wraps input in a Reader positioned at offset 0.
func New(input string) *Reader {
	return &Reader{input: []rune(input)}
}

// FromReader drains r and wraps the result. It is the stream adapter
// for ParseReader; the whole input is buffered because backtracking
// may seek to any earlier offset.
func FromReader(r io.Reader) (*Reader, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	return New(string(data)), nil
}

// Read returns up to n runes starting at the current position and
// advances by the number of runes actually returned. At the end of
// input the result is short, possibly empty.
func (r *Reader) Read(n int) string {
	if r.pos >= len(r.input) {
		return ""
	}

	end := r.pos + n
	if end > len(r.input) {
		end = len(r.input)
	}

	s := string(r.input[r.pos:end])
	r.pos = end

	return s
}

// Pos returns the current rune offset.
func (r *Reader) Pos() int {
	return r.pos
}

// Seek moves the position to offset p. Offsets are clamped to the
// valid range [0, len(input)].
func (r *Reader) Seek(p int) {
	if p < 0 {
		p = 0
	}
	if p > len(r.input) {
		p = len(r.input)
	}
	r.pos = p
}

// EOF reports whether the position has reached the end of input.
func (r *Reader) EOF() bool {
	return r.pos >= len(r.input)
}

// Len returns the total input length in runes.
func (r *Reader) Len() int {
	return len(r.input)
}

// Prefix returns the input up to (not including) offset p. It is used
// for line/column reporting.
func (r *Reader) Prefix(p int) string {
	if p < 0 {
		p = 0
	}
	if p > len(r.input) {
		p = len(r.input)
	}

	return string(r.input[:p])
}

// Rest returns the unconsumed input from the current position.
func (r *Reader) Rest() string {
	return string(r.input[r.pos:])
}

// LineColumn computes the line and column of offset p. Lines are
// separated by '\n'; both counts are in runes and start at 1.
func (r *Reader) LineColumn(p int) (line, column int) {
	prefix := r.Prefix(p)
	line = strings.Count(prefix, "\n") + 1

	if idx := strings.LastIndexByte(prefix, '\n'); idx >= 0 {
		column = len([]rune(prefix[idx+1:])) + 1
	} else {
		column = len([]rune(prefix)) + 1
	}

	return line, column
}

// PositionAt bundles LineColumn and the offset into a Position.
func (r *Reader) PositionAt(p int) Position {
	line, column := r.LineColumn(p)

	return Position{Line: line, Column: column, Offset: p}
}
