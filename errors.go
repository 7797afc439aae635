package parslet

import (
	"errors"

	"github.com/grobie/parslet/reader"
)

// Common errors used throughout the parslet package
var (
	// ErrNoMatch marks recoverable match failures. Alternative,
	// Repetition and Lookahead recover from errors wrapping it; any
	// other error propagates through them untouched.
	ErrNoMatch = errors.New("no match")

	// ErrUndefinedRule is returned when an Entity resolves to a nil
	// body, i.e. the rule was referenced but never defined.
	ErrUndefinedRule = errors.New("undefined rule")

	// ErrUnmergeable indicates the flattener met a pair of values its
	// merge rules do not cover. This is a grammar-construction bug,
	// not a parse failure.
	ErrUnmergeable = errors.New("cannot merge values")
)

// ParseError is the user-visible failure of a Parse call. For a failed
// match, Message is the cause stored on the atom that ultimately
// failed, with the line and char position appended; when the root
// matched but input is left over, Message reports the unconsumed input
// instead. Pos locates the failure in the input and Tree holds the
// structured cause walk for tooling; Tree is nil when leftover input
// has no recorded cause.
type ParseError struct {
	Message string
	Pos     reader.Position
	Tree    *Cause
}

// Error implements the error interface for ParseError.
func (e *ParseError) Error() string {
	return e.Message
}

// AsParseError is a helper to extract *ParseError from error using errors.As.
func AsParseError(err error) (*ParseError, bool) {
	var perr *ParseError
	if errors.As(err, &perr) {
		return perr, true
	}

	return nil, false
}

// failError is the internal carrier of a match failure. It wraps
// ErrNoMatch so the recovering atoms can identify it with errors.Is.
type failError struct {
	atom Atom
	msg  string
	pos  int
}

func (e *failError) Error() string {
	return e.msg
}

func (e *failError) Unwrap() error {
	return ErrNoMatch
}
