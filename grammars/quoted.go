// Package grammars contains small, complete example grammars built on
// parslet. The CLI exposes them by name, and the acceptance tests use
// them to exercise the library end to end.
package grammars

import "github.com/grobie/parslet"

// QuotedString matches a double-quoted string with backslash escapes
// and yields the body under the "string" key, escapes included:
//
//	"a\"b"  =>  map[string]any{"string": `a\"b`}
func QuotedString() parslet.Atom {
	escaped := parslet.Seq(parslet.Str(`\`), parslet.Match(`.`))
	plain := parslet.Seq(parslet.Absent(parslet.Str(`"`)), parslet.Match(`.`))

	return parslet.Seq(
		parslet.Str(`"`),
		parslet.As(parslet.ZeroOrMore(parslet.Or(escaped, plain)), "string"),
		parslet.Str(`"`),
	)
}
