// Package cli implements the parslet command line: parse inputs with
// one of the bundled example grammars and inspect grammar structure.
package cli

import (
	"errors"
	"fmt"
	"sort"

	"github.com/grobie/parslet"
	"github.com/grobie/parslet/grammars"
)

var (
	// ErrUnknownGrammar is returned when a grammar name matches no bundled grammar.
	ErrUnknownGrammar = errors.New("unknown grammar")
	// ErrUnknownFormat is returned for unsupported output formats.
	ErrUnknownFormat = errors.New("unknown output format")
)

// Context represents the global context for commands
type Context struct {
	Verbose bool
	Quiet   bool
}

// bundled maps grammar names to root atoms for the bundled examples.
var bundled = map[string]func() parslet.Atom{
	"quoted":   grammars.QuotedString,
	"document": func() parslet.Atom { return root(grammars.Document()) },
	"calc":     func() parslet.Atom { return root(grammars.Calculator()) },
}

func root(g *parslet.Grammar) parslet.Atom {
	return g.MustRoot()
}

// lookupGrammar resolves a bundled grammar by name.
func lookupGrammar(name string) (parslet.Atom, error) {
	maker, ok := bundled[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %v)", ErrUnknownGrammar, name, GrammarNames())
	}

	return maker(), nil
}

// GrammarNames lists the bundled grammar names in stable order.
func GrammarNames() []string {
	names := make([]string, 0, len(bundled))
	for name := range bundled {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}
