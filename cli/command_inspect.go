package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/grobie/parslet"
)

// InspectCmd represents the inspect command
type InspectCmd struct {
	Grammar string `arg:"" optional:"" help:"Bundled grammar to inspect (default: all)"`
}

// Run executes the inspect command
func (cmd *InspectCmd) Run(ctx *Context) error {
	if cmd.Grammar != "" {
		atom, err := lookupGrammar(cmd.Grammar)
		if err != nil {
			return err
		}

		return describe(atom)
	}

	for _, name := range GrammarNames() {
		atom, err := lookupGrammar(name)
		if err != nil {
			return err
		}

		if !ctx.Quiet {
			color.Blue("%s:", name)
		}

		if err := describe(atom); err != nil {
			return err
		}
	}

	return nil
}

// describe prints the PEG form of an atom; entities are expanded one
// level into their rule definition.
func describe(atom parslet.Atom) error {
	if entity, ok := atom.(*parslet.Entity); ok {
		definition, err := entity.Definition()
		if err != nil {
			return err
		}

		fmt.Fprintln(os.Stdout, definition)

		return nil
	}

	fmt.Fprintln(os.Stdout, atom.String())

	return nil
}
