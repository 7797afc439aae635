package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/goccy/go-yaml"

	"github.com/grobie/parslet"
)

// ParseCmd represents the parse command
type ParseCmd struct {
	Grammar string `short:"g" help:"Bundled grammar to parse with" default:"document"`
	Input   string `arg:"" optional:"" help:"Input file (default: stdin)"`
	Format  string `short:"f" help:"Output format (yaml or json)" default:"yaml" enum:"yaml,json"`
}

// Run executes the parse command
func (cmd *ParseCmd) Run(ctx *Context) error {
	atom, err := lookupGrammar(cmd.Grammar)
	if err != nil {
		return err
	}

	input, err := cmd.readInput()
	if err != nil {
		return err
	}

	warn := func(msg string) {
		if !ctx.Quiet {
			color.Yellow("warning: %s", msg)
		}
	}

	tree, err := parslet.Parse(atom, input, parslet.WithWarnFunc(warn))
	if err != nil {
		if perr, ok := parslet.AsParseError(err); ok {
			renderFailure(os.Stderr, input, perr, ctx.Verbose)
		}

		return err
	}

	if ctx.Verbose {
		color.Green("parsed %d characters with grammar %q", len([]rune(input)), cmd.Grammar)
	}

	return writeTree(os.Stdout, tree, cmd.Format)
}

func (cmd *ParseCmd) readInput() (string, error) {
	if cmd.Input == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}

		return string(data), nil
	}

	data, err := os.ReadFile(cmd.Input)
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}

	return string(data), nil
}

func writeTree(w io.Writer, tree any, format string) error {
	switch format {
	case "yaml":
		data, err := yaml.Marshal(tree)
		if err != nil {
			return fmt.Errorf("failed to marshal result: %w", err)
		}

		_, err = w.Write(data)

		return err
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(tree)
	}

	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}
