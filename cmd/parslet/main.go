package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/grobie/parslet/cli"
)

// CLI represents the command-line interface
var CLI struct {
	Verbose bool           `help:"Enable verbose output" short:"v"`
	Quiet   bool           `help:"Suppress warnings and grammar headings" short:"q"`
	Parse   cli.ParseCmd   `cmd:"" help:"Parse input with a bundled grammar"`
	Inspect cli.InspectCmd `cmd:"" help:"Print the PEG form of a bundled grammar"`
	Version VersionCmd     `cmd:"" help:"Show version information"`
}

// VersionCmd represents the version command
type VersionCmd struct{}

// Run executes the version command
func (cmd *VersionCmd) Run(ctx *cli.Context) error {
	fmt.Println("parslet v0.1.0")
	return nil
}

func main() {
	ctx := kong.Parse(&CLI)

	appCtx := &cli.Context{
		Verbose: CLI.Verbose,
		Quiet:   CLI.Quiet,
	}

	err := ctx.Run(appCtx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
