package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/text/width"

	"github.com/grobie/parslet"
)

// renderFailure prints a parse failure with the offending source line
// and a caret under the failure column. With verbose enabled, the full
// cause tree follows.
func renderFailure(w io.Writer, input string, perr *parslet.ParseError, verbose bool) {
	red := color.New(color.FgRed)
	red.Fprintln(w, perr.Message)

	line := sourceLine(input, perr.Pos.Line)
	if line != "" {
		fmt.Fprintf(w, "  %s\n", line)
		fmt.Fprintf(w, "  %s^\n", strings.Repeat(" ", caretOffset(line, perr.Pos.Column)))
	}

	if verbose && perr.Tree != nil && perr.Tree.Message != "" {
		fmt.Fprintln(w, perr.Tree.String())
	}
}

func sourceLine(input string, line int) string {
	lines := strings.Split(input, "\n")
	if line < 1 || line > len(lines) {
		return ""
	}

	return strings.TrimSuffix(lines[line-1], "\r")
}

// caretOffset converts a 1-based rune column into a display offset,
// counting East Asian wide characters as two cells.
func caretOffset(line string, column int) int {
	offset := 0

	for i, r := range []rune(line) {
		if i >= column-1 {
			break
		}

		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			offset += 2
		default:
			offset++
		}
	}

	return offset
}
