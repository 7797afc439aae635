// Package testhelper holds shared test utilities.
package testhelper

import (
	"regexp"
	"strings"
	"testing"
)

var (
	leadingWhitespace = regexp.MustCompile(`^\s+`)
	leadingTabs       = regexp.MustCompile(`^\t+`)
)

func replaceTab(match string) string {
	return strings.Repeat("    ", strings.Count(match, "\t"))
}

// TrimIndent strips the common indentation of a backtick test literal
// so multi-line inputs can be written inline, indented with the test
// code. The first line (up to the first newline) is discarded, the
// second line's indentation sets the margin, and leading tabs expand
// to four spaces each.
func TrimIndent(t *testing.T, src string) string {
	t.Helper()

	src = strings.ReplaceAll(src, "\r\n", "\n")
	lines := strings.Split(src, "\n")

	var indent string
	if len(lines) > 1 {
		indent = leadingWhitespace.FindString(lines[1])
	}

	for i, line := range lines {
		line = strings.TrimPrefix(line, indent)
		lines[i] = leadingTabs.ReplaceAllStringFunc(line, replaceTab)
	}

	return strings.Join(lines[1:], "\n")
}
