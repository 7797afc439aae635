package parslet

import (
	"errors"
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestParseStr(t *testing.T) {
	tree, err := Parse(Str("foo"), "foo")
	assert.NoError(t, err)
	assert.Equal(t, "foo", tree.(string))

	_, err = Parse(Str("foo"), "fo")
	assert.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "Premature end of input"))
}

func TestParseAlternative(t *testing.T) {
	letter := Or(Str("a"), Str("b"))

	tree, err := Parse(letter, "b")
	assert.NoError(t, err)
	assert.Equal(t, "b", tree.(string))

	_, err = Parse(letter, "c")
	assert.Error(t, err)
	assert.Equal(t, "Expected one of ['a', 'b'] at line 1 char 1.", err.Error())
}

func TestParseRepetition(t *testing.T) {
	twoToThree := Repeat(Str("a"), 2, 3)

	tree, err := Parse(twoToThree, "aaa")
	assert.NoError(t, err)
	assert.Equal(t, "aaa", tree.(string))

	_, err = Parse(twoToThree, "a")
	assert.Error(t, err)
	assert.Equal(t, "Expected at least 2 of 'a' at line 1 char 1.", err.Error())

	// The bounded repetition stops cleanly at max, so the leftover is
	// input the grammar has no opinion about.
	_, err = Parse(twoToThree, "aaaa")
	assert.Error(t, err)
	assert.Equal(t, `Don't know what to do with "a" at line 1 char 4.`, err.Error())

	// An unbounded repetition stops on a child failure; that failure
	// is the cause reported for the unconsumed tail.
	_, err = Parse(Repeat(Str("a"), 2, Unbounded), "aaab")
	assert.Error(t, err)
	assert.Equal(t,
		`Unconsumed input, maybe because of this: Expected "a", but got "b" at line 1 char 4.`,
		err.Error())
}

func TestParseTimes(t *testing.T) {
	tree, err := Parse(Times(Str("ab"), 2), "abab")
	assert.NoError(t, err)
	assert.Equal(t, "abab", tree.(string))

	_, err = Parse(Times(Str("ab"), 2), "ab")
	assert.Error(t, err)
	assert.Equal(t, "Expected at least 2 of 'ab' at line 1 char 1.", err.Error())
}

func TestParseQuotedString(t *testing.T) {
	escaped := Seq(Str(`\`), Match(`.`))
	plain := Seq(Absent(Str(`"`)), Match(`.`))
	quoted := Seq(
		Str(`"`),
		As(ZeroOrMore(Or(escaped, plain)), "s"),
		Str(`"`),
	)

	tree, err := Parse(quoted, `"a\"b"`)
	assert.NoError(t, err)
	assert.Equal(t, map[string]any{"s": `a\"b`}, tree.(map[string]any))
}

func TestParseNamedPair(t *testing.T) {
	pair := Seq(As(Str("a"), "x"), As(Str("b"), "y"))

	tree, err := Parse(pair, "ab")
	assert.NoError(t, err)
	assert.Equal(t, map[string]any{"x": "a", "y": "b"}, tree.(map[string]any))
}

func TestParseRecursiveRule(t *testing.T) {
	var parens *Entity
	parens = Rule("parens", func() Atom {
		return Seq(Str("("), Maybe(parens), Str(")"))
	})

	for _, input := range []string{"()", "(())", "((()))"} {
		_, err := Parse(parens, input)
		assert.NoError(t, err)
	}

	_, err := Parse(parens, "(()")
	assert.Error(t, err)
}

func TestSequenceOfStringsConcatenates(t *testing.T) {
	tree, err := Parse(Seq(Str("a"), Str("b")), "ab")
	assert.NoError(t, err)
	assert.Equal(t, "ab", tree.(string))
}

func TestAlternativeDoesNotWrapWinner(t *testing.T) {
	// The chosen arm's value is returned untagged, so naming the
	// alternative names exactly the winner's value.
	named := As(Or(As(Str("a"), "a"), Str("b")), "k")

	tree, err := Parse(named, "a")
	assert.NoError(t, err)
	assert.Equal(t, map[string]any{"k": map[string]any{"a": "a"}}, tree.(map[string]any))

	tree, err = Parse(named, "b")
	assert.NoError(t, err)
	assert.Equal(t, map[string]any{"k": "b"}, tree.(map[string]any))
}

func TestNamingDominates(t *testing.T) {
	grammars := []struct {
		name  string
		atom  Atom
		input string
	}{
		{name: "literal", atom: Str("ab"), input: "ab"},
		{name: "sequence", atom: Seq(Str("a"), Str("b")), input: "ab"},
		{name: "repetition", atom: OneOrMore(Match("[a-z]")), input: "ab"},
	}

	for _, tt := range grammars {
		t.Run(tt.name, func(t *testing.T) {
			plain, err := Parse(tt.atom, tt.input)
			assert.NoError(t, err)

			wrapped, err := Parse(As(tt.atom, "k"), tt.input)
			assert.NoError(t, err)
			assert.Equal(t, map[string]any{"k": plain}, wrapped.(map[string]any))
		})
	}
}

func TestParseMaybe(t *testing.T) {
	greeting := Seq(Str("hi"), Maybe(Str("!")))

	tree, err := Parse(greeting, "hi!")
	assert.NoError(t, err)
	assert.Equal(t, "hi!", tree.(string))

	tree, err = Parse(greeting, "hi")
	assert.NoError(t, err)
	assert.Equal(t, "hi", tree.(string))
}

func TestParseNamedMaybeAbsentIsNil(t *testing.T) {
	greeting := Seq(Str("hi"), As(Maybe(Str("!")), "bang"))

	tree, err := Parse(greeting, "hi")
	assert.NoError(t, err)
	assert.Equal(t, map[string]any{"bang": nil}, tree.(map[string]any))
}

func TestParseRepetitionOfNamedYieldsList(t *testing.T) {
	item := Seq(As(Match("[a-z]"), "c"), Maybe(Str(",")))

	tree, err := Parse(ZeroOrMore(item), "a,b,c")
	assert.NoError(t, err)
	assert.Equal(t, []any{
		map[string]any{"c": "a"},
		map[string]any{"c": "b"},
		map[string]any{"c": "c"},
	}, tree.([]any))
}

func TestParseReader(t *testing.T) {
	tree, err := ParseReader(Str("foo"), strings.NewReader("foo"))
	assert.NoError(t, err)
	assert.Equal(t, "foo", tree.(string))
}

func TestParseDuplicateKeyWarning(t *testing.T) {
	var warnings []string
	warn := func(msg string) { warnings = append(warnings, msg) }

	tree, err := Parse(
		Seq(As(Str("a"), "k"), As(Str("b"), "k")),
		"ab",
		WithWarnFunc(warn),
	)
	assert.NoError(t, err)
	assert.Equal(t, map[string]any{"k": "b"}, tree.(map[string]any))
	assert.Equal(t, 1, len(warnings))
}

func TestParseErrorPosition(t *testing.T) {
	_, err := Parse(Seq(Str("ab\n"), Str("cd")), "ab\ncx")
	assert.Error(t, err)

	perr, ok := AsParseError(err)
	assert.True(t, ok)
	// The sequence reports at its entry; the offending child failed on
	// line 2.
	assert.Equal(t, 1, perr.Pos.Line)
	assert.NotZero(t, perr.Tree)

	child := perr.Tree.Children
	assert.Equal(t, 1, len(child))
	assert.Equal(t, `Expected "cd", but got "cx" at line 2 char 1.`, child[0].Message)
}

func TestParseErrorOnMultibyteInput(t *testing.T) {
	_, err := Parse(Seq(Str("日本"), Str("語")), "日本x")
	assert.Error(t, err)

	perr, ok := AsParseError(err)
	assert.True(t, ok)

	child := perr.Tree.Children
	assert.Equal(t, 1, len(child))
	// Char positions count runes, not bytes.
	assert.Equal(t, `Expected "語", but got "x" at line 1 char 3.`, child[0].Message)
}

func TestParsePropagatesUndefinedRule(t *testing.T) {
	_, err := Parse(Rule("ghost", func() Atom { return nil }), "x")
	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrUndefinedRule))

	_, ok := AsParseError(err)
	assert.False(t, ok)
}

func TestParseConcurrentReuse(t *testing.T) {
	// One grammar, many parses: all mutable state lives in the
	// per-parse context.
	word := OneOrMore(Match("[a-z]"))

	done := make(chan struct{})

	for range 8 {
		go func() {
			defer func() { done <- struct{}{} }()

			for range 100 {
				tree, err := Parse(word, "hello")
				assert.NoError(t, err)
				assert.Equal(t, "hello", tree.(string))
			}
		}()
	}

	for range 8 {
		<-done
	}
}
