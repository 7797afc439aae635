package parslet

type strAtom struct {
	text  string
	runes int
}

// Str returns an atom matching the literal text exactly.
func Str(text string) Atom {
	return &strAtom{text: text, runes: len([]rune(text))}
}

func (s *strAtom) match(c *context) (any, error) {
	pos := c.reader.Pos()

	got := c.reader.Read(s.runes)
	if len([]rune(got)) < s.runes {
		return nil, c.fail(s, pos, "Premature end of input")
	}

	if got != s.text {
		return nil, c.fail(s, pos, "Expected %q, but got %q", s.text, got)
	}

	return got, nil
}

func (s *strAtom) cause(c *context) string {
	return c.causes[s]
}

func (s *strAtom) errorTree(c *context) *Cause {
	return &Cause{Message: c.causes[s]}
}

func (s *strAtom) String() string {
	return "'" + s.text + "'"
}

func (s *strAtom) prec() int {
	return precAtom
}
