package parslet

import "regexp"

type reAtom struct {
	source string
	re     *regexp.Regexp
}

// Match returns an atom accepting a single character that satisfies
// the regular-expression fragment. The pattern is compiled with the
// `s` flag so `.` also matches newlines. An invalid pattern panics at
// construction time.
func Match(pattern string) Atom {
	return &reAtom{
		source: pattern,
		re:     regexp.MustCompile("(?s)" + pattern),
	}
}

func (r *reAtom) match(c *context) (any, error) {
	pos := c.reader.Pos()

	got := c.reader.Read(1)
	if got == "" {
		return nil, c.fail(r, pos, "Premature end of input")
	}

	if !r.re.MatchString(got) {
		return nil, c.fail(r, pos, "Failed to match %s", r.source)
	}

	return got, nil
}

func (r *reAtom) cause(c *context) string {
	return c.causes[r]
}

func (r *reAtom) errorTree(c *context) *Cause {
	return &Cause{Message: c.causes[r]}
}

func (r *reAtom) String() string {
	return r.source
}

func (r *reAtom) prec() int {
	return precAtom
}
