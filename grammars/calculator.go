package grammars

import "github.com/grobie/parslet"

// Calculator matches infix arithmetic over non-negative integers with
// the usual precedence and parenthesized groups. The result is a left
// fold seed followed by operator/operand pairs:
//
//	1+2*3  =>  [{"int": "1"}, {"op": "+", "right": [{"int": "2"}, {"op": "*", "right": {"int": "3"}}]}]
func Calculator() *parslet.Grammar {
	g := parslet.NewGrammar()

	g.Rule("expression", func() parslet.Atom {
		return chain(g.Ref("term"), parslet.Or(parslet.Str("+"), parslet.Str("-")))
	})

	g.Rule("term", func() parslet.Atom {
		return chain(g.Ref("factor"), parslet.Or(parslet.Str("*"), parslet.Str("/")))
	})

	g.Rule("factor", func() parslet.Atom {
		group := parslet.Seq(parslet.Str("("), g.Ref("expression"), parslet.Str(")"))

		return parslet.Or(group, g.Ref("integer"))
	})

	g.Rule("integer", func() parslet.Atom {
		return parslet.As(parslet.OneOrMore(parslet.Match(`[0-9]`)), "int")
	})

	return g.Root("expression")
}

// chain matches operand followed by any number of operator/operand
// pairs, capturing each pair under "op" and "right".
func chain(operand parslet.Atom, operator parslet.Atom) parslet.Atom {
	return parslet.Seq(
		operand,
		parslet.ZeroOrMore(parslet.Seq(
			parslet.As(operator, "op"),
			parslet.As(operand, "right"),
		)),
	)
}
