package grammars

import "github.com/grobie/parslet"

// Document matches a recursively nested, xmlish document: an element
// with matching open and close tags around a body, or bare text. Each
// element yields a mapping with "tag" and "body" keys:
//
//	<a><b>hi</b></a>  =>  {"tag": "a", "body": {"tag": "b", "body": "hi"}}
//
// Close tags are not checked against their open tags; the grammar
// only describes the element structure.
func Document() *parslet.Grammar {
	g := parslet.NewGrammar()

	g.Rule("document", func() parslet.Atom {
		return parslet.Or(g.Ref("element"), g.Ref("text"))
	})

	g.Rule("element", func() parslet.Atom {
		return parslet.Seq(
			parslet.Str("<"),
			parslet.As(g.Ref("name"), "tag"),
			parslet.Str(">"),
			parslet.As(g.Ref("document"), "body"),
			parslet.Str("</"),
			g.Ref("name"),
			parslet.Str(">"),
		)
	})

	g.Rule("name", func() parslet.Atom {
		return parslet.OneOrMore(parslet.Match(`[a-zA-Z0-9]`))
	})

	g.Rule("text", func() parslet.Atom {
		return parslet.OneOrMore(parslet.Match(`[^<>]`))
	})

	return g.Root("document")
}
