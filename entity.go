package parslet

import (
	"fmt"
	"strings"
	"sync"
)

// Entity names a rule and defers building its body until first use,
// which is what lets grammars refer to themselves. The body is
// resolved once and cached; grammars stay immutable afterwards.
type Entity struct {
	name  string
	maker func() Atom

	once sync.Once
	body Atom
}

// Rule returns an Entity whose body is produced lazily by maker on
// first use. The canonical way to express a recursive production:
//
//	var expr *parslet.Entity
//	expr = parslet.Rule("expr", func() parslet.Atom {
//		return parslet.Or(parslet.Seq(parslet.Str("("), expr, parslet.Str(")")), parslet.Match(`\d`))
//	})
func Rule(name string, maker func() Atom) *Entity {
	return &Entity{name: name, maker: maker}
}

func (e *Entity) resolve() (Atom, error) {
	e.once.Do(func() {
		if e.maker != nil {
			e.body = e.maker()
		}
	})

	if e.body == nil {
		return nil, fmt.Errorf("%w: %s", ErrUndefinedRule, e.name)
	}

	return e.body, nil
}

// Definition resolves the entity and returns its printed rule form,
// e.g. "DOCUMENT := ELEMENT / TEXT". Only one level is expanded;
// referenced rules appear by name.
func (e *Entity) Definition() (string, error) {
	body, err := e.resolve()
	if err != nil {
		return "", err
	}

	return e.String() + " := " + body.String(), nil
}

func (e *Entity) match(c *context) (any, error) {
	body, err := e.resolve()
	if err != nil {
		return nil, err
	}

	return c.apply(body)
}

func (e *Entity) cause(c *context) string {
	if e.body == nil {
		return ""
	}

	return e.body.cause(c)
}

func (e *Entity) errorTree(c *context) *Cause {
	if e.body == nil {
		return &Cause{}
	}

	return e.body.errorTree(c)
}

func (e *Entity) String() string {
	return strings.ToUpper(e.name)
}

func (e *Entity) prec() int {
	return precAtom
}
