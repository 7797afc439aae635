package parslet

type named struct {
	parslet Atom
	name    string
}

// As wraps the atom under a key, so its match appears as a one-entry
// mapping in the result tree. The wrapped value is flattened at match
// time; whatever structure it folds to becomes the mapping value.
func As(a Atom, name string) Atom {
	return &named{parslet: a, name: name}
}

func (n *named) match(c *context) (any, error) {
	value, err := c.apply(n.parslet)
	if err != nil {
		return nil, err
	}

	flat, err := flatten(value, c.warn)
	if err != nil {
		return nil, err
	}

	return map[string]any{n.name: flat}, nil
}

func (n *named) cause(c *context) string {
	return n.parslet.cause(c)
}

func (n *named) errorTree(c *context) *Cause {
	return n.parslet.errorTree(c)
}

func (n *named) String() string {
	return render(n.parslet, precNamed) + ":" + n.name
}

func (n *named) prec() int {
	return precNamed
}
