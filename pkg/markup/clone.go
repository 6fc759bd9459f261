package markup

// Clone returns an independent copy of the element. Attributes, classes,
// style and outer content are copied by value. A shallow clone has no
// children; a deep clone copies the children recursively.
func (e *Element) Clone(deep bool) *Element {
	c := &Element{
		Selector: e.Selector.Clone(),
		Outer: Outer{
			Before: cloneNode(e.Outer.Before),
			After:  cloneNode(e.Outer.After),
		},
		style: e.Style().Clone(),
		void:  e.void,
	}
	c.attrs = e.attrs.clone(c)

	if deep && !e.void {
		c.children = cloneNodes(e.children)
	}
	return c
}

// Clone returns a deep copy of the chain, or a copy whose innermost element
// has no children when deep is false.
func (c *Compound) Clone(deep bool) *Compound {
	n := len(c.elements)
	elements := make([]*Element, n)
	elements[n-1] = c.elements[n-1].Clone(deep)
	for i := n - 2; i >= 0; i-- {
		elements[i] = c.elements[i].Clone(false)
		elements[i].children = []Node{ElementNode(elements[i+1])}
	}
	return &Compound{elements: elements}
}

func cloneNodes(nodes []Node) []Node {
	if nodes == nil {
		return nil
	}
	out := make([]Node, len(nodes))
	for i, n := range nodes {
		out[i] = cloneNode(n)
	}
	return out
}

// cloneNode deep-copies a single node by kind. Text is immutable and passes
// through unchanged.
func cloneNode(n Node) Node {
	if n.isZero() {
		return n
	}
	switch n.Kind {
	case KindElement:
		return ElementNode(n.Element.Clone(true))
	case KindCompound:
		return CompoundNode(n.Compound.Clone(true))
	case KindRaw:
		return RawNode(n.Raw.Clone())
	default:
		return n
	}
}
