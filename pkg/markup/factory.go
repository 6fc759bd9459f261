package markup

import "fmt"

// Factory creates elements that share a selector. Arguments that implement
// AttrSource (Attrs, AttrList, Attr) are merged as attributes in order;
// every other argument is a child.
//
// A Factory passed as a child is invoked with no arguments.
type Factory func(args ...any) (*Element, error)

// NewFactory returns a Factory for selector.
func NewFactory(selector string) Factory {
	return func(args ...any) (*Element, error) {
		attrs, children := SplitArgs(args)
		return New(selector, attrs, children...)
	}
}

// SplitArgs separates attribute arguments from child arguments.
func SplitArgs(args []any) (AttrList, []any) {
	var attrs AttrList
	children := make([]any, 0, len(args))
	for _, arg := range args {
		if src, ok := arg.(AttrSource); ok {
			attrs = append(attrs, src.Pairs()...)
			continue
		}
		children = append(children, arg)
	}
	return attrs, children
}

// Build creates an Element for a single selector or a Compound chain for
// several, returned as a Node.
func Build(selectors []string, attrs AttrSource, children ...any) (Node, error) {
	switch len(selectors) {
	case 0:
		return Node{}, fmt.Errorf("%w: no selector", ErrCompoundSelectors)
	case 1:
		e, err := New(selectors[0], attrs, children...)
		if err != nil {
			return Node{}, err
		}
		return ElementNode(e), nil
	default:
		c, err := NewCompound(selectors, attrs, children...)
		if err != nil {
			return Node{}, err
		}
		return CompoundNode(c), nil
	}
}
