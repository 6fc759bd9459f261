package markup

import (
	"context"
	"fmt"
	"io"
)

// Compound is a chain of at least two elements, each the only child of the
// one before it. It is built from several selectors in one call, e.g.
// "ul", "li", "a" produces <ul><li><a>...</a></li></ul>.
type Compound struct {
	elements []*Element
}

// NewCompound builds a chain from two or more selectors. attrs and children
// go to the innermost element; the outer elements get nothing but their
// selector.
func NewCompound(selectors []string, attrs AttrSource, children ...any) (*Compound, error) {
	if len(selectors) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrCompoundSelectors, len(selectors))
	}

	last := len(selectors) - 1
	elements := make([]*Element, len(selectors))

	inner, err := New(selectors[last], attrs, children...)
	if err != nil {
		return nil, err
	}
	elements[last] = inner

	for i := last - 1; i >= 0; i-- {
		e, err := New(selectors[i], nil, elements[i+1])
		if err != nil {
			return nil, err
		}
		elements[i] = e
	}

	return &Compound{elements: elements}, nil
}

// MustCompound returns c or panics if err is non-nil.
func MustCompound(c *Compound, err error) *Compound {
	if err != nil {
		panic(err)
	}
	return c
}

// Elements returns the chain from outermost to innermost.
func (c *Compound) Elements() []*Element {
	return append([]*Element(nil), c.elements...)
}

// Outer returns the outermost element.
func (c *Compound) Outer() *Element {
	return c.elements[0]
}

// Inner returns the innermost element.
func (c *Compound) Inner() *Element {
	return c.elements[len(c.elements)-1]
}

// WriteHTML writes the chain's markup to w.
func (c *Compound) WriteHTML(w io.Writer) error {
	return c.Outer().WriteHTML(w)
}

// HTML returns the chain's markup.
func (c *Compound) HTML() string {
	return c.Outer().HTML()
}

// String returns the chain's markup.
func (c *Compound) String() string {
	return c.HTML()
}

// Render writes the chain's markup; it makes a Compound a templ.Component.
func (c *Compound) Render(ctx context.Context, w io.Writer) error {
	return c.Outer().Render(ctx, w)
}
