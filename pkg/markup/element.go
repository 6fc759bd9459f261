package markup

import "fmt"

// Outer holds content spliced immediately before and after an element's own
// tags. Text is entity encoded without whitespace collapsing, Raw content is
// written verbatim. The zero Node means no content.
type Outer struct {
	Before Node
	After  Node
}

// Element is a single markup element with a selector, attributes, inline
// style and children.
type Element struct {
	// Selector holds the tag name, id and class set of the element.
	Selector *Selector

	// Outer is content written around the element.
	Outer Outer

	attrs    *Attributes
	style    *StyleMap
	children []Node
	void     bool
}

// New creates an element from a selector, attributes and children.
//
// The selector supplies the tag (DefaultTag when omitted), id and classes.
// attrs may be nil; its entries are applied after the selector, so an
// explicit class attribute replaces the selector's classes entirely. See
// Normalize for the accepted children. Void elements fail with
// ErrVoidChildren when given children.
func New(selector string, attrs AttrSource, children ...any) (*Element, error) {
	return newElement(ParseSelector(selector), attrs, children)
}

// NewSVG is like New but falls back to the "g" tag when the selector names
// no tag.
func NewSVG(selector string, attrs AttrSource, children ...any) (*Element, error) {
	return newElement(ParseSelectorDefault(selector, "g"), attrs, children)
}

// NewNamed creates an element with tag used verbatim instead of being
// parsed as a selector. It is meant for imported markup whose names may
// carry namespace prefixes, such as "svg:rect".
func NewNamed(tag string, attrs AttrSource, children ...any) (*Element, error) {
	if tag == "" {
		tag = DefaultTag
	}
	return newElement(&Selector{Tag: tag, Classes: &ClassSet{}}, attrs, children)
}

func newElement(sel *Selector, attrs AttrSource, children []any) (*Element, error) {
	e := &Element{
		Selector: sel,
		style:    &StyleMap{},
		void:     IsVoidElement(sel.Tag),
	}
	e.attrs = newAttributes(e)

	nodes, err := Normalize(children...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", sel.Tag, err)
	}
	if e.void {
		if len(nodes) > 0 {
			return nil, fmt.Errorf("%w: <%s>", ErrVoidChildren, sel.Tag)
		}
	} else {
		e.children = nodes
	}

	if attrs != nil {
		for _, attr := range attrs.Pairs() {
			if err := e.attrs.Set(attr.Name, attr.Value); err != nil {
				return nil, fmt.Errorf("%s: %w", sel.Tag, err)
			}
		}
	}

	return e, nil
}

// Must returns e or panics if err is non-nil.
func Must(e *Element, err error) *Element {
	if err != nil {
		panic(err)
	}
	return e
}

// Tag returns the element name.
func (e *Element) Tag() string {
	return e.Selector.Tag
}

// IsVoid reports whether the element is a void element. Void elements never
// have children.
func (e *Element) IsVoid() bool {
	return e.void
}

// Attributes returns the attribute bag.
func (e *Element) Attributes() *Attributes {
	return e.attrs
}

// Attr returns the string value of an attribute; see Attributes.Value.
func (e *Element) Attr(name string) string {
	return e.attrs.Value(name)
}

// SetAttr assigns an attribute; see Attributes.Set.
func (e *Element) SetAttr(name string, value any) error {
	return e.attrs.Set(name, value)
}

// ID returns the element id.
func (e *Element) ID() string {
	return e.Selector.ID
}

// SetID sets the element id; "" removes it.
func (e *Element) SetID(id string) {
	e.Selector.ID = id
}

// Class returns the class set. It is shared with the selector.
func (e *Element) Class() *ClassSet {
	if e.Selector.Classes == nil {
		e.Selector.Classes = &ClassSet{}
	}
	return e.Selector.Classes
}

// SetClass replaces the class set.
func (e *Element) SetClass(c *ClassSet) {
	if c == nil {
		c = &ClassSet{}
	}
	e.Selector.Classes = c
}

// Style returns the inline style map.
func (e *Element) Style() *StyleMap {
	if e.style == nil {
		e.style = &StyleMap{}
	}
	return e.style
}

// SetStyle replaces the inline style map.
func (e *Element) SetStyle(s *StyleMap) {
	if s == nil {
		s = &StyleMap{}
	}
	e.style = s
}

// Children returns a copy of the child list.
func (e *Element) Children() []Node {
	return append([]Node(nil), e.children...)
}

// Len returns the number of children.
func (e *Element) Len() int {
	return len(e.children)
}

// Child returns the child at index i.
func (e *Element) Child(i int) Node {
	return e.children[i]
}

// Append adds children at the end. Void elements reject it with
// ErrFrozenChildren.
func (e *Element) Append(children ...any) error {
	nodes, err := e.mutableNodes(children)
	if err != nil {
		return err
	}
	e.children = append(e.children, nodes...)
	return nil
}

// Prepend adds children at the start.
func (e *Element) Prepend(children ...any) error {
	nodes, err := e.mutableNodes(children)
	if err != nil {
		return err
	}
	e.children = append(nodes, e.children...)
	return nil
}

// SetChildren replaces all children.
func (e *Element) SetChildren(children ...any) error {
	nodes, err := e.mutableNodes(children)
	if err != nil {
		return err
	}
	e.children = nodes
	return nil
}

// ClearChildren removes all children.
func (e *Element) ClearChildren() error {
	if e.void {
		return fmt.Errorf("%w: <%s>", ErrFrozenChildren, e.Tag())
	}
	e.children = nil
	return nil
}

func (e *Element) mutableNodes(children []any) ([]Node, error) {
	if e.void {
		return nil, fmt.Errorf("%w: <%s>", ErrFrozenChildren, e.Tag())
	}
	return Normalize(children...)
}
