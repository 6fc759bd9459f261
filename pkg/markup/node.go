package markup

import (
	"fmt"
	"io"
)

// Kind is the child node type discriminator.
type Kind uint8

const (
	KindElement  Kind = iota // *Element
	KindCompound             // *Compound
	KindRaw                  // *Raw, written verbatim
	KindText                 // plain text, entity encoded
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindCompound:
		return "Compound"
	case KindRaw:
		return "Raw"
	case KindText:
		return "Text"
	default:
		return "Unknown"
	}
}

// Node is one entry of a child list. Exactly one payload field is set,
// selected by Kind.
type Node struct {
	Kind     Kind
	Element  *Element
	Compound *Compound
	Raw      *Raw
	Text     string
}

// ElementNode wraps an element as a child node.
func ElementNode(e *Element) Node { return Node{Kind: KindElement, Element: e} }

// CompoundNode wraps a compound chain as a child node.
func CompoundNode(c *Compound) Node { return Node{Kind: KindCompound, Compound: c} }

// RawNode wraps raw content as a child node.
func RawNode(r *Raw) Node { return Node{Kind: KindRaw, Raw: r} }

// TextNode wraps plain text as a child node.
func TextNode(s string) Node { return Node{Kind: KindText, Text: s} }

// isZero reports whether the node carries no payload.
func (n Node) isZero() bool {
	switch n.Kind {
	case KindElement:
		return n.Element == nil
	case KindCompound:
		return n.Compound == nil
	case KindRaw:
		return n.Raw == nil
	case KindText:
		return n.Text == ""
	default:
		return true
	}
}

// Renderable is anything that writes itself as markup.
type Renderable interface {
	WriteHTML(w io.Writer) error
}

// Normalize flattens child arguments into a node list.
//
// Accepted values are nil, false and "" (dropped), non-empty strings (kept
// even when blank), Node, *Element, *Compound, *Raw, slices of those,
// []any, and producers returning any of them, which are invoked
// immediately with no arguments. Tag constructors such as
// func(...any) *Element count as producers. Anything else fails with ErrInvalidContent.
func Normalize(args ...any) ([]Node, error) {
	nodes := make([]Node, 0, len(args))
	var err error
	for _, arg := range args {
		if nodes, err = appendContent(nodes, arg); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func appendContent(nodes []Node, v any) ([]Node, error) {
	var err error

	switch v := v.(type) {
	case nil:
		return nodes, nil

	case bool:
		if v {
			return nil, fmt.Errorf("%w: boolean true is not content", ErrInvalidContent)
		}
		return nodes, nil

	case string:
		if v != "" {
			nodes = append(nodes, TextNode(v))
		}
		return nodes, nil

	case Node:
		if !v.isZero() {
			nodes = append(nodes, v)
		}
		return nodes, nil

	case []Node:
		for _, n := range v {
			if !n.isZero() {
				nodes = append(nodes, n)
			}
		}
		return nodes, nil

	case *Element:
		if v != nil {
			nodes = append(nodes, ElementNode(v))
		}
		return nodes, nil

	case *Compound:
		if v != nil {
			nodes = append(nodes, CompoundNode(v))
		}
		return nodes, nil

	case *Raw:
		if v != nil {
			nodes = append(nodes, RawNode(v))
		}
		return nodes, nil

	case []*Element:
		for _, e := range v {
			if nodes, err = appendContent(nodes, e); err != nil {
				return nil, err
			}
		}
		return nodes, nil

	case []*Compound:
		for _, c := range v {
			if nodes, err = appendContent(nodes, c); err != nil {
				return nil, err
			}
		}
		return nodes, nil

	case []*Raw:
		for _, r := range v {
			if nodes, err = appendContent(nodes, r); err != nil {
				return nil, err
			}
		}
		return nodes, nil

	case []string:
		for _, s := range v {
			nodes, _ = appendContent(nodes, s)
		}
		return nodes, nil

	case []any:
		for _, item := range v {
			if nodes, err = appendContent(nodes, item); err != nil {
				return nil, err
			}
		}
		return nodes, nil

	case Factory:
		if v == nil {
			return nil, nilProducer(v)
		}
		e, err := v()
		if err != nil {
			return nil, err
		}
		return appendContent(nodes, e)

	case func() (*Element, error):
		if v == nil {
			return nil, nilProducer(v)
		}
		e, err := v()
		if err != nil {
			return nil, err
		}
		return appendContent(nodes, e)

	case func(...any) *Element:
		if v == nil {
			return nil, nilProducer(v)
		}
		return appendContent(nodes, v())
	case func(...AttrSource) *Element:
		if v == nil {
			return nil, nilProducer(v)
		}
		return appendContent(nodes, v())
	case func(...any) *Compound:
		if v == nil {
			return nil, nilProducer(v)
		}
		return appendContent(nodes, v())

	case func() any:
		if v == nil {
			return nil, nilProducer(v)
		}
		return appendContent(nodes, v())
	case func() []any:
		if v == nil {
			return nil, nilProducer(v)
		}
		return appendContent(nodes, v())
	case func() *Element:
		if v == nil {
			return nil, nilProducer(v)
		}
		return appendContent(nodes, v())
	case func() *Compound:
		if v == nil {
			return nil, nilProducer(v)
		}
		return appendContent(nodes, v())
	case func() *Raw:
		if v == nil {
			return nil, nilProducer(v)
		}
		return appendContent(nodes, v())
	case func() string:
		if v == nil {
			return nil, nilProducer(v)
		}
		return appendContent(nodes, v())
	case func() Node:
		if v == nil {
			return nil, nilProducer(v)
		}
		return appendContent(nodes, v())

	default:
		return nil, fmt.Errorf("%w: unsupported child type %T", ErrInvalidContent, v)
	}
}

func nilProducer(v any) error {
	return fmt.Errorf("%w: nil producer %T", ErrInvalidContent, v)
}
