package markup

import (
	"fmt"
	"io"
	"strings"
)

// WriteHTML writes the element's markup to w.
func (e *Element) WriteHTML(w io.Writer) error {
	return writeElement(w, e, false)
}

// HTML returns the element's markup.
func (e *Element) HTML() string {
	var b strings.Builder
	// strings.Builder never fails
	_ = e.WriteHTML(&b)
	return b.String()
}

// String returns the element's markup.
func (e *Element) String() string {
	return e.HTML()
}

// AttributesHTML returns the rendered attributes with a leading space, or "".
func (e *Element) AttributesHTML() string {
	return e.attrs.HTML()
}

// ChildrenHTML returns the rendered children without the element's own tags.
func (e *Element) ChildrenHTML() string {
	var b strings.Builder
	_ = writeNodes(&b, e.children, PreservesWhitespace(e.Tag()))
	return b.String()
}

// WriteHTML writes the node's markup to w. Text is whitespace-collapsed.
func (n Node) WriteHTML(w io.Writer) error {
	return writeNode(w, n, false)
}

// HTML returns the node's markup.
func (n Node) HTML() string {
	var b strings.Builder
	_ = n.WriteHTML(&b)
	return b.String()
}

// RenderNodes writes a list of nodes in order, collapsing whitespace in
// top-level text.
func RenderNodes(w io.Writer, nodes []Node) error {
	return writeNodes(w, nodes, false)
}

// RenderString renders a list of nodes to a string.
func RenderString(nodes []Node) (string, error) {
	var b strings.Builder
	if err := RenderNodes(&b, nodes); err != nil {
		return "", err
	}
	return b.String(), nil
}

func writeNodes(w io.Writer, nodes []Node, preserve bool) error {
	for _, n := range nodes {
		if err := writeNode(w, n, preserve); err != nil {
			return err
		}
	}
	return nil
}

// writeNode dispatches rendering based on node kind. preserve is set inside
// whitespace-preserving elements.
func writeNode(w io.Writer, n Node, preserve bool) error {
	switch n.Kind {
	case KindElement:
		if n.Element == nil {
			return nil
		}
		return writeElement(w, n.Element, preserve)
	case KindCompound:
		if n.Compound == nil {
			return nil
		}
		return writeElement(w, n.Compound.Outer(), preserve)
	case KindRaw:
		_, err := io.WriteString(w, n.Raw.Text())
		return err
	case KindText:
		text := n.Text
		if preserve {
			text = EncodeEntities(text)
		} else {
			text = EncodeText(text)
		}
		_, err := io.WriteString(w, text)
		return err
	default:
		return fmt.Errorf("%w: unknown node kind %d", ErrInvalidContent, n.Kind)
	}
}

// writeOuter writes before/after content. Text is encoded but keeps its
// whitespace.
func writeOuter(w io.Writer, n Node) error {
	if n.isZero() {
		return nil
	}
	return writeNode(w, n, true)
}

func writeElement(w io.Writer, e *Element, preserve bool) error {
	tag := e.Tag()

	if err := writeOuter(w, e.Outer.Before); err != nil {
		return err
	}

	// Opening tag
	if _, err := io.WriteString(w, "<"+tag+e.attrs.HTML()+">"); err != nil {
		return err
	}

	if e.void {
		return writeOuter(w, e.Outer.After)
	}

	if err := writeNodes(w, e.children, preserve || PreservesWhitespace(tag)); err != nil {
		return err
	}

	// Closing tag
	if _, err := io.WriteString(w, "</"+tag+">"); err != nil {
		return err
	}

	return writeOuter(w, e.Outer.After)
}
