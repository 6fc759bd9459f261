package content

import (
	"errors"
	"fmt"
	"strings"

	"github.com/beevik/etree"

	"github.com/elevensolutions/whits/pkg/markup"
)

// ErrNoRootElement is returned by XMLRoot for documents without an element.
var ErrNoRootElement = errors.New("content: xml document has no root element")

// FromXML parses an XML document or fragment, typically SVG, into element
// nodes. Namespace prefixes are kept in tag and attribute names.
// Whitespace-only text is dropped, CDATA sections are kept verbatim, and the
// XML declaration and other processing instructions are skipped.
func FromXML(src string) ([]markup.Node, error) {
	doc := etree.NewDocument()
	doc.ReadSettings.PreserveCData = true
	if err := doc.ReadFromString(src); err != nil {
		return nil, fmt.Errorf("parse xml: %w", err)
	}
	return convertXMLTokens(doc.Child)
}

// XMLRoot parses an XML document and returns its root element.
func XMLRoot(src string) (*markup.Element, error) {
	nodes, err := FromXML(src)
	if err != nil {
		return nil, err
	}
	for _, n := range nodes {
		if n.Kind == markup.KindElement {
			return n.Element, nil
		}
	}
	return nil, ErrNoRootElement
}

func convertXMLTokens(tokens []etree.Token) ([]markup.Node, error) {
	nodes := make([]markup.Node, 0, len(tokens))
	for _, tok := range tokens {
		switch t := tok.(type) {
		case *etree.Element:
			e, err := convertXMLElement(t)
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, markup.ElementNode(e))
		case *etree.CharData:
			switch {
			case t.IsWhitespace():
			case t.IsCData():
				nodes = append(nodes, markup.RawNode(markup.NewRaw("<![CDATA["+t.Data+"]]>")))
			default:
				nodes = append(nodes, markup.TextNode(t.Data))
			}
		case *etree.Comment:
			nodes = append(nodes, markup.RawNode(markup.Comment(strings.TrimSpace(t.Data))))
		}
	}
	return nodes, nil
}

func convertXMLElement(el *etree.Element) (*markup.Element, error) {
	attrs := make(markup.AttrList, 0, len(el.Attr))
	for _, a := range el.Attr {
		attrs = append(attrs, markup.A(a.FullKey(), a.Value))
	}

	children, err := convertXMLTokens(el.Child)
	if err != nil {
		return nil, err
	}

	e, err := markup.NewNamed(el.FullTag(), attrs, children)
	if err != nil {
		return nil, fmt.Errorf("import <%s>: %w", el.FullTag(), err)
	}
	return e, nil
}
