package content

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/elevensolutions/whits/pkg/markup"
)

// FromHTML parses an HTML fragment, as if it appeared inside <body>, into
// element nodes. Text inside script and style elements becomes raw content;
// comments are kept and doctypes dropped.
func FromHTML(fragment string) ([]markup.Node, error) {
	context := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	parsed, err := html.ParseFragment(strings.NewReader(fragment), context)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	nodes := make([]markup.Node, 0, len(parsed))
	for _, n := range parsed {
		node, ok, err := convertHTML(n, false)
		if err != nil {
			return nil, err
		}
		if ok {
			nodes = append(nodes, node)
		}
	}
	return nodes, nil
}

// convertHTML converts a parsed node. rawText is set for the children of
// script and style elements.
func convertHTML(n *html.Node, rawText bool) (markup.Node, bool, error) {
	switch n.Type {
	case html.TextNode:
		if rawText {
			return markup.RawNode(markup.NewRaw(n.Data)), true, nil
		}
		return markup.TextNode(n.Data), n.Data != "", nil

	case html.CommentNode:
		return markup.RawNode(markup.Comment(strings.TrimSpace(n.Data))), true, nil

	case html.ElementNode:
		attrs := make(markup.AttrList, 0, len(n.Attr))
		for _, a := range n.Attr {
			key := a.Key
			if a.Namespace != "" {
				key = a.Namespace + ":" + a.Key
			}
			attrs = append(attrs, markup.A(key, a.Val))
		}

		raw := n.DataAtom == atom.Script || n.DataAtom == atom.Style
		var children []any
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			child, ok, err := convertHTML(c, raw)
			if err != nil {
				return markup.Node{}, false, err
			}
			if ok {
				children = append(children, child)
			}
		}

		e, err := markup.NewNamed(n.Data, attrs, children...)
		if err != nil {
			return markup.Node{}, false, fmt.Errorf("import <%s>: %w", n.Data, err)
		}
		return markup.ElementNode(e), true, nil

	default:
		return markup.Node{}, false, nil
	}
}
