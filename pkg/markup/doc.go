// Package markup builds in-memory element trees and serialises them to
// HTML or SVG text.
//
// # Core Types
//
// Element is a single element with a Selector (tag, id, classes), an
// attribute bag, an inline StyleMap and an ordered child list. Compound is a
// chain of elements each nested as the only child of the previous one. Raw
// marks already-valid markup that is written without encoding. Node is the
// closed union of child kinds: element, compound, raw and text.
//
// # Building
//
//	page, err := markup.New("main#content.wide", markup.Attrs{"lang": "en"},
//	    markup.Must(markup.New("h1", nil, "Hello, world!")),
//	    markup.Comment("generated"),
//	)
//
//	nav, err := markup.NewCompound([]string{"nav", "ul.menu", "li"}, nil, "Home")
//
// A selector's bare token is the tag (div when missing), '#' tokens set the
// id and '.' tokens add classes. Attributes given to the constructor win
// over the selector: an explicit class replaces the selector classes.
//
// # Attributes
//
// class, style and id are projections of the element's class set, style
// map and selector id, and always render first in that order. Other
// attributes render in insertion order. Attrs maps are applied in sorted key
// order; use AttrList or A for explicit ordering. true renders a bare
// attribute name and false or "" omits the attribute.
//
// # Rendering
//
// Rendering is a pure read and may run any number of times. Text children
// are entity encoded and their whitespace collapsed, except inside pre,
// textarea, listing, plaintext and xmp. Output is never pretty-printed.
//
// # Errors
//
// Void elements (img, br, ...) reject children at construction with
// ErrVoidChildren and reject later mutation with ErrFrozenChildren.
// Compound chains need at least two selectors (ErrCompoundSelectors).
// Unrecognised child values fail with ErrInvalidContent.
package markup
