// Package tags provides one constructor per HTML element.
//
// Non-void constructors take any mix of attributes (markup.Attrs,
// markup.AttrList, markup.Attr or the helpers in this package) and children:
//
//	tags.Ul(tags.Class("menu"),
//		tags.Li(tags.A(tags.Href("/"), "Home")),
//	)
//
// Void element constructors only accept attributes, so giving them children
// is a compile error. Constructors panic on contract errors such as an
// unsupported child type; use markup.New when the input is not trusted.
package tags
