// Package content turns foreign formats into markup nodes: Markdown,
// highlighted source code, sanitised HTML and parsed HTML or XML fragments.
//
// Converters that produce finished markup return *markup.Raw, which can be
// used directly as a child. The HTML and XML importers build real element
// trees instead, so the result can be inspected and modified before it is
// rendered.
package content
