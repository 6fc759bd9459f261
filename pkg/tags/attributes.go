package tags

import (
	"strings"

	"github.com/elevensolutions/whits/pkg/markup"
)

// Identity attributes

// ID sets the id attribute.
func ID(id string) markup.Attr { return markup.A("id", id) }

// Class sets the class attribute, joining multiple classes with spaces.
func Class(classes ...string) markup.Attr { return markup.A("class", strings.Join(classes, " ")) }

// StyleAttr sets the style attribute (named to avoid conflict with Style element).
func StyleAttr(style string) markup.Attr { return markup.A("style", style) }

// Data creates a data-* attribute: Data("id", "123") → data-id="123".
func Data(key, value string) markup.Attr { return markup.A("data-"+key, value) }

// Accessibility attributes

func Role(role string) markup.Attr         { return markup.A("role", role) }
func AriaLabel(label string) markup.Attr   { return markup.A("aria-label", label) }
func AriaHidden(hidden bool) markup.Attr   { return markup.A("aria-hidden", boolString(hidden)) }
func AriaCurrent(value string) markup.Attr { return markup.A("aria-current", value) }
func TabIndex(index int) markup.Attr       { return markup.A("tabindex", index) }

// Global attributes

func Hidden() markup.Attr                { return markup.A("hidden", true) }
func TitleAttr(title string) markup.Attr { return markup.A("title", title) }
func Lang(lang string) markup.Attr       { return markup.A("lang", lang) }
func Dir(dir string) markup.Attr         { return markup.A("dir", dir) }

// Link attributes

func Href(url string) markup.Attr      { return markup.A("href", url) }
func Target(target string) markup.Attr { return markup.A("target", target) }
func Rel(rel string) markup.Attr       { return markup.A("rel", rel) }

// Form attributes

func Name(name string) markup.Attr        { return markup.A("name", name) }
func Value(value string) markup.Attr      { return markup.A("value", value) }
func Type(t string) markup.Attr           { return markup.A("type", t) }
func Placeholder(text string) markup.Attr { return markup.A("placeholder", text) }
func Disabled() markup.Attr               { return markup.A("disabled", true) }
func Readonly() markup.Attr               { return markup.A("readonly", true) }
func Required() markup.Attr               { return markup.A("required", true) }
func Checked() markup.Attr                { return markup.A("checked", true) }
func Selected() markup.Attr               { return markup.A("selected", true) }
func Autofocus() markup.Attr              { return markup.A("autofocus", true) }
func Action(url string) markup.Attr       { return markup.A("action", url) }
func Method(method string) markup.Attr    { return markup.A("method", method) }
func For(id string) markup.Attr           { return markup.A("for", id) }
func Rows(n int) markup.Attr              { return markup.A("rows", n) }
func Cols(n int) markup.Attr              { return markup.A("cols", n) }

// Media attributes

func Src(url string) markup.Attr      { return markup.A("src", url) }
func Alt(text string) markup.Attr     { return markup.A("alt", text) }
func Width(w int) markup.Attr         { return markup.A("width", w) }
func Height(h int) markup.Attr        { return markup.A("height", h) }
func Loading(mode string) markup.Attr { return markup.A("loading", mode) }

// Document attributes

func Charset(charset string) markup.Attr { return markup.A("charset", charset) }
func Content(content string) markup.Attr { return markup.A("content", content) }

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
