package tags

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/elevensolutions/whits/pkg/markup"
)

func TestElements(t *testing.T) {
	tests := []struct {
		name     string
		el       *markup.Element
		expected string
	}{
		{"empty div", Div(), "<div></div>"},
		{"text child", P("Hello, world!"), "<p>Hello, world!</p>"},
		{"attribute helpers", A(Href("/docs"), Class("nav", "active"), "Docs"), `<a class="nav active" href="/docs">Docs</a>`},
		{"attrs map", Span(markup.Attrs{"title": "t"}, "x"), `<span title="t">x</span>`},
		{"nested", Ul(Li("a"), Li("b")), "<ul><li>a</li><li>b</li></ul>"},
		{"void", Img(Src("a.png"), Alt("An image")), `<img src="a.png" alt="An image">`},
		{"void without attributes", Br(), "<br>"},
		{"boolean attribute", Input(Type("checkbox"), Checked()), `<input type="checkbox" checked>`},
		{"nil attribute source", Hr(nil), "<hr>"},
		{"meta", Meta(Charset("utf-8")), `<meta charset="utf-8">`},
		{"aria", Button(AriaHidden(false), TabIndex(2), "go"), `<button aria-hidden="false" tabindex="2">go</button>`},
		{"data", Div(Data("id", "42")), `<div data-id="42"></div>`},
		{"time", Time_(markup.A("datetime", "2024-01-01"), "New year"), `<time datetime="2024-01-01">New year</time>`},
		{"custom", Custom("my-widget")(ID("w1"), "x"), `<my-widget id="w1">x</my-widget>`},
		{"constructor children", Div(Hr, Span), "<div><hr><span></span></div>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.el.HTML())
		})
	}
}

func TestVoidConstructorsAreVoid(t *testing.T) {
	voids := []*markup.Element{
		Area(), Base(), Br(), Col(), Command(), Embed(), Hr(), Img(),
		Input(), Keygen(), Link(), Meta(), Param(), Source(), Track(), Wbr(),
	}
	for _, el := range voids {
		assert.True(t, el.IsVoid(), el.Tag())
		assert.True(t, markup.IsVoidElement(el.Tag()))
	}
}

func TestChain(t *testing.T) {
	link := Chain("nav", "ul", "li", "a")
	c := link(Href("/"), "Home")
	assert.Equal(t, `<nav><ul><li><a href="/">Home</a></li></ul></nav>`, c.HTML())
}

func TestChainPanicsOnSingleSelector(t *testing.T) {
	assert.Panics(t, func() { Chain("div")() })
}

func TestConstructorsPanicOnInvalidContent(t *testing.T) {
	assert.Panics(t, func() { Div(struct{}{}) })
}

func TestPreformatted(t *testing.T) {
	assert.Equal(t, "<pre><code>a  b</code></pre>", Pre(Code("a  b")).HTML())
	assert.Equal(t, "<textarea rows=\"3\">x  y</textarea>", Textarea(Rows(3), "x  y").HTML())
}
