package tags

import "github.com/elevensolutions/whits/pkg/markup"

// create builds a non-void element, splitting args into attributes and
// children.
func create(tag string, args []any) *markup.Element {
	attrs, children := markup.SplitArgs(args)
	return markup.Must(markup.New(tag, attrs, children...))
}

// void builds a void element.
func void(tag string, attrs []markup.AttrSource) *markup.Element {
	var list markup.AttrList
	for _, src := range attrs {
		if src != nil {
			list = append(list, src.Pairs()...)
		}
	}
	return markup.Must(markup.New(tag, list))
}

// Custom returns a constructor for an element that has none here, such as a
// custom element or an obsolete tag.
func Custom(tag string) func(args ...any) *markup.Element {
	return func(args ...any) *markup.Element { return create(tag, args) }
}

// Chain returns a constructor for a compound chain. Attributes and children
// go to the innermost element.
func Chain(selectors ...string) func(args ...any) *markup.Compound {
	return func(args ...any) *markup.Compound {
		attrs, children := markup.SplitArgs(args)
		return markup.MustCompound(markup.NewCompound(selectors, attrs, children...))
	}
}

// Document structure elements

func Html(args ...any) *markup.Element                   { return create("html", args) }
func Head(args ...any) *markup.Element                   { return create("head", args) }
func Body(args ...any) *markup.Element                   { return create("body", args) }
func Title(args ...any) *markup.Element                  { return create("title", args) }
func Meta(attrs ...markup.AttrSource) *markup.Element    { return void("meta", attrs) }
func Link(attrs ...markup.AttrSource) *markup.Element    { return void("link", attrs) }
func Base(attrs ...markup.AttrSource) *markup.Element    { return void("base", attrs) }
func Style(args ...any) *markup.Element                  { return create("style", args) }
func Script(args ...any) *markup.Element                 { return create("script", args) }
func Noscript(args ...any) *markup.Element               { return create("noscript", args) }
func Template(args ...any) *markup.Element               { return create("template", args) }
func Slot(args ...any) *markup.Element                   { return create("slot", args) }
func Command(attrs ...markup.AttrSource) *markup.Element { return void("command", attrs) }

// Content sectioning elements

func Header(args ...any) *markup.Element  { return create("header", args) }
func Footer(args ...any) *markup.Element  { return create("footer", args) }
func Main(args ...any) *markup.Element    { return create("main", args) }
func Nav(args ...any) *markup.Element     { return create("nav", args) }
func Section(args ...any) *markup.Element { return create("section", args) }
func Article(args ...any) *markup.Element { return create("article", args) }
func Aside(args ...any) *markup.Element   { return create("aside", args) }
func Address(args ...any) *markup.Element { return create("address", args) }
func H1(args ...any) *markup.Element      { return create("h1", args) }
func H2(args ...any) *markup.Element      { return create("h2", args) }
func H3(args ...any) *markup.Element      { return create("h3", args) }
func H4(args ...any) *markup.Element      { return create("h4", args) }
func H5(args ...any) *markup.Element      { return create("h5", args) }
func H6(args ...any) *markup.Element      { return create("h6", args) }
func Hgroup(args ...any) *markup.Element  { return create("hgroup", args) }

// Text content elements

func Div(args ...any) *markup.Element               { return create("div", args) }
func P(args ...any) *markup.Element                 { return create("p", args) }
func Span(args ...any) *markup.Element              { return create("span", args) }
func Pre(args ...any) *markup.Element               { return create("pre", args) }
func Blockquote(args ...any) *markup.Element        { return create("blockquote", args) }
func Ul(args ...any) *markup.Element                { return create("ul", args) }
func Ol(args ...any) *markup.Element                { return create("ol", args) }
func Li(args ...any) *markup.Element                { return create("li", args) }
func Dl(args ...any) *markup.Element                { return create("dl", args) }
func Dt(args ...any) *markup.Element                { return create("dt", args) }
func Dd(args ...any) *markup.Element                { return create("dd", args) }
func Hr(attrs ...markup.AttrSource) *markup.Element { return void("hr", attrs) }
func Figure(args ...any) *markup.Element            { return create("figure", args) }
func Figcaption(args ...any) *markup.Element        { return create("figcaption", args) }

// Inline text semantics

func A(args ...any) *markup.Element                  { return create("a", args) }
func Strong(args ...any) *markup.Element             { return create("strong", args) }
func Em(args ...any) *markup.Element                 { return create("em", args) }
func B(args ...any) *markup.Element                  { return create("b", args) }
func I(args ...any) *markup.Element                  { return create("i", args) }
func U(args ...any) *markup.Element                  { return create("u", args) }
func S(args ...any) *markup.Element                  { return create("s", args) }
func Small(args ...any) *markup.Element              { return create("small", args) }
func Mark(args ...any) *markup.Element               { return create("mark", args) }
func Sub(args ...any) *markup.Element                { return create("sub", args) }
func Sup(args ...any) *markup.Element                { return create("sup", args) }
func Code(args ...any) *markup.Element               { return create("code", args) }
func Kbd(args ...any) *markup.Element                { return create("kbd", args) }
func Samp(args ...any) *markup.Element               { return create("samp", args) }
func Var(args ...any) *markup.Element                { return create("var", args) }
func Abbr(args ...any) *markup.Element               { return create("abbr", args) }
func Time_(args ...any) *markup.Element              { return create("time", args) }
func Cite(args ...any) *markup.Element               { return create("cite", args) }
func Q(args ...any) *markup.Element                  { return create("q", args) }
func Dfn(args ...any) *markup.Element                { return create("dfn", args) }
func Ruby(args ...any) *markup.Element               { return create("ruby", args) }
func Rt(args ...any) *markup.Element                 { return create("rt", args) }
func Rp(args ...any) *markup.Element                 { return create("rp", args) }
func Bdi(args ...any) *markup.Element                { return create("bdi", args) }
func Bdo(args ...any) *markup.Element                { return create("bdo", args) }
func Ins(args ...any) *markup.Element                { return create("ins", args) }
func Del(args ...any) *markup.Element                { return create("del", args) }
func Br(attrs ...markup.AttrSource) *markup.Element  { return void("br", attrs) }
func Wbr(attrs ...markup.AttrSource) *markup.Element { return void("wbr", attrs) }

// DataElement creates a <data> element. For data-* attributes use Data.
func DataElement(args ...any) *markup.Element { return create("data", args) }

// Form elements

func Form(args ...any) *markup.Element                  { return create("form", args) }
func Input(attrs ...markup.AttrSource) *markup.Element  { return void("input", attrs) }
func Keygen(attrs ...markup.AttrSource) *markup.Element { return void("keygen", attrs) }
func Textarea(args ...any) *markup.Element              { return create("textarea", args) }
func Select(args ...any) *markup.Element                { return create("select", args) }
func Option(args ...any) *markup.Element                { return create("option", args) }
func Optgroup(args ...any) *markup.Element              { return create("optgroup", args) }
func Button(args ...any) *markup.Element                { return create("button", args) }
func Label(args ...any) *markup.Element                 { return create("label", args) }
func Fieldset(args ...any) *markup.Element              { return create("fieldset", args) }
func Legend(args ...any) *markup.Element                { return create("legend", args) }
func Datalist(args ...any) *markup.Element              { return create("datalist", args) }
func Output(args ...any) *markup.Element                { return create("output", args) }
func Progress(args ...any) *markup.Element              { return create("progress", args) }
func Meter(args ...any) *markup.Element                 { return create("meter", args) }

// Table elements

func Table(args ...any) *markup.Element              { return create("table", args) }
func Thead(args ...any) *markup.Element              { return create("thead", args) }
func Tbody(args ...any) *markup.Element              { return create("tbody", args) }
func Tfoot(args ...any) *markup.Element              { return create("tfoot", args) }
func Tr(args ...any) *markup.Element                 { return create("tr", args) }
func Th(args ...any) *markup.Element                 { return create("th", args) }
func Td(args ...any) *markup.Element                 { return create("td", args) }
func Caption(args ...any) *markup.Element            { return create("caption", args) }
func Colgroup(args ...any) *markup.Element           { return create("colgroup", args) }
func Col(attrs ...markup.AttrSource) *markup.Element { return void("col", attrs) }

// Media elements

func Img(attrs ...markup.AttrSource) *markup.Element    { return void("img", attrs) }
func Picture(args ...any) *markup.Element               { return create("picture", args) }
func Source(attrs ...markup.AttrSource) *markup.Element { return void("source", attrs) }
func Video(args ...any) *markup.Element                 { return create("video", args) }
func Audio(args ...any) *markup.Element                 { return create("audio", args) }
func Track(attrs ...markup.AttrSource) *markup.Element  { return void("track", attrs) }
func Iframe(args ...any) *markup.Element                { return create("iframe", args) }
func Embed(attrs ...markup.AttrSource) *markup.Element  { return void("embed", attrs) }
func Object(args ...any) *markup.Element                { return create("object", args) }
func Param(attrs ...markup.AttrSource) *markup.Element  { return void("param", attrs) }
func Canvas(args ...any) *markup.Element                { return create("canvas", args) }
func Svg(args ...any) *markup.Element                   { return create("svg", args) }
func Math(args ...any) *markup.Element                  { return create("math", args) }
func Map_(args ...any) *markup.Element                  { return create("map", args) }
func Area(attrs ...markup.AttrSource) *markup.Element   { return void("area", attrs) }

// Interactive elements

func Details(args ...any) *markup.Element { return create("details", args) }
func Summary(args ...any) *markup.Element { return create("summary", args) }
func Dialog(args ...any) *markup.Element  { return create("dialog", args) }
func Menu(args ...any) *markup.Element    { return create("menu", args) }
