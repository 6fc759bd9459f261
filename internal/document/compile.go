package document

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/elevensolutions/whits/internal/errors"
	"github.com/elevensolutions/whits/pkg/content"
	"github.com/elevensolutions/whits/pkg/markup"
	"github.com/elevensolutions/whits/pkg/template"
)

// Entry kinds. A map entry carries exactly one of these keys.
const (
	kindTag      = "tag"
	kindText     = "text"
	kindRaw      = "raw"
	kindComment  = "comment"
	kindMarkdown = "markdown"
	kindHTML     = "html"
	kindSVG      = "svg"
	kindXML      = "xml"
	kindCode     = "code"
	kindScript   = "script"
	kindStyle    = "style"

	keyAttrs    = "attrs"
	keyChildren = "children"
)

var kinds = []string{
	kindTag, kindText, kindRaw, kindComment, kindMarkdown, kindHTML,
	kindSVG, kindXML, kindCode, kindScript, kindStyle,
}

// Defaults are the render settings a document falls back to.
type Defaults struct {
	Doctype        string
	RootTag        string
	RootAttributes map[string]string
}

// Nodes builds the markup for the document content.
func (d *Document) Nodes() ([]markup.Node, error) {
	if d.Format == FormatXML {
		nodes, err := content.FromXML(d.xml)
		if err != nil {
			return nil, errors.New(errors.CodeDocumentDecode).WithFile(d.Source).Wrap(err)
		}
		return nodes, nil
	}

	children, err := d.entries(keyContent, d.Content)
	if err != nil {
		return nil, err
	}
	nodes, err := markup.Normalize(children...)
	if err != nil {
		return nil, d.contractError(keyContent, err)
	}
	return nodes, nil
}

// Template compiles the document. Documents with a root tag become root
// templates; the rest render as fragments. XML documents are always
// fragments. opts are applied after the document's own settings.
func (d *Document) Template(defaults Defaults, opts ...template.Option) (template.Renderer[struct{}], error) {
	nodes, err := d.Nodes()
	if err != nil {
		return nil, err
	}

	base := []template.Option{template.WithName(d.Source)}

	root := defaults.RootTag
	if d.Root != nil {
		root = *d.Root
	}
	if d.Format == FormatXML || root == "" {
		return template.New[struct{}](nodes, append(base, opts...)...), nil
	}

	doctype := defaults.Doctype
	if d.Doctype != nil {
		doctype = *d.Doctype
	}

	attrs := markup.Attrs{}
	for name, value := range defaults.RootAttributes {
		attrs[name] = value
	}
	for name, value := range d.RootAttributes {
		v, err := attrValue(value)
		if err != nil {
			return nil, d.contractError(keyRootAttributes+"."+name, err)
		}
		attrs[name] = v
	}

	base = append(base, template.WithDoctype(doctype), template.WithRootTag(root, attrs))
	return template.NewRoot[struct{}](nodes, append(base, opts...)...), nil
}

func (d *Document) entries(path string, list []any) ([]any, error) {
	out := make([]any, 0, len(list))
	for i, item := range list {
		v, err := d.entry(fmt.Sprintf("%s[%d]", path, i), item)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// entry converts one decoded value into element content.
func (d *Document) entry(path string, v any) (any, error) {
	if v == nil {
		return nil, nil
	}
	if text, ok := scalarText(v); ok {
		return text, nil
	}

	m, ok := asMap(v)
	if !ok {
		return nil, d.contractError(path, fmt.Errorf("entry must be text or a map, got %T", v))
	}

	kind, err := entryKind(m)
	if err != nil {
		return nil, d.contractError(path, err)
	}
	value := m[kind]

	if kind == kindTag {
		return d.element(path, m)
	}

	switch kind {
	case kindCode:
		return d.code(path, value)
	case kindMarkdown:
		return d.markdown(path, value)
	}

	text, ok := value.(string)
	if !ok {
		return nil, d.contractError(path+"."+kind, fmt.Errorf("%s must be a string, got %T", kind, value))
	}

	switch kind {
	case kindText:
		return text, nil
	case kindRaw:
		return markup.NewRaw(text), nil
	case kindComment:
		return markup.Comment(text), nil
	case kindScript:
		return markup.Script(text), nil
	case kindStyle:
		return markup.StyleSheet(text), nil
	case kindHTML:
		nodes, err := content.FromHTML(text)
		if err != nil {
			return nil, d.contractError(path+"."+kind, err)
		}
		return nodes, nil
	default: // svg, xml
		nodes, err := content.FromXML(text)
		if err != nil {
			return nil, d.contractError(path+"."+kind, err)
		}
		return nodes, nil
	}
}

// entryKind finds the single kind key of a map entry and checks that the
// remaining keys belong to it.
func entryKind(m map[string]any) (string, error) {
	var found []string
	for _, k := range kinds {
		if _, ok := m[k]; ok {
			found = append(found, k)
		}
	}
	switch len(found) {
	case 0:
		return "", fmt.Errorf("entry has none of the keys %s", strings.Join(kinds, ", "))
	case 1:
	default:
		return "", fmt.Errorf("entry has more than one kind: %s", strings.Join(found, ", "))
	}

	kind := found[0]
	for k := range m {
		if k == kind {
			continue
		}
		if kind == kindTag && (k == keyAttrs || k == keyChildren) {
			continue
		}
		return "", fmt.Errorf("unexpected key %q in %s entry", k, kind)
	}
	return kind, nil
}

func (d *Document) element(path string, m map[string]any) (any, error) {
	var attrs markup.Attrs
	if raw, ok := m[keyAttrs]; ok && raw != nil {
		am, ok := asMap(raw)
		if !ok {
			return nil, d.contractError(path+"."+keyAttrs, fmt.Errorf("attrs must be a map, got %T", raw))
		}
		attrs = make(markup.Attrs, len(am))
		for name, value := range am {
			v, err := attrValue(value)
			if err != nil {
				return nil, d.contractError(path+"."+keyAttrs+"."+name, err)
			}
			attrs[name] = v
		}
	}

	var children []any
	switch raw := m[keyChildren].(type) {
	case nil:
	case []any:
		var err error
		if children, err = d.entries(path+"."+keyChildren, raw); err != nil {
			return nil, err
		}
	default:
		child, err := d.entry(path+"."+keyChildren, raw)
		if err != nil {
			return nil, err
		}
		children = []any{child}
	}

	var (
		node any
		err  error
	)
	switch tag := m[kindTag].(type) {
	case string:
		node, err = markup.New(tag, attrs, children...)
	case []any:
		selectors := make([]string, len(tag))
		for i, s := range tag {
			str, ok := s.(string)
			if !ok {
				return nil, d.contractError(fmt.Sprintf("%s.tag[%d]", path, i), fmt.Errorf("selector must be a string, got %T", s))
			}
			selectors[i] = str
		}
		node, err = markup.NewCompound(selectors, attrs, children...)
	default:
		return nil, d.contractError(path+"."+kindTag, fmt.Errorf("tag must be a selector or a list of selectors, got %T", tag))
	}
	if err != nil {
		return nil, d.elementError(path, err)
	}
	return node, nil
}

func (d *Document) elementError(path string, err error) *errors.WhitsError {
	if stderrors.Is(err, markup.ErrInvalidContent) || stderrors.Is(err, markup.ErrInvalidAttribute) {
		return d.contractError(path, err)
	}
	return errors.New(errors.CodeRenderConstruct).WithFile(d.Source).WithPath(path).Wrap(err)
}

// code accepts "source" or {lang, source, lineNumbers}.
func (d *Document) code(path string, v any) (any, error) {
	path += "." + kindCode

	if source, ok := v.(string); ok {
		return d.highlight(path, "", source)
	}
	m, ok := asMap(v)
	if !ok {
		return nil, d.contractError(path, fmt.Errorf("code must be a string or a map, got %T", v))
	}

	var lang, source string
	var opts []content.HighlightOption
	for k, value := range m {
		switch k {
		case "lang":
			lang, ok = value.(string)
		case "source":
			source, ok = value.(string)
		case "lineNumbers":
			var on bool
			on, ok = value.(bool)
			if on {
				opts = append(opts, content.WithLineNumbers())
			}
		case "style":
			var style string
			style, ok = value.(string)
			opts = append(opts, content.WithStyle(style))
		default:
			return nil, d.contractError(path, fmt.Errorf("unexpected key %q in code entry", k))
		}
		if !ok {
			return nil, d.contractError(path+"."+k, fmt.Errorf("unexpected value %v", value))
		}
	}
	return d.highlight(path, lang, source, opts...)
}

func (d *Document) highlight(path, lang, source string, opts ...content.HighlightOption) (any, error) {
	raw, err := content.Highlight(lang, source, opts...)
	if err != nil {
		return nil, errors.New(errors.CodeRenderFailed).WithFile(d.Source).WithPath(path).Wrap(err)
	}
	return raw, nil
}

// markdown accepts "source" or {source, unsafe, sanitize, hardWraps}.
func (d *Document) markdown(path string, v any) (any, error) {
	path += "." + kindMarkdown

	var source string
	var opts []content.MarkdownOption
	switch v := v.(type) {
	case string:
		source = v
	default:
		m, ok := asMap(v)
		if !ok {
			return nil, d.contractError(path, fmt.Errorf("markdown must be a string or a map, got %T", v))
		}
		flags := map[string]content.MarkdownOption{
			"unsafe":    content.WithUnsafeHTML(),
			"sanitize":  content.WithSanitize(),
			"hardWraps": content.WithHardWraps(),
		}
		for k, value := range m {
			if k == "source" {
				if source, ok = value.(string); !ok {
					return nil, d.contractError(path+".source", fmt.Errorf("source must be a string, got %T", value))
				}
				continue
			}
			opt, known := flags[k]
			if !known {
				return nil, d.contractError(path, fmt.Errorf("unexpected key %q in markdown entry", k))
			}
			on, isBool := value.(bool)
			if !isBool {
				return nil, d.contractError(path+"."+k, fmt.Errorf("%s must be a boolean, got %T", k, value))
			}
			if on {
				opts = append(opts, opt)
			}
		}
	}

	raw, err := content.Markdown(source, opts...)
	if err != nil {
		return nil, errors.New(errors.CodeRenderFailed).WithFile(d.Source).WithPath(path).Wrap(err)
	}
	return raw, nil
}

// scalarText returns the text for string and number entries.
func scalarText(v any) (string, bool) {
	switch v := v.(type) {
	case string:
		return v, true
	case json.Number:
		return v.String(), true
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprint(v), true
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	default:
		return "", false
	}
}

// attrValue converts a decoded attribute value into one markup accepts.
// Lists become space-separated strings (class lists) and maps become
// string maps (style declarations).
func attrValue(v any) (any, error) {
	if v == nil {
		return false, nil
	}
	if b, ok := v.(bool); ok {
		return b, nil
	}
	if text, ok := scalarText(v); ok {
		return text, nil
	}
	if list, ok := v.([]any); ok {
		parts := make([]string, 0, len(list))
		for _, item := range list {
			text, ok := scalarText(item)
			if !ok {
				return nil, fmt.Errorf("list items must be text, got %T", item)
			}
			parts = append(parts, text)
		}
		return strings.Join(parts, " "), nil
	}
	if m, ok := asMap(v); ok {
		out := make(map[string]string, len(m))
		for name, value := range m {
			text, ok := scalarText(value)
			if !ok {
				return nil, fmt.Errorf("value of %q must be text, got %T", name, value)
			}
			out[name] = text
		}
		return out, nil
	}
	return nil, fmt.Errorf("unsupported attribute value %T", v)
}
