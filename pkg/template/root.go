package template

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"github.com/a-h/templ"

	"github.com/elevensolutions/whits/pkg/markup"
)

// RootFactory builds the root of a document around already rendered
// content. It returns an Element or Compound.
type RootFactory[P any] func(ctx context.Context, params P, content *markup.Raw) (markup.Renderable, error)

// RootTemplate is a Template whose output is wrapped in a root element and
// prefixed with a doctype line.
type RootTemplate[P any] struct {
	inner   *Template[P]
	factory RootFactory[P]
}

// NewRoot creates a root template with static content. It uses
// DefaultDoctype and DefaultRootTag unless options say otherwise.
func NewRoot[P any](content any, opts ...Option) *RootTemplate[P] {
	return newRoot(New[P](content, opts...))
}

// NewRootFunc creates a root template whose content is built by fn.
func NewRootFunc[P any](fn Producer[P], opts ...Option) *RootTemplate[P] {
	return newRoot(NewFunc(fn, opts...))
}

func newRoot[P any](t *Template[P]) *RootTemplate[P] {
	r := &RootTemplate[P]{inner: t}
	if f := t.settings.rootFactory; f != nil {
		factory, ok := f.(RootFactory[P])
		if !ok {
			panic(fmt.Sprintf("template: root factory %T does not match template parameters", f))
		}
		r.factory = factory
	}
	return r
}

// Name returns the template name.
func (r *RootTemplate[P]) Name() string {
	return r.inner.Name()
}

// Doctype returns the doctype line, or "" when it is omitted.
func (r *RootTemplate[P]) Doctype() string {
	return r.inner.settings.doctype
}

// RenderString renders the document with params.
func (r *RootTemplate[P]) RenderString(ctx context.Context, params P) (string, error) {
	return observe(ctx, r.inner.settings, func(ctx context.Context) (string, error) {
		return r.renderDocument(ctx, params)
	})
}

// Render renders the document as raw markup.
func (r *RootTemplate[P]) Render(ctx context.Context, params P) (*markup.Raw, error) {
	return renderRaw(ctx, r, params)
}

// Component returns a templ.Component that renders the document with
// params.
func (r *RootTemplate[P]) Component(params P) templ.Component {
	return component[P](r, params)
}

func (r *RootTemplate[P]) renderDocument(ctx context.Context, params P) (string, error) {
	s := r.inner.settings

	body, err := r.inner.renderContent(ctx, params)
	if err != nil {
		return "", err
	}
	content := markup.NewRaw(body)

	var root markup.Renderable
	if r.factory != nil {
		root, err = r.factory(ctx, params, content)
		if err != nil {
			return "", fmt.Errorf("template %s: root: %w", s.name, err)
		}
		if isNil(root) {
			return "", fmt.Errorf("template %s: root: %w: factory returned nil", s.name, markup.ErrInvalidContent)
		}
	} else {
		root, err = markup.New(s.rootTag, s.rootAttrs, content)
		if err != nil {
			return "", fmt.Errorf("template %s: root: %w", s.name, err)
		}
	}

	var b strings.Builder
	if s.doctype != "" {
		b.WriteString(s.doctype)
		b.WriteByte('\n')
	}
	if err := root.WriteHTML(&b); err != nil {
		return "", fmt.Errorf("template %s: %w", s.name, err)
	}
	return b.String(), nil
}

func isNil(r markup.Renderable) bool {
	switch v := r.(type) {
	case nil:
		return true
	case *markup.Element:
		return v == nil
	case *markup.Compound:
		return v == nil
	default:
		rv := reflect.ValueOf(r)
		switch rv.Kind() {
		case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface:
			return rv.IsNil()
		}
		return false
	}
}
