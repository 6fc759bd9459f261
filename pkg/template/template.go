package template

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/a-h/templ"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/elevensolutions/whits/pkg/markup"
)

// Producer builds template content from parameters. The result may be any
// value markup.Normalize accepts.
type Producer[P any] func(ctx context.Context, params P) (any, error)

// Renderer is implemented by Template and RootTemplate.
type Renderer[P any] interface {
	RenderString(ctx context.Context, params P) (string, error)
	Render(ctx context.Context, params P) (*markup.Raw, error)
	Name() string
}

// Template renders content, optionally built from parameters of type P.
type Template[P any] struct {
	produce  Producer[P]
	settings settings
}

// New creates a template with static content. The content is normalised
// on every render, so later mutations of the tree show up in the output.
func New[P any](content any, opts ...Option) *Template[P] {
	return NewFunc(func(context.Context, P) (any, error) { return content, nil }, opts...)
}

// NewFunc creates a template whose content is built by fn on every render.
func NewFunc[P any](fn Producer[P], opts ...Option) *Template[P] {
	s := defaultSettings()
	for _, opt := range opts {
		opt(&s)
	}
	return &Template[P]{produce: fn, settings: s}
}

// Name returns the template name.
func (t *Template[P]) Name() string {
	return t.settings.name
}

// RenderString renders the content with params.
func (t *Template[P]) RenderString(ctx context.Context, params P) (string, error) {
	return observe(ctx, t.settings, func(ctx context.Context) (string, error) {
		return t.renderContent(ctx, params)
	})
}

// Render renders the content with params as raw markup, ready to be used as
// a child of another element.
func (t *Template[P]) Render(ctx context.Context, params P) (*markup.Raw, error) {
	return renderRaw(ctx, t, params)
}

// Component returns a templ.Component that renders the template with
// params.
func (t *Template[P]) Component(params P) templ.Component {
	return component[P](t, params)
}

// renderContent resolves and renders the content without tracing.
func (t *Template[P]) renderContent(ctx context.Context, params P) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	content, err := t.produce(ctx, params)
	if err != nil {
		return "", fmt.Errorf("template %s: %w", t.settings.name, err)
	}

	nodes, err := markup.Normalize(content)
	if err != nil {
		return "", fmt.Errorf("template %s: %w", t.settings.name, err)
	}

	var b strings.Builder
	if err := markup.RenderNodes(&b, nodes); err != nil {
		return "", fmt.Errorf("template %s: %w", t.settings.name, err)
	}
	return b.String(), nil
}

func renderRaw[P any](ctx context.Context, r Renderer[P], params P) (*markup.Raw, error) {
	s, err := r.RenderString(ctx, params)
	if err != nil {
		return nil, err
	}
	return markup.NewRaw(s), nil
}

func component[P any](r Renderer[P], params P) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		s, err := r.RenderString(ctx, params)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, s)
		return err
	})
}

// observe runs render inside a span when a tracer is configured and reports
// the outcome to the observer.
func observe(ctx context.Context, s settings, render func(context.Context) (string, error)) (string, error) {
	start := time.Now()

	var span trace.Span
	if s.tracer != nil {
		ctx, span = s.tracer.Start(ctx, "whits.render",
			trace.WithAttributes(attribute.String("whits.template", s.name)),
		)
		defer span.End()
	}

	out, err := render(ctx)

	if span != nil {
		span.SetAttributes(attribute.Int("whits.bytes", len(out)))
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		} else {
			span.SetStatus(codes.Ok, "")
		}
	}

	if s.observer != nil {
		s.observer.ObserveRender(s.name, time.Since(start), len(out), err)
	}
	return out, err
}
