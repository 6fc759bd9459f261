package template

import (
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/elevensolutions/whits/pkg/markup"
)

// DefaultDoctype is the doctype written by root templates unless configured
// otherwise.
const DefaultDoctype = "<!DOCTYPE html>"

// DefaultRootTag is the root element used by root templates.
const DefaultRootTag = "html"

// Default tracer name for render spans.
const defaultTracerName = "whits"

// Observer is notified after every render. It is how render metrics are
// collected.
type Observer interface {
	ObserveRender(name string, duration time.Duration, size int, err error)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(name string, duration time.Duration, size int, err error)

// ObserveRender implements Observer.
func (f ObserverFunc) ObserveRender(name string, duration time.Duration, size int, err error) {
	f(name, duration, size, err)
}

// settings holds the configuration shared by Template and RootTemplate.
// The root fields are ignored by plain templates.
type settings struct {
	name     string
	tracer   trace.Tracer
	observer Observer

	doctype     string
	rootTag     string
	rootAttrs   markup.AttrSource
	rootFactory any
}

func defaultSettings() settings {
	return settings{
		name:    "template",
		doctype: DefaultDoctype,
		rootTag: DefaultRootTag,
	}
}

// Option configures a template.
type Option func(*settings)

// WithName sets the name reported to tracers and observers.
func WithName(name string) Option {
	return func(s *settings) {
		s.name = name
	}
}

// WithTracer traces every render with a span from tracer.
func WithTracer(tracer trace.Tracer) Option {
	return func(s *settings) {
		s.tracer = tracer
	}
}

// WithTracerName traces renders with a tracer from the global OpenTelemetry
// provider. The provider is resolved when the option is applied, so
// configure it before creating templates.
func WithTracerName(name string) Option {
	return func(s *settings) {
		if name == "" {
			name = defaultTracerName
		}
		s.tracer = otel.Tracer(name)
	}
}

// WithObserver reports every render to o.
func WithObserver(o Observer) Option {
	return func(s *settings) {
		s.observer = o
	}
}

// WithDoctype sets the doctype line of a root template. An empty string
// omits it.
func WithDoctype(doctype string) Option {
	return func(s *settings) {
		s.doctype = doctype
	}
}

// WithoutDoctype omits the doctype line of a root template.
func WithoutDoctype() Option {
	return WithDoctype("")
}

// WithRootTag sets the root element of a root template and its attributes.
// attrs may be nil.
func WithRootTag(tag string, attrs markup.AttrSource) Option {
	return func(s *settings) {
		s.rootTag = tag
		s.rootAttrs = attrs
		s.rootFactory = nil
	}
}

// WithRootFactory replaces the root element of a root template with the
// result of fn, which receives the rendered content. P must match the
// template's parameter type; NewRoot panics otherwise.
func WithRootFactory[P any](fn RootFactory[P]) Option {
	return func(s *settings) {
		s.rootFactory = fn
	}
}
