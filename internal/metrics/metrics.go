// Package metrics collects prometheus metrics for renders, published pages
// and preview requests.
package metrics

import (
	"context"
	stderrors "errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/elevensolutions/whits/internal/errors"
	"github.com/elevensolutions/whits/pkg/markup"
)

// Config configures the collectors.
type Config struct {
	// Namespace is the metrics namespace (default: "whits").
	Namespace string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for render duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry receives the collectors. Default: a new registry with the
	// Go and process collectors.
	Registry *prometheus.Registry
}

// Option configures the collectors.
type Option func(*Config)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) Option {
	return func(c *Config) {
		c.Namespace = namespace
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) Option {
	return func(c *Config) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the histogram buckets.
func WithBuckets(buckets []float64) Option {
	return func(c *Config) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the prometheus registry.
func WithRegistry(registry *prometheus.Registry) Option {
	return func(c *Config) {
		c.Registry = registry
	}
}

// Metrics holds the collectors. It implements template.Observer.
type Metrics struct {
	registry *prometheus.Registry

	rendersTotal    *prometheus.CounterVec
	renderDuration  *prometheus.HistogramVec
	renderBytes     prometheus.Histogram
	renderErrors    *prometheus.CounterVec
	publishedTotal  *prometheus.CounterVec
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// New creates and registers the collectors.
//
// Metrics collected:
//   - whits_renders_total: renders by template and status
//   - whits_render_duration_seconds: render duration by template
//   - whits_render_bytes: size of rendered output
//   - whits_render_errors_total: failed renders by error type
//   - whits_pages_published_total: pages handed to the sink by status
//   - whits_http_requests_total: preview requests by route and code
//   - whits_http_request_duration_seconds: preview request duration by route
func New(opts ...Option) *Metrics {
	config := Config{
		Namespace: "whits",
		Buckets:   prometheus.DefBuckets,
	}
	for _, opt := range opts {
		opt(&config)
	}
	if config.Registry == nil {
		config.Registry = prometheus.NewRegistry()
		config.Registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	factory := promauto.With(config.Registry)

	return &Metrics{
		registry: config.Registry,

		rendersTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Name:        "renders_total",
			Help:        "Total number of template renders",
			ConstLabels: config.ConstLabels,
		}, []string{"template", "status"}),

		renderDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Name:        "render_duration_seconds",
			Help:        "Template render duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}, []string{"template"}),

		renderBytes: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Name:        "render_bytes",
			Help:        "Size of rendered output in bytes",
			ConstLabels: config.ConstLabels,
			Buckets:     prometheus.ExponentialBuckets(256, 4, 8), // 256B to 4MB
		}),

		renderErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Name:        "render_errors_total",
			Help:        "Total number of failed renders by error type",
			ConstLabels: config.ConstLabels,
		}, []string{"error_type"}),

		publishedTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Name:        "pages_published_total",
			Help:        "Total number of pages written to the output sink",
			ConstLabels: config.ConstLabels,
		}, []string{"status"}),

		requestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Name:        "http_requests_total",
			Help:        "Total number of preview requests",
			ConstLabels: config.ConstLabels,
		}, []string{"route", "code"}),

		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Name:        "http_request_duration_seconds",
			Help:        "Preview request duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}, []string{"route"}),
	}
}

// Registry returns the registry holding the collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveRender records one template render.
func (m *Metrics) ObserveRender(name string, duration time.Duration, size int, err error) {
	m.renderDuration.WithLabelValues(name).Observe(duration.Seconds())

	status := "success"
	if err != nil {
		status = "error"
		m.renderErrors.WithLabelValues(categorizeError(err)).Inc()
	} else {
		m.renderBytes.Observe(float64(size))
	}
	m.rendersTotal.WithLabelValues(name, status).Inc()
}

// ObservePublish records one page handed to the output sink.
func (m *Metrics) ObservePublish(err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	m.publishedTotal.WithLabelValues(status).Inc()
}

// Middleware records request counts and durations. Requests are labelled
// with their chi route pattern to keep cardinality bounded.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				route = pattern
			}
		}
		code := ww.Status()
		if code == 0 {
			code = http.StatusOK
		}
		m.requestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
		m.requestsTotal.WithLabelValues(route, strconv.Itoa(code)).Inc()
	})
}

// categorizeError returns a low-cardinality label for a render error.
func categorizeError(err error) string {
	switch {
	case stderrors.Is(err, context.Canceled), stderrors.Is(err, context.DeadlineExceeded):
		return "canceled"
	case stderrors.Is(err, markup.ErrInvalidContent), stderrors.Is(err, markup.ErrInvalidAttribute):
		return "contract"
	case markup.IsConstructionError(err):
		return "construction"
	}
	var we *errors.WhitsError
	if stderrors.As(err, &we) && we.Category != "" {
		return string(we.Category)
	}
	return "internal"
}
