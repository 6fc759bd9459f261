package metrics

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elevensolutions/whits/internal/errors"
	"github.com/elevensolutions/whits/pkg/markup"
	"github.com/elevensolutions/whits/pkg/template"
)

func newTestMetrics() *Metrics {
	return New(WithRegistry(prometheus.NewRegistry()))
}

func TestObserveRender(t *testing.T) {
	m := newTestMetrics()

	m.ObserveRender("index.yaml", 2*time.Millisecond, 1024, nil)
	m.ObserveRender("index.yaml", time.Millisecond, 0, fmt.Errorf("x: %w", markup.ErrInvalidContent))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.rendersTotal.WithLabelValues("index.yaml", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.rendersTotal.WithLabelValues("index.yaml", "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.renderErrors.WithLabelValues("contract")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.renderBytes))
}

func TestObserverFromTemplate(t *testing.T) {
	m := newTestMetrics()
	tpl := template.New[struct{}]("hello", template.WithName("greeting"), template.WithObserver(m))

	_, err := tpl.RenderString(context.Background(), struct{}{})
	require.NoError(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.rendersTotal.WithLabelValues("greeting", "success")))
}

func TestObservePublish(t *testing.T) {
	m := newTestMetrics()
	m.ObservePublish(nil)
	m.ObservePublish(nil)
	m.ObservePublish(stderrors.New("disk full"))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.publishedTotal.WithLabelValues("success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.publishedTotal.WithLabelValues("error")))
}

func TestCategorizeError(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{context.Canceled, "canceled"},
		{fmt.Errorf("t: %w", context.DeadlineExceeded), "canceled"},
		{markup.ErrInvalidAttribute, "contract"},
		{fmt.Errorf("t: %w", markup.ErrVoidChildren), "construction"},
		{markup.ErrCompoundSelectors, "construction"},
		{errors.New(errors.CodeOutputWrite), "output"},
		{stderrors.New("boom"), "internal"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, categorizeError(tt.err), tt.err.Error())
	}
}

func TestMiddleware(t *testing.T) {
	m := newTestMetrics()

	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Get("/*", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing.html" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte("ok"))
	})

	for _, path := range []string{"/index.html", "/about.html", "/missing.html"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requestsTotal.WithLabelValues("/*", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requestsTotal.WithLabelValues("/*", "404")))
}

func TestHandler(t *testing.T) {
	m := newTestMetrics()
	m.ObservePublish(nil)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), `whits_pages_published_total{status="success"} 1`))
}

func TestDefaultRegistryHasRuntimeCollectors(t *testing.T) {
	m := New()
	families, err := m.Registry().Gather()
	require.NoError(t, err)

	var names []string
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "go_goroutines")
}
