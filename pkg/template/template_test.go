package template

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/elevensolutions/whits/pkg/markup"
	"github.com/elevensolutions/whits/pkg/tags"
)

type page struct {
	Title string
	Items []string
}

func TestStaticTemplate(t *testing.T) {
	tpl := New[struct{}]([]any{
		tags.H1("Hello, world!"),
		markup.NewRaw("<hr>"),
		"  some   text  ",
	})
	out, err := tpl.RenderString(context.Background(), struct{}{})
	require.NoError(t, err)
	assert.Equal(t, "<h1>Hello, world!</h1><hr> some text ", out)
}

func TestStaticTemplateSeesMutations(t *testing.T) {
	list := tags.Ul()
	tpl := New[struct{}](list)

	out, err := tpl.RenderString(context.Background(), struct{}{})
	require.NoError(t, err)
	assert.Equal(t, "<ul></ul>", out)

	require.NoError(t, list.Append(tags.Li("x")))
	out, err = tpl.RenderString(context.Background(), struct{}{})
	require.NoError(t, err)
	assert.Equal(t, "<ul><li>x</li></ul>", out)
}

func TestProducerTemplate(t *testing.T) {
	tpl := NewFunc(func(_ context.Context, p page) (any, error) {
		return []any{
			tags.H1(p.Title),
			tags.Ul(markup.Each(p.Items, func(item string, _ int) any { return tags.Li(item) })),
		}, nil
	})

	out, err := tpl.RenderString(context.Background(), page{Title: "List", Items: []string{"a", "b"}})
	require.NoError(t, err)
	assert.Equal(t, "<h1>List</h1><ul><li>a</li><li>b</li></ul>", out)

	raw, err := tpl.Render(context.Background(), page{Title: "Empty"})
	require.NoError(t, err)
	assert.Equal(t, "<h1>Empty</h1><ul></ul>", raw.Text())
}

func TestNestedTemplates(t *testing.T) {
	item := NewFunc(func(_ context.Context, name string) (any, error) {
		return tags.Li(name), nil
	})
	list := NewFunc(func(ctx context.Context, names []string) (any, error) {
		ul := tags.Ul()
		for _, name := range names {
			raw, err := item.Render(ctx, name)
			if err != nil {
				return nil, err
			}
			if err := ul.Append(raw); err != nil {
				return nil, err
			}
		}
		return ul, nil
	})

	out, err := list.RenderString(context.Background(), []string{"x", "<y>"})
	require.NoError(t, err)
	assert.Equal(t, "<ul><li>x</li><li>&lt;y&gt;</li></ul>", out)
}

func TestProducerWaitsForSlowContent(t *testing.T) {
	tpl := NewFunc(func(ctx context.Context, _ struct{}) (any, error) {
		ch := make(chan string, 1)
		go func() {
			time.Sleep(5 * time.Millisecond)
			ch <- "late"
		}()
		select {
		case s := <-ch:
			return tags.P(s), nil
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	})

	out, err := tpl.RenderString(context.Background(), struct{}{})
	require.NoError(t, err)
	assert.Equal(t, "<p>late</p>", out)
}

func TestEmptyContent(t *testing.T) {
	for _, content := range []any{nil, false, "", []any{}} {
		out, err := New[struct{}](content).RenderString(context.Background(), struct{}{})
		require.NoError(t, err)
		assert.Equal(t, "", out)
	}
}

func TestProducerError(t *testing.T) {
	boom := errors.New("boom")
	tpl := NewFunc(func(context.Context, struct{}) (any, error) { return nil, boom }, WithName("broken"))
	_, err := tpl.RenderString(context.Background(), struct{}{})
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "template broken")
}

func TestInvalidContentIsContractError(t *testing.T) {
	tpl := New[struct{}](map[string]string{"not": "content"})
	_, err := tpl.RenderString(context.Background(), struct{}{})
	assert.ErrorIs(t, err, markup.ErrInvalidContent)
}

func TestCancelledContext(t *testing.T) {
	called := false
	tpl := NewFunc(func(context.Context, struct{}) (any, error) {
		called = true
		return "x", nil
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := tpl.RenderString(ctx, struct{}{})
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}

func TestConcurrentRenders(t *testing.T) {
	tree := tags.Div(tags.Class("shared"), tags.P("same"), tags.Img(tags.Src("a.png")))
	tpl := New[struct{}](tree)

	var wg sync.WaitGroup
	results := make([]string, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = tpl.RenderString(context.Background(), struct{}{})
		}(i)
	}
	wg.Wait()

	for _, r := range results {
		assert.Equal(t, tree.HTML(), r)
	}
}

func TestComponent(t *testing.T) {
	tpl := NewFunc(func(_ context.Context, name string) (any, error) { return tags.B(name), nil })
	var buf bytes.Buffer
	require.NoError(t, tpl.Component("bold").Render(context.Background(), &buf))
	assert.Equal(t, "<b>bold</b>", buf.String())
}

type observation struct {
	name string
	size int
	err  error
}

func TestObserver(t *testing.T) {
	var got []observation
	obs := ObserverFunc(func(name string, d time.Duration, size int, err error) {
		assert.GreaterOrEqual(t, d, time.Duration(0))
		got = append(got, observation{name, size, err})
	})

	tpl := New[struct{}](tags.P("hi"), WithName("greeting"), WithObserver(obs))
	_, err := tpl.RenderString(context.Background(), struct{}{})
	require.NoError(t, err)

	bad := New[struct{}](42, WithName("bad"), WithObserver(obs))
	_, err = bad.RenderString(context.Background(), struct{}{})
	require.Error(t, err)

	require.Len(t, got, 2)
	assert.Equal(t, observation{"greeting", len("<p>hi</p>"), nil}, got[0])
	assert.Equal(t, "bad", got[1].name)
	assert.ErrorIs(t, got[1].err, markup.ErrInvalidContent)
}

// recordingTracer wraps the no-op tracer and remembers what was traced.
type recordingTracer struct {
	trace.Tracer
	names []string
	spans []*recordingSpan
}

func (r *recordingTracer) Start(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	ctx, span := r.Tracer.Start(ctx, name, opts...)
	rec := &recordingSpan{Span: span}
	r.names = append(r.names, name)
	r.spans = append(r.spans, rec)
	return ctx, rec
}

type recordingSpan struct {
	trace.Span
	status codes.Code
	errs   []error
	ended  bool
}

func (s *recordingSpan) SetStatus(code codes.Code, _ string)           { s.status = code }
func (s *recordingSpan) RecordError(err error, _ ...trace.EventOption) { s.errs = append(s.errs, err) }
func (s *recordingSpan) End(...trace.SpanEndOption)                    { s.ended = true }

func newRecordingTracer() *recordingTracer {
	return &recordingTracer{Tracer: noop.NewTracerProvider().Tracer("test")}
}

func TestTracing(t *testing.T) {
	tracer := newRecordingTracer()

	tpl := New[struct{}](tags.P("traced"), WithTracer(tracer))
	_, err := tpl.RenderString(context.Background(), struct{}{})
	require.NoError(t, err)

	bad := New[struct{}](3.14, WithTracer(tracer))
	_, err = bad.RenderString(context.Background(), struct{}{})
	require.Error(t, err)

	require.Equal(t, []string{"whits.render", "whits.render"}, tracer.names)
	assert.True(t, tracer.spans[0].ended)
	assert.Equal(t, codes.Ok, tracer.spans[0].status)
	assert.Empty(t, tracer.spans[0].errs)
	assert.Equal(t, codes.Error, tracer.spans[1].status)
	require.Len(t, tracer.spans[1].errs, 1)
}

func TestWithTracerNameUsesGlobalProvider(t *testing.T) {
	tpl := New[struct{}]("x", WithTracerName(""))
	require.NotNil(t, tpl.settings.tracer)
	out, err := tpl.RenderString(context.Background(), struct{}{})
	require.NoError(t, err)
	assert.Equal(t, "x", out)
}
