package build

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	stderrors "errors"
	"path/filepath"
	"strconv"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/elevensolutions/whits/internal/config"
	"github.com/elevensolutions/whits/internal/document"
	"github.com/elevensolutions/whits/internal/errors"
	"github.com/elevensolutions/whits/internal/logging"
	"github.com/elevensolutions/whits/internal/metrics"
	"github.com/elevensolutions/whits/internal/publish"
	"github.com/elevensolutions/whits/pkg/template"
)

// ManifestName is the name of the manifest written next to the pages.
const ManifestName = "manifest.json"

// Page is the outcome of building one document.
type Page struct {
	// Source is the document path relative to the source directory.
	Source string

	// Output is the name the page was published under.
	Output string

	// Size is the rendered size in bytes.
	Size int

	// Hash is the hex SHA-256 of the rendered page.
	Hash string

	// Err is set when the page failed.
	Err error
}

// Result contains the build output.
type Result struct {
	// Duration is how long the build took.
	Duration time.Duration

	// Pages lists every document found, in source order.
	Pages []Page

	// Manifest maps output names to content hashes.
	Manifest map[string]string
}

// Failed returns the pages that did not build.
func (r *Result) Failed() []Page {
	var failed []Page
	for _, p := range r.Pages {
		if p.Err != nil {
			failed = append(failed, p)
		}
	}
	return failed
}

// Err returns a W601 error wrapping every page error, or nil.
func (r *Result) Err() error {
	failed := r.Failed()
	if len(failed) == 0 {
		return nil
	}
	errs := make([]error, len(failed))
	for i, p := range failed {
		errs[i] = p.Err
	}
	return errors.New(errors.CodeBuildFailed).
		WithDetail(pluralize(len(failed), "page") + " failed to build.").
		Wrap(stderrors.Join(errs...))
}

// Options configures the builder.
type Options struct {
	// Clean removes previous output first when the sink supports it.
	Clean bool

	// Manifest writes manifest.json with the hash of every page.
	Manifest bool

	// Metrics records renders and published pages. May be nil.
	Metrics *metrics.Metrics

	// Tracer traces every render. May be nil.
	Tracer trace.Tracer

	// OnProgress is called with progress updates.
	OnProgress func(step string)
}

// Builder renders documents and publishes the pages.
type Builder struct {
	config  *config.Config
	sink    publish.Sink
	options Options
}

// New creates a new builder.
func New(cfg *config.Config, sink publish.Sink, options Options) *Builder {
	return &Builder{
		config:  cfg,
		sink:    sink,
		options: options,
	}
}

// Defaults returns the render defaults from the [render] section.
func Defaults(cfg *config.Config) document.Defaults {
	return document.Defaults{
		Doctype:        cfg.Render.Doctype,
		RootTag:        cfg.Render.RootTag,
		RootAttributes: cfg.Render.RootAttributes,
	}
}

// Build renders every document below the source directory. A failing
// document does not stop the others; the returned error is Result.Err.
func (b *Builder) Build(ctx context.Context) (*Result, error) {
	logger := logging.GetLogger("build")
	done := logging.LogOperationStart(logger, "build")
	defer done()

	start := time.Now()
	result := &Result{Manifest: make(map[string]string)}

	if cleaner, ok := b.sink.(publish.Cleaner); ok && b.options.Clean {
		if dir, ok := b.sink.(*publish.DirSink); ok && config.Within(dir.Dir(), b.config.SourcePath()) {
			return nil, errors.New(errors.CodeConfigInvalid).
				WithFile(dir.Dir()).
				WithDetail("refusing to clean an output directory that contains the documents")
		}
		b.progress("Cleaning output...")
		if err := cleaner.Clean(); err != nil {
			return nil, err
		}
	}

	b.progress("Finding documents...")
	names, err := document.Find(b.config.SourcePath())
	if err != nil {
		return nil, err
	}
	logger.Info().Int("documents", len(names)).Str("dir", b.config.SourcePath()).Msg("Building")

	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		b.progress("Rendering " + name)

		page := b.buildPage(ctx, name)
		result.Pages = append(result.Pages, page)

		if page.Err != nil {
			logger.Error().Err(page.Err).Str("file", name).Msg("Page failed")
			continue
		}
		result.Manifest[page.Output] = page.Hash
		logger.Debug().Str("file", name).Str("output", page.Output).Int("bytes", page.Size).Msg("Page built")
	}

	if b.options.Manifest {
		b.progress("Writing manifest...")
		if err := b.writeManifest(ctx, result.Manifest); err != nil {
			return nil, err
		}
	}

	result.Duration = time.Since(start)
	return result, result.Err()
}

func (b *Builder) buildPage(ctx context.Context, name string) Page {
	page := Page{Source: name, Output: document.OutputName(name)}

	data, err := b.RenderFile(ctx, filepath.Join(b.config.SourcePath(), filepath.FromSlash(name)))
	if err != nil {
		page.Err = err
		return page
	}

	sum := sha256.Sum256(data)
	page.Size = len(data)
	page.Hash = hex.EncodeToString(sum[:])

	err = b.sink.Put(ctx, page.Output, publish.ContentType(page.Output), data)
	if b.options.Metrics != nil {
		b.options.Metrics.ObservePublish(err)
	}
	if err != nil {
		page.Err = errors.FromError(err, errors.CodeOutputWrite)
	}
	return page
}

// RenderFile loads and renders the document at path.
func (b *Builder) RenderFile(ctx context.Context, path string) ([]byte, error) {
	doc, err := document.Load(path)
	if err != nil {
		return nil, err
	}

	var opts []template.Option
	if b.options.Metrics != nil {
		opts = append(opts, template.WithObserver(b.options.Metrics))
	}
	if b.options.Tracer != nil {
		opts = append(opts, template.WithTracer(b.options.Tracer))
	}

	tpl, err := doc.Template(Defaults(b.config), opts...)
	if err != nil {
		return nil, err
	}

	out, err := tpl.RenderString(ctx, struct{}{})
	if err != nil {
		we := errors.FromError(err, errors.CodeRenderFailed)
		if we.Location == nil {
			we.WithFile(path)
		}
		return nil, we
	}
	return []byte(out), nil
}

// writeManifest publishes the manifest.
func (b *Builder) writeManifest(ctx context.Context, manifest map[string]string) error {
	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return errors.New(errors.CodeOutputWrite).Wrap(err)
	}
	data = append(data, '\n')
	return b.sink.Put(ctx, ManifestName, "application/json", data)
}

// progress reports build progress.
func (b *Builder) progress(step string) {
	if b.options.OnProgress != nil {
		b.options.OnProgress(step)
	}
}

func pluralize(n int, word string) string {
	if n == 1 {
		return "1 " + word
	}
	return strconv.Itoa(n) + " " + word + "s"
}
