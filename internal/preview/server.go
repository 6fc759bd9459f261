// Package preview serves documents rendered on every request, so edits show
// up on reload without a build.
package preview

import (
	"context"
	"net"
	"net/http"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"

	"github.com/elevensolutions/whits/internal/build"
	"github.com/elevensolutions/whits/internal/config"
	"github.com/elevensolutions/whits/internal/document"
	"github.com/elevensolutions/whits/internal/errors"
	"github.com/elevensolutions/whits/internal/logging"
	"github.com/elevensolutions/whits/internal/metrics"
	"github.com/elevensolutions/whits/internal/publish"
)

// ShutdownTimeout bounds graceful shutdown.
const ShutdownTimeout = 5 * time.Second

// Server is the preview HTTP server.
type Server struct {
	config  *config.Config
	builder *build.Builder
	metrics *metrics.Metrics
	logger  zerolog.Logger
	router  chi.Router
}

// New creates a preview server. m may be nil, in which case /metrics is
// not served.
func New(cfg *config.Config, builder *build.Builder, m *metrics.Metrics) *Server {
	s := &Server{
		config:  cfg,
		builder: builder,
		metrics: m,
		logger:  logging.GetLogger("preview"),
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(hlog.NewHandler(s.logger))
	r.Use(hlog.RequestIDHandler("req_id", "X-Request-Id"))
	r.Use(hlog.AccessHandler(func(r *http.Request, status, size int, duration time.Duration) {
		hlog.FromRequest(r).Info().
			Str("method", r.Method).
			Stringer("url", r.URL).
			Int("status", status).
			Int("size", size).
			Dur("duration", duration).
			Msg("Request")
	}))
	r.Use(middleware.Recoverer)
	if s.metrics != nil {
		r.Use(s.metrics.Middleware)
		r.Method(http.MethodGet, "/metrics", s.metrics.Handler())
	}

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/*", s.servePage)
	return r
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// outputName maps a request path to an output name: "/" and directory
// paths map to their index.html.
func outputName(urlPath string) string {
	name := strings.TrimPrefix(path.Clean("/"+urlPath), "/")
	if name == "" || strings.HasSuffix(urlPath, "/") {
		name = path.Join(name, "index.html")
	}
	return name
}

// Resolve finds the source document for an output name.
func (s *Server) Resolve(name string) (string, error) {
	sources, err := document.Find(s.config.SourcePath())
	if err != nil {
		return "", err
	}
	for _, source := range sources {
		if document.OutputName(source) == name {
			return source, nil
		}
	}
	// Extensionless links such as /about.
	if path.Ext(name) == "" {
		return s.Resolve(name + ".html")
	}
	return "", errors.New(errors.CodeServerNotFound).WithFile(name)
}

func (s *Server) servePage(w http.ResponseWriter, r *http.Request) {
	name := outputName(chi.URLParam(r, "*"))
	logger := hlog.FromRequest(r)

	source, err := s.Resolve(name)
	if err != nil {
		if errors.Code(err) == errors.CodeServerNotFound {
			http.NotFound(w, r)
			return
		}
		logger.Error().Err(err).Msg("Cannot list documents")
		http.Error(w, errors.FromError(err, errors.CodeServerStart).FormatCompact(), http.StatusInternalServerError)
		return
	}

	sourcePath := filepath.Join(s.config.SourcePath(), filepath.FromSlash(source))
	data, err := s.builder.RenderFile(r.Context(), sourcePath)
	if err != nil {
		logger.Error().Err(err).Str("file", source).Msg("Render failed")
		http.Error(w, errors.FromError(err, errors.CodeRenderFailed).FormatCompact(), http.StatusInternalServerError)
		return
	}

	outName := document.OutputName(source)
	w.Header().Set("Content-Type", publish.ContentType(outName))
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write(data)
}

// Serve accepts connections on l until ctx is done, then shuts down
// gracefully.
func (s *Server) Serve(ctx context.Context, l net.Listener) error {
	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().Str("address", l.Addr().String()).Msg("Preview server listening")
		errCh <- srv.Serve(l)
	}()

	select {
	case err := <-errCh:
		if err != http.ErrServerClosed {
			return errors.New(errors.CodeServerStart).Wrap(err)
		}
		return nil

	case <-ctx.Done():
		s.logger.Info().Msg("Shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// ListenAndServe listens on the configured address and serves until ctx
// is done.
func (s *Server) ListenAndServe(ctx context.Context) error {
	l, err := net.Listen("tcp", s.config.Address())
	if err != nil {
		return errors.New(errors.CodeServerStart).WithDetail("Cannot listen on " + s.config.Address()).Wrap(err)
	}
	return s.Serve(ctx, l)
}
