// Package server exposes the render pipeline and template engine over HTTP.
package server

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/creatorlab/canvas/pkg/config"
	"github.com/creatorlab/canvas/pkg/errors"
	"github.com/creatorlab/canvas/pkg/pipeline"
)

// Server is the HTTP preview and export service.
type Server struct {
	runner *pipeline.Runner
	cfg    config.Config
	logger *log.Logger
	router chi.Router
}

// New assembles the service.
func New(runner *pipeline.Runner, cfg config.Config, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{runner: runner, cfg: cfg, logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Post("/render", s.handleRender)
		r.Post("/export", s.handleExport)
		r.Get("/dimensions", s.handleDimensions)
		r.Get("/templates", s.handleTemplates)
		r.Post("/templates/{id}/apply", s.handleTemplateApply)
	})
	s.router = r
	return s
}

// Handler returns the root handler for mounting or serving.
func (s *Server) Handler() http.Handler { return s.router }

// ListenAndServe blocks serving on the configured address.
func (s *Server) ListenAndServe() error {
	srv := &http.Server{
		Addr:              s.cfg.Server.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.logger.Info("listening", "addr", s.cfg.Server.Addr)
	return srv.ListenAndServe()
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"id", middleware.GetReqID(r.Context()))
	})
}

// statusFor maps domain error codes onto HTTP statuses.
func statusFor(err error) int {
	switch code := errors.GetCode(err); code {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidScene, errors.ErrCodeInvalidFormat,
		errors.ErrCodeInvalidTemplate, errors.ErrCodeInvalidDimension:
		return http.StatusBadRequest
	case errors.ErrCodeNotFound, errors.ErrCodeTemplateNotFound, errors.ErrCodeAssetNotFound,
		errors.ErrCodeFileNotFound:
		return http.StatusNotFound
	case errors.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	case errors.ErrCodeAssetLoad, errors.ErrCodeNetwork:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
