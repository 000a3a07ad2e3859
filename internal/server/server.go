package server

import (
	"html/template"
	"log/slog"
	"net/http"

	"github.com/claude/sprintlab/internal/config"
	"github.com/go-chi/chi/v5"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	limits  config.LimitsConfig
	version string
	log     *slog.Logger
	pages   *template.Template
	router  chi.Router
}

// New creates a new Server with all routes configured.
func New(limits config.LimitsConfig, version string, log *slog.Logger) *Server {
	s := &Server{
		limits:  limits,
		version: version,
		log:     log,
		pages:   parsePages(),
		router:  chi.NewRouter(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(RequestID)
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS)

	// Input form and rendered report
	s.router.Get("/", s.handleForm)
	s.router.Post("/analyze", s.handleAnalyzeForm)

	s.router.Route("/api/v1", func(r chi.Router) {
		r.Post("/analyze", s.handleAnalyzeJSON)
		r.Get("/benchmarks", s.handleBenchmarks)
	})

	s.router.Get("/healthz", s.handleHealth)
}

// SetMCP mounts an MCP transport handler at path.
func (s *Server) SetMCP(path string, h http.Handler) {
	s.router.Handle(path, h)
	s.router.Handle(path+"/*", h)
}
