// =============================================================================
// PFAS Reporting Toolkit - HTTP Front-End
// =============================================================================
//
// This module provides the browser front-end for report generation: a
// small upload form and an API endpoint that accepts a supplier
// declarations file (CSV or XLSX) plus an optional PFAS dictionary and
// returns the JSON report directly in the response.
//
// ROUTES:
//   GET  /            - upload form
//   POST /report      - multipart upload -> JSON report
//   POST /api/report  - same handler, for non-browser clients
//   GET  /healthz     - liveness probe
//
// ERROR MAPPING:
//   - missing upload, malformed header, unusable dictionary -> 400
//   - anything else                                         -> 500
//
// =============================================================================

package server

import (
	_ "embed"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/ginjaninja78/pfas-reporting/internal/config"
	"github.com/ginjaninja78/pfas-reporting/internal/csvparser"
	"github.com/ginjaninja78/pfas-reporting/internal/dictionary"
	"github.com/ginjaninja78/pfas-reporting/internal/logging"
	"github.com/ginjaninja78/pfas-reporting/internal/reporter"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

//go:embed form.html
var formHTML []byte

// =============================================================================
// SERVER
// =============================================================================

// Server is the HTTP server wrapping the reporting pipeline.
type Server struct {
	cfg      *config.Config
	reporter *reporter.Reporter
	router   *chi.Mux
}

// New creates a Server bound to the given configuration.
func New(cfg *config.Config) *Server {
	s := &Server{
		cfg:      cfg,
		reporter: reporter.New(cfg),
		router:   chi.NewRouter(),
	}
	s.setupMiddleware()
	s.setupRoutes()
	return s
}

// setupMiddleware configures middleware for all routes.
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Timeout(60 * time.Second))
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	s.router.Get("/", s.handleForm)
	s.router.Post("/report", s.handleReport)
	s.router.Post("/api/report", s.handleReport)
	s.router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

// Handler returns the root http.Handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe starts the server on the configured address and blocks.
func (s *Server) ListenAndServe() error {
	srv := &http.Server{
		Addr:              s.cfg.Server.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return srv.ListenAndServe()
}

// =============================================================================
// HANDLERS
// =============================================================================

// handleForm serves the upload form.
func (s *Server) handleForm(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(formHTML)
}

// handleReport processes an uploaded declarations file and returns the
// generated report as JSON.
func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	log := logging.FromContext(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.Server.MaxUploadBytes)
	if err := r.ParseMultipartForm(s.cfg.Server.MaxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "upload too large or invalid form")
		return
	}

	declFile, declHeader, err := r.FormFile("csv")
	if err != nil {
		writeError(w, http.StatusBadRequest, "declarations file is required")
		return
	}
	defer declFile.Close()

	// The dictionary upload is optional; without it the configured
	// default dictionary is used.
	var dictSrc io.Reader
	if dictFile, _, err := r.FormFile("pfas_dict"); err == nil {
		defer dictFile.Close()
		dictSrc = dictFile
	}

	report, err := s.reporter.Generate(declHeader.Filename, declFile, dictSrc)
	if err != nil {
		log.Warn("report generation failed", "file", declHeader.Filename, "error", err)
		writeError(w, statusFor(err), err.Error())
		return
	}

	log.Info("report generated",
		"file", declHeader.Filename,
		"declarations", report.TotalDeclarations,
		"matched", report.MatchedCount,
		"skipped", report.SkippedRows)

	writeJSON(w, http.StatusOK, report)
}

// statusFor maps pipeline errors onto HTTP status codes. Input problems
// are the client's fault; everything else is ours.
func statusFor(err error) int {
	switch {
	case errors.Is(err, csvparser.ErrMalformedHeader),
		errors.Is(err, dictionary.ErrEmpty),
		errors.Is(err, dictionary.ErrNotFound):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// =============================================================================
// RESPONSE HELPERS
// =============================================================================

// writeJSON writes v as a JSON response.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
