// Package web serves the leaderboard as an HTML page. Every page load runs
// a fresh shell, so reloading the page is the retry.
package web

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"bullsharks/internal/httpserver"
	"bullsharks/internal/leaderboard"
	"bullsharks/internal/logging"
	"bullsharks/internal/shell"
)

// Server renders the leaderboard over HTTP.
type Server struct {
	fetcher shell.Fetcher
	addr    string
	now     func() time.Time
	logger  *slog.Logger
	access  io.Writer
}

// Option configures a Server.
type Option func(*Server)

// WithClock overrides time.Now for window computation.
func WithClock(now func() time.Time) Option {
	return func(s *Server) { s.now = now }
}

// WithLogger sets the diagnostic logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) { s.logger = l }
}

// WithAccessLog writes one combined-format line per request to w.
func WithAccessLog(w io.Writer) Option {
	return func(s *Server) { s.access = w }
}

// New returns a server that will listen on addr.
func New(f shell.Fetcher, addr string, opts ...Option) *Server {
	s := &Server{fetcher: f, addr: addr, now: time.Now, logger: logging.Discard()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler returns the routed, wrapped handler.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/", s.handlePage).Methods(http.MethodGet, http.MethodHead)
	r.HandleFunc("/api/leaderboard", s.handleBoard).Methods(http.MethodGet)
	r.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	return httpserver.Wrap(r, s.access, s.logger)
}

// Run listens until ctx is done. ln may be nil to listen on the configured addr.
func (s *Server) Run(ctx context.Context, ln net.Listener) error {
	return httpserver.Run(ctx, httpserver.New(s.addr, s.Handler()), ln, s.logger)
}

// load runs one shell bound to the request. It reports false when the
// client went away before the fetch resolved; the result is then dropped,
// including the error a context-aware fetcher returns for the cancellation.
func (s *Server) load(r *http.Request) (shell.State, bool) {
	sh := shell.New(s.fetcher, shell.WithLogger(s.logger))
	defer sh.Close()
	stop := context.AfterFunc(r.Context(), sh.Close)
	defer stop()

	st := sh.Start(r.Context())
	if r.Context().Err() != nil || !shell.Terminal(st) {
		s.logger.Debug("request canceled before the fetch resolved", "path", r.URL.Path)
		return st, false
	}
	return st, true
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	st, ok := s.load(r)
	if !ok {
		return
	}
	view := shell.Render(st, s.now())

	var buf bytes.Buffer
	if err := pageTmpl.Execute(&buf, newPageData(view)); err != nil {
		s.logger.Error("render page", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	status := http.StatusOK
	if view.Kind == shell.KindFailed {
		status = http.StatusBadGateway
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

func (s *Server) handleBoard(w http.ResponseWriter, r *http.Request) {
	st, ok := s.load(r)
	if !ok {
		return
	}
	switch st := st.(type) {
	case shell.Failed:
		httpserver.WriteError(w, http.StatusBadGateway, st.Message)
	case shell.Loaded:
		httpserver.WriteJSON(w, http.StatusOK, leaderboard.Build(st.Activities, s.now()))
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	httpserver.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
