// Package api is a local stand-in for the activity backend. It serves the
// stored records on /api/read in the shape the leaderboard consumes.
package api

import (
	"context"
	"io"
	"log/slog"
	"net"
	"net/http"

	"github.com/gorilla/mux"

	"bullsharks/internal/httpserver"
	"bullsharks/internal/logging"
	"bullsharks/internal/store"
)

// Server answers /api/read from a Store.
type Server struct {
	store  store.Store
	addr   string
	logger *slog.Logger
	access io.Writer
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the diagnostic logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) { s.logger = l }
}

// WithAccessLog writes one combined-format line per request to w.
func WithAccessLog(w io.Writer) Option {
	return func(s *Server) { s.access = w }
}

// NewServer returns a server for st that will listen on addr.
func NewServer(st store.Store, addr string, opts ...Option) *Server {
	s := &Server{store: st, addr: addr, logger: logging.Discard()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Health is the body of GET /health.
type Health struct {
	Database string `json:"database"`
	Overall  string `json:"overall"`
}

// Handler returns the routed, wrapped handler.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/api/read", s.handleRead).Methods(http.MethodGet)
	r.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	return httpserver.Wrap(r, s.access, s.logger)
}

// Run listens until ctx is done. ln may be nil to listen on the configured addr.
func (s *Server) Run(ctx context.Context, ln net.Listener) error {
	return httpserver.Run(ctx, httpserver.New(s.addr, s.Handler()), ln, s.logger)
}

func (s *Server) handleRead(w http.ResponseWriter, r *http.Request) {
	records, err := s.store.AllActivities(r.Context())
	if err != nil {
		s.logger.Error("read activities", "error", err)
		httpserver.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.logger.Debug("read activities", "count", len(records))
	httpserver.WriteJSON(w, http.StatusOK, records)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	h := Health{Database: "healthy", Overall: "healthy"}
	status := http.StatusOK
	if err := s.store.Ping(r.Context()); err != nil {
		h.Database = "unhealthy: " + err.Error()
		h.Overall = "unhealthy"
		status = http.StatusServiceUnavailable
	}
	httpserver.WriteJSON(w, status, h)
}
