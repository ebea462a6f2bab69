// Package httpserver holds the plumbing shared by the bullsharks HTTP
// servers: middleware, JSON replies and a context-bound serve loop.
package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/handlers"
)

// ShutdownTimeout bounds the graceful shutdown after ctx is done.
var ShutdownTimeout = 5 * time.Second

// Wrap adds panic recovery and, when access is non-nil, an access log in
// Apache combined format.
func Wrap(h http.Handler, access io.Writer, logger *slog.Logger) http.Handler {
	h = handlers.RecoveryHandler(
		handlers.RecoveryLogger(recoveryLogger{logger}),
		handlers.PrintRecoveryStack(false),
	)(h)
	if access != nil {
		h = handlers.CombinedLoggingHandler(access, h)
	}
	return h
}

type recoveryLogger struct{ logger *slog.Logger }

func (l recoveryLogger) Println(v ...any) {
	l.logger.Error("panic recovered", "panic", v)
}

// WriteJSON replies with v encoded as JSON.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError replies with {"error": msg}.
func WriteError(w http.ResponseWriter, status int, msg string) {
	WriteJSON(w, status, map[string]string{"error": msg})
}

// New returns an http.Server with the header timeout every server here uses.
func New(addr string, h http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
	}
}

// Run serves on ln until ctx is done, then shuts down gracefully. A nil ln
// listens on srv.Addr.
func Run(ctx context.Context, srv *http.Server, ln net.Listener, logger *slog.Logger) error {
	if ln == nil {
		var err error
		ln, err = net.Listen("tcp", srv.Addr)
		if err != nil {
			return err
		}
	}
	logger.Info("listening", "addr", ln.Addr().String())

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()
		logger.Info("shutting down", "addr", ln.Addr().String())
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}
