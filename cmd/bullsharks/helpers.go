package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"bullsharks/internal/config"
	"bullsharks/internal/logging"
	"bullsharks/internal/source"
)

// newSourceClient builds the backend client from the resolved configuration.
func newSourceClient(c config.Config) (*source.Client, error) {
	return source.New(c.Source.BaseURL,
		source.WithPath(c.Source.Path),
		source.WithTimeout(c.Source.Timeout),
		source.WithLogger(logging.New("source")),
	)
}

// signalContext is canceled on SIGINT or SIGTERM.
func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}

// orDefault returns flag when set, otherwise fallback.
func orDefault(flag, fallback string) string {
	if flag != "" {
		return flag
	}
	return fallback
}
