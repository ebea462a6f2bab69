package mcp

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// WatchInterval is how often WatchParent polls the parent PID.
var WatchInterval = 2 * time.Second

// WatchParent monitors for parent process death in a background goroutine.
// When the parent PID changes (the MCP client exited or was restarted), it
// calls cancelFn so the stdio server shuts down instead of lingering.
//
// It must NOT read from stdin: the SDK's StdioTransport owns stdin.
//
// The goroutine exits when ctx is canceled or parent death is detected.
func WatchParent(ctx context.Context, logger *slog.Logger, cancelFn context.CancelFunc) {
	ppid := os.Getppid()
	go func() {
		ticker := time.NewTicker(WatchInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if os.Getppid() != ppid {
					logger.Warn("parent process died, shutting down", "ppid", ppid)
					cancelFn()
					return
				}
			}
		}
	}()
}
