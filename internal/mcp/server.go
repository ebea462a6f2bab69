// Package mcp exposes the weekly leaderboard as a Model Context Protocol
// tool so agents can ask who ran the most this week.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"bullsharks/internal/display"
	"bullsharks/internal/leaderboard"
	"bullsharks/internal/logging"
	"bullsharks/internal/shell"
)

// ToolName is the name the leaderboard tool is registered under.
const ToolName = "weekly_leaderboard"

// Server wraps the MCP SDK server around a leaderboard fetcher.
type Server struct {
	MCPServer *sdkmcp.Server

	fetcher shell.Fetcher
	now     func() time.Time
	logger  *slog.Logger
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the diagnostic logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) { s.logger = l }
}

// NewServer creates an MCP server with the leaderboard tool. now may be nil
// to use time.Now.
func NewServer(f shell.Fetcher, now func() time.Time, version string, opts ...Option) *Server {
	if now == nil {
		now = time.Now
	}
	s := &Server{fetcher: f, now: now, logger: logging.Discard()}
	for _, opt := range opts {
		opt(s)
	}
	s.MCPServer = sdkmcp.NewServer(
		&sdkmcp.Implementation{Name: "bullsharks", Version: version},
		nil,
	)
	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        ToolName,
		Description: "Rank running club athletes by total distance over the past 7 days.",
	}, s.handleLeaderboard)
	return s
}

// Run serves over stdio until ctx is done or the client disconnects.
func (s *Server) Run(ctx context.Context) error {
	return s.MCPServer.Run(ctx, &sdkmcp.StdioTransport{})
}

type leaderboardInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"return at most this many rows (0 = all)"`
}

type leaderboardRow struct {
	Rank       string `json:"rank"`
	Athlete    string `json:"athlete"`
	Kilometers string `json:"kilometers"`
	Activities int    `json:"activities"`
}

type leaderboardOutput struct {
	Rows        []leaderboardRow `json:"rows"`
	Considered  int              `json:"considered"`
	Skipped     int              `json:"skipped"`
	WindowStart string           `json:"window_start"`
	GeneratedAt string           `json:"generated_at"`
}

func (s *Server) handleLeaderboard(ctx context.Context, _ *sdkmcp.CallToolRequest, input leaderboardInput) (*sdkmcp.CallToolResult, leaderboardOutput, error) {
	if input.Limit < 0 {
		return nil, leaderboardOutput{}, fmt.Errorf("limit must not be negative, got %d", input.Limit)
	}

	sh := shell.New(s.fetcher, shell.WithLogger(s.logger))
	defer sh.Close()

	switch st := sh.Start(ctx).(type) {
	case shell.Failed:
		s.logger.Warn("leaderboard tool failed", "error", st.Message)
		return nil, leaderboardOutput{}, errors.New(st.Message)
	case shell.Loaded:
		b := leaderboard.Build(st.Activities, s.now())
		rows := b.Rows
		if input.Limit > 0 && input.Limit < len(rows) {
			rows = rows[:input.Limit]
		}
		out := leaderboardOutput{
			Rows:        make([]leaderboardRow, 0, len(rows)),
			Considered:  b.Considered,
			Skipped:     b.Skipped,
			WindowStart: b.WindowStart.UTC().Format(time.RFC3339),
			GeneratedAt: b.GeneratedAt.UTC().Format(time.RFC3339),
		}
		for i, r := range rows {
			out.Rows = append(out.Rows, leaderboardRow{
				Rank:       display.Rank(i),
				Athlete:    r.AthleteName,
				Kilometers: display.Kilometers(r.TotalKilometers),
				Activities: r.ActivityCount,
			})
		}
		s.logger.Info("leaderboard tool served", "rows", len(out.Rows), "considered", b.Considered)
		return nil, out, nil
	default:
		return nil, leaderboardOutput{}, ctx.Err()
	}
}
