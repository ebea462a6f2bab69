package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"bullsharks/internal/logging"
	mcpserver "bullsharks/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server over stdio",
	Long: `Starts an MCP server over stdin/stdout exposing the weekly_leaderboard tool.

The server monitors for parent process death. When the client disconnects or
restarts, the server exits instead of lingering.`,
	RunE: runMCP,
}

func runMCP(cmd *cobra.Command, _ []string) error {
	client, err := newSourceClient(cfg)
	if err != nil {
		return fmt.Errorf("create source client: %w", err)
	}
	logger := logging.New("mcp")
	srv := mcpserver.NewServer(client, nil, version, mcpserver.WithLogger(logger))

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	mcpserver.WatchParent(ctx, logger, cancel)

	logger.Info("starting bullsharks MCP server over stdio (parent watchdog active)")
	return srv.Run(ctx)
}
