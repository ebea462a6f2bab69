package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"bullsharks/internal/api"
	"bullsharks/internal/logging"
	"bullsharks/internal/store"
)

var apiFlags struct {
	addr      string
	dbPath    string
	accessLog bool
}

var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Run the local backend stand-in serving /api/read",
	Long: `Serves stored activities on GET /api/read and a database check on GET /health.
Load records with 'bullsharks import' first.`,
	RunE: runAPI,
}

func init() {
	f := apiCmd.Flags()
	f.StringVar(&apiFlags.addr, "addr", "", "Listen address (default api.addr)")
	f.StringVar(&apiFlags.dbPath, "db", "", "SQLite path (default store.path)")
	f.BoolVar(&apiFlags.accessLog, "access-log", false, "Write combined-format access logs to stdout")
}

func runAPI(cmd *cobra.Command, _ []string) error {
	st, err := store.Open(orDefault(apiFlags.dbPath, cfg.Store.Path))
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	var access io.Writer
	if apiFlags.accessLog {
		access = cmd.OutOrStdout()
	}
	srv := api.NewServer(st, orDefault(apiFlags.addr, cfg.API.Addr),
		api.WithLogger(logging.New("api")),
		api.WithAccessLog(access),
	)

	ctx, cancel := signalContext(cmd.Context())
	defer cancel()
	return srv.Run(ctx, nil)
}
