package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"bullsharks/internal/api"
	"bullsharks/internal/logging"
	"bullsharks/internal/store"
	"bullsharks/internal/web"
)

var serveFlags struct {
	addr      string
	withAPI   bool
	apiAddr   string
	dbPath    string
	accessLog bool
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the leaderboard as a web page",
	Long: `Serves the leaderboard page on --addr. Every page load fetches the activity
list once; reload the page to try again after an error.

With --with-api the local backend stand-in runs alongside on --api-addr,
serving /api/read from the SQLite store. The first server to fail, or an
interrupt, stops both.`,
	RunE: runServe,
}

func init() {
	f := serveCmd.Flags()
	f.StringVar(&serveFlags.addr, "addr", "", "Web listen address (default web.addr)")
	f.BoolVar(&serveFlags.withAPI, "with-api", false, "Also run the local /api/read backend")
	f.StringVar(&serveFlags.apiAddr, "api-addr", "", "API listen address (default api.addr)")
	f.StringVar(&serveFlags.dbPath, "db", "", "SQLite path for --with-api (default store.path)")
	f.BoolVar(&serveFlags.accessLog, "access-log", false, "Write combined-format access logs to stdout")
}

func runServe(cmd *cobra.Command, _ []string) error {
	client, err := newSourceClient(cfg)
	if err != nil {
		return fmt.Errorf("create source client: %w", err)
	}

	var access io.Writer
	if serveFlags.accessLog {
		access = cmd.OutOrStdout()
	}

	var apiSrv *api.Server
	if serveFlags.withAPI {
		st, err := store.Open(orDefault(serveFlags.dbPath, cfg.Store.Path))
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()
		apiSrv = api.NewServer(st, orDefault(serveFlags.apiAddr, cfg.API.Addr),
			api.WithLogger(logging.New("api")),
			api.WithAccessLog(access),
		)
	}
	webSrv := web.New(client, orDefault(serveFlags.addr, cfg.Web.Addr),
		web.WithLogger(logging.New("web")),
		web.WithAccessLog(access),
	)

	ctx, cancel := signalContext(cmd.Context())
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return webSrv.Run(ctx, nil) })
	if apiSrv != nil {
		g.Go(func() error { return apiSrv.Run(ctx, nil) })
	}
	return g.Wait()
}
