package main

import (
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"bullsharks/internal/logging"
	"bullsharks/internal/tui"
)

var tuiFlags struct {
	logFile   string
	altScreen bool
}

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Show the leaderboard in an interactive terminal view",
	Long: `Opens a full-terminal view with a loading spinner, the ranked table and a
retry key when the fetch fails. Press q to quit.

Logs are discarded while the view owns the terminal unless --log-file is set.`,
	RunE: runTUI,
}

func init() {
	f := tuiCmd.Flags()
	f.StringVar(&tuiFlags.logFile, "log-file", "", "Write logs to this file while the view is open")
	f.BoolVar(&tuiFlags.altScreen, "alt-screen", false, "Use the terminal's alternate screen")
}

func runTUI(cmd *cobra.Command, _ []string) error {
	var logOut io.Writer = io.Discard
	if tuiFlags.logFile != "" {
		f, err := os.OpenFile(tuiFlags.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	level, _ := logging.ParseLevel(cfg.Log.Level)
	logging.Init(level, cfg.Log.Format, logOut)

	client, err := newSourceClient(cfg)
	if err != nil {
		return fmt.Errorf("create source client: %w", err)
	}
	ctx, cancel := signalContext(cmd.Context())
	defer cancel()

	opts := []tea.ProgramOption{tea.WithOutput(cmd.OutOrStdout())}
	if tuiFlags.altScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	return tui.Run(ctx, client, time.Now, opts...)
}
