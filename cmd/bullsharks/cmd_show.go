package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"bullsharks/internal/display"
	"bullsharks/internal/format"
	"bullsharks/internal/leaderboard"
	"bullsharks/internal/logging"
	"bullsharks/internal/shell"
)

var showFlags struct {
	format string
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Fetch activities once and print the weekly leaderboard",
	Long: `Fetches the activity list, keeps the past seven days and prints the ranking.
Exits with status 1 and the error message when the fetch fails.`,
	RunE: runShow,
}

func init() {
	f := showCmd.Flags()
	f.StringVar(&showFlags.format, "format", "ascii", "Output format: ascii, markdown or json")
}

func runShow(cmd *cobra.Command, _ []string) error {
	asJSON := strings.EqualFold(showFlags.format, "json")
	var mode format.Mode
	if !asJSON {
		m, err := format.ParseMode(showFlags.format)
		if err != nil {
			return err
		}
		mode = m
	}

	client, err := newSourceClient(cfg)
	if err != nil {
		return fmt.Errorf("create source client: %w", err)
	}
	ctx, cancel := signalContext(cmd.Context())
	defer cancel()

	sh := shell.New(client, shell.WithLogger(logging.New("shell")))
	defer sh.Close()

	switch st := sh.Start(ctx).(type) {
	case shell.Failed:
		return errors.New(display.ErrorMessage(st.Message))
	case shell.Loaded:
		board := leaderboard.Build(st.Activities, time.Now())
		out := cmd.OutOrStdout()
		if asJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(board)
		}
		fmt.Fprint(out, format.Leaderboard(board, mode))
		return nil
	default:
		return ctx.Err()
	}
}
