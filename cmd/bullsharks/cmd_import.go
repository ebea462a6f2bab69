package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"bullsharks/internal/activity"
	"bullsharks/internal/dump"
	"bullsharks/internal/logging"
	"bullsharks/internal/store"
)

var importFlags struct {
	file   string
	dbPath string
}

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Load an activity dump into the local store",
	Long: `Reads a JSON or YAML list of activity records (the /api/read shape) and upserts
them by id. Records without an id get a generated one. Use -f - for stdin.`,
	RunE: runImport,
}

func init() {
	f := importCmd.Flags()
	f.StringVarP(&importFlags.file, "file", "f", "", "Activities JSON/YAML file, or - for stdin (required)")
	f.StringVar(&importFlags.dbPath, "db", "", "SQLite path (default store.path)")

	_ = importCmd.MarkFlagRequired("file")
}

func runImport(cmd *cobra.Command, _ []string) error {
	var (
		records []activity.Activity
		err     error
	)
	if importFlags.file == "-" {
		records, err = dump.LoadReader(cmd.InOrStdin())
	} else {
		records, err = dump.LoadFromPath(importFlags.file)
	}
	if err != nil {
		return fmt.Errorf("decode activities: %w", err)
	}

	dbPath := orDefault(importFlags.dbPath, cfg.Store.Path)
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	n, err := st.InsertActivities(cmd.Context(), records)
	if err != nil {
		return fmt.Errorf("import activities: %w", err)
	}
	logging.New("import").Info("activities imported", "count", n, "db", dbPath)
	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d activities into %s\n", n, dbPath)
	return nil
}
