package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"bullsharks/internal/config"
	"bullsharks/internal/logging"
)

// version is set at build time via -ldflags.
var version = "dev"

var rootFlags struct {
	configPath string
	logLevel   string
	logFormat  string
	source     string
}

// cfg is the resolved configuration, populated before any subcommand runs.
var cfg config.Config

var rootCmd = &cobra.Command{
	Use:   "bullsharks",
	Short: "Weekly running leaderboard for the Bullsharks club",
	Long: "Bullsharks fetches the club's running activities, keeps the past seven days\n" +
		"and ranks athletes by total distance. View it in the terminal, the browser\n" +
		"or through an MCP client.",
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&rootFlags.configPath, "config", "", "Path to a YAML config file")
	pf.StringVar(&rootFlags.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	pf.StringVar(&rootFlags.logFormat, "log-format", "", "Log format: text or json")
	pf.StringVar(&rootFlags.source, "source", "", "Backend base URL (overrides source.base_url)")

	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(apiCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.Version = version
}

// loadConfig merges file, environment and flag settings, then sets up logging.
// Flags win over everything else.
func loadConfig(cmd *cobra.Command, _ []string) error {
	c, err := config.Load(rootFlags.configPath)
	if err != nil {
		return err
	}
	if rootFlags.logLevel != "" {
		c.Log.Level = rootFlags.logLevel
	}
	if rootFlags.logFormat != "" {
		c.Log.Format = rootFlags.logFormat
	}
	if rootFlags.source != "" {
		c.Source.BaseURL = rootFlags.source
	}
	if err := c.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	level, err := logging.ParseLevel(c.Log.Level)
	if err != nil {
		return err
	}
	logging.Init(level, c.Log.Format, cmd.ErrOrStderr())
	cfg = c
	return nil
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
