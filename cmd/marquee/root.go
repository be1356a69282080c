package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var version = "dev"

var (
	serverURL  string
	jsonOutput bool
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "marquee",
	Short: "CLI client for the marquee catalog",
	Long: `marquee - CLI client for the marquee catalog

Browse trending titles, category rows and search results from TMDB,
and open a title's detail view.

Run 'marqueed' to start the server daemon, then 'marquee login'.`,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "http://localhost:8585", "Server URL")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("marquee {{.Version}}\n")
}

// setupLogging routes slog through a charmbracelet/log handler on stderr.
func setupLogging(cmd *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(logLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q", logLevel)
	}
	handler := log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
		Level:           level,
		ReportTimestamp: level == log.DebugLevel,
	})
	slog.SetDefault(slog.New(handler))
	return nil
}
