package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vmunix/marquee/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration management",
}

var configTestCmd = &cobra.Command{
	Use:   "test [path]",
	Short: "Validate configuration file",
	Long:  "Validates config.toml syntax, required fields, and environment variable substitution without starting the server.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConfigTest,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file marqueed would load",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		path, err := config.Discover()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configTestCmd)
	configCmd.AddCommand(configPathCmd)
}

func runConfigTest(cmd *cobra.Command, args []string) error {
	var path string
	if len(args) > 0 {
		path = args[0]
	} else {
		found, err := config.Discover()
		if err != nil {
			return err
		}
		path = found
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Validating %s...\n\n", path)

	cfg, err := config.Load(path)
	if err != nil {
		var configErr *config.ConfigError
		if errors.As(err, &configErr) {
			printConfigErrors(out, configErr)
			return fmt.Errorf("configuration invalid")
		}
		return fmt.Errorf("failed to load config: %w", err)
	}

	printConfigSummary(out, cfg)
	fmt.Fprintln(out, "\nConfiguration valid!")
	return nil
}

func printConfigErrors(w io.Writer, e *config.ConfigError) {
	if len(e.Missing) > 0 {
		fmt.Fprintln(w, "Missing environment variables:")
		for _, m := range e.Missing {
			fmt.Fprintf(w, "  - %s\n", m)
		}
		fmt.Fprintln(w)
	}

	if len(e.Errors) > 0 {
		fmt.Fprintln(w, "Validation errors:")
		for _, err := range e.Errors {
			fmt.Fprintf(w, "  - %s\n", err)
		}
		fmt.Fprintln(w)
	}
}

func printConfigSummary(w io.Writer, cfg *config.Config) {
	fmt.Fprintln(w, "Configuration Summary:")
	fmt.Fprintf(w, "  Server:     %s:%d (log: %s)\n", cfg.Server.Host, cfg.Server.Port, cfg.Server.LogLevel)
	fmt.Fprintf(w, "  Sessions:   %s\n", cfg.Session.Path)
	fmt.Fprintf(w, "  TMDB:       %s (key: %s)\n", cfg.TMDB.BaseURL, maskKey(cfg.TMDB.APIKey))
	fmt.Fprintf(w, "  Images:     %s (poster %s, backdrop %s)\n", cfg.TMDB.ImageBaseURL, cfg.TMDB.PosterSize, cfg.TMDB.BackdropSize)
	fmt.Fprintf(w, "  Home rows:  %s\n", strings.Join(cfg.Home.Rows, ", "))
}

// maskKey keeps the last four characters of an API key.
func maskKey(key string) string {
	if len(key) <= 4 {
		return strings.Repeat("*", len(key))
	}
	return strings.Repeat("*", len(key)-4) + key[len(key)-4:]
}
