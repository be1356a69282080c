package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vmunix/marquee/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter config file",
	Long: `Write a starter config.toml for marqueed.

Without --api-key the file reads the key from $TMDB_API_KEY at load time.`,
	Args: cobra.NoArgs,
	RunE: runInitCmd,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().String("path", "", "Config path (default: "+config.DefaultPath()+")")
	initCmd.Flags().String("api-key", "", "TMDB API key to write into the config")
	initCmd.Flags().Bool("force", false, "Overwrite an existing config")
}

func runInitCmd(cmd *cobra.Command, _ []string) error {
	path, _ := cmd.Flags().GetString("path")
	apiKey, _ := cmd.Flags().GetString("api-key")
	force, _ := cmd.Flags().GetBool("force")
	if path == "" {
		path = config.DefaultPath()
	}

	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists, use --force to overwrite", path)
	}

	if apiKey == "" {
		if err := config.WriteDefault(path); err != nil {
			return fmt.Errorf("write config: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\nSet TMDB_API_KEY before starting marqueed.\n", path)
		return nil
	}

	cfg := config.Default()
	cfg.TMDB.APIKey = strings.TrimSpace(apiKey)
	if err := cfg.Write(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}

// promptRequired prompts until a non-empty value is provided.
func promptRequired(in *bufio.Reader, out io.Writer, label string) (string, error) {
	for {
		fmt.Fprintf(out, "%s: ", label)
		input, err := in.ReadString('\n')
		input = strings.TrimSpace(input)
		if input != "" {
			return input, nil
		}
		if err != nil {
			return "", fmt.Errorf("%s: %w", strings.ToLower(label), err)
		}
		fmt.Fprintln(out, "  Value required")
	}
}
