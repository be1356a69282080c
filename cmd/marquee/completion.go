package main

import (
	"io"

	"github.com/spf13/cobra"
)

// completionGenerators maps a shell name to the cobra generator for it.
var completionGenerators = map[string]func(io.Writer) error{
	"bash":       rootCmd.GenBashCompletion,
	"zsh":        rootCmd.GenZshCompletion,
	"fish":       func(w io.Writer) error { return rootCmd.GenFishCompletion(w, true) },
	"powershell": rootCmd.GenPowerShellCompletionWithDesc,
}

var completionCmd = &cobra.Command{
	Use:   "completion <bash|zsh|fish|powershell>",
	Short: "Print a shell completion script",
	Long: `Print a completion script for marquee to stdout.

Besides subcommands and flags, it completes category names for
"marquee rows" and the movie/tv kind for "marquee show". Try it in the
current shell first:

  bash        source <(marquee completion bash)
  zsh         source <(marquee completion zsh)
  fish        marquee completion fish | source
  powershell  marquee completion powershell | Out-String | Invoke-Expression

To keep it, write the script wherever your shell loads completions from,
for example ~/.local/share/bash-completion/completions/marquee,
a directory on your zsh fpath as _marquee, or
~/.config/fish/completions/marquee.fish.
`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		return completionGenerators[args[0]](cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(completionCmd)
}
