package cli

import (
	"io"
	"sort"

	"github.com/spf13/cobra"
)

// completionGenerators writes the completion script of one shell for root.
var completionGenerators = map[string]func(root *cobra.Command, w io.Writer) error{
	"bash":       func(root *cobra.Command, w io.Writer) error { return root.GenBashCompletionV2(w, true) },
	"zsh":        (*cobra.Command).GenZshCompletion,
	"fish":       func(root *cobra.Command, w io.Writer) error { return root.GenFishCompletion(w, true) },
	"powershell": (*cobra.Command).GenPowerShellCompletionWithDesc,
}

func completionShells() []string {
	shells := make([]string, 0, len(completionGenerators))
	for s := range completionGenerators {
		shells = append(shells, s)
	}
	sort.Strings(shells)
	return shells
}

func (c *CLI) completionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|fish|powershell|zsh]",
		Short: "Generate shell completion scripts",
		Long: `Print a completion script for the given shell. Besides commands and flags,
the script completes --target, --method, --format, --os-type and the
resolver flags with the values surepatch accepts.

Load it for the current session:

  $ source <(surepatch completion bash)
  $ surepatch completion fish | source
  PS> surepatch completion powershell | Out-String | Invoke-Expression

Install it permanently:

  $ surepatch completion bash > /etc/bash_completion.d/surepatch
  $ surepatch completion zsh > "${fpath[1]}/_surepatch"
  $ surepatch completion fish > ~/.config/fish/completions/surepatch.fish`,
		DisableFlagsInUseLine: true,
		ValidArgs:             completionShells(),
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return completionGenerators[args[0]](cmd.Root(), cmd.OutOrStdout())
		},
	}
}
