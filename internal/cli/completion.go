package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/hupe1980/cleanwater/internal/waterfilter"
)

func newCompletionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "completion <shell>",
		Short: "Generate shell completion scripts",
		Long: `Generate a shell completion script for cleanwater. Completions cover
subcommands, flags, and the filter kinds accepted by --kind.

Bash:
  $ source <(cleanwater completion bash)

Zsh:
  $ cleanwater completion zsh > "${fpath[1]}/_cleanwater"

Fish:
  $ cleanwater completion fish > ~/.config/fish/completions/cleanwater.fish

PowerShell:
  PS> cleanwater completion powershell | Out-String | Invoke-Expression
`,
		// Script generation needs no config.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		Args:              cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs:         []string{"bash", "zsh", "fish", "powershell"},
		RunE: func(cmd *cobra.Command, args []string) error {
			root := cmd.Root()
			w := cmd.OutOrStdout()

			switch args[0] {
			case "bash":
				return root.GenBashCompletionV2(w, true)
			case "zsh":
				return root.GenZshCompletion(w)
			case "fish":
				return root.GenFishCompletion(w, true)
			default:
				return root.GenPowerShellCompletionWithDesc(w)
			}
		},
	}
}

// registerKindCompletion completes --kind with the registered filter kinds.
func registerKindCompletion(cmd *cobra.Command) error {
	return cmd.RegisterFlagCompletionFunc("kind", completeKinds)
}

func completeKinds(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var kinds []string

	for _, k := range waterfilter.DefaultRegistry().Kinds() {
		if strings.HasPrefix(k, strings.ToLower(toComplete)) {
			kinds = append(kinds, k)
		}
	}

	return kinds, cobra.ShellCompDirectiveNoFileComp
}
