package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// completionCommand creates the completion command for generating shell
// completion scripts.
func (c *CLI) completionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for spanviz.

To load completions:

Bash:
  $ source <(spanviz completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ spanviz completion bash > /etc/bash_completion.d/spanviz
  # macOS:
  $ spanviz completion bash > $(brew --prefix)/etc/bash_completion.d/spanviz

Zsh:
  $ spanviz completion zsh > "${fpath[1]}/_spanviz"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ spanviz completion fish | source

  # To load completions for each session, execute once:
  $ spanviz completion fish > ~/.config/fish/completions/spanviz.fish

PowerShell:
  PS> spanviz completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(os.Stdout)
			case "zsh":
				return cmd.Root().GenZshCompletion(os.Stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(os.Stdout, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
			}
			return nil
		},
	}
}
