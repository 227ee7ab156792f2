package completion

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Command creates the `completion` command
func Command() *cobra.Command {
	var cmd = &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate completion script",
		Long: `To load completions:

Bash:

  $ source <(geolocdb completion bash)

  # To load completions for each session, execute once:
  $ geolocdb completion bash > /etc/bash_completion.d/geolocdb

Zsh:

  $ geolocdb completion zsh > "${fpath[1]}/_geolocdb"

fish:

  $ geolocdb completion fish | source

PowerShell:

  PS> geolocdb completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.ExactValidArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return fmt.Errorf("unsupported shell %q", args[0])
		},
	}

	return cmd
}
