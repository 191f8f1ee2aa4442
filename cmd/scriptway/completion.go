// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// completionCmd generates shell completion scripts for the scriptway
// binary itself. Script-name completion goes through the hidden
// `complete` command instead.
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion scripts",
	Long: `Generate shell completion scripts for scriptway.

To enable shell completions, run one of the following commands:

` + SubtitleStyle.Render("Bash:") + `
  # Add to ~/.bashrc:
  eval "$(scriptway completion bash)"

  # Or install system-wide:
  scriptway completion bash > /etc/bash_completion.d/scriptway

` + SubtitleStyle.Render("Zsh:") + `
  # Add to ~/.zshrc:
  eval "$(scriptway completion zsh)"

  # Or install to fpath:
  scriptway completion zsh > "${fpath[1]}/_scriptway"

` + SubtitleStyle.Render("Fish:") + `
  scriptway completion fish > ~/.config/fish/completions/scriptway.fish

` + SubtitleStyle.Render("PowerShell:") + `
  scriptway completion powershell | Out-String | Invoke-Expression

  # Or add to $PROFILE:
  scriptway completion powershell >> $PROFILE
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
