// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"scriptway-cli/internal/discovery"
	"scriptway-cli/internal/helpdoc"

	"github.com/spf13/cobra"
)

// helpRender formats command help text through the markdown renderer
var helpRender bool

// helpCmd shows a command script's full help text. It replaces cobra's
// default help command so nested script commands resolve through the
// search path rather than the cobra command tree.
var helpCmd = &cobra.Command{
	Use:   "help <command> [subcommand...]",
	Short: "Show a command script's help text",
	Long: `Show the full help text of a command script.

The words name the script, one per nesting level: "help deploy restart"
resolves the restart subcommand of deploy. The text comes from the
script's leading #-comment block, with placeholders substituted and
overlong lines wrapped to the terminal width.`,
	Args: cobra.ArbitraryArgs,
	RunE: runHelp,
}

func init() {
	helpCmd.Flags().BoolVar(&helpRender, "render", false, "render help text through the markdown formatter")
}

func runHelp(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return cmd.Root().Help()
	}

	e, cfg := newEngine(discovery.ModeCommands)

	ref, err := e.ResolveCommand(args)
	if err != nil {
		return err
	}

	width := terminalWidth(cfg)
	text, err := helpdoc.Description(ref.Path, helpdoc.Context{
		Invoker: cmd.Root().Name(),
		Command: ref.Name,
		RootDir: e.Roots().RootDir,
		Width:   width,
	})
	if err != nil {
		return err
	}

	out, err := renderHelpText(text, helpRender, width)
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}
