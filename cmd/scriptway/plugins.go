// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"strings"

	"scriptway-cli/internal/config"
	"scriptway-cli/internal/discovery"

	"github.com/spf13/cobra"
)

var (
	// pluginsPaths lists plugin root directories alongside names
	pluginsPaths bool
	// pluginsSummaries lists each plugin's module/command counts
	pluginsSummaries bool
)

// pluginsCmd lists the installed plugin roots in search order.
var pluginsCmd = &cobra.Command{
	Use:   "plugins [flags]",
	Short: "List installed plugins",
	Long: `List the installed plugin roots in their configured search order.

Plugins contribute command scripts and library modules; the order shown
here is the order the search path consults them in.

Examples:
  scriptway plugins              Plugin names in search order
  scriptway plugins --paths      Names with root directories
  scriptway plugins --summaries  Names with module/command counts`,
	Args: cobra.NoArgs,
	RunE: runPlugins,
}

func init() {
	pluginsCmd.Flags().BoolVar(&pluginsPaths, "paths", false, "list plugin root directories")
	pluginsCmd.Flags().BoolVar(&pluginsSummaries, "summaries", false, "list module and command counts per plugin")
	pluginsCmd.MarkFlagsMutuallyExclusive("paths", "summaries")
}

func runPlugins(cmd *cobra.Command, args []string) error {
	roots := discovery.RootsFromConfig(config.Get())
	modules := discovery.NewEngine(roots, discovery.ModeModules)
	commands := discovery.NewEngine(roots, discovery.ModeCommands)

	plugins := roots.Plugins
	if len(plugins) == 0 {
		return nil
	}

	longest := 0
	for _, p := range plugins {
		if len(p.Label) > longest {
			longest = len(p.Label)
		}
	}

	for _, p := range plugins {
		switch {
		case pluginsPaths:
			fmt.Println(padTo(p.Label, longest) + "  " + p.Dir)
		case pluginsSummaries:
			mods, err := modules.FindAllInRoot(p, "*")
			if err != nil {
				return err
			}
			cmds, err := commands.FindAllInRoot(p, "*")
			if err != nil {
				return err
			}
			fmt.Printf("%s  %d module(s), %d command(s)\n", padTo(p.Label, longest), len(mods), len(cmds))
		default:
			fmt.Println(p.Label)
		}
	}
	return nil
}

// padTo right-pads s with spaces to width.
func padTo(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
