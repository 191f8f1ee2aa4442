// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"scriptway-cli/internal/discovery"
	"scriptway-cli/internal/listing"

	"github.com/spf13/cobra"
)

var (
	// commandsPaths lists root-relative file paths alongside names
	commandsPaths bool
	// commandsSummaries lists one-line header summaries alongside names
	commandsSummaries bool
)

// commandsCmd lists the command scripts on the search path.
var commandsCmd = &cobra.Command{
	Use:   "commands [flags] [glob...]",
	Short: "List command scripts",
	Long: `List the command scripts available on the search path.

Command scripts live directly under each root. A script's subcommands live
in a sibling directory named after it with a ".d" suffix; they are listed
with space-joined names ("deploy restart"). Without arguments every command
is listed, grouped by origin.

Examples:
  scriptway commands               List everything, grouped by origin
  scriptway commands --summaries   Include one-line summaries
  scriptway commands 'dep*'        Commands matching a pattern`,
	RunE: runCommands,
}

func init() {
	commandsCmd.Flags().BoolVar(&commandsPaths, "paths", false, "list file paths relative to the project root")
	commandsCmd.Flags().BoolVar(&commandsSummaries, "summaries", false, "list one-line summaries from script headers")
	commandsCmd.MarkFlagsMutuallyExclusive("paths", "summaries")
}

func runCommands(cmd *cobra.Command, args []string) error {
	e, cfg := newEngine(discovery.ModeCommands)
	opts := listingOptions(e, cfg)
	format := listingFormat(commandsPaths, commandsSummaries)

	var (
		lines []string
		err   error
	)
	if len(args) == 0 {
		lines, err = commandsByClass(e, format, opts)
	} else {
		refs, lerr := e.List(args...)
		if lerr != nil {
			return lerr
		}
		refs, lerr = expandSubcommands(e, refs)
		if lerr != nil {
			return lerr
		}
		lines, err = listing.Lines(refs, format, opts)
	}
	if err != nil {
		return err
	}

	for _, l := range lines {
		fmt.Println(l)
	}
	return nil
}

// commandsByClass renders the grouped all-commands listing with each
// script's subcommand tree flattened in after it.
func commandsByClass(e *discovery.Engine, format listing.Format, opts listing.Options) ([]string, error) {
	res, err := e.Search("*")
	if err != nil {
		return nil, err
	}

	groups := []struct {
		class discovery.Class
		refs  []discovery.Ref
	}{
		{discovery.ClassCore, res.Core()},
		{discovery.ClassPlugin, res.Plugin()},
		{discovery.ClassProject, res.Project()},
	}

	var lines []string
	for _, g := range groups {
		refs, err := expandSubcommands(e, g.refs)
		if err != nil {
			return nil, err
		}
		if len(refs) == 0 {
			continue
		}
		if len(lines) > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, g.class.String()+":")
		group, err := listing.Lines(refs, format, opts)
		if err != nil {
			return nil, err
		}
		for _, l := range group {
			lines = append(lines, "  "+l)
		}
	}
	return lines, nil
}

// expandSubcommands interleaves each script's subcommand tree, depth first,
// directly after the script itself.
func expandSubcommands(e *discovery.Engine, refs []discovery.Ref) ([]discovery.Ref, error) {
	var out []discovery.Ref
	for _, ref := range refs {
		out = append(out, ref)
		subs, err := e.Subcommands(ref)
		if err != nil {
			return nil, err
		}
		expanded, err := expandSubcommands(e, subs)
		if err != nil {
			return nil, err
		}
		out = append(out, expanded...)
	}
	return out, nil
}
