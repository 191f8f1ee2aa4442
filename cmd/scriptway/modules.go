// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"
	"strings"

	"scriptway-cli/internal/discovery"
	"scriptway-cli/internal/helpdoc"
	"scriptway-cli/internal/listing"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"mvdan.cc/sh/v3/syntax"
)

var (
	// modulesPaths lists root-relative file paths alongside names
	modulesPaths bool
	// modulesSummaries lists one-line header summaries alongside names
	modulesSummaries bool
	// modulesImported restricts the listing to the invoking shell's loaded modules
	modulesImported bool
	// modulesValidate runs a shell-syntax check instead of listing
	modulesValidate bool
	// modulesRender formats help text through the markdown renderer
	modulesRender bool
)

// modulesCmd lists library modules or shows one module's help text.
var modulesCmd = &cobra.Command{
	Use:   "modules [flags] [name|glob...]",
	Short: "List library modules",
	Long: `List the library modules available on the search path.

Modules live under each root's lib/ subtree. Without arguments every module
is listed, grouped by origin: the core framework library, installed plugin
libraries, and the project library. Arguments narrow the listing: exact
names, glob patterns, or plugin-qualified patterns like "mkc*/" and
"git/push-*".

Examples:
  scriptway modules                    List everything, grouped by origin
  scriptway modules --summaries        Include one-line summaries
  scriptway modules --paths 'str*'     Matching modules with file paths
  scriptway modules -h strings         Show a module's full help text
  scriptway modules --imported         Only the shell's loaded modules
  scriptway modules --validate         Syntax-check every module`,
	RunE: runModules,
}

func init() {
	modulesCmd.Flags().BoolVar(&modulesPaths, "paths", false, "list file paths relative to the project root")
	modulesCmd.Flags().BoolVar(&modulesSummaries, "summaries", false, "list one-line summaries from module headers")
	modulesCmd.Flags().BoolVar(&modulesImported, "imported", false, "list only the modules the invoking shell has loaded")
	modulesCmd.Flags().BoolVar(&modulesValidate, "validate", false, "parse each module with the shell parser and report errors")
	modulesCmd.Flags().BoolVar(&modulesRender, "render", false, "render help text through the markdown formatter")
	modulesCmd.MarkFlagsMutuallyExclusive("paths", "summaries")

	// "-h <name>" shows the named module's help text instead of command
	// usage, so the default help path is replaced.
	modulesCmd.SetHelpFunc(modulesHelpFunc)
}

func runModules(cmd *cobra.Command, args []string) error {
	e, cfg := newEngine(discovery.ModeModules)
	opts := listingOptions(e, cfg)
	format := listingFormat(modulesPaths, modulesSummaries)

	if modulesValidate {
		return validateModules(e, args)
	}

	var (
		lines []string
		err   error
	)
	switch {
	case modulesImported:
		if len(args) > 0 {
			return fmt.Errorf("--imported takes no further arguments: %w", discovery.ErrInvalidArgument)
		}
		if len(cfg.ImportedModules) == 0 {
			return nil
		}
		lines, err = listing.List(e, format, opts, cfg.ImportedModules...)
	case len(args) == 0:
		lines, err = listing.ByClass(e, format, opts)
	default:
		lines, err = listing.List(e, format, opts, args...)
	}
	if err != nil {
		return err
	}

	for _, l := range lines {
		fmt.Println(l)
	}
	return nil
}

// validateModules parses each resolved module with the shell parser and
// fails on the first file that does not parse. Modules are never executed.
func validateModules(e *discovery.Engine, args []string) error {
	if len(args) == 0 {
		args = []string{"*"}
	}
	refs, err := e.List(args...)
	if err != nil {
		return err
	}

	parser := syntax.NewParser(syntax.Variant(syntax.LangBash))
	for _, ref := range refs {
		f, err := os.Open(ref.Path)
		if err != nil {
			return fmt.Errorf("validate %s: %w", ref.Name, err)
		}
		_, parseErr := parser.Parse(f, ref.Path)
		f.Close()
		if parseErr != nil {
			fmt.Println(ErrorStyle.Render("✗") + " " + ref.Name)
			return fmt.Errorf("validate %s: %w", ref.Name, parseErr)
		}
		fmt.Println(SuccessStyle.Render("✓") + " " + ref.Name)
	}
	fmt.Printf("\n%d module(s) OK\n", len(refs))
	return nil
}

// modulesHelpFunc handles "modules -h". With a module name it prints that
// module's full help text; without one it falls back to command usage.
func modulesHelpFunc(cmd *cobra.Command, args []string) {
	name := ""
	render := false
	for _, a := range args {
		if a == cmd.Name() {
			continue
		}
		if a == "--render" {
			render = true
			continue
		}
		if strings.HasPrefix(a, "-") {
			continue
		}
		name = a
		break
	}

	if name == "" {
		fmt.Println(cmd.Long)
		fmt.Println()
		fmt.Print(cmd.UsageString())
		return
	}

	e, cfg := newEngine(discovery.ModeModules)
	ref, err := e.Resolve(name)
	if err != nil {
		failHelp(err)
	}

	width := terminalWidth(cfg)
	text, err := helpdoc.Description(ref.Path, helpdoc.Context{
		Invoker: cmd.Root().Name(),
		Command: ref.Name,
		RootDir: e.Roots().RootDir,
		Width:   width,
	})
	if err != nil {
		failHelp(err)
	}

	out, err := renderHelpText(text, render, width)
	if err != nil {
		failHelp(err)
	}
	fmt.Println(out)
}

// failHelp reports a help-path failure and exits. Cobra help funcs have no
// error return, so this is the one place the stderr formatting and the exit
// status live for them.
func failHelp(err error) {
	fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, GetVerbose()))
	os.Exit(1)
}

// renderHelpText optionally passes help text through the glamour markdown
// renderer. Plain text passes through untouched.
func renderHelpText(text string, render bool, width int) (string, error) {
	if !render {
		return text, nil
	}
	if width <= 0 {
		width = 80
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("initialize renderer: %w", err)
	}
	out, err := r.Render(text)
	if err != nil {
		return "", fmt.Errorf("render help text: %w", err)
	}
	return strings.TrimRight(out, "\n"), nil
}
