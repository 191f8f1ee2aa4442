// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for scriptway.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"scriptway-cli/internal/config"
	"scriptway-cli/internal/issue"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables verbose output
	verbose bool
	// cfgFile allows specifying a custom config file
	cfgFile string

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "scriptway",
		Short: "A command-dispatch framework for project scripts",
		Long: TitleStyle.Render("scriptway") + SubtitleStyle.Render(" - A command-dispatch framework for project scripts") + `

scriptway resolves and documents the executable command scripts of a
project. Scripts live in the project's scripts directory, reusable
library modules under lib/ subtrees, and third-party plugins contribute
both. Search precedence is fixed: core framework, plugins in configured
order, then the project's own scripts.

Help text comes from the scripts themselves: the leading #-comment block
of each script is parsed into summaries and formatted descriptions, so
listings and tab completion stay in sync with the code.

` + SubtitleStyle.Render("Quick Start:") + `
  1. Create a scriptway.toml at your project root
  2. Put executable scripts in the scripts directory
  3. Explore them with: scriptway commands

` + SubtitleStyle.Render("Examples:") + `
  scriptway commands              List all command scripts
  scriptway modules --summaries   List library modules with summaries
  scriptway modules -h strings    Show a module's help text
  scriptway help deploy restart   Show a subcommand's help text
  scriptway plugins --paths       List installed plugins`,
	}
)

func init() {
	cobra.OnInitialize(initRootConfig)

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/scriptway/config.cue)")

	// Add subcommands
	rootCmd.AddCommand(modulesCmd)
	rootCmd.AddCommand(commandsCmd)
	rootCmd.AddCommand(pluginsCmd)
	rootCmd.AddCommand(completeCmd)
	rootCmd.AddCommand(completionCmd)

	// "scriptway help deploy restart" resolves script commands through the
	// search path, so the default cobra help command is replaced.
	rootCmd.SetHelpCommand(helpCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	// Use fang.Execute for enhanced Cobra styling. Version goes through
	// fang.WithVersion() since fang overrides rootCmd.Version.
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

// initRootConfig reads the config file and environment, and wires logging.
func initRootConfig() {
	if cfgFile != "" {
		config.SetConfigFilePathOverride(cfgFile)
	}

	cfg, err := config.Load()
	if err != nil {
		// Always surface config loading errors to the user.
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, verbose))
	}

	// Apply verbose from config if not set via flag
	if cfg != nil && !verbose {
		verbose = cfg.UI.Verbose
	}

	log.SetOutput(os.Stderr)
	if verbose {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.WarnLevel)
	}
}

// formatErrorForDisplay formats an error for user display. ActionableErrors
// use their Format method; verbose mode shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}

// GetVerbose returns the verbose flag value
func GetVerbose() bool {
	return verbose
}
