// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"strconv"

	"scriptway-cli/internal/complete"
	"scriptway-cli/internal/discovery"

	"github.com/spf13/cobra"
)

// completeCmd is the hidden entry point the bash completion glue calls on
// every TAB press. Stdout carries candidates only, one per line; anything
// else would corrupt the completion list, so errors go to stderr with a
// nonzero exit.
var completeCmd = &cobra.Command{
	Use:    "complete <word-index> [word...]",
	Short:  "Produce completion candidates for the shell",
	Hidden: true,
	Args:   cobra.MinimumNArgs(1),
	// Later words may start with dashes; they are completion input, not
	// flags for this command.
	DisableFlagParsing: true,
	SilenceErrors:      true,
	SilenceUsage:       true,
	RunE:               runComplete,
}

func runComplete(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return &ExitError{Code: 1, Err: fmt.Errorf("missing word index: %w", discovery.ErrInvalidArgument)}
	}

	index, err := strconv.Atoi(args[0])
	if err != nil {
		return &ExitError{Code: 1, Err: fmt.Errorf("bad word index %q: %w", args[0], discovery.ErrInvalidArgument)}
	}

	e, _ := newEngine(discovery.ModeModules)
	candidates, err := complete.Complete(e, index, args[1:])
	if err != nil {
		return &ExitError{Code: 1, Err: err}
	}

	for _, c := range candidates {
		fmt.Println(c)
	}
	return nil
}
