// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"os"
	"strconv"

	"scriptway-cli/internal/config"

	"golang.org/x/term"
)

// terminalWidth resolves the column count used for wrapping help text.
// Precedence: explicit config override, the COLUMNS environment variable,
// then the detected terminal size. Returns 0 when stdout is not a terminal
// so the formatter applies its own default.
func terminalWidth(cfg *config.Config) int {
	if cfg != nil && cfg.UI.Width > 0 {
		return cfg.UI.Width
	}

	if cols := os.Getenv("COLUMNS"); cols != "" {
		if n, err := strconv.Atoi(cols); err == nil && n > 0 {
			return n
		}
	}

	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			return w
		}
	}
	return 0
}
