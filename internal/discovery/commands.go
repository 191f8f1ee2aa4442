// SPDX-License-Identifier: MPL-2.0

package discovery

import (
	"path/filepath"
	"strings"
)

// CommandRelPath converts command words into the root-relative script path:
// every word but the last names a subcommand directory, so
// ["deploy", "staging", "up"] becomes "deploy.d/staging.d/up".
func CommandRelPath(words []string) string {
	parts := make([]string, len(words))
	for i, w := range words {
		if i < len(words)-1 {
			parts[i] = w + subcommandSuffix
		} else {
			parts[i] = w
		}
	}
	return strings.Join(parts, "/")
}

// ResolveCommand resolves a dotted command (one word per nesting level) to
// the first root holding the full nested script path. Unlike Resolve, the
// slash-separated relative path carries no plugin qualification; every root
// is tested in precedence order.
func (e *Engine) ResolveCommand(words []string) (Ref, error) {
	if len(words) == 0 {
		return Ref{}, &UnknownCommandError{Name: ""}
	}

	rel := CommandRelPath(words)
	for _, root := range e.roots.All() {
		p := filepath.Join(root.Dir, filepath.FromSlash(rel))
		if isRegularFile(p) {
			return Ref{Path: p, Name: e.roots.DisplayName(root, p, ModeCommands), Root: root}, nil
		}
	}

	return Ref{}, &UnknownCommandError{Name: strings.Join(words, " ")}
}

// Subcommands enumerates the scripts under a command's subcommand directory
// (<script>.d/). A command without one yields an empty slice.
func (e *Engine) Subcommands(parent Ref) ([]Ref, error) {
	dir := parent.Path + subcommandSuffix

	matches, err := filepath.Glob(filepath.Join(dir, "*"))
	if err != nil {
		return nil, err
	}

	var refs []Ref
	for _, m := range matches {
		if !isRegularFile(m) {
			continue
		}
		refs = append(refs, Ref{Path: m, Name: e.roots.DisplayName(parent.Root, m, ModeCommands), Root: parent.Root})
	}
	return refs, nil
}
