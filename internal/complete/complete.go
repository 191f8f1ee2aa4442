// SPDX-License-Identifier: MPL-2.0

// Package complete maps shell tab-completion requests (the index of the
// word under the cursor plus the full argument vector) onto the discovery
// engine. Output is one candidate per line with no trailing context, so any
// diagnostic must stay off stdout.
package complete

import (
	"fmt"
	"strings"

	"scriptway-cli/internal/discovery"
)

// completableFlags are the flags offered at the first argument position.
var completableFlags = []string{"--help", "--paths", "--summaries", "--imported"}

// Complete returns the valid completion strings for the word at index
// within words. The word at index is the (possibly empty) prefix being
// completed. A position where nothing can follow returns an error; callers
// must treat that as "no completions", not a crash.
func Complete(e *discovery.Engine, index int, words []string) ([]string, error) {
	if index < 0 {
		return nil, fmt.Errorf("word index %d out of range: %w", index, discovery.ErrInvalidArgument)
	}

	var current string
	if index < len(words) {
		current = words[index]
	}

	var candidates []string
	if index == 0 {
		candidates = append(candidates, completableFlags...)
		names, err := moduleCandidates(e, current)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, names...)
	} else {
		head := ""
		if len(words) > 0 {
			head = words[0]
		}

		switch {
		case head == "-h" || head == "--help":
			// Help takes exactly one module argument.
			if index > 1 {
				return nil, fmt.Errorf("nothing to complete after a help argument")
			}
		case head == "--paths" || head == "--summaries":
			// Value-accepting flags keep taking module names.
		case strings.HasPrefix(head, "-"):
			return nil, fmt.Errorf("flag %s accepts no further arguments", head)
		}

		names, err := moduleCandidates(e, current)
		if err != nil {
			return nil, err
		}
		candidates = names
	}

	return filter(candidates, current, words, index), nil
}

// moduleCandidates produces the name candidates for the prefix being
// completed. A slash narrows the search to that plugin's modules; otherwise
// core and project names are offered alongside plugin expansions: the full
// module list when exactly one plugin matches the prefix, or each matching
// plugin's "name/" token when several do.
func moduleCandidates(e *discovery.Engine, prefix string) ([]string, error) {
	roots := e.Roots()

	if pluginName, _, ok := strings.Cut(prefix, "/"); ok {
		plugin, found := roots.Plugin(pluginName)
		if !found {
			return nil, nil
		}
		refs, err := e.FindAllInRoot(plugin, "*")
		if err != nil {
			return nil, err
		}
		return names(refs), nil
	}

	res, err := e.Search("*")
	if err != nil {
		return nil, err
	}

	var candidates []string
	candidates = append(candidates, names(res.Core())...)
	candidates = append(candidates, names(res.Project())...)

	var matching []discovery.Root
	for _, p := range roots.Plugins {
		if strings.HasPrefix(p.Label, prefix) {
			matching = append(matching, p)
		}
	}
	switch len(matching) {
	case 0:
	case 1:
		// A single matching plugin expands straight to its module names,
		// sparing the user the intermediate "plugin/" completion.
		refs, err := e.FindAllInRoot(matching[0], "*")
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, names(refs)...)
	default:
		for _, p := range matching {
			candidates = append(candidates, p.Label+"/")
		}
	}

	return candidates, nil
}

// filter keeps candidates matching the prefix being completed and drops any
// word already present elsewhere in the argument vector.
func filter(candidates []string, prefix string, words []string, index int) []string {
	present := make(map[string]bool, len(words))
	for i, w := range words {
		if i != index {
			present[w] = true
		}
	}

	var out []string
	seen := make(map[string]bool, len(candidates))
	for _, c := range candidates {
		if !strings.HasPrefix(c, prefix) || present[c] || seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}

// names projects references onto their display names.
func names(refs []discovery.Ref) []string {
	out := make([]string, len(refs))
	for i, r := range refs {
		out[i] = r.Name
	}
	return out
}
