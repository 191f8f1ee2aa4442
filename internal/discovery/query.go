// SPDX-License-Identifier: MPL-2.0

package discovery

import "strings"

const (
	// QueryExact matches a single file by name, resolved by root precedence.
	QueryExact QueryKind = iota
	// QueryGlob matches file names across all roots with shell glob
	// semantics.
	QueryGlob
	// QueryPluginGlob matches plugin names before the slash and file names
	// after it, searching plugin trees exclusively.
	QueryPluginGlob
)

type (
	// QueryKind discriminates the three accepted argument shapes.
	QueryKind int

	// Query is a listing argument parsed once at the entry point. Callers
	// dispatch on Kind instead of re-inspecting the raw string.
	Query struct {
		// Kind selects exact-name, glob, or plugin-qualified matching.
		Kind QueryKind
		// Plugin is the plugin-name pattern for QueryPluginGlob.
		Plugin string
		// Pattern is the file-name pattern. For QueryPluginGlob an empty
		// suffix after the slash is normalized to "*" (all modules in the
		// matching plugins).
		Pattern string
		// Raw is the argument as supplied.
		Raw string
	}
)

// ParseQuery classifies a raw listing argument. A slash switches to
// plugin-qualified matching; glob metacharacters switch to pattern matching;
// anything else is an exact name.
func ParseQuery(raw string) Query {
	if plugin, pattern, ok := strings.Cut(raw, "/"); ok {
		// Exact plugin-qualified names ("plugin/module" with no
		// metacharacters) resolve as names, not globs.
		if pattern != "" && !hasGlobMeta(plugin) && !hasGlobMeta(pattern) {
			return Query{Kind: QueryExact, Pattern: raw, Raw: raw}
		}
		if pattern == "" {
			pattern = "*"
		}
		return Query{Kind: QueryPluginGlob, Plugin: plugin, Pattern: pattern, Raw: raw}
	}

	if hasGlobMeta(raw) {
		return Query{Kind: QueryGlob, Pattern: raw, Raw: raw}
	}

	return Query{Kind: QueryExact, Pattern: raw, Raw: raw}
}

// IsWildcard reports whether the raw argument is the literal "*", which must
// be the only argument when supplied to a listing.
func (q Query) IsWildcard() bool {
	return q.Raw == "*"
}

func hasGlobMeta(s string) bool {
	return strings.ContainsAny(s, "*?[")
}
