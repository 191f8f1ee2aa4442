// SPDX-License-Identifier: MPL-2.0

// Package listing turns resolved module/command references into aligned,
// human-readable output lines for the names, paths, and summaries views.
package listing

import (
	"fmt"
	"path/filepath"
	"strings"

	"scriptway-cli/internal/discovery"
	"scriptway-cli/internal/helpdoc"
)

const (
	// FormatNames lists display names only.
	FormatNames Format = iota
	// FormatPaths lists padded names with root-relative paths.
	FormatPaths
	// FormatSummaries lists padded names with one-line header summaries.
	FormatSummaries
)

type (
	// Format selects the listing view.
	Format int

	// Options carries the per-invocation context the views need: the
	// project root for path relativization and the help-text context for
	// summary extraction.
	Options struct {
		// RootDir relativizes paths in the paths view. Empty keeps paths
		// absolute.
		RootDir string
		// Doc is the placeholder/width context passed to the header parser.
		Doc helpdoc.Context
	}
)

// Lines renders references in the requested view. Names are padded to the
// longest display name in this result set. A summary that cannot be
// extracted aborts the whole listing; no partial output is produced.
func Lines(refs []discovery.Ref, format Format, opts Options) ([]string, error) {
	longest := 0
	for _, ref := range refs {
		if len(ref.Name) > longest {
			longest = len(ref.Name)
		}
	}

	lines := make([]string, 0, len(refs))
	for _, ref := range refs {
		switch format {
		case FormatPaths:
			lines = append(lines, pad(ref.Name, longest)+"  "+relativePath(ref.Path, opts.RootDir))
		case FormatSummaries:
			summary, err := helpdoc.Summary(ref.Path, opts.Doc)
			if err != nil {
				return nil, fmt.Errorf("summary for %s: %w", ref.Name, err)
			}
			lines = append(lines, pad(ref.Name, longest)+"  "+summary)
		default:
			lines = append(lines, ref.Name)
		}
	}
	return lines, nil
}

// List resolves the arguments through the engine and renders them. With no
// arguments everything is listed.
func List(e *discovery.Engine, format Format, opts Options, args ...string) ([]string, error) {
	if len(args) == 0 {
		args = []string{"*"}
	}
	refs, err := e.List(args...)
	if err != nil {
		return nil, err
	}
	return Lines(refs, format, opts)
}

// ByClass lists everything grouped by origin class: core framework library,
// installed plugin libraries, project library. Empty groups are omitted.
// Padding is computed per group.
func ByClass(e *discovery.Engine, format Format, opts Options) ([]string, error) {
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
		if len(g.refs) == 0 {
			continue
		}
		if len(lines) > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, g.class.String()+":")
		group, err := Lines(g.refs, format, opts)
		if err != nil {
			return nil, err
		}
		for _, l := range group {
			lines = append(lines, "  "+l)
		}
	}
	return lines, nil
}

// pad right-pads name with spaces to the given width.
func pad(name string, width int) string {
	if len(name) >= width {
		return name
	}
	return name + strings.Repeat(" ", width-len(name))
}

// relativePath rewrites path relative to rootDir when possible.
func relativePath(path, rootDir string) string {
	if rootDir == "" {
		return path
	}
	rel, err := filepath.Rel(rootDir, path)
	if err != nil {
		return path
	}
	return rel
}
