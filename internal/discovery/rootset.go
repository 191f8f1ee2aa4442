// SPDX-License-Identifier: MPL-2.0

package discovery

import (
	"path/filepath"
	"strings"

	"scriptway-cli/internal/config"
)

const (
	// ClassCore identifies entries owned by the core framework root.
	ClassCore Class = iota
	// ClassPlugin identifies entries owned by an installed plugin root.
	ClassPlugin
	// ClassProject identifies entries owned by the project scripts root.
	ClassProject
)

// libDirName is the subtree within each root that holds library modules.
const libDirName = "lib"

// subcommandSuffix marks a directory as holding subcommands of the script
// with the same stem (e.g. "deploy.d/" holds subcommands of "deploy").
const subcommandSuffix = ".d"

type (
	// Class partitions search results by the kind of root that owns them.
	Class int

	// Root is one search root: a labeled directory holding command scripts
	// directly and library modules under its lib/ subtree.
	Root struct {
		// Label is "core", the plugin name, or "project".
		Label string
		// Dir is the absolute path to the root's command tree.
		Dir string
		// Class is the origin class used for grouping listings.
		Class Class
	}

	// RootSet is the ordered, immutable set of search roots for one
	// invocation. Precedence is fixed: core, then plugins in configured
	// order, then project.
	RootSet struct {
		// Core is the framework's own root.
		Core Root
		// Plugins are the installed plugin roots in configured order.
		Plugins []Root
		// Project is the project scripts root.
		Project Root
		// RootDir is the project root directory, used to relativize paths
		// in "paths" listings.
		RootDir string
	}
)

// String returns the group heading used by class-partitioned listings.
func (c Class) String() string {
	switch c {
	case ClassCore:
		return "core framework library"
	case ClassPlugin:
		return "installed plugin libraries"
	case ClassProject:
		return "project library"
	default:
		return "unknown"
	}
}

// LibDir returns the root's module subtree (Dir/lib).
func (r Root) LibDir() string {
	return filepath.Join(r.Dir, libDirName)
}

// RootsFromConfig builds the RootSet for one invocation from the loaded
// configuration. The set must not be mutated afterwards; listing calls rely
// on its order for both precedence and class grouping.
func RootsFromConfig(cfg *config.Config) *RootSet {
	rs := &RootSet{
		Core: Root{Label: "core", Dir: cfg.CoreDir, Class: ClassCore},
	}

	if cfg.Project != nil {
		rs.RootDir = cfg.Project.RootDir
		rs.Project = Root{Label: "project", Dir: cfg.Project.ScriptsDir, Class: ClassProject}
		for _, p := range cfg.Project.Plugins {
			rs.Plugins = append(rs.Plugins, Root{Label: p.Name, Dir: p.Path, Class: ClassPlugin})
		}
	}

	return rs
}

// All returns every root in precedence order: core, plugins, project.
// Roots with an empty Dir (e.g. no project found) are skipped.
func (rs *RootSet) All() []Root {
	roots := make([]Root, 0, len(rs.Plugins)+2)
	if rs.Core.Dir != "" {
		roots = append(roots, rs.Core)
	}
	roots = append(roots, rs.Plugins...)
	if rs.Project.Dir != "" {
		roots = append(roots, rs.Project)
	}
	return roots
}

// Plugin returns the plugin root with the given name, if configured.
func (rs *RootSet) Plugin(name string) (Root, bool) {
	for _, p := range rs.Plugins {
		if p.Label == name {
			return p, true
		}
	}
	return Root{}, false
}

// DisplayName derives the user-facing name for an absolute path owned by
// root. Module names are relative to the root's lib/ subtree; plugin-owned
// modules are prefixed with the plugin name so they read as "plugin/module".
// Command names have each subcommand directory segment's ".d/" collapsed to
// a space, yielding the dotted name ("parent sub").
func (rs *RootSet) DisplayName(root Root, path string, mode Mode) string {
	base := root.Dir
	if mode == ModeModules {
		base = root.LibDir()
	}

	rel, err := filepath.Rel(base, path)
	if err != nil {
		rel = path
	}
	rel = filepath.ToSlash(rel)

	switch mode {
	case ModeModules:
		if root.Class == ClassPlugin {
			return root.Label + "/" + rel
		}
		return rel
	default:
		return dottedName(rel)
	}
}

// dottedName converts a root-relative command path into its dotted display
// name: each "<name>.d/" segment becomes "<name> ".
func dottedName(rel string) string {
	segments := strings.Split(rel, "/")
	for i, seg := range segments[:len(segments)-1] {
		segments[i] = strings.TrimSuffix(seg, subcommandSuffix)
	}
	return strings.Join(segments, " ")
}
