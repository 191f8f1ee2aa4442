// SPDX-License-Identifier: MPL-2.0

package discovery

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
)

const (
	// ModeModules searches the lib/ subtree of each root.
	ModeModules Mode = iota
	// ModeCommands searches each root's command tree directly.
	ModeCommands
)

type (
	// Mode selects whether the engine enumerates library modules or command
	// scripts.
	Mode int

	// Ref is one resolved module or command: its absolute path, its
	// user-facing display name, and the root that owns it.
	Ref struct {
		// Path is the absolute file path.
		Path string
		// Name is the display name (root prefix stripped, lib/ collapsed
		// for plugin modules, ".d/" collapsed for subcommands).
		Name string
		// Root is the owning search root.
		Root Root
	}

	// Result is an ordered search outcome partitioned into three contiguous
	// segments: core, plugin, project. CoreEnd and PluginEnd are the
	// boundary offsets into Refs.
	Result struct {
		// Refs holds all matches in root precedence order.
		Refs []Ref
		// CoreEnd is the offset one past the last core match.
		CoreEnd int
		// PluginEnd is the offset one past the last plugin match.
		PluginEnd int
	}

	// Engine enumerates and resolves entries over a fixed RootSet in one
	// mode. It holds no mutable state; every call allocates fresh results.
	Engine struct {
		roots *RootSet
		mode  Mode
	}
)

// NewEngine creates an engine over the given roots and mode.
func NewEngine(roots *RootSet, mode Mode) *Engine {
	return &Engine{roots: roots, mode: mode}
}

// Roots returns the engine's root set.
func (e *Engine) Roots() *RootSet {
	return e.roots
}

// Core returns the core segment of the result.
func (r Result) Core() []Ref {
	return r.Refs[:r.CoreEnd]
}

// Plugin returns the plugin segment of the result.
func (r Result) Plugin() []Ref {
	return r.Refs[r.CoreEnd:r.PluginEnd]
}

// Project returns the project segment of the result.
func (r Result) Project() []Ref {
	return r.Refs[r.PluginEnd:]
}

// searchDir returns the directory searched within root for the engine's
// mode: the lib/ subtree for modules, the root itself for commands.
func (e *Engine) searchDir(root Root) string {
	if e.mode == ModeModules {
		return root.LibDir()
	}
	return root.Dir
}

// Resolve finds the first existing regular file for an exact name, testing
// roots in precedence order: core, the named plugin (for plugin-qualified
// names), project. It performs no globbing.
func (e *Engine) Resolve(name string) (Ref, error) {
	if name == "" {
		return Ref{}, fmt.Errorf("empty name: %w", ErrInvalidArgument)
	}

	type candidate struct {
		root Root
		path string
	}

	candidates := make([]candidate, 0, len(e.roots.Plugins)+2)
	if e.roots.Core.Dir != "" {
		candidates = append(candidates, candidate{e.roots.Core, filepath.Join(e.searchDir(e.roots.Core), filepath.FromSlash(name))})
	}
	if plugin, rest, ok := strings.Cut(name, "/"); ok && rest != "" {
		// Plugin-qualified: only the named plugin's tree is tested.
		if p, found := e.roots.Plugin(plugin); found {
			candidates = append(candidates, candidate{p, filepath.Join(e.searchDir(p), filepath.FromSlash(rest))})
		}
	} else {
		for _, p := range e.roots.Plugins {
			candidates = append(candidates, candidate{p, filepath.Join(e.searchDir(p), name)})
		}
	}
	if e.roots.Project.Dir != "" {
		candidates = append(candidates, candidate{e.roots.Project, filepath.Join(e.searchDir(e.roots.Project), filepath.FromSlash(name))})
	}

	for _, c := range candidates {
		if isRegularFile(c.path) {
			return Ref{Path: c.path, Name: e.roots.DisplayName(c.root, c.path, e.mode), Root: c.root}, nil
		}
	}

	return Ref{}, fmt.Errorf("%s: %w", name, ErrNotFound)
}

// FindAllInRoot enumerates every regular file under the root's search
// directory whose name matches pattern with shell glob semantics. A missing
// root or zero matches yields an empty slice; only a malformed pattern is an
// error. Entries follow filepath.Glob's lexical order within the root; no
// further sort is applied.
func (e *Engine) FindAllInRoot(root Root, pattern string) ([]Ref, error) {
	dir := e.searchDir(root)
	if dir == "" {
		return nil, nil
	}

	matches, err := filepath.Glob(filepath.Join(dir, filepath.FromSlash(pattern)))
	if err != nil {
		return nil, fmt.Errorf("bad pattern %q: %w", pattern, ErrInvalidArgument)
	}

	var refs []Ref
	for _, m := range matches {
		if !isRegularFile(m) {
			continue
		}
		refs = append(refs, Ref{Path: m, Name: e.roots.DisplayName(root, m, e.mode), Root: root})
	}
	return refs, nil
}

// Search expands a pattern across the root set and partitions the matches
// into the three origin segments. Plugin-qualified patterns search plugin
// trees exclusively, leaving the core and project segments empty.
func (e *Engine) Search(pattern string) (Result, error) {
	q := ParseQuery(pattern)

	var res Result

	if q.Kind != QueryPluginGlob && e.roots.Core.Dir != "" {
		refs, err := e.FindAllInRoot(e.roots.Core, q.Pattern)
		if err != nil {
			return Result{}, err
		}
		res.Refs = append(res.Refs, refs...)
	}
	res.CoreEnd = len(res.Refs)

	pluginPattern := "*"
	if q.Kind == QueryPluginGlob {
		pluginPattern = q.Plugin
	}
	for _, p := range e.roots.Plugins {
		ok, err := path.Match(pluginPattern, p.Label)
		if err != nil {
			return Result{}, fmt.Errorf("bad plugin pattern %q: %w", pluginPattern, ErrInvalidArgument)
		}
		if !ok {
			continue
		}
		refs, err := e.FindAllInRoot(p, q.Pattern)
		if err != nil {
			return Result{}, err
		}
		res.Refs = append(res.Refs, refs...)
	}
	res.PluginEnd = len(res.Refs)

	if q.Kind != QueryPluginGlob && e.roots.Project.Dir != "" {
		refs, err := e.FindAllInRoot(e.roots.Project, q.Pattern)
		if err != nil {
			return Result{}, err
		}
		res.Refs = append(res.Refs, refs...)
	}

	return res, nil
}

// List resolves each argument into references. The literal wildcard "*"
// must be the only argument; patterns expand through Search; bare names
// resolve by precedence and fail with an unknown-module or unknown-command
// error when nothing matches.
func (e *Engine) List(args ...string) ([]Ref, error) {
	// The argument shape is validated up front so a bad combination is
	// rejected the same way regardless of what any earlier spec resolves to.
	if len(args) > 1 {
		for _, arg := range args {
			if ParseQuery(arg).IsWildcard() {
				return nil, fmt.Errorf("wildcard %q cannot be combined with other arguments: %w", arg, ErrInvalidArgument)
			}
		}
	}

	var refs []Ref

	for _, arg := range args {
		q := ParseQuery(arg)

		switch q.Kind {
		case QueryGlob, QueryPluginGlob:
			res, err := e.Search(arg)
			if err != nil {
				return nil, err
			}
			refs = append(refs, res.Refs...)
		default:
			ref, err := e.Resolve(q.Pattern)
			if err != nil {
				if errors.Is(err, ErrNotFound) {
					return nil, e.unknownError(arg)
				}
				return nil, err
			}
			refs = append(refs, ref)
		}
	}

	return refs, nil
}

// unknownError names the unresolved identifier with the mode's vocabulary.
func (e *Engine) unknownError(name string) error {
	if e.mode == ModeModules {
		return &UnknownModuleError{Name: name}
	}
	return &UnknownCommandError{Name: name}
}

// isRegularFile reports whether path exists and is a regular file.
func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
