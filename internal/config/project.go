// SPDX-License-Identifier: MPL-2.0

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

const (
	// ProjectFileName marks a directory as a project root.
	ProjectFileName = "scriptway.toml"
	// defaultScriptsDir is used when the project file declares none.
	defaultScriptsDir = "scripts"
	// pluginsDirName is the subdirectory of the scripts dir scanned for
	// plugins when the project file lists none explicitly.
	pluginsDirName = "plugins"
)

// projectFile is the on-disk shape of scriptway.toml.
type projectFile struct {
	// ScriptsDir is the project scripts directory, relative to the project
	// root unless absolute.
	ScriptsDir string `toml:"scripts_dir"`
	// Plugins lists plugin roots in search order. Paths are relative to
	// the project root unless absolute; an empty name defaults to the
	// path's base name.
	Plugins []struct {
		Name string `toml:"name"`
		Path string `toml:"path"`
	} `toml:"plugins"`
}

// FindProject walks up from startDir looking for scriptway.toml and parses
// it into the resolved Project. Returns nil without error when no project
// file exists on the path to the filesystem root.
func FindProject(startDir string) (*Project, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve project search start: %w", err)
	}

	for {
		path := filepath.Join(dir, ProjectFileName)
		if fileExists(path) {
			return loadProject(dir, path)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, nil
		}
		dir = parent
	}
}

// loadProject decodes the project file and resolves all paths against the
// project root.
func loadProject(rootDir, path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read project file %s: %w", path, err)
	}

	var pf projectFile
	if err := toml.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("failed to parse project file %s: %w", path, err)
	}

	scriptsDir := pf.ScriptsDir
	if scriptsDir == "" {
		scriptsDir = defaultScriptsDir
	}
	if !filepath.IsAbs(scriptsDir) {
		scriptsDir = filepath.Join(rootDir, scriptsDir)
	}

	project := &Project{
		RootDir:    rootDir,
		ScriptsDir: scriptsDir,
	}

	for _, p := range pf.Plugins {
		pluginPath := p.Path
		if !filepath.IsAbs(pluginPath) {
			pluginPath = filepath.Join(rootDir, pluginPath)
		}
		name := p.Name
		if name == "" {
			name = filepath.Base(pluginPath)
		}
		project.Plugins = append(project.Plugins, PluginEntry{Name: name, Path: pluginPath})
	}

	// With no explicit plugin list, every directory under
	// <scripts>/plugins is a plugin root, in directory order.
	if len(project.Plugins) == 0 {
		project.Plugins = discoverPlugins(filepath.Join(scriptsDir, pluginsDirName))
	}

	return project, nil
}

// discoverPlugins scans dir for plugin root directories. A missing or
// unreadable directory simply yields none.
func discoverPlugins(dir string) []PluginEntry {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var plugins []PluginEntry
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		plugins = append(plugins, PluginEntry{
			Name: entry.Name(),
			Path: filepath.Join(dir, entry.Name()),
		})
	}
	return plugins
}
