// SPDX-License-Identifier: MPL-2.0

package discovery

import (
	"path/filepath"
	"testing"

	"scriptway-cli/internal/config"
)

func TestClassString(t *testing.T) {
	tests := []struct {
		class Class
		want  string
	}{
		{ClassCore, "core framework library"},
		{ClassPlugin, "installed plugin libraries"},
		{ClassProject, "project library"},
		{Class(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.class.String(); got != tt.want {
			t.Errorf("Class(%d).String() = %q, want %q", tt.class, got, tt.want)
		}
	}
}

func TestRootsFromConfig(t *testing.T) {
	t.Run("no project", func(t *testing.T) {
		cfg := &config.Config{CoreDir: "/opt/scriptway/core"}
		rs := RootsFromConfig(cfg)

		if rs.Core.Dir != "/opt/scriptway/core" || rs.Core.Class != ClassCore {
			t.Errorf("unexpected core root: %+v", rs.Core)
		}
		if len(rs.Plugins) != 0 {
			t.Errorf("expected no plugins, got %d", len(rs.Plugins))
		}
		if rs.Project.Dir != "" {
			t.Errorf("expected empty project root, got %+v", rs.Project)
		}
		if got := len(rs.All()); got != 1 {
			t.Errorf("All() returned %d roots, want 1", got)
		}
	})

	t.Run("with project and plugins", func(t *testing.T) {
		cfg := &config.Config{
			CoreDir: "/opt/scriptway/core",
			Project: &config.Project{
				RootDir:    "/work/app",
				ScriptsDir: "/work/app/scripts",
				Plugins: []config.PluginEntry{
					{Name: "git", Path: "/work/app/scripts/plugins/git"},
					{Name: "docker", Path: "/work/app/scripts/plugins/docker"},
				},
			},
		}
		rs := RootsFromConfig(cfg)

		if rs.RootDir != "/work/app" {
			t.Errorf("RootDir = %q", rs.RootDir)
		}
		if len(rs.Plugins) != 2 || rs.Plugins[0].Label != "git" || rs.Plugins[1].Label != "docker" {
			t.Errorf("unexpected plugins: %+v", rs.Plugins)
		}
		if rs.Project.Dir != "/work/app/scripts" || rs.Project.Class != ClassProject {
			t.Errorf("unexpected project root: %+v", rs.Project)
		}

		all := rs.All()
		if len(all) != 4 {
			t.Fatalf("All() returned %d roots, want 4", len(all))
		}
		wantOrder := []string{"core", "git", "docker", "project"}
		for i, w := range wantOrder {
			if all[i].Label != w {
				t.Errorf("All()[%d] = %q, want %q", i, all[i].Label, w)
			}
		}
	})
}

func TestPluginLookup(t *testing.T) {
	rs := &RootSet{
		Plugins: []Root{
			{Label: "git", Dir: "/p/git", Class: ClassPlugin},
			{Label: "docker", Dir: "/p/docker", Class: ClassPlugin},
		},
	}

	p, ok := rs.Plugin("docker")
	if !ok || p.Dir != "/p/docker" {
		t.Errorf("Plugin(docker) = %+v, %v", p, ok)
	}
	if _, ok := rs.Plugin("missing"); ok {
		t.Error("Plugin(missing) should not be found")
	}
}

func TestDisplayName(t *testing.T) {
	rs := &RootSet{}
	core := Root{Label: "core", Dir: filepath.FromSlash("/opt/core"), Class: ClassCore}
	git := Root{Label: "git", Dir: filepath.FromSlash("/p/git"), Class: ClassPlugin}
	project := Root{Label: "project", Dir: filepath.FromSlash("/work/scripts"), Class: ClassProject}

	tests := []struct {
		name string
		root Root
		path string
		mode Mode
		want string
	}{
		{
			name: "core module",
			root: core,
			path: "/opt/core/lib/strings",
			mode: ModeModules,
			want: "strings",
		},
		{
			name: "nested core module",
			root: core,
			path: "/opt/core/lib/text/colors",
			mode: ModeModules,
			want: "text/colors",
		},
		{
			name: "plugin module carries the plugin prefix",
			root: git,
			path: "/p/git/lib/push-helpers",
			mode: ModeModules,
			want: "git/push-helpers",
		},
		{
			name: "top-level command",
			root: project,
			path: "/work/scripts/deploy",
			mode: ModeCommands,
			want: "deploy",
		},
		{
			name: "nested subcommand collapses .d dirs",
			root: project,
			path: "/work/scripts/deploy.d/staging.d/up",
			mode: ModeCommands,
			want: "deploy staging up",
		},
		{
			name: "plugin command has no prefix",
			root: git,
			path: "/p/git/sync",
			mode: ModeCommands,
			want: "sync",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := rs.DisplayName(tt.root, filepath.FromSlash(tt.path), tt.mode)
			if got != tt.want {
				t.Errorf("DisplayName = %q, want %q", got, tt.want)
			}
		})
	}
}
