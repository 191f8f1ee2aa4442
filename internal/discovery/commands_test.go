// SPDX-License-Identifier: MPL-2.0

package discovery

import (
	"errors"
	"path/filepath"
	"testing"

	"scriptway-cli/internal/testutil"
)

func TestCommandRelPath(t *testing.T) {
	tests := []struct {
		name  string
		words []string
		want  string
	}{
		{"single word", []string{"deploy"}, "deploy"},
		{"one level", []string{"deploy", "restart"}, "deploy.d/restart"},
		{"two levels", []string{"deploy", "staging", "up"}, "deploy.d/staging.d/up"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CommandRelPath(tt.words); got != tt.want {
				t.Errorf("CommandRelPath(%v) = %q, want %q", tt.words, got, tt.want)
			}
		})
	}
}

// newCommandRoots builds a command tree in a temp dir:
//
//	core:    status
//	git:     sync
//	project: deploy, deploy.d/restart, deploy.d/staging, deploy.d/staging.d/up
func newCommandRoots(t *testing.T) *RootSet {
	t.Helper()
	base := t.TempDir()

	write := func(parts ...string) {
		testutil.MustWriteScript(t, filepath.Join(append([]string{base}, parts...)...), "#!/bin/sh\n")
	}
	write("core", "status")
	write("git", "sync")
	write("project", "deploy")
	write("project", "deploy.d", "restart")
	write("project", "deploy.d", "staging")
	write("project", "deploy.d", "staging.d", "up")

	return &RootSet{
		Core: Root{Label: "core", Dir: filepath.Join(base, "core"), Class: ClassCore},
		Plugins: []Root{
			{Label: "git", Dir: filepath.Join(base, "git"), Class: ClassPlugin},
		},
		Project: Root{Label: "project", Dir: filepath.Join(base, "project"), Class: ClassProject},
		RootDir: base,
	}
}

func TestResolveCommand(t *testing.T) {
	rs := newCommandRoots(t)
	e := NewEngine(rs, ModeCommands)

	tests := []struct {
		name     string
		words    []string
		wantName string
		wantRoot string
	}{
		{"top-level project command", []string{"deploy"}, "deploy", "project"},
		{"core command", []string{"status"}, "status", "core"},
		{"plugin command", []string{"sync"}, "sync", "git"},
		{"nested once", []string{"deploy", "restart"}, "deploy restart", "project"},
		{"nested twice", []string{"deploy", "staging", "up"}, "deploy staging up", "project"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref, err := e.ResolveCommand(tt.words)
			if err != nil {
				t.Fatalf("ResolveCommand(%v) failed: %v", tt.words, err)
			}
			if ref.Name != tt.wantName {
				t.Errorf("Name = %q, want %q", ref.Name, tt.wantName)
			}
			if ref.Root.Label != tt.wantRoot {
				t.Errorf("Root = %q, want %q", ref.Root.Label, tt.wantRoot)
			}
		})
	}

	t.Run("unknown command", func(t *testing.T) {
		_, err := e.ResolveCommand([]string{"deploy", "nowhere"})
		var unknown *UnknownCommandError
		if !errors.As(err, &unknown) {
			t.Fatalf("ResolveCommand = %v, want UnknownCommandError", err)
		}
		if unknown.Name != "deploy nowhere" {
			t.Errorf("unknown.Name = %q", unknown.Name)
		}
	})

	t.Run("no words", func(t *testing.T) {
		if _, err := e.ResolveCommand(nil); !errors.Is(err, ErrNotFound) {
			t.Errorf("ResolveCommand(nil) = %v, want ErrNotFound", err)
		}
	})
}

func TestSubcommands(t *testing.T) {
	rs := newCommandRoots(t)
	e := NewEngine(rs, ModeCommands)

	deploy, err := e.ResolveCommand([]string{"deploy"})
	if err != nil {
		t.Fatalf("ResolveCommand(deploy) failed: %v", err)
	}

	subs, err := e.Subcommands(deploy)
	if err != nil {
		t.Fatalf("Subcommands failed: %v", err)
	}
	// staging.d is a directory, not a script, so only the two files count.
	if len(subs) != 2 {
		t.Fatalf("got %d subcommands, want 2: %v", len(subs), refNames(subs))
	}
	if !containsName(subs, "deploy restart") || !containsName(subs, "deploy staging") {
		t.Errorf("subcommands = %v", refNames(subs))
	}

	t.Run("leaf has none", func(t *testing.T) {
		restart, err := e.ResolveCommand([]string{"deploy", "restart"})
		if err != nil {
			t.Fatalf("ResolveCommand failed: %v", err)
		}
		subs, err := e.Subcommands(restart)
		if err != nil {
			t.Fatalf("Subcommands failed: %v", err)
		}
		if len(subs) != 0 {
			t.Errorf("expected no subcommands, got %v", refNames(subs))
		}
	})
}
