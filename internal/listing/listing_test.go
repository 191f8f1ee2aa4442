// SPDX-License-Identifier: MPL-2.0

package listing

import (
	"path/filepath"
	"strings"
	"testing"

	"scriptway-cli/internal/discovery"
	"scriptway-cli/internal/helpdoc"
	"scriptway-cli/internal/testutil"
)

// newTestEngine builds a module engine over a small fixture tree and
// returns it with the base directory.
func newTestEngine(t *testing.T) (*discovery.Engine, string) {
	t.Helper()
	base := t.TempDir()

	testutil.MustWriteScript(t, filepath.Join(base, "core", "lib", "strings"),
		"#!/bin/sh\n# strings - string helpers\n")
	testutil.MustWriteScript(t, filepath.Join(base, "core", "lib", "colors"),
		"#!/bin/sh\n# colors - terminal colors\n")
	testutil.MustWriteScript(t, filepath.Join(base, "git", "lib", "push-helpers"),
		"#!/bin/sh\n# push-helpers - wrappers around git push\n")
	testutil.MustWriteScript(t, filepath.Join(base, "project", "lib", "local"),
		"#!/bin/sh\necho no header\n")

	rs := &discovery.RootSet{
		Core: discovery.Root{Label: "core", Dir: filepath.Join(base, "core"), Class: discovery.ClassCore},
		Plugins: []discovery.Root{
			{Label: "git", Dir: filepath.Join(base, "git"), Class: discovery.ClassPlugin},
		},
		Project: discovery.Root{Label: "project", Dir: filepath.Join(base, "project"), Class: discovery.ClassProject},
		RootDir: base,
	}
	return discovery.NewEngine(rs, discovery.ModeModules), base
}

func TestLinesNames(t *testing.T) {
	e, _ := newTestEngine(t)
	refs, err := e.List("strings", "colors")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}

	lines, err := Lines(refs, FormatNames, Options{})
	if err != nil {
		t.Fatalf("Lines failed: %v", err)
	}
	if len(lines) != 2 || lines[0] != "strings" || lines[1] != "colors" {
		t.Errorf("Lines = %v", lines)
	}
}

func TestLinesPaths(t *testing.T) {
	e, base := newTestEngine(t)
	refs, err := e.List("strings", "git/push-helpers")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}

	lines, err := Lines(refs, FormatPaths, Options{RootDir: base})
	if err != nil {
		t.Fatalf("Lines failed: %v", err)
	}
	// Names are padded to the longest ("git/push-helpers"), then two
	// spaces, then the root-relative path.
	want0 := pad("strings", len("git/push-helpers")) + "  " + filepath.Join("core", "lib", "strings")
	if lines[0] != want0 {
		t.Errorf("lines[0] = %q, want %q", lines[0], want0)
	}
	want1 := "git/push-helpers  " + filepath.Join("git", "lib", "push-helpers")
	if lines[1] != want1 {
		t.Errorf("lines[1] = %q, want %q", lines[1], want1)
	}
}

func TestLinesSummaries(t *testing.T) {
	e, _ := newTestEngine(t)
	refs, err := e.List("strings", "local")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}

	lines, err := Lines(refs, FormatSummaries, Options{})
	if err != nil {
		t.Fatalf("Lines failed: %v", err)
	}
	if lines[0] != "strings  strings - string helpers" {
		t.Errorf("lines[0] = %q", lines[0])
	}
	// A module without a header gets the fallback text, not an error.
	if lines[1] != "local    "+helpdoc.NoDescription {
		t.Errorf("lines[1] = %q", lines[1])
	}
}

func TestLinesSummariesFailFast(t *testing.T) {
	refs := []discovery.Ref{
		{Path: filepath.Join(t.TempDir(), "missing"), Name: "missing"},
	}
	lines, err := Lines(refs, FormatSummaries, Options{})
	if err == nil {
		t.Fatal("expected an error for an unreadable script")
	}
	if lines != nil {
		t.Errorf("no partial output expected, got %v", lines)
	}
}

func TestListDefaultsToEverything(t *testing.T) {
	e, _ := newTestEngine(t)
	lines, err := List(e, FormatNames, Options{})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(lines) != 4 {
		t.Errorf("List() returned %d lines, want 4: %v", len(lines), lines)
	}
}

func TestByClass(t *testing.T) {
	e, _ := newTestEngine(t)
	lines, err := ByClass(e, FormatNames, Options{})
	if err != nil {
		t.Fatalf("ByClass failed: %v", err)
	}

	text := strings.Join(lines, "\n")
	for _, heading := range []string{
		"core framework library:",
		"installed plugin libraries:",
		"project library:",
	} {
		if !strings.Contains(text, heading) {
			t.Errorf("missing heading %q in:\n%s", heading, text)
		}
	}
	if !strings.Contains(text, "  git/push-helpers") {
		t.Errorf("plugin entry not indented under its heading:\n%s", text)
	}

	// Headings are separated by a blank line.
	if !strings.Contains(text, "\n\ninstalled plugin libraries:") {
		t.Errorf("groups not blank-line separated:\n%s", text)
	}
}

func TestByClassOmitsEmptyGroups(t *testing.T) {
	base := t.TempDir()
	testutil.MustWriteScript(t, filepath.Join(base, "core", "lib", "only"),
		"#!/bin/sh\n# only - the lone module\n")
	rs := &discovery.RootSet{
		Core: discovery.Root{Label: "core", Dir: filepath.Join(base, "core"), Class: discovery.ClassCore},
	}
	e := discovery.NewEngine(rs, discovery.ModeModules)

	lines, err := ByClass(e, FormatNames, Options{})
	if err != nil {
		t.Fatalf("ByClass failed: %v", err)
	}
	want := []string{"core framework library:", "  only"}
	if len(lines) != 2 || lines[0] != want[0] || lines[1] != want[1] {
		t.Errorf("ByClass = %v, want %v", lines, want)
	}
}
