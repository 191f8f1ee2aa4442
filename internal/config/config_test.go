// SPDX-License-Identifier: MPL-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"

	"scriptway-cli/internal/testutil"
)

// setupIsolated points config discovery and project discovery at fresh temp
// directories so tests never see the developer's real environment.
func setupIsolated(t *testing.T) (cfgDir, workDir string) {
	t.Helper()
	cfgDir = t.TempDir()
	workDir = t.TempDir()
	SetConfigDirOverride(cfgDir)
	t.Cleanup(Reset)
	t.Cleanup(testutil.MustChdir(t, workDir))
	t.Cleanup(testutil.MustUnsetenv(t, "SCRIPTWAY_CORE_DIR"))
	t.Cleanup(testutil.MustUnsetenv(t, "SCRIPTWAY_UI_WIDTH"))
	t.Cleanup(testutil.MustUnsetenv(t, importedModulesEnv))
	return cfgDir, workDir
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.UI.ColorScheme != ColorSchemeAuto {
		t.Errorf("ColorScheme = %q, want %q", cfg.UI.ColorScheme, ColorSchemeAuto)
	}
	if cfg.UI.Verbose {
		t.Error("Verbose should default to false")
	}
	if cfg.UI.Width != 0 {
		t.Errorf("Width = %d, want 0", cfg.UI.Width)
	}
}

func TestLoadWithoutConfigFile(t *testing.T) {
	cfgDir, _ := setupIsolated(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if want := filepath.Join(cfgDir, "core"); cfg.CoreDir != want {
		t.Errorf("CoreDir = %q, want %q", cfg.CoreDir, want)
	}
	if cfg.Project != nil {
		t.Errorf("Project = %+v, want nil", cfg.Project)
	}
	if len(cfg.ImportedModules) != 0 {
		t.Errorf("ImportedModules = %v, want none", cfg.ImportedModules)
	}
}

func TestLoadCUEConfigFile(t *testing.T) {
	cfgDir, _ := setupIsolated(t)

	cueContent := `core_dir: "/opt/scriptway/core"
ui: {
	verbose: true
	width:   100
}
`
	if err := os.WriteFile(filepath.Join(cfgDir, "config.cue"), []byte(cueContent), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.CoreDir != "/opt/scriptway/core" {
		t.Errorf("CoreDir = %q", cfg.CoreDir)
	}
	if !cfg.UI.Verbose {
		t.Error("UI.Verbose should be true")
	}
	if cfg.UI.Width != 100 {
		t.Errorf("UI.Width = %d, want 100", cfg.UI.Width)
	}
}

func TestLoadRejectsInvalidCUE(t *testing.T) {
	cfgDir, _ := setupIsolated(t)

	if err := os.WriteFile(filepath.Join(cfgDir, "config.cue"), []byte("core_dir: {{{"), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	if _, err := Load(); err == nil {
		t.Error("expected an error for malformed CUE")
	}
}

func TestLoadRejectsSchemaViolation(t *testing.T) {
	cfgDir, _ := setupIsolated(t)

	// width must be an int >= 0.
	if err := os.WriteFile(filepath.Join(cfgDir, "config.cue"), []byte("ui: width: -5\n"), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	if _, err := Load(); err == nil {
		t.Error("expected a schema validation error")
	}
}

func TestLoadConfigFileOverride(t *testing.T) {
	setupIsolated(t)

	path := filepath.Join(t.TempDir(), "custom.cue")
	if err := os.WriteFile(path, []byte(`core_dir: "/custom/core"`), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	SetConfigFilePathOverride(path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.CoreDir != "/custom/core" {
		t.Errorf("CoreDir = %q", cfg.CoreDir)
	}

	t.Run("missing override file fails", func(t *testing.T) {
		SetConfigFilePathOverride(filepath.Join(t.TempDir(), "nope.cue"))
		if _, err := Load(); err == nil {
			t.Error("expected an error for a missing --config file")
		}
	})
}

func TestLoadEnvOverrides(t *testing.T) {
	setupIsolated(t)

	t.Cleanup(testutil.MustSetenv(t, "SCRIPTWAY_CORE_DIR", "/env/core"))
	t.Cleanup(testutil.MustSetenv(t, "SCRIPTWAY_UI_WIDTH", "120"))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.CoreDir != "/env/core" {
		t.Errorf("CoreDir = %q, want /env/core", cfg.CoreDir)
	}
	if cfg.UI.Width != 120 {
		t.Errorf("UI.Width = %d, want 120", cfg.UI.Width)
	}
}

func TestLoadImportedModules(t *testing.T) {
	setupIsolated(t)

	t.Cleanup(testutil.MustSetenv(t, importedModulesEnv, "strings  git/push-helpers colors"))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	want := []string{"strings", "git/push-helpers", "colors"}
	if len(cfg.ImportedModules) != len(want) {
		t.Fatalf("ImportedModules = %v, want %v", cfg.ImportedModules, want)
	}
	for i, w := range want {
		if cfg.ImportedModules[i] != w {
			t.Errorf("ImportedModules[%d] = %q, want %q", i, cfg.ImportedModules[i], w)
		}
	}
}

func TestGetFallsBackToDefaults(t *testing.T) {
	setupIsolated(t)

	// Force a load failure through a missing --config file; Get must still
	// return a usable config.
	SetConfigFilePathOverride(filepath.Join(t.TempDir(), "nope.cue"))

	cfg := Get()
	if cfg == nil {
		t.Fatal("Get returned nil")
	}
	if cfg.UI.ColorScheme != ColorSchemeAuto {
		t.Errorf("ColorScheme = %q, want default", cfg.UI.ColorScheme)
	}
}
