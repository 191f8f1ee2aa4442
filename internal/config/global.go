// SPDX-License-Identifier: MPL-2.0

package config

import "sync"

var (
	mu sync.Mutex
	// cached is the config snapshot loaded by the first Get() call.
	cached *Config

	// configDirOverride allows tests to override the config directory.
	// This is necessary because os.UserHomeDir() doesn't reliably respect
	// the HOME environment variable on all platforms (e.g., macOS in CI).
	configDirOverride string
	// configFileOverride forces loading from a specific config file
	// (--config flag).
	configFileOverride string
)

// Get returns the cached configuration, loading it on first use. Loading
// errors fall back to defaults; callers that must surface errors use Load
// directly.
func Get() *Config {
	mu.Lock()
	defer mu.Unlock()
	if cached != nil {
		return cached
	}
	cfg, err := Load()
	if err != nil {
		cfg = DefaultConfig()
	}
	cached = cfg
	return cached
}

// SetConfigFilePathOverride sets a custom config file path (--config).
func SetConfigFilePathOverride(path string) {
	mu.Lock()
	defer mu.Unlock()
	configFileOverride = path
	cached = nil
}

// SetConfigDirOverride sets a custom config directory path. This is
// primarily intended for testing to bypass os.UserHomeDir(), which doesn't
// reliably respect the HOME env var on all platforms.
func SetConfigDirOverride(dir string) {
	mu.Lock()
	defer mu.Unlock()
	configDirOverride = dir
	cached = nil
}

// Reset clears test overrides and the cached snapshot. Call from test
// cleanup to restore defaults.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	configDirOverride = ""
	configFileOverride = ""
	cached = nil
}
