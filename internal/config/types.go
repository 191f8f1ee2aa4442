// SPDX-License-Identifier: MPL-2.0

package config

const (
	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light color scheme.
	ColorSchemeLight ColorScheme = "light"
)

type (
	// ColorScheme specifies the terminal color scheme preference.
	ColorScheme string

	// Config is the merged configuration for one invocation. It is built
	// once at startup and treated as read-only afterwards.
	Config struct {
		// CoreDir is the core framework root: its command scripts live
		// directly under it, its modules under lib/.
		CoreDir string `mapstructure:"core_dir"`

		// UI holds presentation settings.
		UI UIConfig `mapstructure:"ui"`

		// Project describes the enclosing project, discovered by walking
		// up from the working directory. Nil when no project file exists.
		Project *Project `mapstructure:"-"`

		// ImportedModules are the module names the invoking shell reports
		// as currently loaded (SCRIPTWAY_IMPORTED_MODULES, space
		// separated). Used by the --imported listing.
		ImportedModules []string `mapstructure:"-"`
	}

	// UIConfig holds presentation settings.
	UIConfig struct {
		// Verbose enables diagnostic logging on stderr.
		Verbose bool `mapstructure:"verbose"`
		// ColorScheme selects the terminal color scheme.
		ColorScheme ColorScheme `mapstructure:"color_scheme"`
		// Width overrides the detected terminal width when > 0.
		Width int `mapstructure:"width"`
	}

	// Project is the resolved per-project configuration from
	// scriptway.toml.
	Project struct {
		// RootDir is the directory holding scriptway.toml.
		RootDir string
		// ScriptsDir is the absolute path to the project's scripts root.
		ScriptsDir string
		// Plugins are the plugin roots in declared (or discovered) order.
		Plugins []PluginEntry
	}

	// PluginEntry is one installed plugin root.
	PluginEntry struct {
		// Name is the plugin's search-path label.
		Name string
		// Path is the absolute path to the plugin root.
		Path string
	}
)

// DefaultConfig returns the built-in defaults applied before any config
// file or environment override.
func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			ColorScheme: ColorSchemeAuto,
		},
	}
}
