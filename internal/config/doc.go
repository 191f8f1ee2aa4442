// SPDX-License-Identifier: MPL-2.0

// Package config loads the framework configuration: the user-level CUE
// config file (validated against an embedded schema and merged through
// Viper), environment overrides, and the per-project scriptway.toml file
// that declares the scripts directory and plugin order. The result is an
// immutable snapshot consumed by the discovery root set.
package config
