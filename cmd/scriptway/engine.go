// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"scriptway-cli/internal/config"
	"scriptway-cli/internal/discovery"
	"scriptway-cli/internal/helpdoc"
	"scriptway-cli/internal/listing"
)

// newEngine builds the discovery engine for one invocation from the cached
// configuration.
func newEngine(mode discovery.Mode) (*discovery.Engine, *config.Config) {
	cfg := config.Get()
	roots := discovery.RootsFromConfig(cfg)
	return discovery.NewEngine(roots, mode), cfg
}

// listingOptions assembles the per-invocation formatting context: project
// root for path relativization and the placeholder/width context for
// summaries and descriptions.
func listingOptions(e *discovery.Engine, cfg *config.Config) listing.Options {
	roots := e.Roots()
	return listing.Options{
		RootDir: roots.RootDir,
		Doc: helpdoc.Context{
			Invoker: config.AppName,
			RootDir: roots.RootDir,
			Width:   terminalWidth(cfg),
		},
	}
}

// listingFormat maps the shared --paths/--summaries flags onto a view.
func listingFormat(paths, summaries bool) listing.Format {
	switch {
	case paths:
		return listing.FormatPaths
	case summaries:
		return listing.FormatSummaries
	default:
		return listing.FormatNames
	}
}
