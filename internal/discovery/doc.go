// SPDX-License-Identifier: MPL-2.0

// Package discovery locates command scripts and library modules across the
// ordered search roots (core framework, installed plugins, project scripts).
// It resolves exact names by precedence, expands glob patterns per root, and
// partitions results by origin class for the listing commands.
package discovery
