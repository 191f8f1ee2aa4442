// SPDX-License-Identifier: MPL-2.0

// Package helpdoc parses the leading #-comment header block of command
// scripts and library modules into one-line summaries and formatted,
// column-aware help text. The header format is a de facto contract: existing
// scripts encode their help in it, so the parsing rules here must not drift.
package helpdoc
