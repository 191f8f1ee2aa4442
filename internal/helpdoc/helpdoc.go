// SPDX-License-Identifier: MPL-2.0

package helpdoc

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// NoDescription is returned when a script's header block contains no usable
// summary or description text.
const NoDescription = "No description available"

// defaultWidth is used when the invocation context supplies no terminal
// width (e.g. output is piped).
const defaultWidth = 80

// ErrInvalidPath is returned when a script path cannot be parsed into a
// command name (empty path or a malformed subcommand directory segment).
var ErrInvalidPath = errors.New("invalid script path")

// Context carries the invocation-dependent values substituted into help
// text and the terminal width used for wrapping.
type Context struct {
	// Invoker replaces the {{go}} placeholder: the canonical path or name
	// the framework was invoked as.
	Invoker string
	// Command replaces the {{cmd}} placeholder. When empty it is derived
	// from the script path's subcommand directory chain.
	Command string
	// RootDir replaces the {{root}} placeholder: the project root.
	RootDir string
	// Width is the terminal column count; <= 0 falls back to 80.
	Width int
}

// parser states for the description state machine.
const (
	stateNone = iota
	stateParagraph
	stateTable
	statePreformatted
)

// line classes produced by classify.
const (
	classEnd = iota
	classBlank
	classText
	classIndented
)

// Summary extracts the one-line summary: the first header line of the form
// "# <alphanumeric>...", placeholder-substituted. Scripts without one yield
// NoDescription.
func Summary(path string, ctx Context) (string, error) {
	replacer, err := placeholderReplacer(path, ctx)
	if err != nil {
		return "", err
	}

	lines, err := headerLines(path)
	if err != nil {
		return "", err
	}

	for _, line := range lines {
		line = replacer.Replace(line)
		if isSummaryLine(line) {
			return strings.TrimPrefix(line, "# "), nil
		}
	}
	return NoDescription, nil
}

// Description formats the full header block: paragraphs separated by blank
// comment lines, overlong two-column rows rewrapped as option-table cells,
// and other indented lines preserved verbatim. Placeholders are substituted
// on every line before classification.
func Description(path string, ctx Context) (string, error) {
	replacer, err := placeholderReplacer(path, ctx)
	if err != nil {
		return "", err
	}

	lines, err := headerLines(path)
	if err != nil {
		return "", err
	}

	width := ctx.Width
	if width <= 0 {
		width = defaultWidth
	}

	var out strings.Builder
	var para strings.Builder
	state := stateNone

	flushParagraph := func() {
		if para.Len() == 0 {
			return
		}
		out.WriteString(Fold(strings.TrimRight(para.String(), " "), width))
		out.WriteByte('\n')
		para.Reset()
	}

	for _, line := range lines {
		line = replacer.Replace(line)
		class, content := classify(line)

		switch class {
		case classText:
			para.WriteString(content)
			para.WriteByte(' ')
			state = stateParagraph
		case classBlank:
			// Only a blank after accumulated text separates paragraphs;
			// leading and repeated blanks are dropped.
			if state != stateNone {
				flushParagraph()
				out.WriteByte('\n')
				state = stateNone
			}
		case classIndented:
			flushParagraph()
			if item, desc, ok := splitTableRow(content); ok && len(content) > width {
				out.WriteString(TableRow(item, desc, len(item), width))
				out.WriteByte('\n')
				state = stateTable
			} else {
				out.WriteString(content)
				out.WriteByte('\n')
				state = statePreformatted
			}
		}
	}
	flushParagraph()

	text := strings.TrimRight(out.String(), " \n")
	if text == "" {
		return NoDescription, nil
	}
	return text, nil
}

// headerLines reads the maximal leading run of #-comment lines, skipping an
// optional shebang. The first non-comment line terminates the block.
func headerLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read script header: %w", err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	first := true
	for scanner.Scan() {
		line := scanner.Text()
		if first {
			first = false
			if strings.HasPrefix(line, "#!") {
				continue
			}
		}
		if !strings.HasPrefix(line, "#") {
			break
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read script header: %w", err)
	}
	return lines, nil
}

// classify assigns a header line to its description class and returns the
// content with the comment marker stripped. Indented content keeps its
// indentation beyond the single separator space.
func classify(line string) (int, string) {
	raw := strings.TrimPrefix(line, "#")
	if strings.TrimSpace(raw) == "" {
		return classBlank, ""
	}

	content := strings.TrimPrefix(raw, " ")
	if strings.HasPrefix(content, " ") {
		return classIndented, content
	}
	return classText, content
}

// isSummaryLine reports whether line matches the summary shape: comment
// marker, one space, then an alphanumeric character.
func isSummaryLine(line string) bool {
	if len(line) < 3 || line[0] != '#' || line[1] != ' ' {
		return false
	}
	c := line[2]
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}

// splitTableRow splits indented content of the form "<item>  <description>"
// at its first double-space separator.
func splitTableRow(content string) (item, desc string, ok bool) {
	trimmed := strings.TrimLeft(content, " ")
	sep := strings.Index(trimmed, "  ")
	if sep <= 0 {
		return "", "", false
	}
	desc = strings.TrimLeft(trimmed[sep:], " ")
	if desc == "" {
		return "", "", false
	}
	return trimmed[:sep], desc, true
}

// placeholderReplacer builds the {{go}}/{{cmd}}/{{root}} substitution for a
// script. The {{cmd}} value falls back to the dotted name derived from the
// script's path.
func placeholderReplacer(path string, ctx Context) (*strings.Replacer, error) {
	command := ctx.Command
	if command == "" {
		name, err := CommandName(path)
		if err != nil {
			return nil, err
		}
		command = name
	}
	return strings.NewReplacer(
		"{{go}}", ctx.Invoker,
		"{{cmd}}", command,
		"{{root}}", ctx.RootDir,
	), nil
}

// CommandName derives a script's dotted display name from its path by
// walking the chain of enclosing subcommand directories: "deploy.d/restart"
// becomes "deploy restart". It fails with ErrInvalidPath for an empty path
// or a subcommand directory with an empty stem.
func CommandName(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("empty path: %w", ErrInvalidPath)
	}

	words := []string{filepath.Base(path)}
	dir := filepath.Dir(path)
	for strings.HasSuffix(dir, ".d") {
		stem := strings.TrimSuffix(filepath.Base(dir), ".d")
		if stem == "" {
			return "", fmt.Errorf("subcommand directory %q has no name: %w", filepath.Base(dir), ErrInvalidPath)
		}
		words = append([]string{stem}, words...)
		dir = filepath.Dir(dir)
	}
	return strings.Join(words, " "), nil
}
