// SPDX-License-Identifier: MPL-2.0

package helpdoc

import "strings"

// TableRow renders a two-column option-table row: two leading spaces, the
// name padded to longest, two spaces, then the description, greedily wrapped
// to width with continuation lines indented under the description column.
//
// Wrapping is abandoned when the continuation indent would eat half the
// terminal or more; the row is then emitted on a single (overflowing) line.
func TableRow(name, desc string, longest, width int) string {
	line := "  " + name + strings.Repeat(" ", longest-len(name)) + "  " + desc
	if len(line) <= width {
		return line
	}

	padding := longest + 6
	if padding >= width/2 {
		return line
	}

	var b strings.Builder
	remaining := line
	usable := width
	prefix := ""
	for {
		if len(remaining) <= usable {
			b.WriteString(prefix)
			b.WriteString(remaining)
			break
		}
		cut := strings.LastIndexByte(remaining[:usable], ' ')
		if cut <= 0 {
			// No breakable whitespace: hard break at the column limit.
			cut = usable
		}
		b.WriteString(prefix)
		b.WriteString(strings.TrimRight(remaining[:cut], " "))
		b.WriteByte('\n')
		remaining = strings.TrimLeft(remaining[cut:], " ")
		prefix = strings.Repeat(" ", padding)
		usable = width - padding
	}
	return b.String()
}

// Fold greedily wraps a paragraph at whitespace so no line exceeds width.
// Words longer than the width are hard-broken.
func Fold(text string, width int) string {
	if width <= 0 || len(text) <= width {
		return text
	}

	var b strings.Builder
	remaining := text
	for len(remaining) > width {
		cut := strings.LastIndexByte(remaining[:width], ' ')
		if cut <= 0 {
			cut = width
		}
		b.WriteString(strings.TrimRight(remaining[:cut], " "))
		b.WriteByte('\n')
		remaining = strings.TrimLeft(remaining[cut:], " ")
	}
	b.WriteString(remaining)
	return b.String()
}
