package viewport

import (
	"strings"

	"github.com/rivo/uniseg"
)

// DefaultTabWidth is the number of cells a tab stop spans.
const DefaultTabWidth = 4

// expandTabs replaces tabs with spaces up to the next tab stop.
func expandTabs(s string, tabWidth int) string {
	if !strings.ContainsRune(s, '\t') {
		return s
	}
	var sb strings.Builder
	col := 0
	state := -1
	for len(s) > 0 {
		var cluster string
		var width int
		cluster, s, width, state = uniseg.FirstGraphemeClusterInString(s, state)
		if cluster == "\t" {
			n := tabWidth - col%tabWidth
			sb.WriteString(strings.Repeat(" ", n))
			col += n
			continue
		}
		sb.WriteString(cluster)
		col += width
	}
	return sb.String()
}

// columnOf returns the display column of rune offset n in text.
func columnOf(text []rune, n, tabWidth int) int {
	if n > len(text) {
		n = len(text)
	}
	return uniseg.StringWidth(expandTabs(string(text[:n]), tabWidth))
}

// splitRows breaks an expanded line into rows of at most width cells.
// Wide clusters that do not fit on a row move to the next one. An empty
// line still takes one row.
func splitRows(line string, width int) []string {
	if line == "" || width < 1 {
		return []string{line}
	}
	var rows []string
	var row strings.Builder
	cells := 0
	state := -1
	for len(line) > 0 {
		var cluster string
		var w int
		cluster, line, w, state = uniseg.FirstGraphemeClusterInString(line, state)
		if cells+w > width && cells > 0 {
			rows = append(rows, row.String())
			row.Reset()
			cells = 0
		}
		row.WriteString(cluster)
		cells += w
	}
	return append(rows, row.String())
}

// cut returns the part of line between display columns from and from+width.
func cut(line string, from, width int) string {
	var sb strings.Builder
	col := 0
	state := -1
	for len(line) > 0 {
		var cluster string
		var w int
		cluster, line, w, state = uniseg.FirstGraphemeClusterInString(line, state)
		if col >= from && col+w <= from+width {
			sb.WriteString(cluster)
		}
		col += w
		if col >= from+width {
			break
		}
	}
	return sb.String()
}
