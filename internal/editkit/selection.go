package editkit

import (
	"strings"

	"github.com/dshills/keymark/internal/engine/document"
)

// SelectedText returns the cursor's selection with block separators
// converted to "\n".
func SelectedText(c *document.Cursor) string {
	return strings.ReplaceAll(c.SelectedText(), string(document.ParagraphSeparator), "\n")
}

// SelectedBlockCount returns the number of blocks the selection touches,
// or 0 without a selection.
func SelectedBlockCount(c *document.Cursor) int {
	if !c.HasSelection() {
		return 0
	}
	doc := c.Document()
	first := doc.FindBlock(c.SelectionStart()).Number()
	last := doc.FindBlock(c.SelectionEnd()).Number()
	return last - first + 1
}

// IsListBlock reports whether b is a "- " or "n. " list item. For ordered
// items seq is the item number, otherwise -1.
func IsListBlock(b document.Block) (seq int, ok bool) {
	mark, ok := listMark(b.Text())
	if !ok {
		return -1, false
	}
	if mark == "-" {
		return -1, true
	}
	n, parsed := parseOrdinal(mark)
	if !parsed {
		return -1, true
	}
	return n, true
}

// IsSpaceToBlockStart reports whether only whitespace precedes posInBlock.
func IsSpaceToBlockStart(b document.Block, posInBlock int) bool {
	if posInBlock <= 0 {
		return true
	}
	text := b.Runes()
	if posInBlock > len(text) {
		posInBlock = len(text)
	}
	return strings.TrimSpace(string(text[:posInBlock])) == ""
}
