package editkit

import (
	"strconv"
	"unicode"

	"github.com/rs/zerolog/log"

	"github.com/dshills/keymark/internal/engine/document"
)

// Shift is the direction of IndentSelectedBlocks.
type Shift uint8

const (
	// ShiftRight prepends the indentation text.
	ShiftRight Shift = iota
	// ShiftLeft removes one level of indentation.
	ShiftLeft
)

// RemoveBlockAt removes block b and returns its text followed by "\n".
func RemoveBlockAt(b document.Block) string {
	return RemoveBlock(document.CursorAtBlock(b))
}

// RemoveBlock deletes the block under the cursor together with one adjacent
// separator and returns the block text followed by "\n". The cursor ends at
// the start of the block that took the removed block's number, or at the
// start of the new last block.
func RemoveBlock(c *document.Cursor) string {
	doc := c.Document()
	blockCount := doc.BlockCount()
	block := c.Block()
	blockNum := block.Number()
	removed := block.Text() + "\n"

	c.BeginEditBlock()
	defer c.EndEditBlock()

	c.Select(document.BlockUnderCursor)
	c.DeleteChar()

	// The first block leaves an empty block behind; the last block has no
	// trailing separator of its own.
	if blockCount == doc.BlockCount() {
		log.Debug().Int("block", blockNum).Int("blocks", blockCount).Msg("remove block boundary correction")
		if blockNum == blockCount-1 {
			c.DeletePreviousChar()
		} else {
			c.DeleteChar()
		}
	}

	if c.Block().Number() < blockNum {
		c.MovePosition(document.NextBlock, document.MoveAnchor)
	}
	c.MovePosition(document.StartOfBlock, document.MoveAnchor)
	return removed
}

// InsertBlockWithIndent splits the block at the cursor and indents the new
// block like the one before it. It returns true if indentation changed.
// The cursor must not have a selection.
func InsertBlockWithIndent(c *document.Cursor) bool {
	if c.HasSelection() {
		return false
	}

	c.BeginEditBlock()
	defer c.EndEditBlock()

	c.InsertBlock()
	return IndentBlockAsPrevious(c)
}

// IndentBlockAsPrevious replaces the leading whitespace of the cursor's block
// with the leading whitespace of the previous block. The cursor ends after
// the new indentation. It returns false for the first block or when nothing
// changed.
func IndentBlockAsPrevious(c *document.Cursor) bool {
	block := c.Block()
	if block.Number() == 0 {
		return false
	}
	indent := leadingSpaces(block.Previous().Text())

	c.BeginEditBlock()
	defer c.EndEditBlock()

	changed := false
	MoveCursorFirstNonSpace(c, document.MoveAnchor)
	if !c.AtBlockStart() {
		c.MovePosition(document.StartOfBlock, document.KeepAnchor)
		c.RemoveSelectedText()
		changed = true
	}
	if indent != "" {
		c.InsertText(indent)
		changed = true
	}
	return changed
}

// InsertListMarkAsPrevious continues the list of the previous block by
// inserting "- " or "n+1. " at the cursor. Indentation is not copied; run
// IndentBlockAsPrevious first for that. It returns true if a marker was
// inserted.
func InsertListMarkAsPrevious(c *document.Cursor) bool {
	prev := c.Block().Previous()
	if !prev.IsValid() {
		return false
	}
	mark, ok := listMark(prev.Text())
	if !ok {
		return false
	}
	if mark == "-" {
		c.InsertText("- ")
		return true
	}
	n, ok := parseOrdinal(mark)
	if !ok {
		return false
	}
	c.InsertText(strconv.Itoa(n+1) + ". ")
	return true
}

// DeleteIndentAndListMark deletes everything between the start of the block
// and the cursor. The cursor must not have a selection.
func DeleteIndentAndListMark(c *document.Cursor) {
	if c.HasSelection() {
		return
	}
	c.MovePosition(document.StartOfBlock, document.KeepAnchor)
	c.RemoveSelectedText()
}

// IndentSelectedBlocks indents or unindents every block touched by the
// cursor's selection, including the block holding the selection end. A
// separate cursor does the work, so c keeps its selection. All edits form
// one transaction.
func IndentSelectedBlocks(c *document.Cursor, indentation string, shift Shift) {
	doc := c.Document()
	start := c.SelectionStart()
	end := c.SelectionEnd()

	first := doc.FindBlock(start)
	count := 1
	if start != end {
		count = doc.FindBlock(end).Number() - first.Number() + 1
	}

	bc := document.CursorAtBlock(first)
	bc.BeginEditBlock()
	defer bc.EndEditBlock()
	for i := 0; i < count; i++ {
		if shift == ShiftRight {
			IndentBlock(bc, indentation)
		} else {
			UnindentBlock(bc, indentation)
		}
		bc.MovePosition(document.NextBlock, document.MoveAnchor)
	}
}

// IndentBlock prepends indentation to the cursor's block unless it is empty.
func IndentBlock(c *document.Cursor, indentation string) {
	if c.Block().Length() <= 1 {
		return
	}
	c.MovePosition(document.StartOfBlock, document.MoveAnchor)
	c.InsertText(indentation)
}

// UnindentBlock removes a leading tab from the cursor's block, or up to
// len(indentation) leading spaces.
func UnindentBlock(c *document.Cursor, indentation string) {
	text := c.Block().Runes()
	if len(text) == 0 {
		return
	}

	c.MovePosition(document.StartOfBlock, document.MoveAnchor)
	if text[0] == '\t' {
		c.DeleteChar()
		return
	}
	if !unicode.IsSpace(text[0]) {
		return
	}
	width := len([]rune(indentation))
	for i := 0; i < width && i < len(text) && text[i] == ' '; i++ {
		c.DeleteChar()
	}
}

// InsertNewLine splits the block at the cursor, replacing any selection.
// With autoIndent the new block takes the previous block's indentation;
// with autoList a list item is continued. An item holding nothing but its
// marker is cleared instead, ending the list.
func InsertNewLine(c *document.Cursor, autoIndent, autoList bool) {
	c.BeginEditBlock()
	defer c.EndEditBlock()

	if c.HasSelection() {
		c.RemoveSelectedText()
	}

	if autoList && isEmptyListItem(c.Block().Text()) {
		c.MovePosition(document.EndOfBlock, document.MoveAnchor)
		DeleteIndentAndListMark(c)
		return
	}

	if autoIndent {
		InsertBlockWithIndent(c)
	} else {
		c.InsertBlock()
	}
	if autoList {
		InsertListMarkAsPrevious(c)
	}
}
