package document

import "fmt"

// MoveMode controls whether a cursor movement collapses or extends the selection.
type MoveMode uint8

const (
	// MoveAnchor moves the anchor together with the caret.
	MoveAnchor MoveMode = iota
	// KeepAnchor leaves the anchor in place, extending the selection.
	KeepAnchor
)

// MoveOperation names a relative cursor movement.
type MoveOperation uint8

const (
	NoMove MoveOperation = iota
	Start
	End
	StartOfBlock
	EndOfBlock
	PreviousBlock
	NextBlock
	PreviousCharacter
	NextCharacter
)

// SelectionType names a unit selected by Cursor.Select.
type SelectionType uint8

const (
	// BlockUnderCursor selects the block body plus the separator in front of
	// it; the first block selects only its body. An empty block selects nothing.
	BlockUnderCursor SelectionType = iota
	// WholeDocument selects every character except the end sentinel.
	WholeDocument
)

// Cursor is a caret plus a selection anchor inside a Document.
// Anchor == Position means there is no selection.
type Cursor struct {
	doc    *Document
	pos    int
	anchor int
	seq    int
}

// NewCursor creates a cursor at the start of doc.
func NewCursor(doc *Document) *Cursor {
	return NewCursorAt(doc, 0)
}

// NewCursorAt creates a cursor at pos, clamped into the document.
func NewCursorAt(doc *Document, pos int) *Cursor {
	c := &Cursor{doc: doc, seq: doc.logHead()}
	pos = c.clamp(pos)
	c.pos, c.anchor = pos, pos
	return c
}

// CursorAtBlock creates a cursor at the start of b.
func CursorAtBlock(b Block) *Cursor {
	return NewCursorAt(b.doc, b.Position())
}

// Clone returns an independent copy of the cursor.
func (c *Cursor) Clone() *Cursor {
	c.sync()
	cp := *c
	return &cp
}

// Document returns the document the cursor operates on.
func (c *Cursor) Document() *Document {
	return c.doc
}

// sync replays edits committed since the cursor last looked at the document.
func (c *Cursor) sync() {
	head := c.doc.logHead()
	if c.seq == head {
		return
	}
	if c.seq < c.doc.logBase {
		c.pos, c.anchor = c.clamp(c.pos), c.clamp(c.anchor)
		c.seq = head
		return
	}
	for _, e := range c.doc.log[c.seq-c.doc.logBase:] {
		c.pos = e.adjust(c.pos)
		c.anchor = e.adjust(c.anchor)
	}
	c.pos, c.anchor = c.clamp(c.pos), c.clamp(c.anchor)
	c.seq = head
}

func (c *Cursor) clamp(pos int) int {
	if pos < 0 {
		return 0
	}
	if limit := c.doc.CharacterCount() - 1; pos > limit {
		return limit
	}
	return pos
}

// Position returns the caret position.
func (c *Cursor) Position() int {
	c.sync()
	return c.pos
}

// Anchor returns the selection anchor.
func (c *Cursor) Anchor() int {
	c.sync()
	return c.anchor
}

// HasSelection returns true if anchor and caret differ.
func (c *Cursor) HasSelection() bool {
	c.sync()
	return c.pos != c.anchor
}

// SelectionStart returns the lower bound of the selection.
func (c *Cursor) SelectionStart() int {
	c.sync()
	return min(c.pos, c.anchor)
}

// SelectionEnd returns the upper bound of the selection.
func (c *Cursor) SelectionEnd() int {
	c.sync()
	return max(c.pos, c.anchor)
}

// Block returns the block containing the caret.
func (c *Cursor) Block() Block {
	return c.doc.FindBlock(c.Position())
}

// PositionInBlock returns the caret offset relative to its block start.
func (c *Cursor) PositionInBlock() int {
	pos := c.Position()
	return pos - c.doc.FindBlock(pos).Position()
}

// AtBlockStart returns true if the caret is at the start of its block.
func (c *Cursor) AtBlockStart() bool {
	return c.PositionInBlock() == 0
}

// AtBlockEnd returns true if the caret is at the end of its block body.
func (c *Cursor) AtBlockEnd() bool {
	return c.PositionInBlock() == c.Block().Length()-1
}

// SetPosition moves the caret to pos, clamped into the document.
func (c *Cursor) SetPosition(pos int, mode MoveMode) {
	c.sync()
	c.pos = c.clamp(pos)
	if mode == MoveAnchor {
		c.anchor = c.pos
	}
}

// MovePosition performs op and returns false if the movement was not possible.
func (c *Cursor) MovePosition(op MoveOperation, mode MoveMode) bool {
	c.sync()
	block := c.doc.FindBlock(c.pos)
	target := c.pos
	switch op {
	case NoMove:
		return true
	case Start:
		target = 0
	case End:
		target = c.doc.CharacterCount() - 1
	case StartOfBlock:
		target = block.Position()
	case EndOfBlock:
		target = block.Position() + block.Length() - 1
	case PreviousBlock:
		prev := block.Previous()
		if !prev.IsValid() {
			return false
		}
		target = prev.Position()
	case NextBlock:
		next := block.Next()
		if !next.IsValid() {
			return false
		}
		target = next.Position()
	case PreviousCharacter:
		if c.pos == 0 {
			return false
		}
		target = c.pos - 1
	case NextCharacter:
		if c.pos >= c.doc.CharacterCount()-1 {
			return false
		}
		target = c.pos + 1
	default:
		return false
	}
	c.SetPosition(target, mode)
	return true
}

// Select selects the given unit around the caret.
func (c *Cursor) Select(kind SelectionType) {
	switch kind {
	case BlockUnderCursor:
		if c.Block().Length() == 1 {
			return
		}
		c.MovePosition(StartOfBlock, MoveAnchor)
		if c.MovePosition(PreviousBlock, MoveAnchor) {
			c.MovePosition(EndOfBlock, MoveAnchor)
			c.MovePosition(NextBlock, KeepAnchor)
		}
		c.MovePosition(EndOfBlock, KeepAnchor)
	case WholeDocument:
		c.MovePosition(Start, MoveAnchor)
		c.MovePosition(End, KeepAnchor)
	}
}

// ClearSelection collapses the selection onto the caret.
func (c *Cursor) ClearSelection() {
	c.sync()
	c.anchor = c.pos
}

// SelectedText returns the selection with block boundaries reported as
// ParagraphSeparator.
func (c *Cursor) SelectedText() string {
	c.sync()
	return c.doc.Slice(min(c.pos, c.anchor), max(c.pos, c.anchor))
}

// RemoveSelectedText deletes the selection, if any.
func (c *Cursor) RemoveSelectedText() {
	c.sync()
	if c.pos == c.anchor {
		return
	}
	c.doc.remove(min(c.pos, c.anchor), max(c.pos, c.anchor))
	c.sync()
}

// InsertText replaces the selection with s and leaves the caret after it.
func (c *Cursor) InsertText(s string) {
	c.doc.BeginEdit()
	defer c.doc.EndEdit()

	c.RemoveSelectedText()
	c.doc.insert(c.pos, s)
	c.sync()
	c.anchor = c.pos
}

// InsertBlock splits the current block at the caret.
func (c *Cursor) InsertBlock() {
	c.InsertText("\n")
}

// DeleteChar deletes the selection, or the character after the caret.
// The end-of-document sentinel is never deleted.
func (c *Cursor) DeleteChar() {
	c.sync()
	if c.pos != c.anchor {
		c.RemoveSelectedText()
		return
	}
	if c.pos >= c.doc.CharacterCount()-1 {
		return
	}
	c.doc.remove(c.pos, c.pos+1)
	c.sync()
}

// DeletePreviousChar deletes the selection, or the character before the caret.
func (c *Cursor) DeletePreviousChar() {
	c.sync()
	if c.pos != c.anchor {
		c.RemoveSelectedText()
		return
	}
	if c.pos == 0 {
		return
	}
	c.doc.remove(c.pos-1, c.pos)
	c.sync()
}

// BeginEditBlock opens a document transaction.
func (c *Cursor) BeginEditBlock() {
	c.doc.BeginEdit()
}

// EndEditBlock closes the transaction opened by BeginEditBlock.
func (c *Cursor) EndEditBlock() {
	_ = c.doc.EndEdit()
}

// String returns a debug representation of the cursor.
func (c *Cursor) String() string {
	c.sync()
	if c.pos == c.anchor {
		return fmt.Sprintf("Cursor(%d)", c.pos)
	}
	return fmt.Sprintf("Cursor(%d..%d)", c.anchor, c.pos)
}
