package document

import "fmt"

// Block is a handle to one logical line of a Document.
// The handle addresses the block by number, so it refers to whatever block
// holds that number after an edit.
type Block struct {
	doc    *Document
	number int
}

// IsValid returns true if the block exists in its document.
func (b Block) IsValid() bool {
	return b.doc != nil && b.number >= 0 && b.number < len(b.doc.blocks)
}

// Document returns the owning document.
func (b Block) Document() *Document {
	return b.doc
}

// Number returns the block number.
func (b Block) Number() int {
	return b.number
}

// Position returns the absolute character offset of the block start.
func (b Block) Position() int {
	if !b.IsValid() {
		return 0
	}
	b.doc.layout()
	return b.doc.positions[b.number]
}

// Length returns the number of characters in the block including its
// trailing separator (or, for the last block, the end sentinel).
func (b Block) Length() int {
	if !b.IsValid() {
		return 0
	}
	return len(b.doc.blocks[b.number]) + 1
}

// Text returns the block body without the separator.
func (b Block) Text() string {
	if !b.IsValid() {
		return ""
	}
	return string(b.doc.blocks[b.number])
}

// Runes returns a copy of the block body.
func (b Block) Runes() []rune {
	if !b.IsValid() {
		return nil
	}
	return append([]rune(nil), b.doc.blocks[b.number]...)
}

// Contains reports whether pos lies in [Position, Position+Length).
func (b Block) Contains(pos int) bool {
	start := b.Position()
	return b.IsValid() && pos >= start && pos < start+b.Length()
}

// Next returns the following block. The result is invalid past the end.
func (b Block) Next() Block {
	return Block{doc: b.doc, number: b.number + 1}
}

// Previous returns the preceding block. The result is invalid before block 0.
func (b Block) Previous() Block {
	return Block{doc: b.doc, number: b.number - 1}
}

// String returns a debug representation of the block.
func (b Block) String() string {
	return fmt.Sprintf("Block(%d@%d %q)", b.number, b.Position(), b.Text())
}
