// Package document provides the block-addressed text document that the
// editing kernel operates on.
//
// A Document is an ordered list of blocks (logical lines). Every block has a
// number, a starting character offset and a length that counts its trailing
// paragraph separator. The last block has no separator; its extra character
// is the end-of-document sentinel, so Length()-1 is always the text length
// and CharacterCount() is one past the last addressable position.
//
// All positions are character (rune) offsets, never byte offsets.
//
// Basic usage:
//
//	doc := document.New("- first\n- second\n")
//	c := document.NewCursor(doc)
//	c.MovePosition(document.EndOfBlock, document.MoveAnchor)
//	c.InsertBlock()
//	c.InsertText("- ")
//	doc.Text() // "- first\n- \n- second\n"
//
// # Cursors
//
// A Cursor holds a caret position and a selection anchor. Cursors stay valid
// across edits made through other cursors: each cursor replays the
// document's edit log up to the current revision before it answers a query.
//
// # Transactions
//
// Mutations are grouped with BeginEdit/EndEdit (or Cursor.BeginEditBlock and
// Cursor.EndEditBlock). Transactions nest. Subscribers receive one Change per
// outermost transaction; an edit made outside any transaction is delivered
// as a Change of its own.
//
// Thread Safety:
//
// A Document and its cursors belong to the goroutine that owns the editor
// view. They are not safe for concurrent use.
package document
