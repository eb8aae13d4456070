// Package viewport lays a document out on a grid of terminal cells and
// tracks which rows are visible.
package viewport

import (
	"sync"

	"github.com/rivo/uniseg"

	"github.com/dshills/keymark/internal/editkit"
	"github.com/dshills/keymark/internal/engine/document"
)

// Viewport is a scrollable, fixed-size window onto a document. Each block
// takes one row, or as many rows as its text needs when wrapping.
type Viewport struct {
	mu sync.RWMutex

	doc    *document.Document
	cursor *document.Cursor

	// Size in screen cells, scroll bars included
	width  int
	height int

	wrap       bool
	tabWidth   int
	singleStep int

	// Scroll position
	topRow     int
	leftColumn int

	// Layout, rebuilt after document changes
	dirty    bool
	firstRow []int    // first row of each block
	rowCells [][]int  // cells per row of each block
	rows     []string // expanded text of every row
	widest   int      // widest block in cells

	vbar *ScrollBar
	hbar *ScrollBar

	unsubscribe func()
}

// Option configures a Viewport.
type Option func(*Viewport)

// WithWrap enables soft wrapping of long blocks.
func WithWrap(wrap bool) Option {
	return func(v *Viewport) {
		v.wrap = wrap
	}
}

// WithSingleStep sets the scroll bar step in rows.
func WithSingleStep(n int) Option {
	return func(v *Viewport) {
		if n > 0 {
			v.singleStep = n
		}
	}
}

// WithTabWidth sets the tab stop width in cells.
func WithTabWidth(n int) Option {
	return func(v *Viewport) {
		if n > 0 {
			v.tabWidth = n
		}
	}
}

// NewViewport creates a viewport of the given size over doc.
// Width and height are clamped to a minimum of 1.
func NewViewport(doc *document.Document, width, height int, opts ...Option) *Viewport {
	v := &Viewport{
		doc:        doc,
		cursor:     document.NewCursor(doc),
		width:      max(width, 1),
		height:     max(height, 1),
		tabWidth:   DefaultTabWidth,
		singleStep: 1,
		dirty:      true,
	}
	for _, opt := range opts {
		opt(v)
	}
	v.vbar = &ScrollBar{v: v, vertical: true}
	v.hbar = &ScrollBar{v: v}
	v.unsubscribe = doc.Subscribe(func(document.Change) {
		v.mu.Lock()
		v.dirty = true
		v.mu.Unlock()
	})
	return v
}

// Close detaches the viewport from its document.
func (v *Viewport) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.unsubscribe != nil {
		v.unsubscribe()
		v.unsubscribe = nil
	}
}

// Document returns the document shown by the viewport.
func (v *Viewport) Document() *document.Document {
	return v.doc
}

// TextCursor returns a copy of the viewport's cursor.
func (v *Viewport) TextCursor() *document.Cursor {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.cursor.Clone()
}

// SetTextCursor replaces the viewport's cursor with a copy of c.
func (v *Viewport) SetTextCursor(c *document.Cursor) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.cursor = c.Clone()
}

// Width returns the viewport width.
func (v *Viewport) Width() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.width
}

// Height returns the viewport height, scroll bars included.
func (v *Viewport) Height() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.height
}

// Wrap reports whether long blocks are wrapped.
func (v *Viewport) Wrap() bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.wrap
}

// Resize updates the viewport size.
// Width and height are clamped to a minimum of 1.
func (v *Viewport) Resize(width, height int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.width = max(width, 1)
	v.height = max(height, 1)
	v.dirty = true
}

// TotalRows returns the number of rows the whole document takes.
func (v *Viewport) TotalRows() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.layout()
	return len(v.rows)
}

// VisibleRows returns the number of text rows, excluding the horizontal
// scroll bar.
func (v *Viewport) VisibleRows() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.layout()
	return v.visibleRows()
}

// BlockRow returns the first row of block n.
func (v *Viewport) BlockRow(n int) int {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.layout()
	n = min(max(n, 0), len(v.firstRow)-1)
	return v.firstRow[n]
}

// Lines returns the text of the visible rows, clipped to the width.
func (v *Viewport) Lines() []string {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.layout()

	n := v.visibleRows()
	lines := make([]string, 0, n)
	for row := v.topRow; row < v.topRow+n && row < len(v.rows); row++ {
		lines = append(lines, cut(v.rows[row], v.leftColumn, v.width))
	}
	return lines
}

// CursorRect returns the caret cell relative to the visible area.
func (v *Viewport) CursorRect() editkit.Rect {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.layout()

	row, col := v.cursorCell()
	return editkit.Rect{X: col - v.leftColumn, Y: row - v.topRow, Width: 1, Height: 1}
}

// EnsureCursorVisible scrolls the least amount that brings the caret into
// view.
func (v *Viewport) EnsureCursorVisible() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.layout()

	row, col := v.cursorCell()
	visible := v.visibleRows()
	switch {
	case row < v.topRow:
		v.topRow = row
	case row >= v.topRow+visible:
		v.topRow = row - visible + 1
	}
	if !v.wrap {
		switch {
		case col < v.leftColumn:
			v.leftColumn = col
		case col >= v.leftColumn+v.width:
			v.leftColumn = col - v.width + 1
		}
	}
	v.clampScroll()
}

// VerticalScrollBar returns the vertical scroll bar.
func (v *Viewport) VerticalScrollBar() editkit.ScrollBar {
	return v.vbar
}

// HorizontalScrollBar returns the horizontal scroll bar, or nil when the
// viewport wraps.
func (v *Viewport) HorizontalScrollBar() editkit.ScrollBar {
	if v.Wrap() {
		return nil
	}
	return v.hbar
}

// cursorCell returns the row and column of the caret.
func (v *Viewport) cursorCell() (row, col int) {
	block := v.cursor.Block()
	n := block.Number()
	if n >= len(v.firstRow) {
		return 0, 0
	}
	col = columnOf(block.Runes(), v.cursor.PositionInBlock(), v.tabWidth)
	row = v.firstRow[n]
	cells := v.rowCells[n]
	for i := 0; i < len(cells)-1 && col >= cells[i]; i++ {
		col -= cells[i]
		row++
	}
	return row, col
}

// layout rebuilds the row table when the document or size changed.
func (v *Viewport) layout() {
	if !v.dirty {
		return
	}
	v.dirty = false

	count := v.doc.BlockCount()
	v.firstRow = v.firstRow[:0]
	v.rowCells = v.rowCells[:0]
	v.rows = v.rows[:0]
	v.widest = 0

	for n := 0; n < count; n++ {
		line := expandTabs(v.doc.FindBlockByNumber(n).Text(), v.tabWidth)
		v.widest = max(v.widest, uniseg.StringWidth(line))

		parts := []string{line}
		if v.wrap {
			parts = splitRows(line, v.width)
		}
		cells := make([]int, len(parts))
		for i, p := range parts {
			cells[i] = uniseg.StringWidth(p)
		}

		v.firstRow = append(v.firstRow, len(v.rows))
		v.rowCells = append(v.rowCells, cells)
		v.rows = append(v.rows, parts...)
	}
	v.clampScroll()
}

// hbarVisible reports whether the horizontal scroll bar takes a row. A block
// exactly as wide as the view needs it too, for the caret after its end.
func (v *Viewport) hbarVisible() bool {
	return !v.wrap && v.widest >= v.width
}

func (v *Viewport) visibleRows() int {
	if v.hbarVisible() {
		return max(v.height-1, 1)
	}
	return v.height
}

func (v *Viewport) maxTopRow() int {
	return max(len(v.rows)-v.visibleRows(), 0)
}

func (v *Viewport) maxLeftColumn() int {
	if !v.hbarVisible() {
		return 0
	}
	return v.widest + 1 - v.width
}

func (v *Viewport) clampScroll() {
	v.topRow = min(max(v.topRow, 0), v.maxTopRow())
	v.leftColumn = min(max(v.leftColumn, 0), v.maxLeftColumn())
}
