package editkit

import "github.com/dshills/keymark/internal/engine/document"

// ScrollDest is where ScrollBlockInPage puts the target block.
type ScrollDest uint8

const (
	ScrollTop ScrollDest = iota
	ScrollCenter
	ScrollBottom
)

// String returns the name of the destination.
func (d ScrollDest) String() string {
	switch d {
	case ScrollTop:
		return "top"
	case ScrollCenter:
		return "center"
	case ScrollBottom:
		return "bottom"
	default:
		return "unknown"
	}
}

// Rect is a rectangle in view coordinates.
type Rect struct {
	X, Y          int
	Width, Height int
}

// ScrollBar is the subset of a scroll bar the positioner drives.
type ScrollBar interface {
	Value() int
	SetValue(v int)
	Minimum() int
	Maximum() int
	SingleStep() int
	IsVisible() bool
	// Height is the space the bar takes from the view's height.
	Height() int
}

// View is an editor view over a document with a caret and scroll bars.
type View interface {
	Document() *document.Document
	// TextCursor returns a copy of the view's cursor.
	TextCursor() *document.Cursor
	SetTextCursor(c *document.Cursor)
	// CursorRect returns the caret rectangle relative to the visible area.
	CursorRect() Rect
	// Height returns the height of the whole view, scroll bars included.
	Height() int
	EnsureCursorVisible()
	// VerticalScrollBar and HorizontalScrollBar return nil when absent.
	VerticalScrollBar() ScrollBar
	HorizontalScrollBar() ScrollBar
}

// ScrollBlockInPage moves the view's cursor to block blockNum, keeping its
// column where possible, and scrolls so that the block sits at dest.
// Scrolling moves in SingleStep increments, so it ends within one step of
// the requested spot and always terminates.
func ScrollBlockInPage(v View, blockNum int, dest ScrollDest) {
	doc := v.Document()
	block := doc.FindBlockByNumber(blockNum)

	cursor := v.TextCursor()
	if cursor.Block().Number() != block.Number() {
		pib := cursor.PositionInBlock()
		if pib >= block.Length() {
			pib = block.Length() - 1
		}
		cursor.SetPosition(block.Position()+pib, document.MoveAnchor)
		v.SetTextCursor(cursor)
	}

	v.EnsureCursorVisible()
	vbar := v.VerticalScrollBar()
	if vbar == nil || !vbar.IsVisible() {
		return
	}

	height := v.Height()
	if hbar := v.HorizontalScrollBar(); hbar != nil && hbar.IsVisible() {
		height -= hbar.Height()
	}
	step := max(vbar.SingleStep(), 1)
	y := v.CursorRect().Y

	switch dest {
	case ScrollTop:
		for y > 0 && vbar.Value() < vbar.Maximum() {
			vbar.SetValue(vbar.Value() + step)
			y = v.CursorRect().Y
		}
	case ScrollCenter:
		height = max(height/2, 1)
		if y > height {
			for y > height && vbar.Value() < vbar.Maximum() {
				vbar.SetValue(vbar.Value() + step)
				y = v.CursorRect().Y
			}
		} else if y < height {
			for y < height && vbar.Value() > vbar.Minimum() {
				vbar.SetValue(vbar.Value() - step)
				y = v.CursorRect().Y
			}
		}
	case ScrollBottom:
		for y < height && vbar.Value() > vbar.Minimum() {
			vbar.SetValue(vbar.Value() - step)
			y = v.CursorRect().Y
		}
	}

	v.EnsureCursorVisible()
}
