// Package backend draws viewports onto tcell screens.
package backend

import (
	"errors"

	"github.com/gdamore/tcell/v2"
)

// ErrNotInitialized is returned when drawing before Init.
var ErrNotInitialized = errors.New("backend: screen not initialized")

// CursorStyle defines how the caret appears.
type CursorStyle int

const (
	CursorBlock CursorStyle = iota
	CursorUnderline
	CursorBar
	CursorHidden
)

// Theme holds the styles used when drawing a viewport.
type Theme struct {
	Text      tcell.Style
	ScrollBar tcell.Style
	Thumb     tcell.Style
	Cursor    CursorStyle
}

// DefaultTheme returns the default drawing styles.
func DefaultTheme() Theme {
	return Theme{
		Text:      tcell.StyleDefault,
		ScrollBar: tcell.StyleDefault.Foreground(tcell.ColorGray),
		Thumb:     tcell.StyleDefault.Foreground(tcell.ColorWhite),
		Cursor:    CursorBlock,
	}
}

func (s CursorStyle) tcell() tcell.CursorStyle {
	switch s {
	case CursorUnderline:
		return tcell.CursorStyleSteadyUnderline
	case CursorBar:
		return tcell.CursorStyleSteadyBar
	default:
		return tcell.CursorStyleSteadyBlock
	}
}
