package backend

import (
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/dshills/keymark/internal/renderer/viewport"
)

// Terminal draws viewports onto a tcell screen.
type Terminal struct {
	screen tcell.Screen
	theme  Theme
	ready  bool
	mu     sync.Mutex
}

// NewSimulation creates an off-screen backend of the given size.
func NewSimulation(width, height int, theme Theme) (*Terminal, error) {
	screen := tcell.NewSimulationScreen("UTF-8")
	t := &Terminal{screen: screen, theme: theme}
	if err := t.Init(); err != nil {
		return nil, err
	}
	screen.SetSize(width, height)
	return t, nil
}

// Init initializes the screen.
func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.screen.Init(); err != nil {
		return err
	}
	t.ready = true
	return nil
}

// Shutdown restores the terminal.
func (t *Terminal) Shutdown() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.ready {
		t.screen.Fini()
		t.ready = false
	}
}

// Draw paints the visible rows of vp, its horizontal scroll bar and the
// caret, then shows the result.
func (t *Terminal) Draw(vp *viewport.Viewport) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.ready {
		return ErrNotInitialized
	}

	t.screen.Clear()
	lines := vp.Lines()
	for y, line := range lines {
		t.drawLine(0, y, line, t.theme.Text)
	}

	if hbar := vp.HorizontalScrollBar(); hbar != nil && hbar.IsVisible() {
		t.drawScrollBar(vp.VisibleRows(), vp.Width(), hbar.Value(), hbar.Maximum())
	}

	r := vp.CursorRect()
	if t.theme.Cursor == CursorHidden || r.Y < 0 || r.Y >= vp.VisibleRows() || r.X < 0 || r.X >= vp.Width() {
		t.screen.HideCursor()
	} else {
		t.screen.SetCursorStyle(t.theme.Cursor.tcell())
		t.screen.ShowCursor(r.X, r.Y)
	}

	t.screen.Show()
	return nil
}

// Snapshot returns the screen contents as text, one line per row, with
// trailing blanks trimmed.
func (t *Terminal) Snapshot() string {
	t.mu.Lock()
	defer t.mu.Unlock()

	width, height := t.screen.Size()
	rows := make([]string, height)
	for y := 0; y < height; y++ {
		var sb strings.Builder
		for x := 0; x < width; {
			mainc, comb, _, w := t.screen.GetContent(x, y) //nolint:staticcheck // GetContent is the correct API
			if mainc == 0 {
				mainc = ' '
			}
			sb.WriteRune(mainc)
			for _, r := range comb {
				sb.WriteRune(r)
			}
			x += max(w, 1)
		}
		rows[y] = strings.TrimRight(sb.String(), " ")
	}
	return strings.TrimRight(strings.Join(rows, "\n"), "\n")
}

// drawLine writes line starting at (x, y), one grapheme cluster per cell.
func (t *Terminal) drawLine(x, y int, line string, style tcell.Style) {
	state := -1
	for len(line) > 0 {
		var cluster string
		var w int
		cluster, line, w, state = uniseg.FirstGraphemeClusterInString(line, state)
		runes := []rune(cluster)
		t.screen.SetContent(x, y, runes[0], runes[1:], style)
		x += max(w, 1)
	}
}

// drawScrollBar draws a horizontal bar on row y whose thumb reflects value
// within [0, maximum].
func (t *Terminal) drawScrollBar(y, width, value, maximum int) {
	thumb := max(width*width/(width+maximum), 1)
	start := 0
	if maximum > 0 {
		start = value * (width - thumb) / maximum
	}
	for x := 0; x < width; x++ {
		if x >= start && x < start+thumb {
			t.screen.SetContent(x, y, '=', nil, t.theme.Thumb)
		} else {
			t.screen.SetContent(x, y, '-', nil, t.theme.ScrollBar)
		}
	}
}

// Render draws vp on an off-screen terminal of the same size and returns
// the snapshot.
func Render(vp *viewport.Viewport, theme Theme) (string, error) {
	t, err := NewSimulation(vp.Width(), vp.Height(), theme)
	if err != nil {
		return "", err
	}
	defer t.Shutdown()

	if err := t.Draw(vp); err != nil {
		return "", err
	}
	return t.Snapshot(), nil
}
