package viewport

// ScrollBar exposes one scroll axis of a Viewport. Values are rows for the
// vertical bar and cells for the horizontal one.
type ScrollBar struct {
	v        *Viewport
	vertical bool
}

// Value returns the first visible row or column.
func (b *ScrollBar) Value() int {
	b.v.mu.Lock()
	defer b.v.mu.Unlock()
	b.v.layout()
	if b.vertical {
		return b.v.topRow
	}
	return b.v.leftColumn
}

// SetValue scrolls to value, clamped to the bar's range.
func (b *ScrollBar) SetValue(value int) {
	b.v.mu.Lock()
	defer b.v.mu.Unlock()
	b.v.layout()
	if b.vertical {
		b.v.topRow = value
	} else {
		b.v.leftColumn = value
	}
	b.v.clampScroll()
}

// Minimum is always 0.
func (b *ScrollBar) Minimum() int {
	return 0
}

// Maximum returns the largest value the bar accepts.
func (b *ScrollBar) Maximum() int {
	b.v.mu.Lock()
	defer b.v.mu.Unlock()
	b.v.layout()
	if b.vertical {
		return b.v.maxTopRow()
	}
	return b.v.maxLeftColumn()
}

// SingleStep returns the distance of one scroll step.
func (b *ScrollBar) SingleStep() int {
	b.v.mu.RLock()
	defer b.v.mu.RUnlock()
	if b.vertical {
		return b.v.singleStep
	}
	return 1
}

// IsVisible reports whether there is anything to scroll.
func (b *ScrollBar) IsVisible() bool {
	return b.Maximum() > 0
}

// Height returns the rows the bar takes from the text area.
func (b *ScrollBar) Height() int {
	if b.vertical || !b.IsVisible() {
		return 0
	}
	return 1
}

// TopRow returns the first visible row.
func (v *Viewport) TopRow() int {
	return v.vbar.Value()
}

// LeftColumn returns the first visible column.
func (v *Viewport) LeftColumn() int {
	return v.hbar.Value()
}

// ScrollTo shows row at the top of the viewport.
func (v *Viewport) ScrollTo(row int) {
	v.vbar.SetValue(row)
}

// ScrollBy scrolls by a delta number of rows.
func (v *Viewport) ScrollBy(delta int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.layout()
	v.topRow += delta
	v.clampScroll()
}
