package editkit

import (
	"slices"
	"unicode"

	"github.com/dshills/keymark/internal/engine/document"
)

// MoveCursorFirstNonSpace places the cursor on the first non-space character
// of its block, or at the block end if the block is blank.
func MoveCursorFirstNonSpace(c *document.Cursor, mode document.MoveMode) {
	block := c.Block()
	text := block.Runes()
	idx := 0
	for idx < len(text) && unicode.IsSpace(text[idx]) {
		idx++
	}
	c.SetPosition(block.Position()+idx, mode)
}

// FindTargetWithinBlock moves the cursor to the repeat-th occurrence of
// target in the cursor's block.
//
// Inclusive searches are vim's f/F, exclusive ones t/T. An exclusive search
// starts one character further out so that a target right next to the
// cursor does not produce a zero-length motion. It returns false if fewer
// than repeat targets exist in that direction.
func FindTargetWithinBlock(c *document.Cursor, mode document.MoveMode, target rune,
	forward, inclusive bool, repeat int) bool {
	if repeat < 1 {
		return false
	}

	block := c.Block()
	text := block.Runes()
	idx := searchStart(c.PositionInBlock(), forward, inclusive)
	delta := direction(forward)

	for ; idx >= 0 && idx < len(text); idx += delta {
		if text[idx] == target {
			repeat--
			if repeat == 0 {
				break
			}
		}
	}
	if idx < 0 || idx >= len(text) || repeat > 0 {
		return false
	}

	c.SetPosition(block.Position()+placeTarget(idx, mode, forward, inclusive), mode)
	return true
}

// FindTargetsWithinBlock moves the cursor to the nearest character of the
// block that is one of targets. It returns the index in targets of the
// matched character, or -1 if none was found.
func FindTargetsWithinBlock(c *document.Cursor, mode document.MoveMode, targets []rune,
	forward, inclusive bool) int {
	if len(targets) == 0 {
		return -1
	}

	block := c.Block()
	text := block.Runes()
	idx := searchStart(c.PositionInBlock(), forward, inclusive)
	delta := direction(forward)

	matched := -1
	for ; idx >= 0 && idx < len(text); idx += delta {
		if matched = slices.Index(targets, text[idx]); matched != -1 {
			break
		}
	}
	if matched == -1 {
		return -1
	}

	c.SetPosition(block.Position()+placeTarget(idx, mode, forward, inclusive), mode)
	return matched
}

func direction(forward bool) int {
	if forward {
		return 1
	}
	return -1
}

// searchStart returns the first in-block index a target search examines.
func searchStart(posInBlock int, forward, inclusive bool) int {
	delta := direction(forward)
	if inclusive {
		return posInBlock + delta
	}
	return posInBlock + 2*delta
}

// placeTarget converts the index of a found target into the cursor offset.
// A forward inclusive selection must cover the target, a backward exclusive
// motion stops after it, and a forward exclusive move stops before it.
func placeTarget(idx int, mode document.MoveMode, forward, inclusive bool) int {
	switch {
	case forward && inclusive && mode == document.KeepAnchor, !forward && !inclusive:
		return idx + 1
	case forward && !inclusive && mode == document.MoveAnchor:
		return idx - 1
	}
	return idx
}
