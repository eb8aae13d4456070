package editkit

import (
	"github.com/rs/zerolog/log"

	"github.com/dshills/keymark/internal/engine/document"
)

// SelectPairTargetAround selects the repeat-th pair of opening/closing
// delimiters enclosing the cursor. Inclusive selects the delimiters too
// (vim's a( ), otherwise only the text between them (vim's i( ). The search
// stays inside the cursor's block unless crossBlock is set.
//
// Opening and closing may be the same character, as for quotes. When the
// caret sits on such a delimiter it is first treated as a closing one, so
// "abc|"def" selects abc.
func SelectPairTargetAround(c *document.Cursor, opening, closing rune,
	inclusive, crossBlock bool, repeat int) bool {
	if repeat < 1 {
		return false
	}

	doc := c.Document()
	pos := c.Position()

	start, end := 0, doc.CharacterCount()-1
	if !crossBlock {
		block := c.Block()
		start = block.Position()
		end = block.Position() + block.Length() - 1
	}
	if start == end || pos > end {
		return false
	}

	lo, hi := pos, pos
	for {
		found := false

		// On a closing delimiter: look back for its opening.
		if doc.CharacterAt(hi) == closing {
			i := lo
			if lo == hi {
				i--
			}
			if i = scanBackward(doc, i, start, opening, closing); i >= start {
				lo = i
				found = true
			}
		}

		// On an opening delimiter: look ahead for its closing.
		if !found && doc.CharacterAt(lo) == opening {
			j := hi
			if lo == hi {
				j++
			}
			if j = scanForward(doc, j, end, opening, closing); j <= end {
				hi = j
				found = true
			}
		}

		// Between the delimiters: look both ways.
		if !found && doc.CharacterAt(lo) != opening && doc.CharacterAt(hi) != closing {
			if i := scanBackward(doc, lo-1, start, opening, closing); i >= start {
				if j := scanForward(doc, hi+1, end, opening, closing); j <= end {
					lo, hi = i, j
					found = true
				}
			}
		}

		if !found {
			log.Debug().Str("pair", string([]rune{opening, closing})).Int("pos", pos).Msg("no enclosing pair")
			return false
		}

		repeat--
		if repeat == 0 {
			break
		}
		lo--
		hi++
		if lo < start && hi > end {
			return false
		}
	}

	if inclusive {
		hi++
	} else {
		lo++
	}
	c.SetPosition(lo, document.MoveAnchor)
	c.SetPosition(hi, document.KeepAnchor)
	return true
}

// scanBackward walks left from i looking for the opening that balances one
// unmatched closing. It returns an index below start if there is none.
func scanBackward(doc *document.Document, i, start int, opening, closing rune) int {
	depth := 1
	for ; i >= start; i-- {
		switch doc.CharacterAt(i) {
		case opening:
			depth--
			if depth == 0 {
				return i
			}
		case closing:
			depth++
		}
	}
	return i
}

// scanForward walks right from j looking for the closing that balances one
// unmatched opening. It returns an index above end if there is none.
func scanForward(doc *document.Document, j, end int, opening, closing rune) int {
	depth := 1
	for ; j <= end; j++ {
		switch doc.CharacterAt(j) {
		case closing:
			depth--
			if depth == 0 {
				return j
			}
		case opening:
			depth++
		}
	}
	return j
}
