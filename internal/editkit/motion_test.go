package editkit

import (
	"testing"

	"github.com/dshills/keymark/internal/engine/document"
)

func TestMoveCursorFirstNonSpace(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"abc", 0},
		{"   abc", 3},
		{"\t x", 2},
		{"    ", 4},
		{"", 0},
	}

	for _, tt := range tests {
		doc := document.New("first\n" + tt.text)
		c := document.NewCursorAt(doc, doc.CharacterCount()-1)

		MoveCursorFirstNonSpace(c, document.MoveAnchor)

		if got := c.PositionInBlock(); got != tt.want {
			t.Errorf("%q: expected %d, got %d", tt.text, tt.want, got)
		}
		if c.HasSelection() {
			t.Errorf("%q: move mode should not select", tt.text)
		}
	}
}

func TestMoveCursorFirstNonSpaceKeepAnchor(t *testing.T) {
	_, c := newCursor("  abc", 5)
	MoveCursorFirstNonSpace(c, document.KeepAnchor)
	if c.Anchor() != 5 || c.Position() != 2 {
		t.Errorf("expected selection [2,5), got anchor %d position %d", c.Anchor(), c.Position())
	}
}

func TestFindTargetWithinBlock(t *testing.T) {
	// h0 e1 l2 l3 o4 _5 w6 o7 r8 l9 d10
	const text = "hello world"

	tests := []struct {
		name      string
		pos       int
		mode      document.MoveMode
		target    rune
		forward   bool
		inclusive bool
		repeat    int
		ok        bool
		want      int
	}{
		{"f", 0, document.MoveAnchor, 'o', true, true, 1, true, 4},
		{"f repeat", 0, document.MoveAnchor, 'o', true, true, 2, true, 7},
		{"t repeat", 0, document.MoveAnchor, 'o', true, false, 2, true, 6},
		{"f keep", 0, document.KeepAnchor, 'o', true, true, 2, true, 8},
		{"t keep", 0, document.KeepAnchor, 'o', true, false, 1, true, 4},
		{"t skips adjacent target", 3, document.MoveAnchor, 'o', true, false, 1, true, 6},
		{"F", 10, document.MoveAnchor, 'o', false, true, 1, true, 7},
		{"T", 10, document.MoveAnchor, 'o', false, false, 1, true, 8},
		{"F repeat", 10, document.MoveAnchor, 'l', false, true, 3, true, 2},
		{"not enough targets", 0, document.MoveAnchor, 'o', true, true, 3, false, 0},
		{"missing target", 0, document.MoveAnchor, 'z', true, true, 1, false, 0},
		{"cursor target ignored", 4, document.MoveAnchor, 'o', false, true, 1, false, 4},
		{"zero repeat", 0, document.MoveAnchor, 'o', true, true, 0, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, c := newCursor(text, tt.pos)

			ok := FindTargetWithinBlock(c, tt.mode, tt.target, tt.forward, tt.inclusive, tt.repeat)
			if ok != tt.ok {
				t.Fatalf("expected %v, got %v", tt.ok, ok)
			}
			if c.Position() != tt.want {
				t.Errorf("expected position %d, got %d", tt.want, c.Position())
			}
			if tt.mode == document.KeepAnchor && c.Anchor() != tt.pos {
				t.Errorf("anchor moved to %d", c.Anchor())
			}
		})
	}
}

func TestFindTargetStaysInBlock(t *testing.T) {
	_, c := newCursor("ab\ncd x", 0)
	if FindTargetWithinBlock(c, document.MoveAnchor, 'x', true, true, 1) {
		t.Error("search should not leave the block")
	}
	if c.Position() != 0 {
		t.Errorf("cursor moved to %d", c.Position())
	}
}

func TestFindTargetInLaterBlock(t *testing.T) {
	_, c := newCursor("ab\ncd x", 3)
	if !FindTargetWithinBlock(c, document.MoveAnchor, 'x', true, true, 1) {
		t.Fatal("expected a match")
	}
	if c.Position() != 6 {
		t.Errorf("expected 6, got %d", c.Position())
	}
}

func TestFindTargetsWithinBlock(t *testing.T) {
	targets := []rune{'[', '('}

	_, c := newCursor("a(b[c", 0)
	if idx := FindTargetsWithinBlock(c, document.MoveAnchor, targets, true, true); idx != 1 {
		t.Errorf("expected target 1, got %d", idx)
	}
	if c.Position() != 1 {
		t.Errorf("expected position 1, got %d", c.Position())
	}

	if idx := FindTargetsWithinBlock(c, document.MoveAnchor, targets, true, true); idx != 0 {
		t.Errorf("expected target 0, got %d", idx)
	}
	if c.Position() != 3 {
		t.Errorf("expected position 3, got %d", c.Position())
	}

	if idx := FindTargetsWithinBlock(c, document.MoveAnchor, targets, false, false); idx != 1 {
		t.Errorf("expected target 1, got %d", idx)
	}
	if c.Position() != 2 {
		t.Errorf("backward exclusive should stop after the target, got %d", c.Position())
	}
}

func TestFindTargetsWithinBlockMissing(t *testing.T) {
	_, c := newCursor("abc", 0)
	if idx := FindTargetsWithinBlock(c, document.MoveAnchor, []rune{'x'}, true, true); idx != -1 {
		t.Errorf("expected -1, got %d", idx)
	}
	if idx := FindTargetsWithinBlock(c, document.MoveAnchor, nil, true, true); idx != -1 {
		t.Errorf("expected -1 for no targets, got %d", idx)
	}
	if c.Position() != 0 {
		t.Errorf("cursor moved to %d", c.Position())
	}
}

func TestFindTargetReportsFailureWithoutMoving(t *testing.T) {
	texts := []string{"", "a", "abcabc", "x y x"}
	for _, text := range texts {
		for pos := 0; pos <= len(text); pos++ {
			for _, forward := range []bool{true, false} {
				for _, inclusive := range []bool{true, false} {
					_, c := newCursor(text, pos)
					if !FindTargetWithinBlock(c, document.MoveAnchor, 'q', forward, inclusive, 1) && c.Position() != pos {
						t.Errorf("%q at %d: failed search moved cursor to %d", text, pos, c.Position())
					}
				}
			}
		}
	}
}

func TestFindTargetForwardThenBackwardReturns(t *testing.T) {
	texts := []string{"o.o.o.o.o", "xo-oo--o ooo", "(a(b)c(d)e)"}
	targets := []rune{'o', 'o', '('}

	for i, text := range texts {
		target := targets[i]
		runes := []rune(text)
		for origin, r := range runes {
			if r != target {
				continue
			}
			before, after := 0, 0
			for j, r := range runes {
				if r == target && j < origin {
					before++
				} else if r == target && j > origin {
					after++
				}
			}
			for k := 1; k <= min(before, after); k++ {
				doc := document.New("header\n" + text)
				start := doc.LastBlock().Position() + origin
				c := document.NewCursorAt(doc, start)

				if !FindTargetWithinBlock(c, document.MoveAnchor, target, true, true, k) {
					t.Fatalf("%q from %d: forward %d failed", text, origin, k)
				}
				if !FindTargetWithinBlock(c, document.MoveAnchor, target, false, true, k) {
					t.Fatalf("%q from %d: backward %d failed", text, origin, k)
				}
				if c.Position() != start {
					t.Errorf("%q from %d with %d: expected %d, got %d", text, origin, k, start, c.Position())
				}
			}
		}
	}
}
