package editkit

import "testing"

func TestSelectPairTargetAround(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		pos        int
		open       rune
		close      rune
		inclusive  bool
		crossBlock bool
		repeat     int
		ok         bool
		want       string
	}{
		{"inner", "foo(bar(baz)qux)end", 9, '(', ')', false, false, 1, true, "baz"},
		{"inner repeat", "foo(bar(baz)qux)end", 9, '(', ')', false, false, 2, true, "bar(baz)qux"},
		{"around repeat", "foo(bar(baz)qux)end", 9, '(', ')', true, false, 2, true, "(bar(baz)qux)"},
		{"on opening", "x(ab)y", 1, '(', ')', false, false, 1, true, "ab"},
		{"on closing", "x(ab)y", 4, '(', ')', false, false, 1, true, "ab"},
		{"around on closing", "x(ab)y", 4, '(', ')', true, false, 1, true, "(ab)"},
		{"empty pair", "x[]y", 1, '[', ']', false, false, 1, true, ""},
		{"quote prefers closing", `"abc"def"`, 4, '"', '"', false, false, 1, true, "abc"},
		{"quote between", `say "hi" now`, 6, '"', '"', true, false, 1, true, `"hi"`},
		{"no pair", "abc", 1, '(', ')', false, false, 1, false, ""},
		{"unbalanced", "(abc", 2, '(', ')', false, false, 1, false, ""},
		{"repeat too high", "(a)", 1, '(', ')', false, false, 2, false, ""},
		{"zero repeat", "(a)", 1, '(', ')', false, false, 0, false, ""},
		{"empty block", "", 0, '(', ')', false, false, 1, false, ""},
		{"other block", "(a\nb)", 3, '(', ')', false, false, 1, false, ""},
		{"cross block", "(a\nb)", 3, '(', ')', false, true, 1, true, "a\nb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, c := newCursor(tt.text, tt.pos)

			ok := SelectPairTargetAround(c, tt.open, tt.close, tt.inclusive, tt.crossBlock, tt.repeat)
			if ok != tt.ok {
				t.Fatalf("expected %v, got %v", tt.ok, ok)
			}
			if !ok {
				if c.Position() != tt.pos || c.HasSelection() {
					t.Errorf("failed search changed the cursor")
				}
				return
			}
			if got := SelectedText(c); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestSelectPairAnchorBeforeCaret(t *testing.T) {
	_, c := newCursor("foo(bar(baz)qux)end", 9)
	SelectPairTargetAround(c, '(', ')', false, false, 1)
	if c.Anchor() != 8 || c.Position() != 11 {
		t.Errorf("expected anchor 8 and caret 11, got %d and %d", c.Anchor(), c.Position())
	}
}

func TestSelectPairInnermostFromEveryPosition(t *testing.T) {
	const text = "a(bc(de)f)g"

	for pos := 4; pos <= 7; pos++ {
		_, c := newCursor(text, pos)
		if !SelectPairTargetAround(c, '(', ')', false, false, 1) {
			t.Fatalf("position %d: expected a pair", pos)
		}
		if got := SelectedText(c); got != "de" {
			t.Errorf("position %d: expected %q, got %q", pos, "de", got)
		}

		_, c = newCursor(text, pos)
		SelectPairTargetAround(c, '(', ')', true, false, 2)
		if got := SelectedText(c); got != "(bc(de)f)" {
			t.Errorf("position %d: expected outer pair, got %q", pos, got)
		}
	}
}
