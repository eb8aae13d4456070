package document

import (
	"errors"
	"testing"
)

func TestNewSplitsBlocks(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		blocks []string
	}{
		{"empty", "", []string{""}},
		{"single", "abc", []string{"abc"}},
		{"trailing newline", "a\n", []string{"a", ""}},
		{"crlf", "a\r\nb", []string{"a", "b"}},
		{"cr", "a\rb", []string{"a", "b"}},
		{"paragraph separator", "a\u2029b", []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := New(tt.text)
			if doc.BlockCount() != len(tt.blocks) {
				t.Fatalf("expected %d blocks, got %d", len(tt.blocks), doc.BlockCount())
			}
			for i, want := range tt.blocks {
				if got := doc.FindBlockByNumber(i).Text(); got != want {
					t.Errorf("block %d: expected %q, got %q", i, want, got)
				}
			}
		})
	}
}

func TestCharacterCount(t *testing.T) {
	doc := New("ab\ncd")
	// 4 letters + 1 separator + 1 sentinel.
	if doc.CharacterCount() != 6 {
		t.Errorf("expected 6, got %d", doc.CharacterCount())
	}

	if New("").CharacterCount() != 1 {
		t.Error("empty document should count only the sentinel")
	}
}

func TestBlockGeometry(t *testing.T) {
	doc := New("ab\n\ncde")

	tests := []struct {
		number   int
		position int
		length   int
	}{
		{0, 0, 3},
		{1, 3, 1},
		{2, 4, 4},
	}

	for _, tt := range tests {
		b := doc.FindBlockByNumber(tt.number)
		if b.Position() != tt.position {
			t.Errorf("block %d: expected position %d, got %d", tt.number, tt.position, b.Position())
		}
		if b.Length() != tt.length {
			t.Errorf("block %d: expected length %d, got %d", tt.number, tt.length, b.Length())
		}
	}
}

func TestFindBlock(t *testing.T) {
	doc := New("ab\n\ncde")

	tests := []struct {
		pos   int
		block int
	}{
		{-3, 0},
		{0, 0},
		{2, 0}, // separator belongs to the block it ends
		{3, 1},
		{4, 2},
		{7, 2}, // sentinel
		{100, 2},
	}

	for _, tt := range tests {
		if got := doc.FindBlock(tt.pos).Number(); got != tt.block {
			t.Errorf("FindBlock(%d): expected %d, got %d", tt.pos, tt.block, got)
		}
	}
}

func TestFindBlockByNumberClamps(t *testing.T) {
	doc := New("a\nb")
	if doc.FindBlockByNumber(10).Number() != 1 {
		t.Error("expected clamp to last block")
	}
	if doc.FindBlockByNumber(-1).Number() != 0 {
		t.Error("expected clamp to first block")
	}
}

func TestCharacterAt(t *testing.T) {
	doc := New("ab\nc")

	want := []rune{'a', 'b', ParagraphSeparator, 'c', ParagraphSeparator}
	for i, r := range want {
		if got := doc.CharacterAt(i); got != r {
			t.Errorf("CharacterAt(%d): expected %q, got %q", i, r, got)
		}
	}
	if doc.CharacterAt(5) != 0 || doc.CharacterAt(-1) != 0 {
		t.Error("out of range should return 0")
	}
}

func TestSlice(t *testing.T) {
	doc := New("ab\ncd\nef")

	tests := []struct {
		start, end int
		want       string
	}{
		{0, 2, "ab"},
		{1, 4, "b\u2029c"},
		{0, 100, "ab\u2029cd\u2029ef"},
		{2, 3, "\u2029"},
		{5, 5, ""},
	}

	for _, tt := range tests {
		if got := doc.Slice(tt.start, tt.end); got != tt.want {
			t.Errorf("Slice(%d, %d): expected %q, got %q", tt.start, tt.end, tt.want, got)
		}
	}
}

func TestInsertAndRemove(t *testing.T) {
	doc := New("hello world")

	doc.insert(5, ",\nbig")
	if doc.Text() != "hello,\nbig world" {
		t.Fatalf("unexpected text after insert: %q", doc.Text())
	}
	if doc.BlockCount() != 2 {
		t.Fatalf("expected 2 blocks, got %d", doc.BlockCount())
	}

	removed := doc.remove(5, 10)
	if removed != ",\nbig" {
		t.Errorf("expected removed %q, got %q", ",\nbig", removed)
	}
	if doc.Text() != "hello world" {
		t.Errorf("unexpected text after remove: %q", doc.Text())
	}
}

func TestRemoveNeverDropsLastBlock(t *testing.T) {
	doc := New("abc")
	doc.remove(0, 100)
	if doc.BlockCount() != 1 || doc.Text() != "" {
		t.Errorf("expected one empty block, got %d blocks %q", doc.BlockCount(), doc.Text())
	}
}

func TestTransactionsNotifyOnce(t *testing.T) {
	var changes []Change
	doc := New("abc", WithObserver(func(ch Change) {
		changes = append(changes, ch)
	}))

	doc.BeginEdit()
	doc.insert(0, "x")
	doc.BeginEdit()
	doc.insert(0, "y")
	doc.EndEdit()
	if len(changes) != 0 {
		t.Fatal("no change should be delivered while a transaction is open")
	}
	doc.EndEdit()

	if len(changes) != 1 {
		t.Fatalf("expected 1 change, got %d", len(changes))
	}
	if len(changes[0].Edits) != 2 {
		t.Errorf("expected 2 edits, got %d", len(changes[0].Edits))
	}
	if changes[0].Revision != 1 || doc.Revision() != 1 {
		t.Errorf("expected revision 1, got %d", changes[0].Revision)
	}

	doc.remove(0, 1)
	if len(changes) != 2 {
		t.Errorf("edit outside a transaction should commit on its own")
	}
	if changes[0].ID == changes[1].ID {
		t.Error("transactions should have distinct IDs")
	}
}

func TestEndEditWithoutBegin(t *testing.T) {
	doc := New("")
	if err := doc.EndEdit(); !errors.Is(err, ErrNoTransaction) {
		t.Errorf("expected ErrNoTransaction, got %v", err)
	}
}

func TestSubscribeUnsubscribe(t *testing.T) {
	doc := New("")
	count := 0
	unsubscribe := doc.Subscribe(func(Change) { count++ })

	doc.insert(0, "a")
	unsubscribe()
	doc.insert(0, "b")

	if count != 1 {
		t.Errorf("expected 1 notification, got %d", count)
	}
}

func TestCheckPosition(t *testing.T) {
	doc := New("ab")
	if err := doc.CheckPosition(2); err != nil {
		t.Errorf("sentinel position should be valid: %v", err)
	}
	if err := doc.CheckPosition(3); !errors.Is(err, ErrPositionOutOfRange) {
		t.Errorf("expected ErrPositionOutOfRange, got %v", err)
	}
}
