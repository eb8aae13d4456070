package document

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// ParagraphSeparator is the character reported at every block boundary and
// at the end-of-document sentinel.
const ParagraphSeparator = '\u2029'

// Edit is a single primitive mutation inside a transaction.
type Edit struct {
	// Position is the character offset where the edit applies.
	Position int
	// Removed is the text that was removed, with "\n" between blocks.
	Removed string
	// Inserted is the text that was inserted, with "\n" between blocks.
	Inserted string
}

// Change describes one committed transaction.
type Change struct {
	ID       uuid.UUID
	Revision int
	Edits    []Edit
}

// logEntry is the position-shifting summary of an edit, replayed by cursors.
type logEntry struct {
	pos      int
	removed  int
	inserted int
}

// adjust maps a position from before the edit to after it.
func (e logEntry) adjust(p int) int {
	if e.removed > 0 {
		end := e.pos + e.removed
		switch {
		case p >= end:
			p -= e.removed
		case p > e.pos:
			p = e.pos
		}
	}
	if e.inserted > 0 && p >= e.pos {
		p += e.inserted
	}
	return p
}

// Document is an ordered sequence of text blocks with at least one block.
type Document struct {
	blocks    [][]rune
	positions []int
	dirty     bool

	log     []logEntry
	logBase int
	maxLog  int

	revision  int
	depth     int
	pending   []Edit
	observers []func(Change)
}

// New creates a document holding text. "\r\n" and "\r" are normalized to "\n".
func New(text string, opts ...Option) *Document {
	d := &Document{dirty: true}
	for _, opt := range opts {
		opt(d)
	}
	d.blocks = splitBlocks(normalize(text))
	return d
}

// normalize converts all line endings and paragraph separators to "\n".
func normalize(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return strings.ReplaceAll(s, string(ParagraphSeparator), "\n")
}

func splitBlocks(s string) [][]rune {
	parts := strings.Split(s, "\n")
	blocks := make([][]rune, len(parts))
	for i, p := range parts {
		blocks[i] = []rune(p)
	}
	return blocks
}

// Text returns the document content with blocks joined by "\n".
func (d *Document) Text() string {
	var sb strings.Builder
	for i, b := range d.blocks {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(string(b))
	}
	return sb.String()
}

// BlockCount returns the number of blocks. It is never less than one.
func (d *Document) BlockCount() int {
	return len(d.blocks)
}

// CharacterCount returns the number of characters including every block
// separator and the trailing sentinel.
func (d *Document) CharacterCount() int {
	d.layout()
	last := len(d.blocks) - 1
	return d.positions[last] + len(d.blocks[last]) + 1
}

// Revision returns the number of committed transactions.
func (d *Document) Revision() int {
	return d.revision
}

// FirstBlock returns block 0.
func (d *Document) FirstBlock() Block {
	return Block{doc: d, number: 0}
}

// LastBlock returns the last block.
func (d *Document) LastBlock() Block {
	return Block{doc: d, number: len(d.blocks) - 1}
}

// FindBlockByNumber returns block n, clamped into [0, BlockCount()-1].
func (d *Document) FindBlockByNumber(n int) Block {
	if n < 0 {
		n = 0
	}
	if n >= len(d.blocks) {
		n = len(d.blocks) - 1
	}
	return Block{doc: d, number: n}
}

// FindBlock returns the block whose [Position, Position+Length) contains pos.
// Positions outside the document are clamped to the first or last block.
func (d *Document) FindBlock(pos int) Block {
	return Block{doc: d, number: d.blockIndex(pos)}
}

// CharacterAt returns the character at pos. Block boundaries and the final
// sentinel report ParagraphSeparator. Out-of-range positions return 0.
func (d *Document) CharacterAt(pos int) rune {
	if pos < 0 || pos >= d.CharacterCount() {
		return 0
	}
	n := d.blockIndex(pos)
	off := pos - d.positions[n]
	if off >= len(d.blocks[n]) {
		return ParagraphSeparator
	}
	return d.blocks[n][off]
}

// Slice returns the characters in [start, end). Block boundaries appear as
// ParagraphSeparator; the end-of-document sentinel is never included.
func (d *Document) Slice(start, end int) string {
	return d.slice(start, end, ParagraphSeparator)
}

func (d *Document) slice(start, end int, sep rune) string {
	start, end = d.clampRange(start, end)
	if start >= end {
		return ""
	}
	var sb strings.Builder
	n := d.blockIndex(start)
	off := start - d.positions[n]
	for pos := start; pos < end; {
		text := d.blocks[n]
		stop := len(text)
		if remain := end - pos; off+remain < stop {
			stop = off + remain
		}
		sb.WriteString(string(text[off:stop]))
		pos += stop - off
		if pos < end {
			sb.WriteRune(sep)
			pos++
			n++
			off = 0
		}
	}
	return sb.String()
}

// Subscribe registers fn to receive committed changes. The returned function
// removes the subscription.
func (d *Document) Subscribe(fn func(Change)) (unsubscribe func()) {
	d.observers = append(d.observers, fn)
	idx := len(d.observers) - 1
	return func() {
		if idx < len(d.observers) {
			d.observers[idx] = nil
		}
	}
}

// BeginEdit opens a transaction. Calls nest.
func (d *Document) BeginEdit() {
	d.depth++
}

// EndEdit closes a transaction. Closing the outermost transaction commits
// the accumulated edits and notifies subscribers.
func (d *Document) EndEdit() error {
	if d.depth == 0 {
		return ErrNoTransaction
	}
	d.depth--
	if d.depth == 0 {
		d.commit()
	}
	return nil
}

func (d *Document) commit() {
	if len(d.pending) == 0 {
		return
	}
	d.revision++
	ch := Change{
		ID:       uuid.New(),
		Revision: d.revision,
		Edits:    d.pending,
	}
	d.pending = nil
	for _, fn := range d.observers {
		if fn != nil {
			fn(ch)
		}
	}
}

// layout recomputes block start offsets if the block list changed.
func (d *Document) layout() {
	if !d.dirty {
		return
	}
	if cap(d.positions) < len(d.blocks) {
		d.positions = make([]int, len(d.blocks))
	}
	d.positions = d.positions[:len(d.blocks)]
	pos := 0
	for i, b := range d.blocks {
		d.positions[i] = pos
		pos += len(b) + 1
	}
	d.dirty = false
}

// blockIndex returns the index of the block containing pos, clamped.
func (d *Document) blockIndex(pos int) int {
	d.layout()
	if pos <= 0 {
		return 0
	}
	// First block starting after pos, minus one.
	n := sort.SearchInts(d.positions, pos+1) - 1
	if n < 0 {
		n = 0
	}
	return n
}

func (d *Document) clampRange(start, end int) (int, int) {
	limit := d.CharacterCount() - 1
	if start < 0 {
		start = 0
	}
	if end > limit {
		end = limit
	}
	if start > limit {
		start = limit
	}
	return start, end
}

// insert places s at pos and records the edit. It returns the number of
// characters inserted.
func (d *Document) insert(pos int, s string) int {
	s = normalize(s)
	if s == "" {
		return 0
	}
	if pos < 0 || pos > d.CharacterCount()-1 {
		return 0
	}
	n := d.blockIndex(pos)
	off := pos - d.positions[n]
	text := d.blocks[n]

	parts := splitBlocks(s)
	head := append([]rune{}, text[:off]...)
	tail := append([]rune{}, text[off:]...)

	repl := make([][]rune, len(parts))
	copy(repl, parts)
	repl[0] = append(head, repl[0]...)
	last := len(repl) - 1
	repl[last] = append(repl[last], tail...)

	blocks := make([][]rune, 0, len(d.blocks)+last)
	blocks = append(blocks, d.blocks[:n]...)
	blocks = append(blocks, repl...)
	blocks = append(blocks, d.blocks[n+1:]...)
	d.blocks = blocks
	d.dirty = true

	count := len([]rune(s))
	d.record(Edit{Position: pos, Inserted: s}, logEntry{pos: pos, inserted: count})
	return count
}

// remove deletes [start, end) and records the edit. The sentinel is never
// removed, so the document always keeps at least one block.
func (d *Document) remove(start, end int) string {
	start, end = d.clampRange(start, end)
	if start >= end {
		return ""
	}
	removed := d.slice(start, end, '\n')

	sb := d.blockIndex(start)
	eb := d.blockIndex(end)
	sOff := start - d.positions[sb]
	eOff := end - d.positions[eb]

	merged := append([]rune{}, d.blocks[sb][:sOff]...)
	merged = append(merged, d.blocks[eb][eOff:]...)

	blocks := make([][]rune, 0, len(d.blocks)-(eb-sb))
	blocks = append(blocks, d.blocks[:sb]...)
	blocks = append(blocks, merged)
	blocks = append(blocks, d.blocks[eb+1:]...)
	d.blocks = blocks
	d.dirty = true

	d.record(Edit{Position: start, Removed: removed}, logEntry{pos: start, removed: end - start})
	return removed
}

func (d *Document) record(e Edit, entry logEntry) {
	d.log = append(d.log, entry)
	if d.maxLog > 0 && len(d.log) > d.maxLog {
		drop := len(d.log) - d.maxLog
		d.log = append(d.log[:0:0], d.log[drop:]...)
		d.logBase += drop
	}
	d.pending = append(d.pending, e)
	if d.depth == 0 {
		d.commit()
	}
}

// logHead returns the sequence number of the next edit.
func (d *Document) logHead() int {
	return d.logBase + len(d.log)
}

// CheckPosition returns ErrPositionOutOfRange if pos is not addressable.
func (d *Document) CheckPosition(pos int) error {
	if pos < 0 || pos >= d.CharacterCount() {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrPositionOutOfRange, pos, d.CharacterCount())
	}
	return nil
}
