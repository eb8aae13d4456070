package vim

import (
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/dshills/keymark/internal/editkit"
	"github.com/dshills/keymark/internal/engine/document"
)

// Executor runs commands against a cursor and keeps the mode and the
// unnamed register between them.
type Executor struct {
	// Mode is the current input mode.
	Mode Mode

	// Indentation is the text one indent level adds.
	Indentation string

	// Register holds the text the last delete, change or yank took.
	Register string
}

// NewExecutor creates an executor in normal mode.
func NewExecutor(indentation string) *Executor {
	return &Executor{Mode: ModeNormal, Indentation: indentation}
}

// Execute parses keys and applies them at c. It returns false when the
// command was valid but found nothing to act on, such as a missing f target.
func (e *Executor) Execute(c *document.Cursor, keys string) (bool, error) {
	cmd, err := ParseCommand(keys)
	if err != nil {
		return false, err
	}
	log.Debug().Str("keys", keys).Str("mode", e.Mode.String()).Msg("vim command")
	return e.Run(c, cmd), nil
}

// Run applies a parsed command at c.
func (e *Executor) Run(c *document.Cursor, cmd Command) bool {
	switch cmd.Kind {
	case KindMode:
		if cmd.Mode == ModeNormal {
			c.ClearSelection()
		}
		e.Mode = cmd.Mode
		return true

	case KindMotion:
		mode := document.MoveAnchor
		if cmd.Operator != nil || e.Mode.IsVisual() {
			mode = document.KeepAnchor
		}
		if cmd.Motion.NeedsTarget {
			if !editkit.FindTargetWithinBlock(c, mode, cmd.Target, cmd.Motion.Forward,
				cmd.Motion.Inclusive, cmd.RepeatCount()) {
				return false
			}
		} else {
			editkit.MoveCursorFirstNonSpace(c, mode)
		}
		if cmd.Operator != nil {
			e.apply(c, cmd.Operator)
		}
		return true

	case KindTextObject:
		obj := cmd.TextObject
		if !editkit.SelectPairTargetAround(c, obj.Opening, obj.Closing, !cmd.Inner,
			obj.CrossBlock, cmd.RepeatCount()) {
			return false
		}
		if cmd.Operator == nil {
			e.Mode = ModeVisual
			return true
		}
		e.apply(c, cmd.Operator)
		return true

	case KindLinewise:
		e.applyLinewise(c, cmd.Operator, cmd.RepeatCount())
		return true
	}
	return false
}

// apply runs op on the cursor's selection.
func (e *Executor) apply(c *document.Cursor, op *Operator) {
	switch op.Key {
	case 'd', 'c', 'y':
		e.Register = editkit.SelectedText(c)
	}

	if !op.ChangesText {
		c.SetPosition(c.SelectionStart(), document.MoveAnchor)
		e.Mode = ModeNormal
		return
	}

	switch op.Key {
	case 'd', 'c':
		c.RemoveSelectedText()
	case '>':
		editkit.IndentSelectedBlocks(c, e.Indentation, editkit.ShiftRight)
		c.ClearSelection()
	case '<':
		editkit.IndentSelectedBlocks(c, e.Indentation, editkit.ShiftLeft)
		c.ClearSelection()
	}

	if op.EntersInsert {
		e.Mode = ModeInsert
	} else {
		e.Mode = ModeNormal
	}
}

// applyLinewise runs op on count blocks starting at the cursor's block.
func (e *Executor) applyLinewise(c *document.Cursor, op *Operator, count int) {
	doc := c.Document()
	first := c.Block().Number()
	count = min(count, doc.BlockCount()-first)

	c.BeginEditBlock()
	defer c.EndEditBlock()

	switch op.Key {
	case 'd':
		var sb strings.Builder
		for i := 0; i < count; i++ {
			sb.WriteString(editkit.RemoveBlock(c))
		}
		e.Register = sb.String()

	case 'y':
		e.Register = blocksText(c.Block(), count)

	case 'c':
		e.Register = blocksText(c.Block(), count)
		// Keep the first block's indentation.
		editkit.MoveCursorFirstNonSpace(c, document.MoveAnchor)
		for i := 1; i < count; i++ {
			c.MovePosition(document.NextBlock, document.KeepAnchor)
		}
		c.MovePosition(document.EndOfBlock, document.KeepAnchor)
		c.RemoveSelectedText()
		e.Mode = ModeInsert
		return

	case '>', '<':
		shift := editkit.ShiftRight
		if op.Key == '<' {
			shift = editkit.ShiftLeft
		}
		selectBlocks(c, count)
		editkit.IndentSelectedBlocks(c, e.Indentation, shift)
		c.SetPosition(c.SelectionStart(), document.MoveAnchor)
		editkit.MoveCursorFirstNonSpace(c, document.MoveAnchor)
	}
	e.Mode = ModeNormal
}

// selectBlocks selects the text of count blocks starting at the cursor's.
func selectBlocks(c *document.Cursor, count int) {
	c.MovePosition(document.StartOfBlock, document.MoveAnchor)
	for i := 1; i < count; i++ {
		c.MovePosition(document.NextBlock, document.KeepAnchor)
	}
	c.MovePosition(document.EndOfBlock, document.KeepAnchor)
}

// blocksText returns the text of count blocks from b, each ending in "\n".
func blocksText(b document.Block, count int) string {
	var sb strings.Builder
	for i := 0; i < count && b.IsValid(); b, i = b.Next(), i+1 {
		sb.WriteString(b.Text())
		sb.WriteByte('\n')
	}
	return sb.String()
}
