package lua

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/keymark/internal/editkit"
	"github.com/dshills/keymark/internal/engine/document"
	"github.com/dshills/keymark/internal/input/vim"
)

// Session is the document and cursor a script edits.
type Session struct {
	Doc    *document.Document
	Cursor *document.Cursor

	// View is used by scroll; it may be nil.
	View editkit.View

	// Indentation is the text one indent level adds.
	Indentation string

	// AutoIndent and AutoList shape the blocks newline creates.
	AutoIndent bool
	AutoList   bool

	// Vim runs normal-mode key sequences; it may be nil.
	Vim *vim.Executor
}

// EditModule implements the edit API module.
type EditModule struct {
	s *Session
}

// NewEditModule creates an edit module over s.
func NewEditModule(s *Session) *EditModule {
	return &EditModule{s: s}
}

// Name returns the module name.
func (m *EditModule) Name() string {
	return "edit"
}

// Register installs the module as a global table in state.
func (m *EditModule) Register(state *State) {
	state.RegisterModule(m.Name(), map[string]lua.LGFunction{
		"text":                     m.text,
		"position":                 m.position,
		"anchor":                   m.anchor,
		"set_position":             m.setPosition,
		"select":                   m.selectRange,
		"insert":                   m.insert,
		"block_count":              m.blockCount,
		"block_text":               m.blockText,
		"remove_block":             m.removeBlock,
		"newline":                  m.newline,
		"insert_block_with_indent": m.insertBlockWithIndent,
		"insert_list_mark":         m.insertListMark,
		"indent_as_previous":       m.indentAsPrevious,
		"indent_selection":         m.indentSelection,
		"delete_indent_and_mark":   m.deleteIndentAndMark,
		"first_non_space":          m.firstNonSpace,
		"find":                     m.find,
		"find_any":                 m.findAny,
		"select_pair":              m.selectPair,
		"text_object":              m.textObject,
		"motion":                   m.motion,
		"normal":                   m.normal,
		"mode":                     m.mode,
		"selected_text":            m.selectedText,
		"selected_block_count":     m.selectedBlockCount,
		"is_list":                  m.isList,
		"is_space_to_start":        m.isSpaceToStart,
		"strip_objects":            m.stripObjects,
		"scroll":                   m.scroll,
	})
}

// text() -> string
func (m *EditModule) text(L *lua.LState) int {
	L.Push(lua.LString(m.s.Doc.Text()))
	return 1
}

// position() -> number
func (m *EditModule) position(L *lua.LState) int {
	L.Push(lua.LNumber(m.s.Cursor.Position()))
	return 1
}

// anchor() -> number
func (m *EditModule) anchor(L *lua.LState) int {
	L.Push(lua.LNumber(m.s.Cursor.Anchor()))
	return 1
}

// set_position(pos [, keep])
// Moves the caret; keep extends the selection instead of collapsing it.
func (m *EditModule) setPosition(L *lua.LState) int {
	pos := m.checkPosition(L, 1)
	m.s.Cursor.SetPosition(pos, moveMode(L, 2))
	return 0
}

// select(anchor, pos)
func (m *EditModule) selectRange(L *lua.LState) int {
	anchor := m.checkPosition(L, 1)
	pos := m.checkPosition(L, 2)
	m.s.Cursor.SetPosition(anchor, document.MoveAnchor)
	m.s.Cursor.SetPosition(pos, document.KeepAnchor)
	return 0
}

// insert(text)
// Replaces the selection, if any, with text.
func (m *EditModule) insert(L *lua.LState) int {
	m.s.Cursor.InsertText(L.CheckString(1))
	return 0
}

// block_count() -> number
func (m *EditModule) blockCount(L *lua.LState) int {
	L.Push(lua.LNumber(m.s.Doc.BlockCount()))
	return 1
}

// block_text(n) -> string
func (m *EditModule) blockText(L *lua.LState) int {
	b := m.checkBlock(L, 1)
	L.Push(lua.LString(b.Text()))
	return 1
}

// remove_block() -> string
// Removes the cursor's block and returns its text plus "\n".
func (m *EditModule) removeBlock(L *lua.LState) int {
	L.Push(lua.LString(editkit.RemoveBlock(m.s.Cursor)))
	return 1
}

// newline()
// Splits the block like the Enter key, honouring AutoIndent and AutoList.
func (m *EditModule) newline(L *lua.LState) int {
	editkit.InsertNewLine(m.s.Cursor, m.s.AutoIndent, m.s.AutoList)
	return 0
}

// insert_block_with_indent() -> bool
func (m *EditModule) insertBlockWithIndent(L *lua.LState) int {
	L.Push(lua.LBool(editkit.InsertBlockWithIndent(m.s.Cursor)))
	return 1
}

// insert_list_mark() -> bool
func (m *EditModule) insertListMark(L *lua.LState) int {
	L.Push(lua.LBool(editkit.InsertListMarkAsPrevious(m.s.Cursor)))
	return 1
}

// indent_as_previous() -> bool
func (m *EditModule) indentAsPrevious(L *lua.LState) int {
	L.Push(lua.LBool(editkit.IndentBlockAsPrevious(m.s.Cursor)))
	return 1
}

// indent_selection([unindent])
func (m *EditModule) indentSelection(L *lua.LState) int {
	shift := editkit.ShiftRight
	if L.OptBool(1, false) {
		shift = editkit.ShiftLeft
	}
	editkit.IndentSelectedBlocks(m.s.Cursor, m.s.Indentation, shift)
	return 0
}

// delete_indent_and_mark()
func (m *EditModule) deleteIndentAndMark(L *lua.LState) int {
	editkit.DeleteIndentAndListMark(m.s.Cursor)
	return 0
}

// first_non_space([keep])
func (m *EditModule) firstNonSpace(L *lua.LState) int {
	editkit.MoveCursorFirstNonSpace(m.s.Cursor, moveMode(L, 1))
	return 0
}

// find(target, forward, inclusive, repeat [, keep]) -> bool
func (m *EditModule) find(L *lua.LState) int {
	target := checkRune(L, 1)
	forward := L.CheckBool(2)
	inclusive := L.CheckBool(3)
	repeat := L.CheckInt(4)
	ok := editkit.FindTargetWithinBlock(m.s.Cursor, moveMode(L, 5), target, forward, inclusive, repeat)
	L.Push(lua.LBool(ok))
	return 1
}

// find_any({targets}, forward, inclusive [, keep]) -> index | nil
// Returns the 1-based index of the matched target.
func (m *EditModule) findAny(L *lua.LState) int {
	tbl := L.CheckTable(1)
	forward := L.CheckBool(2)
	inclusive := L.CheckBool(3)

	var targets []rune
	for i := 1; i <= tbl.Len(); i++ {
		s, ok := tbl.RawGetInt(i).(lua.LString)
		if !ok || len([]rune(string(s))) != 1 {
			L.ArgError(1, "targets must be single characters")
			return 0
		}
		targets = append(targets, []rune(string(s))[0])
	}

	idx := editkit.FindTargetsWithinBlock(m.s.Cursor, moveMode(L, 4), targets, forward, inclusive)
	if idx < 0 {
		L.Push(lua.LNil)
		return 1
	}
	L.Push(lua.LNumber(idx + 1))
	return 1
}

// select_pair(opening, closing, inclusive, cross_block, repeat) -> bool
func (m *EditModule) selectPair(L *lua.LState) int {
	opening := checkRune(L, 1)
	closing := checkRune(L, 2)
	inclusive := L.CheckBool(3)
	crossBlock := L.CheckBool(4)
	repeat := L.CheckInt(5)
	ok := editkit.SelectPairTargetAround(m.s.Cursor, opening, closing, inclusive, crossBlock, repeat)
	L.Push(lua.LBool(ok))
	return 1
}

// text_object(keys, repeat) -> bool
// keys is a vim text object such as "i(" or 'a"'.
func (m *EditModule) textObject(L *lua.LState) int {
	obj, inner, err := vim.ParseTextObject(L.CheckString(1))
	if err != nil {
		L.ArgError(1, err.Error())
		return 0
	}
	repeat := L.OptInt(2, 1)
	ok := editkit.SelectPairTargetAround(m.s.Cursor, obj.Opening, obj.Closing, !inner, obj.CrossBlock, repeat)
	L.Push(lua.LBool(ok))
	return 1
}

// motion(key, target, repeat [, keep]) -> bool
// key is one of f, F, t, T.
func (m *EditModule) motion(L *lua.LState) int {
	key := checkRune(L, 1)
	if !vim.IsCharSearchMotion(key) {
		L.ArgError(1, "expected one of f, F, t, T")
		return 0
	}
	mo := vim.GetMotion(key)
	target := checkRune(L, 2)
	repeat := L.OptInt(3, 1)
	ok := editkit.FindTargetWithinBlock(m.s.Cursor, moveMode(L, 4), target, mo.Forward, mo.Inclusive, repeat)
	L.Push(lua.LBool(ok))
	return 1
}

// normal(keys) -> bool
// Runs a vim normal-mode command such as "d2t," or "ci(".
func (m *EditModule) normal(L *lua.LState) int {
	if m.s.Vim == nil {
		L.RaiseError("normal: vim commands are not enabled")
		return 0
	}
	ok, err := m.s.Vim.Execute(m.s.Cursor, L.CheckString(1))
	if err != nil {
		L.RaiseError("normal: %v", err)
		return 0
	}
	L.Push(lua.LBool(ok))
	return 1
}

// mode() -> string
func (m *EditModule) mode(L *lua.LState) int {
	mode := vim.ModeNormal
	if m.s.Vim != nil {
		mode = m.s.Vim.Mode
	}
	L.Push(lua.LString(mode.String()))
	return 1
}

// selected_text() -> string
func (m *EditModule) selectedText(L *lua.LState) int {
	L.Push(lua.LString(editkit.SelectedText(m.s.Cursor)))
	return 1
}

// selected_block_count() -> number
func (m *EditModule) selectedBlockCount(L *lua.LState) int {
	L.Push(lua.LNumber(editkit.SelectedBlockCount(m.s.Cursor)))
	return 1
}

// is_list(n) -> bool, number
// The number is the item's ordinal, or -1 for bullets.
func (m *EditModule) isList(L *lua.LState) int {
	seq, ok := editkit.IsListBlock(m.checkBlock(L, 1))
	L.Push(lua.LBool(ok))
	L.Push(lua.LNumber(seq))
	return 2
}

// is_space_to_start() -> bool
// Reports whether only whitespace precedes the caret in its block.
func (m *EditModule) isSpaceToStart(L *lua.LState) int {
	c := m.s.Cursor
	L.Push(lua.LBool(editkit.IsSpaceToBlockStart(c.Block(), c.PositionInBlock())))
	return 1
}

// strip_objects(text) -> string
func (m *EditModule) stripObjects(L *lua.LState) int {
	L.Push(lua.LString(editkit.RemoveObjectReplacementCharacter(L.CheckString(1))))
	return 1
}

// scroll(block, dest)
// dest is "top", "center" or "bottom". The cursor moves to the block.
func (m *EditModule) scroll(L *lua.LState) int {
	if m.s.View == nil {
		L.RaiseError("scroll: no view available")
		return 0
	}
	block := L.CheckInt(1)
	var dest editkit.ScrollDest
	switch name := L.CheckString(2); name {
	case "top":
		dest = editkit.ScrollTop
	case "center":
		dest = editkit.ScrollCenter
	case "bottom":
		dest = editkit.ScrollBottom
	default:
		L.ArgError(2, "expected top, center or bottom")
		return 0
	}

	m.s.View.SetTextCursor(m.s.Cursor)
	editkit.ScrollBlockInPage(m.s.View, block, dest)
	m.s.Cursor.SetPosition(m.s.View.TextCursor().Position(), document.MoveAnchor)
	return 0
}

func (m *EditModule) checkPosition(L *lua.LState, n int) int {
	pos := L.CheckInt(n)
	if err := m.s.Doc.CheckPosition(pos); err != nil {
		L.ArgError(n, err.Error())
	}
	return pos
}

func (m *EditModule) checkBlock(L *lua.LState, n int) document.Block {
	num := L.CheckInt(n)
	if num < 0 || num >= m.s.Doc.BlockCount() {
		L.ArgError(n, "block number out of range")
	}
	return m.s.Doc.FindBlockByNumber(num)
}

func checkRune(L *lua.LState, n int) rune {
	s := []rune(L.CheckString(n))
	if len(s) != 1 {
		L.ArgError(n, "expected a single character")
	}
	return s[0]
}

func moveMode(L *lua.LState, n int) document.MoveMode {
	if L.OptBool(n, false) {
		return document.KeepAnchor
	}
	return document.MoveAnchor
}
