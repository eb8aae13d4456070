package vim

// Mode is the editor's input mode.
type Mode uint8

const (
	ModeNormal Mode = iota
	ModeInsert
	ModeVisual
	ModeVisualLine
	ModeReplace
)

// String returns the name shown in the mode indicator.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "NORMAL"
	case ModeInsert:
		return "INSERT"
	case ModeVisual:
		return "VISUAL"
	case ModeVisualLine:
		return "VISUAL LINE"
	case ModeReplace:
		return "REPLACE"
	default:
		return "UNKNOWN"
	}
}

// IsVisual reports whether m extends a selection.
func (m Mode) IsVisual() bool {
	return m == ModeVisual || m == ModeVisualLine
}

// modeKeys maps mode switch keys to the mode they enter.
var modeKeys = map[rune]Mode{
	'i':    ModeInsert,
	'R':    ModeReplace,
	'v':    ModeVisual,
	'V':    ModeVisualLine,
	'\x1b': ModeNormal,
}
