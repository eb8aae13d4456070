package vim

// TextObject is a pair of delimiters that i/a text objects select.
type TextObject struct {
	// Name is the text object identifier.
	Name string

	// Opening and Closing are the delimiters. Quotes use the same rune
	// for both.
	Opening rune
	Closing rune

	// CrossBlock allows the pair to span blocks.
	CrossBlock bool
}

// TextObjectPrefix distinguishes inner (i) from around (a) objects.
type TextObjectPrefix rune

const (
	PrefixInner  TextObjectPrefix = 'i'
	PrefixAround TextObjectPrefix = 'a'
)

// Supported text objects.
var (
	TextObjParen = TextObject{
		Name:       "paren",
		Opening:    '(',
		Closing:    ')',
		CrossBlock: true,
	}

	TextObjBracket = TextObject{
		Name:       "bracket",
		Opening:    '[',
		Closing:    ']',
		CrossBlock: true,
	}

	TextObjBrace = TextObject{
		Name:       "brace",
		Opening:    '{',
		Closing:    '}',
		CrossBlock: true,
	}

	TextObjAngle = TextObject{
		Name:       "angle",
		Opening:    '<',
		Closing:    '>',
		CrossBlock: true,
	}

	TextObjDoubleQuote = TextObject{
		Name:    "doubleQuote",
		Opening: '"',
		Closing: '"',
	}

	TextObjSingleQuote = TextObject{
		Name:    "singleQuote",
		Opening: '\'',
		Closing: '\'',
	}

	TextObjBackQuote = TextObject{
		Name:    "backQuote",
		Opening: '`',
		Closing: '`',
	}
)

var textObjects = map[rune]*TextObject{
	'(':  &TextObjParen,
	')':  &TextObjParen,
	'b':  &TextObjParen,
	'[':  &TextObjBracket,
	']':  &TextObjBracket,
	'{':  &TextObjBrace,
	'}':  &TextObjBrace,
	'B':  &TextObjBrace,
	'<':  &TextObjAngle,
	'>':  &TextObjAngle,
	'"':  &TextObjDoubleQuote,
	'\'': &TextObjSingleQuote,
	'`':  &TextObjBackQuote,
}

// GetTextObject returns the text object for key, or nil.
func GetTextObject(key rune) *TextObject {
	return textObjects[key]
}

// ParseTextObject parses a two-key sequence such as "i(" or `a"`.
func ParseTextObject(keys string) (obj *TextObject, inner bool, err error) {
	runes := []rune(keys)
	if len(runes) != 2 {
		return nil, false, ErrUnknownTextObject
	}
	switch TextObjectPrefix(runes[0]) {
	case PrefixInner:
		inner = true
	case PrefixAround:
	default:
		return nil, false, ErrUnknownTextObject
	}
	if obj = GetTextObject(runes[1]); obj == nil {
		return nil, false, ErrUnknownTextObject
	}
	return obj, inner, nil
}
