package vim

// Operator acts on the range a motion or text object selects.
type Operator struct {
	// Name is the operator identifier (e.g., "delete", "change", "yank").
	Name string

	// Key is the key that triggers the operator.
	Key rune

	// ChangesText indicates if this operator modifies the document.
	ChangesText bool

	// EntersInsert indicates if this operator enters insert mode after.
	EntersInsert bool
}

// Supported operators.
var (
	OpDelete = Operator{
		Name:        "delete",
		Key:         'd',
		ChangesText: true,
	}

	OpChange = Operator{
		Name:         "change",
		Key:          'c',
		ChangesText:  true,
		EntersInsert: true,
	}

	OpYank = Operator{
		Name: "yank",
		Key:  'y',
	}

	OpIndentRight = Operator{
		Name:        "indentRight",
		Key:         '>',
		ChangesText: true,
	}

	OpIndentLeft = Operator{
		Name:        "indentLeft",
		Key:         '<',
		ChangesText: true,
	}
)

var operators = map[rune]*Operator{
	'd': &OpDelete,
	'c': &OpChange,
	'y': &OpYank,
	'>': &OpIndentRight,
	'<': &OpIndentLeft,
}

// GetOperator returns the operator for key, or nil.
func GetOperator(key rune) *Operator {
	return operators[key]
}
