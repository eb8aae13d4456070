package vim

// Motion is a cursor movement within the current block.
type Motion struct {
	// Name is the motion identifier.
	Name string

	// Key is the key that triggers the motion.
	Key rune

	// NeedsTarget indicates that a character argument follows the key.
	NeedsTarget bool

	// Forward and Inclusive configure the character search.
	Forward   bool
	Inclusive bool
}

// Supported motions.
var (
	MotionFindChar = Motion{
		Name:        "findChar",
		Key:         'f',
		NeedsTarget: true,
		Forward:     true,
		Inclusive:   true,
	}

	MotionFindCharBack = Motion{
		Name:        "findCharBack",
		Key:         'F',
		NeedsTarget: true,
		Inclusive:   true,
	}

	MotionTillChar = Motion{
		Name:        "tillChar",
		Key:         't',
		NeedsTarget: true,
		Forward:     true,
	}

	MotionTillCharBack = Motion{
		Name:        "tillCharBack",
		Key:         'T',
		NeedsTarget: true,
	}

	MotionFirstNonBlank = Motion{
		Name: "firstNonBlank",
		Key:  '^',
	}
)

var motions = map[rune]*Motion{
	'f': &MotionFindChar,
	'F': &MotionFindCharBack,
	't': &MotionTillChar,
	'T': &MotionTillCharBack,
	'^': &MotionFirstNonBlank,
}

// GetMotion returns the motion for key, or nil.
func GetMotion(key rune) *Motion {
	return motions[key]
}

// IsCharSearchMotion returns true if the motion requires a character argument.
func IsCharSearchMotion(key rune) bool {
	m := motions[key]
	return m != nil && m.NeedsTarget
}
