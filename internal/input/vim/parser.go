package vim

import (
	"errors"
	"fmt"
)

var (
	// ErrIncomplete is returned for a key sequence that needs more keys.
	ErrIncomplete = errors.New("vim: incomplete command")

	// ErrUnknownKey is returned for a key the grammar does not accept.
	ErrUnknownKey = errors.New("vim: unknown key")

	// ErrUnknownTextObject is returned for an unsupported text object.
	ErrUnknownTextObject = errors.New("vim: unknown text object")
)

// CommandKind identifies what a parsed command does.
type CommandKind uint8

const (
	// KindMotion moves the cursor, or selects for an operator.
	KindMotion CommandKind = iota
	// KindTextObject selects a delimited region.
	KindTextObject
	// KindLinewise applies an operator to whole blocks (dd, >>).
	KindLinewise
	// KindMode switches the input mode.
	KindMode
)

// Command is a parsed normal-mode command.
type Command struct {
	Kind CommandKind

	// Count is the repeat count, 0 when none was given.
	Count int

	// Operator is nil for plain motions and text objects.
	Operator *Operator

	Motion *Motion

	// Target is the character argument of f/F/t/T.
	Target rune

	TextObject *TextObject

	// Inner is set for i-prefixed text objects.
	Inner bool

	// Mode is the mode a KindMode command enters.
	Mode Mode
}

// RepeatCount returns the effective count (1 if no count was given).
func (c Command) RepeatCount() int {
	return max(c.Count, 1)
}

// ParseCommand parses a complete key sequence.
func ParseCommand(keys string) (Command, error) {
	runes := []rune(keys)
	var cmd Command

	count, i := parseCount(runes)
	if i == len(runes) {
		return cmd, ErrIncomplete
	}
	r := runes[i]

	if m, ok := modeKeys[r]; ok && i == len(runes)-1 {
		cmd.Kind = KindMode
		cmd.Mode = m
		return cmd, trailing(runes, i+1)
	}

	if op := GetOperator(r); op != nil {
		cmd.Operator = op
		i++
		var count2, n int
		count2, n = parseCount(runes[i:])
		i += n
		if count > 0 || count2 > 0 {
			count = combineCounts(count, count2)
		}
		if i == len(runes) {
			return cmd, ErrIncomplete
		}
		r = runes[i]

		if r == op.Key {
			cmd.Kind = KindLinewise
			cmd.Count = count
			return cmd, trailing(runes, i+1)
		}
	}
	cmd.Count = count

	if m := GetMotion(r); m != nil {
		cmd.Kind = KindMotion
		cmd.Motion = m
		i++
		if m.NeedsTarget {
			if i == len(runes) {
				return cmd, ErrIncomplete
			}
			cmd.Target = runes[i]
			i++
		}
		return cmd, trailing(runes, i)
	}

	if r == rune(PrefixInner) || r == rune(PrefixAround) {
		if i+1 == len(runes) {
			return cmd, ErrIncomplete
		}
		obj, inner, err := ParseTextObject(string(runes[i : i+2]))
		if err != nil {
			return cmd, fmt.Errorf("%w: %q", err, string(runes[i:i+2]))
		}
		cmd.Kind = KindTextObject
		cmd.TextObject = obj
		cmd.Inner = inner
		return cmd, trailing(runes, i+2)
	}

	return cmd, fmt.Errorf("%w: %q", ErrUnknownKey, r)
}

// trailing reports keys left over after a complete command.
func trailing(runes []rune, i int) error {
	if i < len(runes) {
		return fmt.Errorf("%w: %q", ErrUnknownKey, string(runes[i:]))
	}
	return nil
}
