package document

import "errors"

// Errors returned by document operations.
var (
	// ErrPositionOutOfRange indicates a position outside [0, CharacterCount()).
	ErrPositionOutOfRange = errors.New("position out of range")

	// ErrNoTransaction indicates EndEdit was called without a matching BeginEdit.
	ErrNoTransaction = errors.New("no open edit transaction")
)
