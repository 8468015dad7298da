package domain

import "errors"

// Validation failures are deterministic functions of the input and are
// reported before any computation begins.
var (
	// ErrInvalidItemValue indicates a negative monetary value on an item.
	ErrInvalidItemValue = errors.New("invalid item value")

	// ErrUnknownJurisdiction indicates a jurisdiction code absent from the
	// regime table. There is deliberately no default regime.
	ErrUnknownJurisdiction = errors.New("unknown jurisdiction")

	// ErrInconsistentOwnership indicates a separate-property item marked as
	// jointly owned, or a missing owner on a separate item.
	ErrInconsistentOwnership = errors.New("inconsistent ownership")
)
