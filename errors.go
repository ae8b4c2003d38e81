package algodft

import "errors"

// Sentinel errors returned by plan construction.
var (
	// ErrInvalidLength is returned when the transform size is not a power of
	// two of at least 2.
	ErrInvalidLength = errors.New("algodft: invalid transform length")
)
