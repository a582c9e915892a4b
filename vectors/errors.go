package vectors

import "errors"

var (
	// ErrMalformedVector is returned when a suite entry fails to decode:
	// bad hex, a bit string with characters other than '0' and '1', or
	// recorded fields whose lengths cannot belong to a valid case.
	ErrMalformedVector = errors.New("vectors: malformed vector")

	// ErrMismatch is returned when the engine's output no longer matches
	// a recorded vector.
	ErrMismatch = errors.New("vectors: engine output does not match recorded value")
)
