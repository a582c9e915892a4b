package envelope

import "errors"

var (
	// ErrUnsupportedAlgorithm is returned for algorithm names or values
	// outside the supported set.
	ErrUnsupportedAlgorithm = errors.New("envelope: unsupported algorithm")

	// ErrInvalidEnvelope is returned when an envelope's fields are missing
	// or malformed.
	ErrInvalidEnvelope = errors.New("envelope: invalid envelope")

	// ErrInvalidKeySize is returned when a key is not 32 bytes.
	ErrInvalidKeySize = errors.New("envelope: invalid key size (must be 32 bytes)")

	// ErrAuthenticationFailed is returned when an envelope fails tag
	// verification.
	ErrAuthenticationFailed = errors.New("envelope: message authentication failed")
)
