package permit

import "errors"

var (
	// ErrInvalidABIValue is returned when a value cannot occupy one ABI
	// slot.
	ErrInvalidABIValue = errors.New("permit: invalid ABI value")

	// ErrInvalidDigest is returned when a signing digest is not 32 bytes.
	ErrInvalidDigest = errors.New("permit: invalid digest")

	// ErrNilPrivateKey is returned when a required private key is nil.
	ErrNilPrivateKey = errors.New("permit: private key is nil")
)
