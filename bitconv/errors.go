package bitconv

import "errors"

var (
	// ErrInvalidBit indicates a bit array element other than 0 or 1.
	ErrInvalidBit = errors.New("bitconv: bit value must be 0 or 1")

	// ErrBitCount indicates a bit array whose length is not a multiple of 8.
	ErrBitCount = errors.New("bitconv: bit count is not a multiple of 8")

	// ErrInvalidHex indicates malformed hex text.
	ErrInvalidHex = errors.New("bitconv: invalid hex text")

	// ErrInvalidBase64 indicates malformed base64 text.
	ErrInvalidBase64 = errors.New("bitconv: invalid base64 text")

	// ErrUnknownKind indicates a Message constructed without a valid kind tag.
	ErrUnknownKind = errors.New("bitconv: unknown message kind")
)
