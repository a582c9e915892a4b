package keccak

import "errors"

var (
	// ErrInvalidBitValue is returned when a bit array holds a value other
	// than 0 or 1.
	ErrInvalidBitValue = errors.New("keccak: bit arrays may contain only 0 and 1")

	// ErrInvalidBinaryString is returned when a binary string holds a
	// character other than '0' or '1'.
	ErrInvalidBinaryString = errors.New("keccak: binary strings may contain only '0' and '1'")
)
