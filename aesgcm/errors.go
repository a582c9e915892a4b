package aesgcm

import "errors"

var (
	// ErrInvalidKeySize is returned when a key is not 16, 24, or 32 bytes.
	ErrInvalidKeySize = errors.New("aesgcm: invalid key size (must be 16, 24, or 32 bytes)")

	// ErrInvalidBlockSize is returned when a block-level input is not
	// exactly one AES block.
	ErrInvalidBlockSize = errors.New("aesgcm: invalid block size (must be exactly 16 bytes)")

	// ErrInvalidTagSize is returned when an authentication tag is not
	// 16 bytes.
	ErrInvalidTagSize = errors.New("aesgcm: invalid tag size (must be 16 bytes)")

	// ErrAuthenticationFailed is returned when tag verification fails
	// during decryption.
	ErrAuthenticationFailed = errors.New("aesgcm: message authentication failed")
)
