package keyring

import "errors"

var (
	// ErrNilPrivateKey is returned when a required private key is nil.
	ErrNilPrivateKey = errors.New("keyring: private key is nil")

	// ErrNilPublicKey is returned when a required public key is nil.
	ErrNilPublicKey = errors.New("keyring: public key is nil")

	// ErrInvalidPrivateKey is returned for malformed raw key material.
	ErrInvalidPrivateKey = errors.New("keyring: invalid private key")

	// ErrInvalidAddress is returned for malformed account addresses.
	ErrInvalidAddress = errors.New("keyring: invalid address")

	// ErrInvalidEntropy is returned for unsupported mnemonic entropy sizes.
	ErrInvalidEntropy = errors.New("keyring: entropy must be 128 or 256 bits")

	// ErrInvalidMnemonic is returned when a mnemonic fails BIP39 validation.
	ErrInvalidMnemonic = errors.New("keyring: invalid mnemonic")

	// ErrInvalidSeed is returned when a seed is empty or malformed.
	ErrInvalidSeed = errors.New("keyring: invalid seed")

	// ErrDerivationFailed is returned when BIP32 key derivation fails.
	ErrDerivationFailed = errors.New("keyring: key derivation failed")

	// ErrUnknownRole is returned for roles outside the will workflow.
	ErrUnknownRole = errors.New("keyring: unknown role")

	// ErrDecryptionFailed is returned when a stored key cannot be opened,
	// typically because the password is wrong.
	ErrDecryptionFailed = errors.New("keyring: key decryption failed")

	// ErrChecksumMismatch is returned when a decrypted scalar fails its
	// integrity checksum.
	ErrChecksumMismatch = errors.New("keyring: key checksum mismatch")

	// ErrKeyAgreementFailed is returned when estate key derivation fails.
	ErrKeyAgreementFailed = errors.New("keyring: estate key agreement failed")
)
