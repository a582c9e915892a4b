package keyring

import (
	"bytes"
	"crypto/rand"
	"crypto/sha256"
	"fmt"

	ec "github.com/bsv-blockchain/go-sdk/primitives/ec"
	"golang.org/x/crypto/argon2"

	"github.com/june-in-exile/will-sub000/envelope"
)

const (
	// Argon2id parameters for the at-rest file key.
	Argon2Time        = 3
	Argon2Memory      = 64 * 1024 // 64 MB
	Argon2Parallelism = 4
	Argon2KeyLen      = 32

	// At-rest format sizes.
	SaltLen     = 16
	ChecksumLen = 4
)

// EncryptKey seals a private key under a password for storage.
//
// Output format: salt(16B) || envelope JSON. The envelope key is
// Argon2id(password, salt) and the sealed payload is scalar(32B) ||
// SHA256(scalar)[:4]; the checksum confirms correct decryption.
func EncryptKey(priv *ec.PrivateKey, password string) ([]byte, error) {
	if priv == nil {
		return nil, ErrNilPrivateKey
	}

	salt := make([]byte, SaltLen)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("keyring: failed to generate salt: %w", err)
	}

	fileKey := argon2.IDKey(
		[]byte(password),
		salt,
		Argon2Time,
		Argon2Memory,
		Argon2Parallelism,
		Argon2KeyLen,
	)

	scalar := make([]byte, ScalarLen)
	priv.D.FillBytes(scalar)
	sum := sha256.Sum256(scalar)

	payload := make([]byte, 0, ScalarLen+ChecksumLen)
	payload = append(payload, scalar...)
	payload = append(payload, sum[:ChecksumLen]...)

	env, err := envelope.Seal(payload, fileKey, envelope.AES256GCM)
	if err != nil {
		return nil, fmt.Errorf("keyring: key encryption failed: %w", err)
	}

	envJSON, err := envelope.Marshal(env)
	if err != nil {
		return nil, fmt.Errorf("keyring: key encryption failed: %w", err)
	}

	out := make([]byte, 0, SaltLen+len(envJSON))
	out = append(out, salt...)
	out = append(out, envJSON...)
	return out, nil
}

// DecryptKey recovers a private key sealed by EncryptKey. A wrong password
// surfaces as ErrDecryptionFailed; a checksum mismatch after a successful
// open means the stored key material is corrupted.
func DecryptKey(encrypted []byte, password string) (*ec.PrivateKey, error) {
	if len(encrypted) <= SaltLen {
		return nil, ErrDecryptionFailed
	}

	salt := encrypted[:SaltLen]
	fileKey := argon2.IDKey(
		[]byte(password),
		salt,
		Argon2Time,
		Argon2Memory,
		Argon2Parallelism,
		Argon2KeyLen,
	)

	env, err := envelope.Unmarshal(encrypted[SaltLen:])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecryptionFailed, err)
	}

	payload, err := envelope.Open(env, fileKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecryptionFailed, err)
	}
	if len(payload) != ScalarLen+ChecksumLen {
		return nil, ErrDecryptionFailed
	}

	scalar := payload[:ScalarLen]
	sum := sha256.Sum256(scalar)
	if !bytes.Equal(payload[ScalarLen:], sum[:ChecksumLen]) {
		return nil, ErrChecksumMismatch
	}

	priv, _ := ec.PrivateKeyFromBytes(scalar)
	return priv, nil
}
