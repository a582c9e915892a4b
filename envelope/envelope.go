// Package envelope wraps the cipher engines in the JSON container that the
// will workflow stores and exchanges. An envelope records which AEAD sealed
// it, the IV, the detached authentication tag, the ciphertext, and a
// sealing timestamp; every binary field travels as standard base64.
package envelope

import (
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/chacha20poly1305"

	"github.com/june-in-exile/will-sub000/aesgcm"
)

const (
	// KeyLen is the key length both supported AEADs use.
	KeyLen = 32

	// IVLen is the IV length written by Seal.
	IVLen = 12

	// TagLen is the length of the detached authentication tag.
	TagLen = 16
)

// Envelope is the stored form of a sealed payload.
type Envelope struct {
	Algorithm  Algorithm `json:"algorithm"`
	IV         []byte    `json:"iv"`
	AuthTag    []byte    `json:"authTag"`
	Ciphertext []byte    `json:"ciphertext"`
	Timestamp  string    `json:"timestamp"`
}

// Seal encrypts plaintext under key with a fresh random IV and returns the
// filled envelope. The timestamp records the sealing time in RFC 3339 UTC.
func Seal(plaintext, key []byte, alg Algorithm) (*Envelope, error) {
	if len(key) != KeyLen {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidKeySize, len(key), KeyLen)
	}

	iv := make([]byte, IVLen)
	if _, err := rand.Read(iv); err != nil {
		return nil, fmt.Errorf("envelope: random IV generation failed: %w", err)
	}

	var ciphertext, tag []byte
	switch alg {
	case AES256GCM:
		var err error
		ciphertext, tag, err = aesgcm.Encrypt(plaintext, key, iv, nil)
		if err != nil {
			return nil, fmt.Errorf("envelope: seal failed: %w", err)
		}
	case ChaCha20Poly1305:
		aead, err := chacha20poly1305.New(key)
		if err != nil {
			return nil, fmt.Errorf("envelope: seal failed: %w", err)
		}
		sealed := aead.Seal(nil, iv, plaintext, nil)
		ciphertext = sealed[:len(sealed)-TagLen]
		tag = sealed[len(sealed)-TagLen:]
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedAlgorithm, int(alg))
	}

	return &Envelope{
		Algorithm:  alg,
		IV:         iv,
		AuthTag:    tag,
		Ciphertext: ciphertext,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// Open decrypts env with key. Field shapes are validated before any
// cryptography runs; a tag mismatch returns ErrAuthenticationFailed and no
// plaintext.
func Open(env *Envelope, key []byte) ([]byte, error) {
	if env == nil {
		return nil, fmt.Errorf("%w: nil envelope", ErrInvalidEnvelope)
	}
	if len(key) != KeyLen {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidKeySize, len(key), KeyLen)
	}
	if len(env.IV) != IVLen {
		return nil, fmt.Errorf("%w: IV must be %d bytes, got %d", ErrInvalidEnvelope, IVLen, len(env.IV))
	}
	if len(env.AuthTag) != TagLen {
		return nil, fmt.Errorf("%w: auth tag must be %d bytes, got %d", ErrInvalidEnvelope, TagLen, len(env.AuthTag))
	}

	switch env.Algorithm {
	case AES256GCM:
		plaintext, err := aesgcm.Decrypt(env.Ciphertext, key, env.IV, nil, env.AuthTag)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrAuthenticationFailed, err)
		}
		return plaintext, nil
	case ChaCha20Poly1305:
		aead, err := chacha20poly1305.New(key)
		if err != nil {
			return nil, fmt.Errorf("envelope: open failed: %w", err)
		}
		sealed := append(append([]byte{}, env.Ciphertext...), env.AuthTag...)
		plaintext, err := aead.Open(nil, env.IV, sealed, nil)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrAuthenticationFailed, err)
		}
		if plaintext == nil {
			plaintext = []byte{}
		}
		return plaintext, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedAlgorithm, int(env.Algorithm))
	}
}

// Marshal encodes env as JSON.
func Marshal(env *Envelope) ([]byte, error) {
	if env == nil {
		return nil, fmt.Errorf("%w: nil envelope", ErrInvalidEnvelope)
	}
	data, err := json.Marshal(env)
	if err != nil {
		return nil, fmt.Errorf("envelope: marshal failed: %w", err)
	}
	return data, nil
}

// Unmarshal parses a stored envelope. Malformed JSON and malformed base64
// both report ErrInvalidEnvelope; an unknown algorithm name reports
// ErrUnsupportedAlgorithm.
func Unmarshal(data []byte) (*Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		if errors.Is(err, ErrUnsupportedAlgorithm) || errors.Is(err, ErrInvalidEnvelope) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidEnvelope, err)
	}
	return &env, nil
}
