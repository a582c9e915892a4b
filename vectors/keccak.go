package vectors

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/june-in-exile/will-sub000/bitconv"
	"github.com/june-in-exile/will-sub000/keccak"
)

// KeccakBitVector is one bit-granular digest case. Bits carries the
// message as a string of '0' and '1' characters, the only encoding that
// stays faithful for lengths that are not a multiple of eight; Digest is
// the 256 digest bits packed LSB-first into 32 hex-encoded bytes, so
// byte-aligned cases compare directly against the byte-level digest.
type KeccakBitVector struct {
	Name   string `json:"name"`
	Bits   string `json:"bits"`
	Digest string `json:"digest"`
}

// GenerateKeccakBits hashes the given bit message with the engine and
// returns the finished case. Every value in bits must be 0 or 1.
func GenerateKeccakBits(name string, bits []byte) (*KeccakBitVector, error) {
	digestBits, err := keccak.SumBits(bits)
	if err != nil {
		return nil, fmt.Errorf("vectors: generate %s: %w", name, err)
	}
	digest, err := bitconv.BitsToBytes(digestBits)
	if err != nil {
		return nil, fmt.Errorf("vectors: generate %s: %w", name, err)
	}

	var sb strings.Builder
	sb.Grow(len(bits))
	for _, b := range bits {
		sb.WriteByte('0' + b)
	}
	return &KeccakBitVector{
		Name:   name,
		Bits:   sb.String(),
		Digest: hex.EncodeToString(digest),
	}, nil
}

// parseBits converts a '0'/'1' string into a bit slice.
func parseBits(vector, s string) ([]byte, error) {
	bits := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0':
			bits[i] = 0
		case '1':
			bits[i] = 1
		default:
			return nil, fmt.Errorf("%w: %s: bit string has %q at index %d",
				ErrMalformedVector, vector, s[i], i)
		}
	}
	return bits, nil
}

func (v *KeccakBitVector) decode() ([]byte, []byte, error) {
	bits, err := parseBits(v.Name, v.Bits)
	if err != nil {
		return nil, nil, err
	}
	digest, err := decodeField(v.Name, "digest", v.Digest)
	if err != nil {
		return nil, nil, err
	}
	if len(digest) != keccak.Size {
		return nil, nil, fmt.Errorf("%w: %s: digest length %d", ErrMalformedVector, v.Name, len(digest))
	}
	return bits, digest, nil
}

// Verify re-hashes the bit message and compares against the recorded
// digest.
func (v *KeccakBitVector) Verify() error {
	bits, digest, err := v.decode()
	if err != nil {
		return err
	}

	digestBits, err := keccak.SumBits(bits)
	if err != nil {
		return fmt.Errorf("vectors: verify %s: %w", v.Name, err)
	}
	packed, err := bitconv.BitsToBytes(digestBits)
	if err != nil {
		return fmt.Errorf("vectors: verify %s: %w", v.Name, err)
	}
	if hex.EncodeToString(packed) != hex.EncodeToString(digest) {
		return fmt.Errorf("%w: %s: digest", ErrMismatch, v.Name)
	}
	return nil
}

// LoadKeccakBits reads a Keccak bit suite from path, decoding every
// entry up front.
func LoadKeccakBits(path string) ([]KeccakBitVector, error) {
	var suite []KeccakBitVector
	if err := readSuite(path, &suite); err != nil {
		return nil, err
	}
	for i := range suite {
		if _, _, err := suite[i].decode(); err != nil {
			return nil, err
		}
	}
	return suite, nil
}

// WriteKeccakBits writes a Keccak bit suite to path as indented JSON.
func WriteKeccakBits(path string, suite []KeccakBitVector) error {
	return writeSuite(path, suite)
}
