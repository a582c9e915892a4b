package vectors

import (
	"bytes"
	"encoding/hex"
	"fmt"

	"github.com/june-in-exile/will-sub000/aesgcm"
)

// GCMVector is one authenticated-encryption case: inputs and expected
// outputs, all hex-encoded. Empty strings stand for empty inputs, so
// zero-length IVs, plaintexts, and AAD survive JSON unambiguously.
type GCMVector struct {
	Name       string `json:"name"`
	Key        string `json:"key"`
	IV         string `json:"iv"`
	AAD        string `json:"aad"`
	Plaintext  string `json:"plaintext"`
	Ciphertext string `json:"ciphertext"`
	Tag        string `json:"tag"`
}

// gcmCase holds a vector's fields decoded to bytes.
type gcmCase struct {
	key, iv, aad, plaintext, ciphertext, tag []byte
}

// GenerateGCM seals the given inputs with the engine and returns the
// finished case with its ciphertext and tag recorded.
func GenerateGCM(name string, key, iv, aad, plaintext []byte) (*GCMVector, error) {
	ciphertext, tag, err := aesgcm.Encrypt(plaintext, key, iv, aad)
	if err != nil {
		return nil, fmt.Errorf("vectors: generate %s: %w", name, err)
	}
	return &GCMVector{
		Name:       name,
		Key:        hex.EncodeToString(key),
		IV:         hex.EncodeToString(iv),
		AAD:        hex.EncodeToString(aad),
		Plaintext:  hex.EncodeToString(plaintext),
		Ciphertext: hex.EncodeToString(ciphertext),
		Tag:        hex.EncodeToString(tag),
	}, nil
}

// decode hex-decodes every field and checks the structural invariants a
// complete case must satisfy: ciphertext as long as plaintext, tag of
// the fixed GCM length.
func (v *GCMVector) decode() (*gcmCase, error) {
	c := &gcmCase{}
	for _, f := range []struct {
		name string
		src  string
		dst  *[]byte
	}{
		{"key", v.Key, &c.key},
		{"iv", v.IV, &c.iv},
		{"aad", v.AAD, &c.aad},
		{"plaintext", v.Plaintext, &c.plaintext},
		{"ciphertext", v.Ciphertext, &c.ciphertext},
		{"tag", v.Tag, &c.tag},
	} {
		b, err := decodeField(v.Name, f.name, f.src)
		if err != nil {
			return nil, err
		}
		*f.dst = b
	}
	if len(c.ciphertext) != len(c.plaintext) {
		return nil, fmt.Errorf("%w: %s: ciphertext length %d != plaintext length %d",
			ErrMalformedVector, v.Name, len(c.ciphertext), len(c.plaintext))
	}
	if len(c.tag) != aesgcm.TagSize {
		return nil, fmt.Errorf("%w: %s: tag length %d", ErrMalformedVector, v.Name, len(c.tag))
	}
	return c, nil
}

// Verify re-runs the engine over the vector's inputs and checks both
// directions: Encrypt must reproduce the recorded ciphertext and tag,
// and Decrypt under the recorded tag must return the plaintext.
func (v *GCMVector) Verify() error {
	c, err := v.decode()
	if err != nil {
		return err
	}

	ciphertext, tag, err := aesgcm.Encrypt(c.plaintext, c.key, c.iv, c.aad)
	if err != nil {
		return fmt.Errorf("vectors: verify %s: %w", v.Name, err)
	}
	if !bytes.Equal(ciphertext, c.ciphertext) {
		return fmt.Errorf("%w: %s: ciphertext", ErrMismatch, v.Name)
	}
	if !bytes.Equal(tag, c.tag) {
		return fmt.Errorf("%w: %s: tag", ErrMismatch, v.Name)
	}

	plaintext, err := aesgcm.Decrypt(c.ciphertext, c.key, c.iv, c.aad, c.tag)
	if err != nil {
		return fmt.Errorf("vectors: verify %s: %w", v.Name, err)
	}
	if !bytes.Equal(plaintext, c.plaintext) {
		return fmt.Errorf("%w: %s: plaintext", ErrMismatch, v.Name)
	}
	return nil
}

// LoadGCM reads a GCM suite from path. Every entry is decoded before the
// suite is returned, so a bad vector surfaces here rather than halfway
// through a consumer's run.
func LoadGCM(path string) ([]GCMVector, error) {
	var suite []GCMVector
	if err := readSuite(path, &suite); err != nil {
		return nil, err
	}
	for i := range suite {
		if _, err := suite[i].decode(); err != nil {
			return nil, err
		}
	}
	return suite, nil
}

// WriteGCM writes a GCM suite to path as indented JSON.
func WriteGCM(path string, suite []GCMVector) error {
	return writeSuite(path, suite)
}
