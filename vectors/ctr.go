package vectors

import (
	"bytes"
	"encoding/hex"
	"fmt"

	"github.com/june-in-exile/will-sub000/aesgcm"
)

// CTRVector is one raw counter-mode case: the keystream XOR starting
// from an explicit counter block, with no authentication involved. The
// counter field records the full first counter block, not a nonce.
type CTRVector struct {
	Name       string `json:"name"`
	Key        string `json:"key"`
	Counter    string `json:"counter"`
	Plaintext  string `json:"plaintext"`
	Ciphertext string `json:"ciphertext"`
}

type ctrCase struct {
	key, counter, plaintext, ciphertext []byte
}

// GenerateCTR encrypts plaintext with the engine's counter mode and
// returns the finished case.
func GenerateCTR(name string, key, counter, plaintext []byte) (*CTRVector, error) {
	ciphertext, err := aesgcm.CTRCrypt(plaintext, key, counter)
	if err != nil {
		return nil, fmt.Errorf("vectors: generate %s: %w", name, err)
	}
	return &CTRVector{
		Name:       name,
		Key:        hex.EncodeToString(key),
		Counter:    hex.EncodeToString(counter),
		Plaintext:  hex.EncodeToString(plaintext),
		Ciphertext: hex.EncodeToString(ciphertext),
	}, nil
}

func (v *CTRVector) decode() (*ctrCase, error) {
	c := &ctrCase{}
	for _, f := range []struct {
		name string
		src  string
		dst  *[]byte
	}{
		{"key", v.Key, &c.key},
		{"counter", v.Counter, &c.counter},
		{"plaintext", v.Plaintext, &c.plaintext},
		{"ciphertext", v.Ciphertext, &c.ciphertext},
	} {
		b, err := decodeField(v.Name, f.name, f.src)
		if err != nil {
			return nil, err
		}
		*f.dst = b
	}
	if len(c.counter) != aesgcm.BlockSize {
		return nil, fmt.Errorf("%w: %s: counter length %d", ErrMalformedVector, v.Name, len(c.counter))
	}
	if len(c.ciphertext) != len(c.plaintext) {
		return nil, fmt.Errorf("%w: %s: ciphertext length %d != plaintext length %d",
			ErrMalformedVector, v.Name, len(c.ciphertext), len(c.plaintext))
	}
	return c, nil
}

// Verify re-runs counter mode in both directions: encrypting the
// plaintext must give the recorded ciphertext, and because CTR is its
// own inverse, encrypting the ciphertext must give the plaintext back.
func (v *CTRVector) Verify() error {
	c, err := v.decode()
	if err != nil {
		return err
	}

	ciphertext, err := aesgcm.CTRCrypt(c.plaintext, c.key, c.counter)
	if err != nil {
		return fmt.Errorf("vectors: verify %s: %w", v.Name, err)
	}
	if !bytes.Equal(ciphertext, c.ciphertext) {
		return fmt.Errorf("%w: %s: ciphertext", ErrMismatch, v.Name)
	}

	plaintext, err := aesgcm.CTRCrypt(c.ciphertext, c.key, c.counter)
	if err != nil {
		return fmt.Errorf("vectors: verify %s: %w", v.Name, err)
	}
	if !bytes.Equal(plaintext, c.plaintext) {
		return fmt.Errorf("%w: %s: plaintext", ErrMismatch, v.Name)
	}
	return nil
}

// LoadCTR reads a CTR suite from path, decoding every entry up front.
func LoadCTR(path string) ([]CTRVector, error) {
	var suite []CTRVector
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

// WriteCTR writes a CTR suite to path as indented JSON.
func WriteCTR(path string, suite []CTRVector) error {
	return writeSuite(path, suite)
}
