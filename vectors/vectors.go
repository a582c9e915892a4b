// Package vectors produces and checks frozen reference vectors for the
// encryption engine: GCM seals, raw CTR keystreams, and bit-granular
// Keccak digests. The JSON suites under testdata pin the engine
// byte-for-byte; the circuit side consumes the same files, so the two
// implementations cannot drift apart silently.
package vectors

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// decodeField hex-decodes one field of a named vector.
func decodeField(vector, field, s string) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: bad hex in %s: %v", ErrMalformedVector, vector, field, err)
	}
	return b, nil
}

// readSuite unmarshals a JSON suite file into out, which must be a
// pointer to a slice of vectors.
func readSuite(path string, out interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("vectors: read suite: %w", err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrMalformedVector, filepath.Base(path), err)
	}
	return nil
}

// writeSuite marshals a suite to path as indented JSON, creating parent
// directories as needed. The output ends with a newline so regenerated
// files diff cleanly against checked-in ones.
func writeSuite(path string, suite interface{}) error {
	data, err := json.MarshalIndent(suite, "", "  ")
	if err != nil {
		return fmt.Errorf("vectors: marshal suite: %w", err)
	}
	data = append(data, '\n')
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("vectors: create suite directory: %w", err)
	}
	return os.WriteFile(path, data, 0600)
}
