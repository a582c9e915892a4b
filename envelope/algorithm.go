package envelope

import (
	"encoding/json"
	"fmt"
)

// Algorithm selects the AEAD used to seal an envelope.
type Algorithm int

const (
	// AES256GCM seals with the in-repo AES-256-GCM engine.
	AES256GCM Algorithm = iota + 1

	// ChaCha20Poly1305 seals with x/crypto's ChaCha20-Poly1305.
	ChaCha20Poly1305
)

// Wire names as they appear in stored envelopes.
const (
	algNameAES    = "aes-256-gcm"
	algNameChaCha = "chacha20-poly1305"
)

// ParseAlgorithm resolves a wire name to an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch s {
	case algNameAES:
		return AES256GCM, nil
	case algNameChaCha:
		return ChaCha20Poly1305, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, s)
	}
}

// String returns the wire name.
func (a Algorithm) String() string {
	switch a {
	case AES256GCM:
		return algNameAES
	case ChaCha20Poly1305:
		return algNameChaCha
	default:
		return fmt.Sprintf("unknown(%d)", int(a))
	}
}

// MarshalJSON writes the wire name.
func (a Algorithm) MarshalJSON() ([]byte, error) {
	switch a {
	case AES256GCM, ChaCha20Poly1305:
		return json.Marshal(a.String())
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedAlgorithm, int(a))
	}
}

// UnmarshalJSON reads the wire name. Unknown algorithms are rejected here,
// at parse time, rather than when the envelope is opened.
func (a *Algorithm) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: algorithm field: %w", ErrInvalidEnvelope, err)
	}

	parsed, err := ParseAlgorithm(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
