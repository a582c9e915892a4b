// Package storage provides content-addressed persistence for sealed wills.
//
// A sealed envelope is identified by the Keccak-256 digest of its bytes
// (its CID). FileStore keeps the raw bytes on disk under a sharded layout,
// BoltStore tracks pin metadata and human-readable labels, DNSLink
// resolution maps a domain name to the CID it currently publishes, and
// Fetcher retrieves envelopes from HTTP gateways when they are not held
// locally.
package storage

import (
	"encoding/hex"
	"fmt"

	"github.com/june-in-exile/will-sub000/keccak"
)

// CIDSize is the length of a content identifier (Keccak-256 output).
const CIDSize = 32

// CID identifies stored content by the Keccak-256 digest of its bytes.
type CID [CIDSize]byte

// ComputeCID returns the content identifier for data.
func ComputeCID(data []byte) CID {
	return CID(keccak.Sum256(data))
}

// ParseCID decodes a 64-character hex string into a CID.
func ParseCID(s string) (CID, error) {
	var cid CID
	if len(s) != CIDSize*2 {
		return cid, fmt.Errorf("%w: expected %d hex chars, got %d", ErrInvalidCID, CIDSize*2, len(s))
	}
	raw, err := hex.DecodeString(s)
	if err != nil {
		return cid, fmt.Errorf("%w: %w", ErrInvalidCID, err)
	}
	copy(cid[:], raw)
	return cid, nil
}

// String returns the lowercase hex form of the CID.
func (c CID) String() string {
	return hex.EncodeToString(c[:])
}
