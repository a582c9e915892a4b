package testament

import (
	"encoding/json"
	"fmt"

	"github.com/june-in-exile/will-sub000/keyring"
)

// ShareScale is the denominator for beneficiary shares: shares are basis
// points and must sum to exactly this value.
const ShareScale = 10_000

// Beneficiary designates a recipient of a portion of the estate.
type Beneficiary struct {
	Address string `json:"address"` // 0x-prefixed account address
	Share   uint32 `json:"share"`   // basis points of the estate
}

// Asset is one entry of the estate inventory.
type Asset struct {
	Kind        string `json:"kind"`                  // e.g. "erc20", "deed", "document"
	Token       string `json:"token,omitempty"`       // contract address for token assets
	Amount      string `json:"amount,omitempty"`      // decimal amount for token assets
	Description string `json:"description,omitempty"` // free-form notes
}

// Estate is the plaintext will document sealed into an envelope.
//
// Canonical form is the output of Marshal: struct fields in declaration
// order, metadata keys sorted, no indentation. The inventory commitment
// and the envelope CID both depend on this byte form.
type Estate struct {
	Testator      string            `json:"testator"` // 0x-prefixed account address
	Beneficiaries []Beneficiary     `json:"beneficiaries"`
	Assets        []Asset           `json:"assets,omitempty"`
	Metadata      map[string]string `json:"metadata,omitempty"`
}

// Marshal renders the canonical JSON form of the estate.
func (e *Estate) Marshal() ([]byte, error) {
	if e == nil {
		return nil, fmt.Errorf("%w: nil estate", ErrInvalidEstate)
	}
	data, err := json.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("testament: marshal estate: %w", err)
	}
	return data, nil
}

// ParseEstate parses the canonical JSON form.
func ParseEstate(data []byte) (*Estate, error) {
	var e Estate
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidEstate, err)
	}
	return &e, nil
}

// Validate checks the estate document: the testator address parses, there
// is at least one beneficiary, every beneficiary has a parseable address
// and a non-zero share, the shares sum to exactly ShareScale, every asset
// names a kind, and token addresses parse when present.
func (e *Estate) Validate() error {
	if e == nil {
		return fmt.Errorf("%w: nil estate", ErrInvalidEstate)
	}
	if _, err := keyring.ParseAddress(e.Testator); err != nil {
		return fmt.Errorf("%w: testator: %w", ErrInvalidEstate, err)
	}
	if len(e.Beneficiaries) == 0 {
		return fmt.Errorf("%w: no beneficiaries", ErrInvalidEstate)
	}

	var total uint64
	for i, b := range e.Beneficiaries {
		if _, err := keyring.ParseAddress(b.Address); err != nil {
			return fmt.Errorf("%w: beneficiary %d: %w", ErrInvalidEstate, i, err)
		}
		if b.Share == 0 {
			return fmt.Errorf("%w: beneficiary %d: zero share", ErrInvalidEstate, i)
		}
		total += uint64(b.Share)
	}
	if total != ShareScale {
		return fmt.Errorf("%w: got %d", ErrInvalidShares, total)
	}

	for i, a := range e.Assets {
		if a.Kind == "" {
			return fmt.Errorf("%w: asset %d: missing kind", ErrInvalidEstate, i)
		}
		if a.Token != "" {
			if _, err := keyring.ParseAddress(a.Token); err != nil {
				return fmt.Errorf("%w: asset %d: %w", ErrInvalidEstate, i, err)
			}
		}
	}
	return nil
}

// TestatorAddress returns the parsed testator address.
func (e *Estate) TestatorAddress() (keyring.Address, error) {
	return keyring.ParseAddress(e.Testator)
}
