// Package testament orchestrates the will workflow. An Estate document is
// validated, sealed into an envelope, stored and pinned under its content
// identifier, and notarized; later the envelope is fetched, opened, and
// checked against the identifier before the estate is trusted. The asset
// inventory can additionally be committed to a Keccak Merkle root with
// per-asset inclusion proofs for selective disclosure.
package testament

import (
	"context"
	"fmt"
	"time"

	"github.com/june-in-exile/will-sub000/envelope"
	"github.com/june-in-exile/will-sub000/storage"
)

// Engine ties the storage and envelope layers into the seal/unseal flow.
// Pins and Notary are optional; a nil field skips that stage.
type Engine struct {
	Store  storage.Store
	Pins   *storage.BoltStore
	Notary Notary
}

// SealResult reports where a sealed estate ended up.
type SealResult struct {
	CID      storage.CID
	Envelope *envelope.Envelope
	TxID     string // notarization transaction; empty without a Notary
}

// Seal validates the estate, seals its canonical JSON under key, stores
// the envelope under its CID, pins it, and notarizes the CID. Any failing
// stage aborts the flow; on notarization failure the envelope remains
// stored locally but Seal returns the error.
func (en *Engine) Seal(ctx context.Context, estate *Estate, key []byte, alg envelope.Algorithm) (*SealResult, error) {
	if en.Store == nil {
		return nil, fmt.Errorf("%w: store", ErrNilParam)
	}
	if err := estate.Validate(); err != nil {
		return nil, err
	}

	plaintext, err := estate.Marshal()
	if err != nil {
		return nil, err
	}

	env, err := envelope.Seal(plaintext, key, alg)
	if err != nil {
		return nil, fmt.Errorf("testament: seal estate: %w", err)
	}
	envBytes, err := envelope.Marshal(env)
	if err != nil {
		return nil, fmt.Errorf("testament: seal estate: %w", err)
	}

	cid := storage.ComputeCID(envBytes)
	if err := en.Store.Put(cid, envBytes); err != nil {
		return nil, fmt.Errorf("testament: store envelope: %w", err)
	}

	if en.Pins != nil {
		rec := &storage.PinRecord{
			Name:      "will:" + estate.Testator,
			Size:      int64(len(envBytes)),
			CreatedAt: time.Now().UTC().Truncate(time.Second),
		}
		if err := en.Pins.Pin(cid, rec); err != nil {
			return nil, fmt.Errorf("testament: pin envelope: %w", err)
		}
	}

	result := &SealResult{CID: cid, Envelope: env}
	if en.Notary != nil {
		txID, err := en.Notary.NotarizeCID(ctx, cid)
		if err != nil {
			return nil, fmt.Errorf("testament: notarize %s: %w", cid, err)
		}
		result.TxID = txID
	}

	return result, nil
}

// Unseal fetches the envelope for cid, opens it with key, and parses the
// estate. The fetched bytes must hash back to cid and the parsed estate
// must validate; any mismatch fails without returning a document.
func (en *Engine) Unseal(cid storage.CID, key []byte) (*Estate, error) {
	if en.Store == nil {
		return nil, fmt.Errorf("%w: store", ErrNilParam)
	}

	envBytes, err := en.Store.Get(cid)
	if err != nil {
		return nil, fmt.Errorf("testament: fetch envelope: %w", err)
	}
	if storage.ComputeCID(envBytes) != cid {
		return nil, fmt.Errorf("%w: %s", ErrContentMismatch, cid)
	}

	env, err := envelope.Unmarshal(envBytes)
	if err != nil {
		return nil, fmt.Errorf("testament: parse envelope: %w", err)
	}
	plaintext, err := envelope.Open(env, key)
	if err != nil {
		return nil, fmt.Errorf("testament: open envelope: %w", err)
	}

	estate, err := ParseEstate(plaintext)
	if err != nil {
		return nil, err
	}
	if err := estate.Validate(); err != nil {
		return nil, err
	}
	return estate, nil
}
