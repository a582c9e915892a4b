package testament

import (
	"context"
	"time"

	"github.com/june-in-exile/will-sub000/storage"
)

// Notarization records the on-chain acknowledgement of a sealed will.
type Notarization struct {
	TxID      string      `json:"txid"`
	CID       storage.CID `json:"cid"`
	Timestamp time.Time   `json:"timestamp"` // UTC, second precision
}

// Notary anchors content identifiers on an external chain. Implementations
// wrap the contract call that records a CID against the testator's account.
type Notary interface {
	// NotarizeCID records cid and returns the transaction id.
	NotarizeCID(ctx context.Context, cid storage.CID) (string, error)

	// LookupCID returns the notarization for cid, or ErrNotNotarized.
	LookupCID(ctx context.Context, cid storage.CID) (*Notarization, error)
}
