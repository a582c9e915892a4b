package testament

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/june-in-exile/will-sub000/storage"
)

// MockNotary is an in-memory test double for Notary. It records every
// notarized CID under a synthetic transaction id and can be forced to
// fail by setting Err.
type MockNotary struct {
	mu      sync.Mutex
	records map[storage.CID]*Notarization
	seq     int

	// Err, when set, is returned by both methods.
	Err error
}

// Compile-time interface check.
var _ Notary = (*MockNotary)(nil)

// NewMockNotary creates an empty MockNotary.
func NewMockNotary() *MockNotary {
	return &MockNotary{records: make(map[storage.CID]*Notarization)}
}

// NotarizeCID records cid under a synthetic transaction id.
func (m *MockNotary) NotarizeCID(_ context.Context, cid storage.CID) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return "", m.Err
	}

	m.seq++
	n := &Notarization{
		TxID:      fmt.Sprintf("mock-tx-%04d", m.seq),
		CID:       cid,
		Timestamp: time.Now().UTC().Truncate(time.Second),
	}
	m.records[cid] = n
	return n.TxID, nil
}

// LookupCID returns the recorded notarization for cid.
func (m *MockNotary) LookupCID(_ context.Context, cid storage.CID) (*Notarization, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return nil, m.Err
	}

	n, ok := m.records[cid]
	if !ok {
		return nil, ErrNotNotarized
	}
	return n, nil
}

// Count returns the number of notarized CIDs.
func (m *MockNotary) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.records)
}
