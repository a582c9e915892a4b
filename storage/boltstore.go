package storage

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.etcd.io/bbolt"
)

var (
	bucketPins   = []byte("pins")
	bucketLabels = []byte("labels")
)

// PinRecord carries the metadata kept for a pinned envelope.
type PinRecord struct {
	Name       string    // operator-facing description
	Size       int64     // envelope size in bytes before compression
	CreatedAt  time.Time // pin time, UTC
	Compressed bool      // stored gzip-compressed
}

// BoltStore tracks pinned content and name labels in a bbolt database.
// Labels map human-readable names to CIDs and are kept consistent with
// the pin bucket: setting a label requires a pin, unpinning removes the
// labels that point at the removed CID.
type BoltStore struct {
	db *bbolt.DB
}

// OpenBoltStore opens or creates the bbolt database at dbPath.
// The parent directory is created if it does not exist.
func OpenBoltStore(dbPath string) (*BoltStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0700); err != nil {
		return nil, fmt.Errorf("storage: create directory: %w", err)
	}
	db, err := bbolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("storage: open bolt db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		for _, name := range [][]byte{bucketPins, bucketLabels} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("boltstore: create bucket %q: %w", name, err)
			}
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("storage: create buckets: %w", err)
	}

	return &BoltStore{db: db}, nil
}

// Close closes the underlying database.
func (s *BoltStore) Close() error { return s.db.Close() }

// encodeGob serializes a value using gob encoding.
func encodeGob(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// decodeGob deserializes gob-encoded data into a value.
func decodeGob(data []byte, v interface{}) error {
	return gob.NewDecoder(bytes.NewReader(data)).Decode(v)
}

// Pin records metadata for cid, overwriting any existing record.
func (s *BoltStore) Pin(cid CID, rec *PinRecord) error {
	if rec == nil {
		return fmt.Errorf("%w: pin record", ErrNilParam)
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		data, err := encodeGob(rec)
		if err != nil {
			return fmt.Errorf("boltstore: encode pin: %w", err)
		}
		if err := tx.Bucket(bucketPins).Put(cid[:], data); err != nil {
			return fmt.Errorf("boltstore: put pin: %w", err)
		}
		return nil
	})
}

// GetPin retrieves the pin record for cid.
func (s *BoltStore) GetPin(cid CID) (*PinRecord, error) {
	var rec PinRecord
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketPins).Get(cid[:])
		if data == nil {
			return ErrPinNotFound
		}
		if err := decodeGob(data, &rec); err != nil {
			return fmt.Errorf("boltstore: decode pin: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// Unpin removes the pin record for cid and any labels that reference it.
func (s *BoltStore) Unpin(cid CID) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		pins := tx.Bucket(bucketPins)
		if pins.Get(cid[:]) == nil {
			return ErrPinNotFound
		}
		if err := pins.Delete(cid[:]); err != nil {
			return fmt.Errorf("boltstore: delete pin: %w", err)
		}

		// Clean up labels that point at this CID.
		labels := tx.Bucket(bucketLabels)
		c := labels.Cursor()
		var stale [][]byte
		for k, v := c.First(); k != nil; k, v = c.Next() {
			if bytes.Equal(v, cid[:]) {
				key := make([]byte, len(k))
				copy(key, k)
				stale = append(stale, key)
			}
		}
		for _, k := range stale {
			if err := labels.Delete(k); err != nil {
				return fmt.Errorf("boltstore: delete label: %w", err)
			}
		}
		return nil
	})
}

// ListPins returns the identifiers of all pinned content in CID byte order.
func (s *BoltStore) ListPins() ([]CID, error) {
	var cids []CID
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketPins).ForEach(func(k, _ []byte) error {
			if len(k) != CIDSize {
				return nil // foreign key
			}
			var cid CID
			copy(cid[:], k)
			cids = append(cids, cid)
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("boltstore: list pins: %w", err)
	}
	return cids, nil
}

// SetLabel points a human-readable name at cid. The pin must exist.
func (s *BoltStore) SetLabel(name string, cid CID) error {
	if name == "" {
		return fmt.Errorf("%w: label name", ErrNilParam)
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		if tx.Bucket(bucketPins).Get(cid[:]) == nil {
			return ErrPinNotFound
		}
		if err := tx.Bucket(bucketLabels).Put([]byte(name), cid[:]); err != nil {
			return fmt.Errorf("boltstore: put label: %w", err)
		}
		return nil
	})
}

// ResolveLabel returns the CID a label points at.
func (s *BoltStore) ResolveLabel(name string) (CID, error) {
	var cid CID
	err := s.db.View(func(tx *bbolt.Tx) error {
		v := tx.Bucket(bucketLabels).Get([]byte(name))
		if v == nil {
			return ErrLabelNotFound
		}
		if len(v) != CIDSize {
			return fmt.Errorf("boltstore: corrupt label %q: %d bytes", name, len(v))
		}
		copy(cid[:], v)
		return nil
	})
	if err != nil {
		return CID{}, err
	}
	return cid, nil
}

// DeleteLabel removes a label without touching the underlying pin.
func (s *BoltStore) DeleteLabel(name string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		labels := tx.Bucket(bucketLabels)
		if labels.Get([]byte(name)) == nil {
			return ErrLabelNotFound
		}
		if err := labels.Delete([]byte(name)); err != nil {
			return fmt.Errorf("boltstore: delete label: %w", err)
		}
		return nil
	})
}

// Labels returns all labels and the CIDs they point at.
func (s *BoltStore) Labels() (map[string]CID, error) {
	out := make(map[string]CID)
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketLabels).ForEach(func(k, v []byte) error {
			if len(v) != CIDSize {
				return nil // corrupt entry, skip
			}
			var cid CID
			copy(cid[:], v)
			out[string(k)] = cid
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("boltstore: list labels: %w", err)
	}
	return out, nil
}
