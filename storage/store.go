package storage

// Store provides content-addressed storage for sealed envelopes.
// Values are opaque bytes whose Keccak-256 digest equals their CID.
type Store interface {
	// Put stores data under cid. Implementations verify that
	// ComputeCID(data) equals cid before writing.
	Put(cid CID, data []byte) error

	// Get retrieves the bytes stored under cid.
	Get(cid CID) ([]byte, error)

	// Has reports whether content exists for cid.
	Has(cid CID) (bool, error)

	// Delete removes the content stored under cid.
	Delete(cid CID) error

	// Size returns the on-disk size in bytes of the content for cid.
	Size(cid CID) (int64, error)

	// List returns the identifiers of all stored content.
	List() ([]CID, error)
}
