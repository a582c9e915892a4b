package testament

import (
	"context"
	"encoding/hex"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/june-in-exile/will-sub000/envelope"
	"github.com/june-in-exile/will-sub000/storage"
)

// newTestEngine wires an Engine over a temp FileStore, BoltStore, and
// MockNotary.
func newTestEngine(t *testing.T) (*Engine, *MockNotary) {
	t.Helper()

	dir := t.TempDir()
	fs, err := storage.NewFileStore(filepath.Join(dir, "store"))
	require.NoError(t, err)

	pins, err := storage.OpenBoltStore(filepath.Join(dir, "pins.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = pins.Close() })

	notary := NewMockNotary()
	return &Engine{Store: fs, Pins: pins, Notary: notary}, notary
}

func estateKey() []byte {
	key := make([]byte, envelope.KeyLen)
	for i := range key {
		key[i] = byte(i + 1)
	}
	return key
}

func TestEngineSealUnseal(t *testing.T) {
	en, notary := newTestEngine(t)
	estate := testEstate()
	key := estateKey()

	result, err := en.Seal(context.Background(), estate, key, envelope.AES256GCM)
	require.NoError(t, err)
	require.NotNil(t, result.Envelope)
	assert.NotEqual(t, storage.CID{}, result.CID)
	assert.NotEmpty(t, result.TxID)

	// Stored and pinned under the CID.
	ok, err := en.Store.Has(result.CID)
	require.NoError(t, err)
	assert.True(t, ok)

	rec, err := en.Pins.GetPin(result.CID)
	require.NoError(t, err)
	assert.Equal(t, "will:"+estate.Testator, rec.Name)
	assert.Positive(t, rec.Size)

	// Notarized.
	n, err := notary.LookupCID(context.Background(), result.CID)
	require.NoError(t, err)
	assert.Equal(t, result.TxID, n.TxID)
	assert.Equal(t, result.CID, n.CID)

	// And the round trip.
	got, err := en.Unseal(result.CID, key)
	require.NoError(t, err)
	assert.Equal(t, estate, got)
}

func TestEngineSealBothAlgorithms(t *testing.T) {
	for _, alg := range []envelope.Algorithm{envelope.AES256GCM, envelope.ChaCha20Poly1305} {
		t.Run(alg.String(), func(t *testing.T) {
			en, _ := newTestEngine(t)
			key := estateKey()

			result, err := en.Seal(context.Background(), testEstate(), key, alg)
			require.NoError(t, err)

			got, err := en.Unseal(result.CID, key)
			require.NoError(t, err)
			assert.Equal(t, testEstate(), got)
		})
	}
}

func TestEngineSealInvalidEstate(t *testing.T) {
	en, notary := newTestEngine(t)

	bad := testEstate()
	bad.Beneficiaries = nil

	_, err := en.Seal(context.Background(), bad, estateKey(), envelope.AES256GCM)
	assert.ErrorIs(t, err, ErrInvalidEstate)

	list, err := en.Store.List()
	require.NoError(t, err)
	assert.Empty(t, list, "nothing stored for an invalid estate")
	assert.Zero(t, notary.Count())
}

func TestEngineSealBadKey(t *testing.T) {
	en, _ := newTestEngine(t)

	_, err := en.Seal(context.Background(), testEstate(), make([]byte, 16), envelope.AES256GCM)
	assert.ErrorIs(t, err, envelope.ErrInvalidKeySize)
}

func TestEngineSealNotaryFailure(t *testing.T) {
	en, notary := newTestEngine(t)
	notary.Err = errors.New("chain unreachable")

	_, err := en.Seal(context.Background(), testEstate(), estateKey(), envelope.AES256GCM)
	require.Error(t, err)

	// The envelope was already stored before notarization failed.
	list, err := en.Store.List()
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestEngineSealNilStore(t *testing.T) {
	en := &Engine{}
	_, err := en.Seal(context.Background(), testEstate(), estateKey(), envelope.AES256GCM)
	assert.ErrorIs(t, err, ErrNilParam)

	_, err = en.Unseal(storage.CID{}, estateKey())
	assert.ErrorIs(t, err, ErrNilParam)
}

func TestEngineSealWithoutOptionalStages(t *testing.T) {
	fs, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)
	en := &Engine{Store: fs}
	key := estateKey()

	result, err := en.Seal(context.Background(), testEstate(), key, envelope.AES256GCM)
	require.NoError(t, err)
	assert.Empty(t, result.TxID, "no notary, no transaction")

	got, err := en.Unseal(result.CID, key)
	require.NoError(t, err)
	assert.Equal(t, testEstate(), got)
}

func TestEngineUnsealWrongKey(t *testing.T) {
	en, _ := newTestEngine(t)

	result, err := en.Seal(context.Background(), testEstate(), estateKey(), envelope.AES256GCM)
	require.NoError(t, err)

	wrong := estateKey()
	wrong[0] ^= 0xff
	_, err = en.Unseal(result.CID, wrong)
	assert.ErrorIs(t, err, envelope.ErrAuthenticationFailed)
}

func TestEngineUnsealMissing(t *testing.T) {
	en, _ := newTestEngine(t)

	_, err := en.Unseal(storage.ComputeCID([]byte("never sealed")), estateKey())
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

// tamperedStore returns fixed bytes regardless of the requested CID.
type tamperedStore struct {
	data []byte
}

func (s *tamperedStore) Put(storage.CID, []byte) error   { return nil }
func (s *tamperedStore) Get(storage.CID) ([]byte, error) { return s.data, nil }
func (s *tamperedStore) Has(storage.CID) (bool, error)   { return true, nil }
func (s *tamperedStore) Delete(storage.CID) error        { return storage.ErrNotFound }
func (s *tamperedStore) Size(storage.CID) (int64, error) { return int64(len(s.data)), nil }
func (s *tamperedStore) List() ([]storage.CID, error)    { return nil, nil }

func TestEngineUnsealRejectsTamperedContent(t *testing.T) {
	en := &Engine{Store: &tamperedStore{data: []byte("substituted bytes")}}

	_, err := en.Unseal(storage.ComputeCID([]byte("the real envelope")), estateKey())
	assert.ErrorIs(t, err, ErrContentMismatch)
}

func TestSealedEstateCarriesInventoryRoot(t *testing.T) {
	en, _ := newTestEngine(t)
	key := estateKey()

	estate := testEstate()
	root, err := BuildRoot(estate.Assets)
	require.NoError(t, err)
	estate.Metadata["inventoryRoot"] = hex.EncodeToString(root[:])

	result, err := en.Seal(context.Background(), estate, key, envelope.AES256GCM)
	require.NoError(t, err)

	got, err := en.Unseal(result.CID, key)
	require.NoError(t, err)

	// A beneficiary can check a disclosed asset against the sealed root.
	wantRoot, err := hex.DecodeString(got.Metadata["inventoryRoot"])
	require.NoError(t, err)

	proof, err := Prove(got.Assets, 1)
	require.NoError(t, err)
	ok, err := VerifyProof(got.Assets[1], proof, [32]byte(wantRoot))
	require.NoError(t, err)
	assert.True(t, ok)
}

// --- MockNotary tests ---

func TestMockNotary(t *testing.T) {
	m := NewMockNotary()
	ctx := context.Background()
	cid := storage.ComputeCID([]byte("anchored"))

	txID, err := m.NotarizeCID(ctx, cid)
	require.NoError(t, err)
	assert.NotEmpty(t, txID)
	assert.Equal(t, 1, m.Count())

	n, err := m.LookupCID(ctx, cid)
	require.NoError(t, err)
	assert.Equal(t, txID, n.TxID)
	assert.Equal(t, cid, n.CID)
	assert.Equal(t, time.UTC, n.Timestamp.Location())
	assert.True(t, n.Timestamp.Equal(n.Timestamp.Truncate(time.Second)), "second precision")

	_, err = m.LookupCID(ctx, storage.ComputeCID([]byte("unknown")))
	assert.ErrorIs(t, err, ErrNotNotarized)

	// Distinct transaction ids per notarization.
	other, err := m.NotarizeCID(ctx, storage.ComputeCID([]byte("second")))
	require.NoError(t, err)
	assert.NotEqual(t, txID, other)
}
