package keyring

import (
	"crypto/sha256"
	"fmt"
	"io"

	ec "github.com/bsv-blockchain/go-sdk/primitives/ec"
	"golang.org/x/crypto/hkdf"
)

const (
	// EstateKeyInfo is the constant info string for estate key derivation.
	EstateKeyInfo = "will-estate-key"

	// EstateKeyLen is the length of the derived envelope key in bytes.
	EstateKeyLen = 32
)

// EstateKey derives the symmetric envelope key the testator and a
// beneficiary share for one estate.
//
//	key = HKDF-SHA256(ECDH(selfPriv, peerPub).x, salt=cid, "will-estate-key")
//
// Scalar multiplication commutes, so the testator deriving with the
// beneficiary's public key and the beneficiary deriving with the
// testator's reach the same key. The estate CID as salt binds the key to
// one sealed document; the same pair of parties gets a fresh key per
// estate.
func EstateKey(selfPriv *ec.PrivateKey, peerPub *ec.PublicKey, cid []byte) ([]byte, error) {
	if selfPriv == nil {
		return nil, ErrNilPrivateKey
	}
	if peerPub == nil {
		return nil, ErrNilPublicKey
	}
	if len(cid) == 0 {
		return nil, fmt.Errorf("%w: estate CID is empty", ErrKeyAgreementFailed)
	}

	sharedPoint, err := selfPriv.DeriveSharedSecret(peerPub)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrKeyAgreementFailed, err)
	}

	// Shared secret is the x-coordinate, zero-padded big-endian.
	sharedX := make([]byte, 32)
	sharedPoint.X.FillBytes(sharedX)

	reader := hkdf.New(sha256.New, sharedX, cid, []byte(EstateKeyInfo))
	key := make([]byte, EstateKeyLen)
	if _, err := io.ReadFull(reader, key); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrKeyAgreementFailed, err)
	}
	return key, nil
}
