package permit

import (
	"fmt"
	"math/big"

	ec "github.com/bsv-blockchain/go-sdk/primitives/ec"
)

// SignatureLen is the compact signature length: r(32B) || s(32B). No
// recovery id is carried; verifiers hold the signer's public key.
const SignatureLen = 64

// Sign produces a compact ECDSA signature over a 32-byte digest.
func Sign(digest []byte, priv *ec.PrivateKey) ([]byte, error) {
	if len(digest) != WordLen {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidDigest, len(digest), WordLen)
	}
	if priv == nil {
		return nil, ErrNilPrivateKey
	}

	sig, err := priv.Sign(digest)
	if err != nil {
		return nil, fmt.Errorf("permit: signing failed: %w", err)
	}

	out := make([]byte, SignatureLen)
	sig.R.FillBytes(out[:32])
	sig.S.FillBytes(out[32:])
	return out, nil
}

// Verify reports whether sig is a valid compact signature over digest by
// the holder of pub. Malformed inputs verify as false rather than error.
func Verify(digest, sig []byte, pub *ec.PublicKey) bool {
	if len(digest) != WordLen || len(sig) != SignatureLen || pub == nil {
		return false
	}

	ecSig := ec.Signature{
		R: new(big.Int).SetBytes(sig[:32]),
		S: new(big.Int).SetBytes(sig[32:]),
	}
	return ecSig.Verify(digest, pub)
}
