// Package permit builds and signs the typed-data digests the will workflow
// submits on-chain: the Permit2 transfer authorization a testator grants
// over escrowed tokens, and the notarization payload anchoring a sealed
// will's CID. Hashing is EIP-712 over ABI-encoded 32-byte words, with the
// repository's own Keccak-256 underneath.
package permit

import (
	"encoding/binary"
	"fmt"
	"math/big"

	"github.com/june-in-exile/will-sub000/keccak"
)

// WordLen is the width of one ABI slot in bytes.
const WordLen = 32

func wordUint64(v uint64) [WordLen]byte {
	var w [WordLen]byte
	binary.BigEndian.PutUint64(w[24:], v)
	return w
}

// wordBigInt encodes a non-negative integer of at most 256 bits.
func wordBigInt(v *big.Int) ([WordLen]byte, error) {
	var w [WordLen]byte
	if v == nil || v.Sign() < 0 {
		return w, fmt.Errorf("%w: value must be a non-negative integer", ErrInvalidABIValue)
	}
	if v.BitLen() > 256 {
		return w, fmt.Errorf("%w: value exceeds 256 bits", ErrInvalidABIValue)
	}
	v.FillBytes(w[:])
	return w, nil
}

// wordAddress left-pads a 20-byte address into a slot.
func wordAddress(addr [20]byte) [WordLen]byte {
	var w [WordLen]byte
	copy(w[12:], addr[:])
	return w
}

// hashWords returns keccak256 over the concatenation of words.
func hashWords(words ...[WordLen]byte) [WordLen]byte {
	var h keccak.Hasher
	for _, w := range words {
		_, _ = h.Write(w[:])
	}
	return h.Sum256()
}
