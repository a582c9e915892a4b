// Package keccak implements legacy Keccak-256, the variant Ethereum calls
// keccak256. Padding uses the original 10*1 rule with domain byte 0x01, so
// digests match Solidity's keccak256 and not NIST SHA3-256.
//
// Besides the usual byte-oriented entry points the package hashes messages
// addressed at bit granularity, including lengths that are not a multiple
// of eight. The zero-knowledge circuits accompanying the will workflow
// compute the same function over individual bits, and the bit-level entry
// points let fixtures and circuit inputs be produced and checked from Go.
package keccak

import (
	"encoding/binary"
	"fmt"

	"github.com/june-in-exile/will-sub000/bitconv"
)

// Sum256 returns the legacy Keccak-256 digest of data.
func Sum256(data []byte) [Size]byte {
	var h Hasher
	_, _ = h.Write(data)
	return h.Sum256()
}

// absorbBlock XORs one rate-sized block into the state and permutes.
func absorbBlock(lanes *[25]uint64, block []byte) {
	for i := 0; i < Rate/8; i++ {
		lanes[i] ^= binary.LittleEndian.Uint64(block[8*i:])
	}
	keccakF1600(lanes)
}

// Hasher is an incremental Keccak-256 writer. The zero value is ready to
// use.
type Hasher struct {
	lanes [25]uint64
	buf   [Rate]byte
	n     int
}

// Write absorbs p into the sponge. The returned error is always nil.
func (h *Hasher) Write(p []byte) (int, error) {
	written := len(p)

	if h.n > 0 {
		n := copy(h.buf[h.n:], p)
		h.n += n
		p = p[n:]
		if h.n == Rate {
			absorbBlock(&h.lanes, h.buf[:])
			h.n = 0
		}
	}
	for len(p) >= Rate {
		absorbBlock(&h.lanes, p[:Rate])
		p = p[Rate:]
	}
	h.n += copy(h.buf[h.n:], p)

	return written, nil
}

// Sum256 returns the digest of everything written so far. The running
// state is not disturbed, so writing may continue afterwards.
func (h *Hasher) Sum256() [Size]byte {
	lanes := h.lanes

	var block [Rate]byte
	copy(block[:], h.buf[:h.n])
	block[h.n] ^= 0x01
	block[Rate-1] ^= 0x80
	absorbBlock(&lanes, block[:])

	var digest [Size]byte
	copy(digest[:], lanesToBuffer(&lanes))
	return digest
}

// Reset returns the Hasher to its initial state.
func (h *Hasher) Reset() {
	*h = Hasher{}
}

// SumBits hashes a message addressed at bit granularity and returns the
// 256 digest bits. The input may have any length, including lengths that
// are not a multiple of eight; every value must be 0 or 1. Between
// permutations the state is carried in its bit-level view, the same way
// the circuit addresses it.
func SumBits(bitMsg []byte) ([]byte, error) {
	if err := bitconv.ValidateBits(bitMsg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBitValue, err)
	}

	padded := padBits(bitMsg)

	state := make([]byte, stateBits)
	for off := 0; off < len(padded); off += rateBits {
		for i, bit := range padded[off : off+rateBits] {
			state[i] ^= bit
		}
		lanes := bitsToLanes(state)
		keccakF1600(&lanes)
		state = lanesToBits(&lanes)
	}

	digest := make([]byte, Size*8)
	copy(digest, state)
	return digest, nil
}

// padBits appends the 10*1 pattern to reach a multiple of the rate. The
// pattern needs at least two bits, so a single bit of room spills the
// padding into a full extra block.
func padBits(bits []byte) []byte {
	padLen := rateBits - len(bits)%rateBits
	if padLen == 1 {
		padLen += rateBits
	}

	padded := make([]byte, len(bits)+padLen)
	copy(padded, bits)
	padded[len(bits)] = 1
	padded[len(padded)-1] = 1
	return padded
}

// SumBinaryString hashes a string of '0' and '1' characters and returns
// the digest in the same form.
func SumBinaryString(s string) (string, error) {
	bits := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0':
			bits[i] = 0
		case '1':
			bits[i] = 1
		default:
			return "", fmt.Errorf("%w: %q at index %d", ErrInvalidBinaryString, s[i], i)
		}
	}

	digest, err := SumBits(bits)
	if err != nil {
		return "", err
	}

	out := make([]byte, len(digest))
	for i, bit := range digest {
		out[i] = '0' + bit
	}
	return string(out), nil
}
