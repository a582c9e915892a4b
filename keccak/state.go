package keccak

import (
	"encoding/binary"

	"github.com/june-in-exile/will-sub000/bitconv"
)

// Sponge geometry for Keccak-256.
const (
	// Rate is the number of state bytes XORed with input per absorption.
	Rate = 136
	// Size is the digest length in bytes.
	Size = 32

	rateBits   = Rate * 8
	stateBytes = 200
	stateBits  = 1600
)

// The 1600-bit state has three interchangeable views: a 200-byte buffer,
// 25 uint64 lanes, and 1600 individual bits. Lanes pack their bytes
// little-endian; bits follow the LSB-first convention of bitconv. The
// conversions below move between the views losslessly.

func bufferToLanes(buf []byte) [25]uint64 {
	var lanes [25]uint64
	for i := range lanes {
		lanes[i] = binary.LittleEndian.Uint64(buf[8*i:])
	}
	return lanes
}

func lanesToBuffer(lanes *[25]uint64) []byte {
	buf := make([]byte, stateBytes)
	for i, lane := range lanes {
		binary.LittleEndian.PutUint64(buf[8*i:], lane)
	}
	return buf
}

func lanesToBits(lanes *[25]uint64) []byte {
	return bitconv.BytesToBits(lanesToBuffer(lanes))
}

// bitsToLanes packs a bit-level state view back into lanes. The caller
// guarantees bits holds exactly 1600 values that are all 0 or 1.
func bitsToLanes(bits []byte) [25]uint64 {
	buf := make([]byte, stateBytes)
	for i, bit := range bits {
		buf[i/8] |= bit << uint(i%8)
	}
	return bufferToLanes(buf)
}
