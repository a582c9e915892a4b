package keccak

import "math/bits"

// rhoOffsets holds the per-lane rotation amounts of the rho step, indexed
// by lane position x+5y.
var rhoOffsets = [25]int{
	0, 1, 62, 28, 27,
	36, 44, 6, 55, 20,
	3, 10, 43, 25, 39,
	41, 45, 15, 21, 8,
	18, 2, 61, 56, 14,
}

// roundConstants holds the iota constants for the 24 rounds.
var roundConstants = [24]uint64{
	0x0000000000000001, 0x0000000000008082, 0x800000000000808a, 0x8000000080008000,
	0x000000000000808b, 0x0000000080000001, 0x8000000080008081, 0x8000000000008009,
	0x000000000000008a, 0x0000000000000088, 0x0000000080008009, 0x000000008000000a,
	0x000000008000808b, 0x800000000000008b, 0x8000000000008089, 0x8000000000008003,
	0x8000000000008002, 0x8000000000000080, 0x000000000000800a, 0x800000008000000a,
	0x8000000080008081, 0x8000000000008080, 0x0000000080000001, 0x8000000080008008,
}

// keccakF1600 applies the 24-round Keccak-f[1600] permutation in place.
// Lanes are indexed x+5y with x the column and y the row.
func keccakF1600(a *[25]uint64) {
	var bc [5]uint64
	var b [25]uint64

	for round := 0; round < 24; round++ {
		// theta: fold the column parities back into every lane.
		for x := 0; x < 5; x++ {
			bc[x] = a[x] ^ a[x+5] ^ a[x+10] ^ a[x+15] ^ a[x+20]
		}
		for x := 0; x < 5; x++ {
			d := bc[(x+4)%5] ^ bits.RotateLeft64(bc[(x+1)%5], 1)
			for y := 0; y < 25; y += 5 {
				a[x+y] ^= d
			}
		}

		// rho and pi: rotate each lane and move it to its new position.
		for x := 0; x < 5; x++ {
			for y := 0; y < 5; y++ {
				src := (x+3*y)%5 + 5*x
				b[x+5*y] = bits.RotateLeft64(a[src], rhoOffsets[src])
			}
		}

		// chi: the only nonlinear step, applied row by row.
		for y := 0; y < 25; y += 5 {
			for x := 0; x < 5; x++ {
				a[y+x] = b[y+x] ^ (^b[y+(x+1)%5] & b[y+(x+2)%5])
			}
		}

		// iota
		a[0] ^= roundConstants[round]
	}
}
