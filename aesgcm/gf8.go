package aesgcm

// aesPoly is the reduction polynomial of the AES field GF(2^8),
// x^8 + x^4 + x^3 + x + 1, with the x^8 term implicit.
const aesPoly = 0x1b

// gfMul multiplies two elements of GF(2^8) using shift-and-add with
// reduction modulo aesPoly.
func gfMul(a, b byte) byte {
	var p byte
	for i := 0; i < 8; i++ {
		if b&1 == 1 {
			p ^= a
		}
		carry := a&0x80 != 0
		a <<= 1
		if carry {
			a ^= aesPoly
		}
		b >>= 1
	}
	return p
}

// Multiplication tables for the MixColumns constants. Looking these up is
// cheaper than multiplying per byte and keeps the column mix branch-free.
var (
	mul2 = buildMulTable(2)
	mul3 = buildMulTable(3)
)

func buildMulTable(c byte) [256]byte {
	var table [256]byte
	for i := range table {
		table[i] = gfMul(byte(i), c)
	}
	return table
}
