package aesgcm

import "encoding/binary"

// mulGF128 multiplies x and y in GF(2^128) with the GHASH polynomial
// x^128 + x^7 + x^2 + x + 1. Bit 0 of the field element is the most
// significant bit of byte 0, per NIST SP 800-38D.
func mulGF128(x, y [16]byte) [16]byte {
	var z [16]byte
	v := y
	for i := 0; i < 128; i++ {
		if x[i/8]&(0x80>>(i%8)) != 0 {
			for j := range z {
				z[j] ^= v[j]
			}
		}
		carry := v[15] & 1
		for j := 15; j > 0; j-- {
			v[j] = v[j]>>1 | v[j-1]<<7
		}
		v[0] >>= 1
		if carry == 1 {
			v[0] ^= 0xe1
		}
	}
	return z
}

// ghashUpdate folds data into the running GHASH state y, zero-padding the
// final partial block.
func ghashUpdate(y *[16]byte, h [16]byte, data []byte) {
	for len(data) > 0 {
		var block [16]byte
		n := copy(block[:], data)
		data = data[n:]
		for i := range y {
			y[i] ^= block[i]
		}
		*y = mulGF128(*y, h)
	}
}

// ghashLengths folds in the final block recording the AAD and ciphertext
// lengths in bits.
func ghashLengths(y *[16]byte, h [16]byte, aadBits, ctBits uint64) {
	var block [16]byte
	binary.BigEndian.PutUint64(block[:8], aadBits)
	binary.BigEndian.PutUint64(block[8:], ctBits)
	for i := range y {
		y[i] ^= block[i]
	}
	*y = mulGF128(*y, h)
}
