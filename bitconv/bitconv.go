// Package bitconv provides lossless conversions between bit arrays, byte
// buffers, hex text, and base64 text.
//
// Bit arrays are []byte values holding one bit per element (0 or 1), ordered
// LSB-first within each source byte: bit i of byte b is (b >> i) & 1. This is
// the packing order shared by the Keccak sponge and the circuit tooling;
// converting with any other order silently breaks vector compatibility.
package bitconv

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
)

const bitsPerByte = 8

// BytesToBits expands data into a bit array, LSB-first within each byte.
// The result has exactly 8*len(data) elements, each 0 or 1.
func BytesToBits(data []byte) []byte {
	bits := make([]byte, len(data)*bitsPerByte)
	for i, b := range data {
		for j := 0; j < bitsPerByte; j++ {
			bits[i*bitsPerByte+j] = (b >> uint(j)) & 1
		}
	}
	return bits
}

// BitsToBytes packs a bit array into bytes, LSB-first within each byte.
// The bit count must be a multiple of 8 and every element must be 0 or 1.
func BitsToBytes(bits []byte) ([]byte, error) {
	if len(bits)%bitsPerByte != 0 {
		return nil, fmt.Errorf("%w: %d bits", ErrBitCount, len(bits))
	}
	if err := ValidateBits(bits); err != nil {
		return nil, err
	}

	data := make([]byte, len(bits)/bitsPerByte)
	for i, bit := range bits {
		data[i/bitsPerByte] |= bit << uint(i%bitsPerByte)
	}
	return data, nil
}

// ValidateBits checks that every element of bits is 0 or 1.
func ValidateBits(bits []byte) error {
	for i, b := range bits {
		if b > 1 {
			return fmt.Errorf("%w: element %d is %d", ErrInvalidBit, i, b)
		}
	}
	return nil
}

// HexToBytes decodes lowercase or uppercase hex text without a 0x prefix.
// Prefix handling belongs to the Message layer, where input is tagged.
func HexToBytes(s string) ([]byte, error) {
	data, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidHex, err)
	}
	return data, nil
}

// BytesToHex encodes data as lowercase hex text.
func BytesToHex(data []byte) string {
	return hex.EncodeToString(data)
}

// Base64ToBytes decodes standard (padded) base64 text.
func Base64ToBytes(s string) ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBase64, err)
	}
	return data, nil
}

// BytesToBase64 encodes data as standard (padded) base64 text.
func BytesToBase64(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}
