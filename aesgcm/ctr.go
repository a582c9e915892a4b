package aesgcm

import "encoding/binary"

// CTRCrypt encrypts or decrypts data in counter mode, using counterBlock as
// the counter for the first block. CTR is its own inverse, so one function
// serves both directions.
func CTRCrypt(data, key, counterBlock []byte) ([]byte, error) {
	if len(counterBlock) != BlockSize {
		return nil, ErrInvalidBlockSize
	}
	keys, err := ExpandKey(key)
	if err != nil {
		return nil, err
	}

	counter := [16]byte(counterBlock)
	out := make([]byte, len(data))
	ctrCrypt(out, data, keys, &counter)
	return out, nil
}

// ctrCrypt XORs data with the keystream generated from counter, writing the
// result to dst. The counter is left advanced past the last block used.
func ctrCrypt(dst, data []byte, keys [][16]byte, counter *[16]byte) {
	var keystream [16]byte
	for i := 0; i < len(data); i += BlockSize {
		encryptBlock(&keystream, counter, keys)
		inc32(counter)

		n := len(data) - i
		if n > BlockSize {
			n = BlockSize
		}
		for j := 0; j < n; j++ {
			dst[i+j] = data[i+j] ^ keystream[j]
		}
	}
}

// inc32 increments the rightmost 32 bits of block big-endian, wrapping
// modulo 2^32 and leaving the left 96 bits untouched.
func inc32(block *[16]byte) {
	c := binary.BigEndian.Uint32(block[12:])
	binary.BigEndian.PutUint32(block[12:], c+1)
}
