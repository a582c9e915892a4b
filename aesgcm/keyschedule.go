package aesgcm

import "encoding/binary"

// Supported key sizes in bytes.
const (
	KeySize128 = 16
	KeySize192 = 24
	KeySize256 = 32
)

// BlockSize is the AES block size in bytes.
const BlockSize = 16

// rounds maps a key length to the round count of the matching AES variant.
func rounds(keyLen int) (int, error) {
	switch keyLen {
	case KeySize128:
		return 10, nil
	case KeySize192:
		return 12, nil
	case KeySize256:
		return 14, nil
	default:
		return 0, ErrInvalidKeySize
	}
}

// ExpandKey derives the round-key schedule from key. The result holds one
// 16-byte block for the initial whitening step plus one per round, so 11,
// 13, or 15 blocks depending on the key size.
func ExpandKey(key []byte) ([][16]byte, error) {
	nr, err := rounds(len(key))
	if err != nil {
		return nil, err
	}

	nk := len(key) / 4
	nw := 4 * (nr + 1)

	w := make([]uint32, nw)
	for i := 0; i < nk; i++ {
		w[i] = binary.BigEndian.Uint32(key[4*i:])
	}
	for i := nk; i < nw; i++ {
		t := w[i-1]
		switch {
		case i%nk == 0:
			t = subWord(rotWord(t)) ^ uint32(rcon[i/nk-1])<<24
		case nk == 8 && i%nk == 4:
			t = subWord(t)
		}
		w[i] = w[i-nk] ^ t
	}

	keys := make([][16]byte, nr+1)
	for r := range keys {
		for c := 0; c < 4; c++ {
			binary.BigEndian.PutUint32(keys[r][4*c:], w[4*r+c])
		}
	}
	return keys, nil
}

// rotWord rotates a word left by one byte.
func rotWord(w uint32) uint32 {
	return w<<8 | w>>24
}

// subWord applies the S-box to each byte of a word.
func subWord(w uint32) uint32 {
	return uint32(sbox[w>>24])<<24 |
		uint32(sbox[w>>16&0xff])<<16 |
		uint32(sbox[w>>8&0xff])<<8 |
		uint32(sbox[w&0xff])
}
