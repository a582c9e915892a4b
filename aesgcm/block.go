package aesgcm

// EncryptBlock encrypts a single 16-byte block with key. The key schedule
// is expanded on every call; bulk encryption goes through CTRCrypt, which
// expands it once.
func EncryptBlock(block, key []byte) ([]byte, error) {
	if len(block) != BlockSize {
		return nil, ErrInvalidBlockSize
	}
	keys, err := ExpandKey(key)
	if err != nil {
		return nil, err
	}

	src := [16]byte(block)
	var dst [16]byte
	encryptBlock(&dst, &src, keys)
	return dst[:], nil
}

// encryptBlock runs the AES rounds over src with a pre-expanded schedule.
// The state is column-major: byte (row, col) lives at index 4*col+row.
func encryptBlock(dst, src *[16]byte, keys [][16]byte) {
	s := *src
	addRoundKey(&s, &keys[0])

	last := len(keys) - 1
	for r := 1; r < last; r++ {
		subBytes(&s)
		shiftRows(&s)
		mixColumns(&s)
		addRoundKey(&s, &keys[r])
	}
	subBytes(&s)
	shiftRows(&s)
	addRoundKey(&s, &keys[last])

	*dst = s
}

func addRoundKey(s, rk *[16]byte) {
	for i := range s {
		s[i] ^= rk[i]
	}
}

func subBytes(s *[16]byte) {
	for i := range s {
		s[i] = sbox[s[i]]
	}
}

// shiftRows rotates row r of the state left by r columns.
func shiftRows(s *[16]byte) {
	s[1], s[5], s[9], s[13] = s[5], s[9], s[13], s[1]
	s[2], s[10] = s[10], s[2]
	s[6], s[14] = s[14], s[6]
	s[3], s[7], s[11], s[15] = s[15], s[3], s[7], s[11]
}

func mixColumns(s *[16]byte) {
	for c := 0; c < 16; c += 4 {
		a0, a1, a2, a3 := s[c], s[c+1], s[c+2], s[c+3]
		s[c] = mul2[a0] ^ mul3[a1] ^ a2 ^ a3
		s[c+1] = a0 ^ mul2[a1] ^ mul3[a2] ^ a3
		s[c+2] = a0 ^ a1 ^ mul2[a2] ^ mul3[a3]
		s[c+3] = mul3[a0] ^ a1 ^ a2 ^ mul2[a3]
	}
}
