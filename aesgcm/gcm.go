// Package aesgcm implements AES-128, AES-192, and AES-256 from the field
// arithmetic up, together with CTR keystream encryption and GCM
// authenticated encryption per NIST SP 800-38D. IVs of any length are
// accepted; the 96-bit fast path and the GHASH-derived pre-counter block
// both follow the standard.
//
// The implementation favors auditability over speed. Nothing here is
// hardware-accelerated and the field multiplications are plain loops, so
// it suits sealing wills and key material rather than streaming traffic.
package aesgcm

import "crypto/subtle"

// TagSize is the length in bytes of a GCM authentication tag.
const TagSize = 16

// Encrypt seals plaintext under key with the given IV and additional
// authenticated data, returning the ciphertext and its tag. A 12-byte IV
// takes the standard fast path; any other length, including zero, derives
// the pre-counter block through GHASH.
func Encrypt(plaintext, key, iv, aad []byte) (ciphertext, tag []byte, err error) {
	keys, err := ExpandKey(key)
	if err != nil {
		return nil, nil, err
	}

	h := hashSubkey(keys)
	j0 := deriveJ0(iv, h)

	counter := j0
	inc32(&counter)
	ciphertext = make([]byte, len(plaintext))
	ctrCrypt(ciphertext, plaintext, keys, &counter)

	return ciphertext, authTag(keys, h, j0, ciphertext, aad), nil
}

// Decrypt opens ciphertext, verifying tag over the ciphertext and AAD. The
// tag is checked before any plaintext is computed; on mismatch it returns
// ErrAuthenticationFailed and no partial output.
func Decrypt(ciphertext, key, iv, aad, tag []byte) ([]byte, error) {
	if len(tag) != TagSize {
		return nil, ErrInvalidTagSize
	}
	keys, err := ExpandKey(key)
	if err != nil {
		return nil, err
	}

	h := hashSubkey(keys)
	j0 := deriveJ0(iv, h)

	expected := authTag(keys, h, j0, ciphertext, aad)
	if subtle.ConstantTimeCompare(expected, tag) != 1 {
		return nil, ErrAuthenticationFailed
	}

	counter := j0
	inc32(&counter)
	plaintext := make([]byte, len(ciphertext))
	ctrCrypt(plaintext, ciphertext, keys, &counter)
	return plaintext, nil
}

// hashSubkey computes H, the encryption of the all-zero block.
func hashSubkey(keys [][16]byte) [16]byte {
	var zero, h [16]byte
	encryptBlock(&h, &zero, keys)
	return h
}

// deriveJ0 builds the pre-counter block. A 96-bit IV is extended with
// 0x00000001; every other length is hashed as
// J0 = GHASH(IV || pad || [0]64 || [len(IV) in bits]64).
func deriveJ0(iv []byte, h [16]byte) [16]byte {
	var j0 [16]byte
	if len(iv) == 12 {
		copy(j0[:], iv)
		j0[15] = 1
		return j0
	}
	ghashUpdate(&j0, h, iv)
	ghashLengths(&j0, h, 0, uint64(len(iv))*8)
	return j0
}

// authTag computes T = E(K, J0) XOR GHASH(AAD, C).
func authTag(keys [][16]byte, h, j0 [16]byte, ciphertext, aad []byte) []byte {
	var s [16]byte
	ghashUpdate(&s, h, aad)
	ghashUpdate(&s, h, ciphertext)
	ghashLengths(&s, h, uint64(len(aad))*8, uint64(len(ciphertext))*8)

	var ek [16]byte
	encryptBlock(&ek, &j0, keys)

	tag := make([]byte, TagSize)
	for i := range tag {
		tag[i] = s[i] ^ ek[i]
	}
	return tag
}
