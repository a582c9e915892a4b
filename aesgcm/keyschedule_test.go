package aesgcm

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err, "test vector hex should decode")
	return b
}

func mustBlock(t *testing.T, s string) [16]byte {
	t.Helper()
	b := mustHex(t, s)
	require.Len(t, b, 16, "test vector should be one block")
	return [16]byte(b)
}

// --- Key schedule tests ---

// Expansion vectors from FIPS-197 appendix A. Each case checks the first
// round key (the key itself), one early derived round key, and the final
// round key.
func TestExpandKeyVectors(t *testing.T) {
	tests := []struct {
		name   string
		key    string
		blocks int
		first  string
		second string
		last   string
	}{
		{
			name:   "AES-128",
			key:    "2b7e151628aed2a6abf7158809cf4f3c",
			blocks: 11,
			first:  "2b7e151628aed2a6abf7158809cf4f3c",
			second: "a0fafe1788542cb123a339392a6c7605",
			last:   "d014f9a8c9ee2589e13f0cc8b6630ca6",
		},
		{
			name:   "AES-192",
			key:    "8e73b0f7da0e6452c810f32b809079e562f8ead2522c6b7b",
			blocks: 13,
			first:  "8e73b0f7da0e6452c810f32b809079e5",
			second: "62f8ead2522c6b7bfe0c91f72402f5a5",
			last:   "e98ba06f448c773c8ecc720401002202",
		},
		{
			name:   "AES-256",
			key:    "603deb1015ca71be2b73aef0857d77811f352c073b6108d72d9810a30914dff4",
			blocks: 15,
			first:  "603deb1015ca71be2b73aef0857d7781",
			second: "1f352c073b6108d72d9810a30914dff4",
			last:   "fe4890d1e6188d0b046df344706c631e",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			keys, err := ExpandKey(mustHex(t, tt.key))
			require.NoError(t, err, "expansion should succeed")
			require.Len(t, keys, tt.blocks, "round key count")

			assert.Equal(t, mustBlock(t, tt.first), keys[0], "round key 0")
			assert.Equal(t, mustBlock(t, tt.second), keys[1], "round key 1")
			assert.Equal(t, mustBlock(t, tt.last), keys[len(keys)-1], "final round key")
		})
	}
}

func TestExpandKeyInvalidSizes(t *testing.T) {
	for _, size := range []int{0, 1, 15, 17, 23, 25, 31, 33, 64} {
		_, err := ExpandKey(make([]byte, size))
		assert.ErrorIs(t, err, ErrInvalidKeySize, "size %d should be rejected", size)
	}
}

func TestExpandKeyDeterministic(t *testing.T) {
	key := mustHex(t, "000102030405060708090a0b0c0d0e0f1011121314151617")

	first, err := ExpandKey(key)
	require.NoError(t, err)
	second, err := ExpandKey(key)
	require.NoError(t, err)

	assert.Equal(t, first, second, "expanding the same key twice should match")
}

func TestExpandKeyCopiesInput(t *testing.T) {
	key := mustHex(t, "2b7e151628aed2a6abf7158809cf4f3c")

	keys, err := ExpandKey(key)
	require.NoError(t, err)
	want := keys[0]

	// Mutating the caller's key after expansion must not reach the schedule.
	for i := range key {
		key[i] = 0
	}
	assert.Equal(t, want, keys[0], "schedule should not alias the input key")
}
