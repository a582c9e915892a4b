package envelope

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/june-in-exile/will-sub000/aesgcm"
)

func testKey() []byte {
	key := make([]byte, KeyLen)
	for i := range key {
		key[i] = byte(i + 1)
	}
	return key
}

// --- Seal/Open tests ---

func TestSealOpenRoundTrip(t *testing.T) {
	plaintext := []byte("I leave my engram collection to the city library")

	for _, alg := range []Algorithm{AES256GCM, ChaCha20Poly1305} {
		t.Run(alg.String(), func(t *testing.T) {
			env, err := Seal(plaintext, testKey(), alg)
			require.NoError(t, err, "seal should succeed")

			assert.Equal(t, alg, env.Algorithm)
			assert.Len(t, env.IV, IVLen)
			assert.Len(t, env.AuthTag, TagLen)
			assert.Len(t, env.Ciphertext, len(plaintext))

			opened, err := Open(env, testKey())
			require.NoError(t, err, "open should succeed")
			assert.Equal(t, plaintext, opened)
		})
	}
}

func TestSealEmptyPlaintext(t *testing.T) {
	env, err := Seal(nil, testKey(), AES256GCM)
	require.NoError(t, err)
	assert.Empty(t, env.Ciphertext)
	assert.Len(t, env.AuthTag, TagLen, "empty payloads are still authenticated")

	opened, err := Open(env, testKey())
	require.NoError(t, err)
	assert.Empty(t, opened)
}

func TestSealGeneratesFreshIVs(t *testing.T) {
	plaintext := []byte("same plaintext")

	first, err := Seal(plaintext, testKey(), AES256GCM)
	require.NoError(t, err)
	second, err := Seal(plaintext, testKey(), AES256GCM)
	require.NoError(t, err)

	assert.NotEqual(t, first.IV, second.IV, "IVs must never repeat")
	assert.NotEqual(t, first.Ciphertext, second.Ciphertext)
}

func TestSealValidation(t *testing.T) {
	_, err := Seal([]byte("x"), make([]byte, 16), AES256GCM)
	assert.ErrorIs(t, err, ErrInvalidKeySize, "short key")

	_, err = Seal([]byte("x"), testKey(), Algorithm(99))
	assert.ErrorIs(t, err, ErrUnsupportedAlgorithm, "unknown algorithm")
}

func TestOpenAuthenticationFailure(t *testing.T) {
	for _, alg := range []Algorithm{AES256GCM, ChaCha20Poly1305} {
		t.Run(alg.String(), func(t *testing.T) {
			env, err := Seal([]byte("sealed will"), testKey(), alg)
			require.NoError(t, err)

			tampered := *env
			tampered.AuthTag = append([]byte{}, env.AuthTag...)
			tampered.AuthTag[0] ^= 0x01
			_, err = Open(&tampered, testKey())
			assert.ErrorIs(t, err, ErrAuthenticationFailed, "tag tamper")

			if len(env.Ciphertext) > 0 {
				tampered = *env
				tampered.Ciphertext = append([]byte{}, env.Ciphertext...)
				tampered.Ciphertext[0] ^= 0x01
				_, err = Open(&tampered, testKey())
				assert.ErrorIs(t, err, ErrAuthenticationFailed, "ciphertext tamper")
			}

			wrongKey := testKey()
			wrongKey[0] ^= 0xff
			_, err = Open(env, wrongKey)
			assert.ErrorIs(t, err, ErrAuthenticationFailed, "wrong key")
		})
	}
}

// The AES path surfaces the engine's own sentinel through the wrapper.
func TestOpenSurfacesEngineError(t *testing.T) {
	env, err := Seal([]byte("payload"), testKey(), AES256GCM)
	require.NoError(t, err)

	env.AuthTag[0] ^= 0x01
	_, err = Open(env, testKey())
	assert.ErrorIs(t, err, aesgcm.ErrAuthenticationFailed)
}

func TestOpenAlgorithmBinding(t *testing.T) {
	env, err := Seal([]byte("payload"), testKey(), AES256GCM)
	require.NoError(t, err)

	// Rewriting the algorithm field must not yield plaintext.
	env.Algorithm = ChaCha20Poly1305
	_, err = Open(env, testKey())
	assert.ErrorIs(t, err, ErrAuthenticationFailed)
}

func TestOpenValidation(t *testing.T) {
	valid, err := Seal([]byte("payload"), testKey(), AES256GCM)
	require.NoError(t, err)

	_, err = Open(nil, testKey())
	assert.ErrorIs(t, err, ErrInvalidEnvelope, "nil envelope")

	_, err = Open(valid, make([]byte, 31))
	assert.ErrorIs(t, err, ErrInvalidKeySize, "short key")

	badIV := *valid
	badIV.IV = valid.IV[:8]
	_, err = Open(&badIV, testKey())
	assert.ErrorIs(t, err, ErrInvalidEnvelope, "truncated IV")

	badTag := *valid
	badTag.AuthTag = valid.AuthTag[:15]
	_, err = Open(&badTag, testKey())
	assert.ErrorIs(t, err, ErrInvalidEnvelope, "truncated tag")
}

// --- JSON tests ---

func TestEnvelopeJSON(t *testing.T) {
	plaintext := []byte("notarize and pin")

	env, err := Seal(plaintext, testKey(), AES256GCM)
	require.NoError(t, err)

	data, err := Marshal(env)
	require.NoError(t, err)

	// Stored field names are part of the interchange format.
	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))
	for _, field := range []string{"algorithm", "iv", "authTag", "ciphertext", "timestamp"} {
		assert.Contains(t, raw, field)
	}
	assert.Contains(t, string(data), `"algorithm":"aes-256-gcm"`)

	parsed, err := Unmarshal(data)
	require.NoError(t, err)

	opened, err := Open(parsed, testKey())
	require.NoError(t, err)
	assert.Equal(t, plaintext, opened)
}

func TestUnmarshalUnknownAlgorithm(t *testing.T) {
	_, err := Unmarshal([]byte(`{"algorithm":"des-ecb","iv":"","authTag":"","ciphertext":"","timestamp":""}`))
	assert.ErrorIs(t, err, ErrUnsupportedAlgorithm)
}

func TestUnmarshalMalformed(t *testing.T) {
	_, err := Unmarshal([]byte(`not json`))
	assert.ErrorIs(t, err, ErrInvalidEnvelope, "malformed JSON")

	_, err = Unmarshal([]byte(`{"algorithm":"aes-256-gcm","iv":"!!!","authTag":"","ciphertext":"","timestamp":""}`))
	assert.ErrorIs(t, err, ErrInvalidEnvelope, "malformed base64")
}

func TestTimestampFormat(t *testing.T) {
	env, err := Seal([]byte("x"), testKey(), AES256GCM)
	require.NoError(t, err)

	ts, err := time.Parse(time.RFC3339, env.Timestamp)
	require.NoError(t, err, "timestamp should be RFC 3339")
	assert.True(t, strings.HasSuffix(env.Timestamp, "Z"), "timestamp should be UTC")
	assert.WithinDuration(t, time.Now().UTC(), ts, time.Minute)
}

// --- Algorithm tests ---

func TestParseAlgorithm(t *testing.T) {
	tests := []struct {
		in      string
		want    Algorithm
		wantErr bool
	}{
		{in: "aes-256-gcm", want: AES256GCM},
		{in: "chacha20-poly1305", want: ChaCha20Poly1305},
		{in: "AES-256-GCM", wantErr: true},
		{in: "", wantErr: true},
		{in: "rot13", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseAlgorithm(tt.in)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrUnsupportedAlgorithm, "input %q", tt.in)
			continue
		}
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got)
		assert.Equal(t, tt.in, got.String(), "String should round-trip the wire name")
	}
}
