package cryptox

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateKey(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"signing key", KeySize},
		{"short key", 16},
		{"long key", 64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := GenerateKey(tt.size)
			require.NoError(t, err)
			require.Len(t, key, tt.size)

			key2, err := GenerateKey(tt.size)
			require.NoError(t, err)
			require.NotEqual(t, key, key2, "keys should be unique")
		})
	}
}

func TestGenerateKey_InvalidSize(t *testing.T) {
	for _, size := range []int{0, -1} {
		key, err := GenerateKey(size)
		require.Error(t, err)
		require.Nil(t, key)
	}
}

func TestEncodeDecodeKey(t *testing.T) {
	key, err := GenerateKey(KeySize)
	require.NoError(t, err)

	text := EncodeKey(key)
	require.Len(t, text, 43)

	got, err := DecodeKey(text + "\n")
	require.NoError(t, err)
	require.Equal(t, key, got)
}

func TestDecodeKey_Invalid(t *testing.T) {
	_, err := DecodeKey("")
	require.Error(t, err)

	_, err = DecodeKey("not base64!")
	require.Error(t, err)
}

func TestFingerprintToken(t *testing.T) {
	fp1a := FingerprintToken("test-token-1")
	fp1b := FingerprintToken("test-token-1")
	fp2 := FingerprintToken("test-token-2")

	require.Equal(t, fp1a, fp1b, "fingerprint should be deterministic")
	require.NotEqual(t, fp1a, fp2)
	require.Len(t, fp1a, 16)
}
