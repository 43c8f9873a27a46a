package cryptox_test

import (
	"bytes"
	"testing"

	"github.com/aussiebroadwan/stash/pkg/cryptox"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
)

func TestVault_RoundTrip(t *testing.T) {
	v := cryptox.NewVault(newTestHasher(t))

	ct, err := v.EncryptString("hello world", "swordfish")
	require.NoError(t, err)
	require.NotContains(t, string(ct), "hello world")

	pt, err := v.DecryptString(ct, "swordfish")
	require.NoError(t, err)
	require.Equal(t, "hello world", pt)
}

func TestVault_WrongPassphrase(t *testing.T) {
	v := cryptox.NewVault(newTestHasher(t))

	ct, err := v.EncryptString("hello world", "swordfish")
	require.NoError(t, err)

	_, err = v.DecryptString(ct, "sw0rdfish")
	require.ErrorIs(t, err, cryptox.ErrDecryptionFailed)
	require.Equal(t, cryptox.ErrDecryptionFailed, err)
}

func TestVault_EmptyPlaintext(t *testing.T) {
	v := cryptox.NewVault(newTestHasher(t))

	ct, err := v.Encrypt(nil, []byte("pass"))
	require.NoError(t, err)
	require.Len(t, ct, 1+16+16+32)

	pt, err := v.Decrypt(ct, []byte("pass"))
	require.NoError(t, err)
	require.Empty(t, pt)
}

func TestVault_RandomIV(t *testing.T) {
	v := cryptox.NewVault(newTestHasher(t))

	a, err := v.EncryptString("same", "key")
	require.NoError(t, err)
	b, err := v.EncryptString("same", "key")
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}

func TestVault_Layout(t *testing.T) {
	v := cryptox.NewVault(newTestHasher(t))

	ct, err := v.Encrypt(bytes.Repeat([]byte("a"), 16), []byte("key"))
	require.NoError(t, err)
	require.Equal(t, byte(0x01), ct[0])
	// A full block of plaintext gains a full block of padding.
	require.Len(t, ct, 1+16+32+32)
}

func TestVault_DifferentSaltCannotDecrypt(t *testing.T) {
	v1 := cryptox.NewVault(newTestHasher(t))

	other, err := cryptox.ParseSalt("another-salt")
	require.NoError(t, err)
	v2 := cryptox.NewVault(cryptox.NewHasher(other))

	ct, err := v1.EncryptString("data", "pass")
	require.NoError(t, err)

	_, err = v2.DecryptString(ct, "pass")
	require.Equal(t, cryptox.ErrDecryptionFailed, err)
}

func TestVault_CorruptInput(t *testing.T) {
	v := cryptox.NewVault(newTestHasher(t))

	ct, err := v.EncryptString("attack at dawn", "pass")
	require.NoError(t, err)

	badVersion := bytes.Clone(ct)
	badVersion[0] = 0x02

	flippedIV := bytes.Clone(ct)
	flippedIV[3] ^= 0x01

	flippedBody := bytes.Clone(ct)
	flippedBody[20] ^= 0x80

	flippedTag := bytes.Clone(ct)
	flippedTag[len(flippedTag)-1] ^= 0x01

	tests := []struct {
		name string
		data []byte
	}{
		{"nil", nil},
		{"empty", []byte{}},
		{"version only", []byte{0x01}},
		{"truncated", ct[:len(ct)-1]},
		{"unaligned", append(bytes.Clone(ct[:len(ct)-32]), append([]byte{0}, ct[len(ct)-32:]...)...)},
		{"unknown version", badVersion},
		{"flipped iv", flippedIV},
		{"flipped ciphertext", flippedBody},
		{"flipped tag", flippedTag},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := v.Decrypt(tt.data, []byte("pass"))
			require.Equal(t, cryptox.ErrDecryptionFailed, err)
		})
	}
}

func TestVault_InvalidUTF8(t *testing.T) {
	v := cryptox.NewVault(newTestHasher(t))

	ct, err := v.Encrypt([]byte{0xff, 0xfe, 0xfd}, []byte("pass"))
	require.NoError(t, err)

	raw, err := v.Decrypt(ct, []byte("pass"))
	require.NoError(t, err)
	require.Equal(t, []byte{0xff, 0xfe, 0xfd}, raw)

	_, err = v.DecryptString(ct, "pass")
	require.Equal(t, cryptox.ErrDecryptionFailed, err)
}

// Decrypt(Encrypt(m, k), k) == m for any message and passphrase, and a
// different passphrase never opens it.
func TestVaultProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 25
	properties := gopter.NewProperties(parameters)

	v := cryptox.NewVault(newTestHasher(t))

	properties.Property("round-trip recovers the plaintext", prop.ForAll(
		func(msg []byte, pass string) bool {
			ct, err := v.Encrypt(msg, []byte(pass))
			if err != nil {
				return false
			}
			pt, err := v.Decrypt(ct, []byte(pass))
			return err == nil && bytes.Equal(pt, msg)
		},
		gen.SliceOf(gen.UInt8()),
		gen.AnyString(),
	))

	properties.Property("wrong passphrase fails", prop.ForAll(
		func(msg string, pass string) bool {
			ct, err := v.EncryptString(msg, pass)
			if err != nil {
				return false
			}
			_, err = v.DecryptString(ct, pass+"!")
			return err == cryptox.ErrDecryptionFailed
		},
		gen.AnyString(),
		gen.AlphaString(),
	))

	properties.TestingRun(t)
}
