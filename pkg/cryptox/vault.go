package cryptox

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"golang.org/x/crypto/hkdf"
)

// Vault ciphertext layout:
//
//	[1-byte version][16-byte IV][AES-256-CBC ciphertext, PKCS#7 padded][32-byte HMAC-SHA256 tag]
//
// The tag covers version, IV and ciphertext (encrypt-then-MAC).
const (
	vaultVersion1 byte = 0x01

	ivSize  = aes.BlockSize
	tagSize = sha256.Size

	vaultHeaderSize = 1 + ivSize
	vaultMinSize    = vaultHeaderSize + aes.BlockSize + tagSize
)

var (
	// ErrDecryptionFailed is the only error Decrypt returns. A wrong passphrase
	// and corrupted data are deliberately indistinguishable.
	ErrDecryptionFailed = errors.New("cryptox: decryption failed")
	ErrEncryptionFailed = errors.New("cryptox: encryption failed")
)

var (
	encKeyInfo = []byte("stash vault v1 aes-256-cbc")
	macKeyInfo = []byte("stash vault v1 hmac-sha256")
)

// Vault encrypts content under a passphrase-derived key. The passphrase is
// run through the same Hasher used for account credentials, then split into
// independent cipher and MAC keys with HKDF.
type Vault struct {
	hasher *Hasher
	rand   io.Reader
}

// NewVault returns a Vault deriving keys with h.
func NewVault(h *Hasher) *Vault {
	return &Vault{hasher: h, rand: rand.Reader}
}

func (v *Vault) deriveKeys(passphrase []byte) (encKey, macKey []byte, err error) {
	master := v.hasher.Hash(passphrase)
	defer wipe(master[:])

	encKey = make([]byte, 32)
	macKey = make([]byte, 32)
	if _, err := io.ReadFull(hkdf.New(sha256.New, master[:], nil, encKeyInfo), encKey); err != nil {
		return nil, nil, err
	}
	if _, err := io.ReadFull(hkdf.New(sha256.New, master[:], nil, macKeyInfo), macKey); err != nil {
		return nil, nil, err
	}
	return encKey, macKey, nil
}

// Encrypt seals plaintext under passphrase. Every call uses a fresh random
// IV, so equal inputs produce different ciphertexts.
func (v *Vault) Encrypt(plaintext, passphrase []byte) ([]byte, error) {
	encKey, macKey, err := v.deriveKeys(passphrase)
	if err != nil {
		return nil, fmt.Errorf("%w: derive keys: %w", ErrEncryptionFailed, err)
	}
	defer wipe(encKey)
	defer wipe(macKey)

	block, err := aes.NewCipher(encKey)
	if err != nil {
		return nil, fmt.Errorf("%w: create cipher: %w", ErrEncryptionFailed, err)
	}

	padded := pkcs7Pad(plaintext, aes.BlockSize)
	out := make([]byte, vaultHeaderSize+len(padded), vaultHeaderSize+len(padded)+tagSize)
	out[0] = vaultVersion1

	iv := out[1:vaultHeaderSize]
	if _, err := io.ReadFull(v.rand, iv); err != nil {
		return nil, fmt.Errorf("%w: generate iv: %w", ErrEncryptionFailed, err)
	}

	cipher.NewCBCEncrypter(block, iv).CryptBlocks(out[vaultHeaderSize:], padded)

	mac := hmac.New(sha256.New, macKey)
	mac.Write(out)
	return mac.Sum(out), nil
}

// Decrypt opens a ciphertext produced by Encrypt. Any failure, whatever the
// cause, is reported as ErrDecryptionFailed.
func (v *Vault) Decrypt(ciphertext, passphrase []byte) ([]byte, error) {
	if len(ciphertext) < vaultMinSize || ciphertext[0] != vaultVersion1 {
		return nil, ErrDecryptionFailed
	}
	body := ciphertext[:len(ciphertext)-tagSize]
	tag := ciphertext[len(ciphertext)-tagSize:]
	if (len(body)-vaultHeaderSize)%aes.BlockSize != 0 {
		return nil, ErrDecryptionFailed
	}

	encKey, macKey, err := v.deriveKeys(passphrase)
	if err != nil {
		return nil, ErrDecryptionFailed
	}
	defer wipe(encKey)
	defer wipe(macKey)

	mac := hmac.New(sha256.New, macKey)
	mac.Write(body)
	if !hmac.Equal(mac.Sum(nil), tag) {
		return nil, ErrDecryptionFailed
	}

	block, err := aes.NewCipher(encKey)
	if err != nil {
		return nil, ErrDecryptionFailed
	}

	iv := body[1:vaultHeaderSize]
	plaintext := make([]byte, len(body)-vaultHeaderSize)
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plaintext, body[vaultHeaderSize:])

	plaintext, ok := pkcs7Unpad(plaintext, aes.BlockSize)
	if !ok {
		return nil, ErrDecryptionFailed
	}
	return plaintext, nil
}

// EncryptString seals a text value.
func (v *Vault) EncryptString(plaintext, passphrase string) ([]byte, error) {
	return v.Encrypt([]byte(plaintext), []byte(passphrase))
}

// DecryptString opens a text value. Recovered bytes that are not valid UTF-8
// are treated exactly like a cipher failure.
func (v *Vault) DecryptString(ciphertext []byte, passphrase string) (string, error) {
	plaintext, err := v.Decrypt(ciphertext, []byte(passphrase))
	if err != nil {
		return "", ErrDecryptionFailed
	}
	if !utf8.Valid(plaintext) {
		return "", ErrDecryptionFailed
	}
	return string(plaintext), nil
}

func pkcs7Pad(b []byte, blockSize int) []byte {
	n := blockSize - len(b)%blockSize
	return append(bytes.Clone(b), bytes.Repeat([]byte{byte(n)}, n)...)
}

func pkcs7Unpad(b []byte, blockSize int) ([]byte, bool) {
	if len(b) == 0 || len(b)%blockSize != 0 {
		return nil, false
	}
	n := int(b[len(b)-1])
	if n == 0 || n > blockSize {
		return nil, false
	}
	var bad byte
	for _, p := range b[len(b)-n:] {
		bad |= p ^ byte(n)
	}
	if bad != 0 {
		return nil, false
	}
	return b[:len(b)-n], true
}

func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
