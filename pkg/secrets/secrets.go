package secrets

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"io"

	"golang.org/x/crypto/hkdf"
)

// KeySize is the required length of both input keys.
const KeySize = 32

var hkdfInfo = []byte("pdi-secrets-v1")

// GenerateKey returns a random 32-byte key.
func GenerateKey() ([]byte, error) {
	key := make([]byte, KeySize)
	if _, err := rand.Read(key); err != nil {
		return nil, err
	}
	return key, nil
}

// EncryptString encrypts plaintext and returns base64 (std encoding) ciphertext.
func EncryptString(appKey, workspaceKey []byte, plaintext string) (string, error) {
	out, err := EncryptBytes(appKey, workspaceKey, []byte(plaintext))
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(out), nil
}

// DecryptString reverses EncryptString.
func DecryptString(appKey, workspaceKey []byte, ciphertext string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", errors.Join(ErrInvalidCiphertext, err)
	}
	out, err := DecryptBytes(appKey, workspaceKey, raw)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// EncryptBytes encrypts data with AES-256-GCM. The nonce is prepended to the output.
func EncryptBytes(appKey, workspaceKey, data []byte) ([]byte, error) {
	gcm, err := newGCM(appKey, workspaceKey)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, errors.Join(ErrEncryptionFailed, err)
	}

	return gcm.Seal(nonce, nonce, data, nil), nil
}

// DecryptBytes decrypts output of EncryptBytes.
func DecryptBytes(appKey, workspaceKey, data []byte) ([]byte, error) {
	gcm, err := newGCM(appKey, workspaceKey)
	if err != nil {
		return nil, err
	}

	ns := gcm.NonceSize()
	if len(data) < ns+gcm.Overhead() {
		return nil, ErrInvalidCiphertext
	}

	out, err := gcm.Open(nil, data[:ns], data[ns:], nil)
	if err != nil {
		return nil, errors.Join(ErrDecryptionFailed, err)
	}
	return out, nil
}

func newGCM(appKey, workspaceKey []byte) (cipher.AEAD, error) {
	if len(appKey) != KeySize {
		return nil, ErrInvalidAppKey
	}
	if len(workspaceKey) != KeySize {
		return nil, ErrInvalidWorkspaceKey
	}

	key, err := deriveKey(appKey, workspaceKey)
	if err != nil {
		return nil, err
	}
	defer clear(key)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, errors.Join(ErrEncryptionFailed, err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, errors.Join(ErrEncryptionFailed, err)
	}
	return gcm, nil
}

// deriveKey combines both keys with HKDF-SHA256: the app key is the secret
// and the workspace key the salt.
func deriveKey(appKey, workspaceKey []byte) ([]byte, error) {
	r := hkdf.New(sha256.New, appKey, workspaceKey, hkdfInfo)
	key := make([]byte, KeySize)
	if _, err := io.ReadFull(r, key); err != nil {
		return nil, errors.Join(ErrKeyDerivationFailed, err)
	}
	return key, nil
}
