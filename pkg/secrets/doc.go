// Package secrets encrypts small values with AES-256-GCM under a key derived
// from two 32-byte keys with HKDF-SHA256.
//
// The file credential store uses it to keep the session token unreadable at
// rest: one key belongs to the application, the other to the device.
//
//	appKey, _ := secrets.GenerateKey()
//	deviceKey, _ := secrets.GenerateKey()
//
//	sealed, err := secrets.EncryptString(appKey, deviceKey, token)
//	token, err = secrets.DecryptString(appKey, deviceKey, sealed)
//
// The output carries a fresh random nonce, so encrypting the same value twice
// gives different ciphertexts. Decrypting with the wrong keys or a tampered
// ciphertext fails with ErrDecryptionFailed.
package secrets
