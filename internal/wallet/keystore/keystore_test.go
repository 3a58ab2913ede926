package keystore_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artlu99/velvet-wallet/internal/wallet/keystore"
)

func testKey() []byte {
	key := make([]byte, 32)
	for i := range key {
		key[i] = byte(i + 1)
	}
	return key
}

func TestEncryptDecryptRoundtrip(t *testing.T) {
	key := testKey()

	encrypted, err := keystore.EncryptPrivateKey(key, "correct horse battery staple")
	require.NoError(t, err)

	decrypted, err := keystore.DecryptPrivateKey(encrypted, "correct horse battery staple")
	require.NoError(t, err)
	assert.Equal(t, key, decrypted)
}

func TestDecryptRejectsWrongPassword(t *testing.T) {
	encrypted, err := keystore.EncryptPrivateKey(testKey(), "right password")
	require.NoError(t, err)

	_, err = keystore.DecryptPrivateKey(encrypted, "wrong password")
	require.Error(t, err)
	assert.ErrorIs(t, err, keystore.ErrMACMismatch)
}

func TestEncryptedPayloadIsKeystoreV3(t *testing.T) {
	encrypted, err := keystore.EncryptPrivateKey(testKey(), "pw")
	require.NoError(t, err)

	var payload keystore.KeystoreJSON
	require.NoError(t, json.Unmarshal([]byte(encrypted), &payload))

	assert.Equal(t, 3, payload.Version)
	assert.NotEmpty(t, payload.ID)
	assert.Equal(t, "aes-128-ctr", payload.Crypto.Cipher)
	assert.Equal(t, "scrypt", payload.Crypto.KDF)
	assert.NotEmpty(t, payload.Crypto.MAC)
	assert.NotEmpty(t, payload.Crypto.Ciphertext)
}

func TestEncryptUsesFreshSaltAndIV(t *testing.T) {
	key := testKey()

	first, err := keystore.EncryptPrivateKey(key, "pw")
	require.NoError(t, err)
	second, err := keystore.EncryptPrivateKey(key, "pw")
	require.NoError(t, err)

	// Same plaintext and password must never produce the same ciphertext.
	assert.NotEqual(t, first, second)
}

func TestDecryptRejectsGarbage(t *testing.T) {
	_, err := keystore.DecryptPrivateKey("not json", "pw")
	assert.Error(t, err)
}
