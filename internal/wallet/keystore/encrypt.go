// Package keystore encrypts derived private keys into the Ethereum
// keystore v3 format before they are handed to the storage collaborator as
// an EoaRecord's encrypted key field.
package keystore

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/crypto/scrypt"
)

// EncryptPrivateKey encrypts raw private key bytes with a password using
// scrypt and AES-128-CTR, returning the keystore v3 JSON as a string.
func EncryptPrivateKey(privateKey []byte, password string) (string, error) {
	keystoreJSON, err := encryptToKeystore(privateKey, password)
	if err != nil {
		return "", err
	}

	encoded, err := json.Marshal(keystoreJSON)
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal keystore JSON")
	}

	return string(encoded), nil
}

//nolint:varnamelen // iv is a common abbreviation for initialization vector
func encryptToKeystore(plaintext []byte, password string) (*KeystoreJSON, error) {
	//nolint:mnd // 32 is the standard salt size for scrypt
	salt := make([]byte, 32)
	if _, err := rand.Read(salt); err != nil {
		return nil, errors.Wrap(err, "failed to generate salt")
	}

	//nolint:mnd // 16 is the standard IV size for AES-128-CTR
	iv := make([]byte, 16)
	if _, err := rand.Read(iv); err != nil {
		return nil, errors.Wrap(err, "failed to generate IV")
	}

	params := DefaultScryptParams()
	params.Salt = salt

	derivedKey, err := scrypt.Key([]byte(password), salt, params.N, params.R, params.P, params.DKLen)
	if err != nil {
		return nil, errors.Wrap(err, "failed to derive key")
	}

	ciphertext, err := applyAES128CTR(derivedKey[:16], iv, plaintext)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encrypt private key")
	}

	mac := calculateMAC(derivedKey[16:32], ciphertext)

	keystoreJSON := &KeystoreJSON{
		//nolint:mnd // 3 is the Ethereum keystore v3 version number
		Version: 3,
		ID:      uuid.New().String(),
	}

	keystoreJSON.Crypto.Ciphertext = hex.EncodeToString(ciphertext)
	keystoreJSON.Crypto.CipherParams.IV = hex.EncodeToString(iv)
	keystoreJSON.Crypto.Cipher = "aes-128-ctr"
	keystoreJSON.Crypto.KDF = "scrypt"
	keystoreJSON.Crypto.KDFParams.DKLen = params.DKLen
	keystoreJSON.Crypto.KDFParams.Salt = hex.EncodeToString(salt)
	keystoreJSON.Crypto.KDFParams.N = params.N
	keystoreJSON.Crypto.KDFParams.R = params.R
	keystoreJSON.Crypto.KDFParams.P = params.P
	keystoreJSON.Crypto.MAC = hex.EncodeToString(mac)

	return keystoreJSON, nil
}

// applyAES128CTR runs AES-128-CTR over data; CTR mode is symmetric so the
// same function encrypts and decrypts.
//
//nolint:varnamelen // iv is a common abbreviation for initialization vector
func applyAES128CTR(key []byte, iv []byte, data []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create cipher")
	}

	out := make([]byte, len(data))
	stream := cipher.NewCTR(block, iv)
	stream.XORKeyStream(out, data)

	return out, nil
}
