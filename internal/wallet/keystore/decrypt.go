package keystore

import (
	"encoding/hex"
	"encoding/json"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
	"golang.org/x/crypto/scrypt"
)

// ErrMACMismatch is returned when the password is wrong or the keystore
// payload was tampered with.
var ErrMACMismatch = errors.New("invalid password: MAC mismatch")

// DecryptPrivateKey decrypts a keystore v3 JSON string back to raw private
// key bytes. The MAC is verified before any plaintext is produced.
// WARNING: Caller must zeroize the returned key after use.
func DecryptPrivateKey(encoded string, password string) ([]byte, error) {
	var keystoreJSON KeystoreJSON
	if err := json.Unmarshal([]byte(encoded), &keystoreJSON); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal keystore JSON")
	}

	salt, err := hex.DecodeString(keystoreJSON.Crypto.KDFParams.Salt)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode salt")
	}

	//nolint:varnamelen // iv is a common abbreviation for initialization vector
	iv, err := hex.DecodeString(keystoreJSON.Crypto.CipherParams.IV)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode IV")
	}

	ciphertext, err := hex.DecodeString(keystoreJSON.Crypto.Ciphertext)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode ciphertext")
	}

	expectedMAC, err := hex.DecodeString(keystoreJSON.Crypto.MAC)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode MAC")
	}

	derivedKey, err := scrypt.Key(
		[]byte(password),
		salt,
		keystoreJSON.Crypto.KDFParams.N,
		keystoreJSON.Crypto.KDFParams.R,
		keystoreJSON.Crypto.KDFParams.P,
		keystoreJSON.Crypto.KDFParams.DKLen,
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to derive key")
	}

	mac := calculateMAC(derivedKey[16:32], ciphertext)
	if !constantTimeCompare(mac, expectedMAC) {
		return nil, ErrMACMismatch
	}

	plaintext, err := applyAES128CTR(derivedKey[:16], iv, ciphertext)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decrypt private key")
	}

	return plaintext, nil
}

// calculateMAC calculates Keccak-256(derivedKey[16:32] + ciphertext), the
// Ethereum keystore v3 MAC.
func calculateMAC(key []byte, ciphertext []byte) []byte {
	return crypto.Keccak256(key, ciphertext)
}

// constantTimeCompare performs constant-time comparison of two byte slices
//
//nolint:varnamelen // a and b are standard parameter names for comparison functions
func constantTimeCompare(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}

	result := 0
	for i := 0; i < len(a); i++ {
		result |= int(a[i] ^ b[i])
	}

	return result == 0
}
