package address

import (
	"crypto/ecdsa"

	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
)

// tronAccountHashLength is the account hash size carried inside a Tron
// address payload (version byte excluded).
const tronAccountHashLength = 20

// TronFromPrivateKey derives a Tron mainnet address from a raw secp256k1
// private key. Tron uses the same key and hash scheme as Ethereum, then
// prefixes the 20-byte hash with 0x41 and Base58Check-encodes it
// (double SHA-256, 4-byte checksum).
func TronFromPrivateKey(key []byte) (string, error) {
	if len(key) != PrivateKeyLength {
		return "", errors.Wrapf(ErrInvalidPrivateKey, "expected %d bytes, got %d", PrivateKeyLength, len(key))
	}

	ecdsaPrivateKey, err := crypto.ToECDSA(key)
	if err != nil {
		return "", errors.Wrap(ErrInvalidPrivateKey, err.Error())
	}

	publicKey, ok := ecdsaPrivateKey.Public().(*ecdsa.PublicKey)
	if !ok {
		return "", errors.Wrap(ErrInvalidPrivateKey, "failed to cast public key to ECDSA")
	}

	// Keccak-256 over the uncompressed public key without the 0x04 prefix,
	// same as the EVM address hash.
	publicKeyBytes := crypto.FromECDSAPub(publicKey)
	hash := crypto.Keccak256(publicKeyBytes[1:])
	accountHash := hash[len(hash)-tronAccountHashLength:]

	return base58.CheckEncode(accountHash, TronVersionByte), nil
}

// isValidTron validates a Tron address: Base58Check decode must succeed,
// the version byte must be 0x41 and the payload must be 20 bytes.
func isValidTron(raw string) bool {
	decoded, version, err := base58.CheckDecode(raw)
	if err != nil {
		return false
	}

	return version == TronVersionByte && len(decoded) == tronAccountHashLength
}
