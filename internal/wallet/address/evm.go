package address

import (
	"crypto/ecdsa"
	"regexp"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
)

// ErrInvalidPrivateKey is returned when key material cannot produce a valid
// secp256k1 public key.
var ErrInvalidPrivateKey = errors.New("invalid private key")

var evmAddressPattern = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)

// EVMFromPrivateKey derives the EIP-55 checksummed address for a raw
// secp256k1 private key: Keccak-256 of the uncompressed public key, last
// 20 bytes, checksum casing applied.
func EVMFromPrivateKey(key []byte) (string, error) {
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

	return crypto.PubkeyToAddress(*publicKey).Hex(), nil
}

// isValidEVM validates the 0x-hex-40 shape and, for mixed-case input, the
// EIP-55 checksum. All-lowercase and all-uppercase hex parts are accepted as
// valid but unchecksummed.
func isValidEVM(raw string) bool {
	if !evmAddressPattern.MatchString(raw) {
		return false
	}

	hexPart := raw[2:]
	if hexPart == strings.ToLower(hexPart) || hexPart == strings.ToUpper(hexPart) {
		return true
	}

	// Mixed case must match the EIP-55 casing exactly.
	return common.HexToAddress(raw).Hex() == raw
}
