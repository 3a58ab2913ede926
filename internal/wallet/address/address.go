package address

import (
	"strings"

	"github.com/pkg/errors"
)

// FromPrivateKey derives the address for a tagged private key.
func FromPrivateKey(key PrivateKey) (string, error) {
	switch key.KeyType {
	case KeyTypeEVM:
		return EVMFromPrivateKey(key.Bytes)
	case KeyTypeTron:
		return TronFromPrivateKey(key.Bytes)
	default:
		return "", errors.Errorf("unsupported key type: %s", key.KeyType)
	}
}

// IsValid reports whether raw is a well-formed address for the given chain
// family. A string valid for one family never validates as the other: EVM
// addresses contain characters outside the Base58 alphabet and Tron
// addresses lack the 0x prefix.
func IsValid(raw string, keyType KeyType) bool {
	switch keyType {
	case KeyTypeEVM:
		return isValidEVM(raw)
	case KeyTypeTron:
		return isValidTron(raw)
	default:
		return false
	}
}

// FamilyOf infers the chain family of an address string from its shape:
// 0x-prefixed strings are EVM, everything else is Tron. Used where an
// address arrives untagged, such as blocklist rows.
func FamilyOf(raw string) KeyType {
	if strings.HasPrefix(raw, "0x") || strings.HasPrefix(raw, "0X") {
		return KeyTypeEVM
	}
	return KeyTypeTron
}

// Equal compares two addresses of the same family. EVM comparison is
// case-insensitive (checksum casing is presentation only); Tron comparison
// is exact since Base58 is case-sensitive. Cross-family comparison is
// always false.
func Equal(a string, aType KeyType, b string, bType KeyType) bool {
	if aType != bType {
		return false
	}
	if aType == KeyTypeEVM {
		return strings.EqualFold(a, b)
	}
	return a == b
}
