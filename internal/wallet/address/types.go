// Package address derives and validates chain-family-tagged wallet
// addresses. EVM addresses are hex strings with EIP-55 checksum casing;
// Tron addresses are Base58Check strings with version byte 0x41.
package address

import "encoding/hex"

// KeyType tags keys and addresses with their chain family. An address is
// always paired with exactly one KeyType; cross-family comparison is false.
type KeyType string

const (
	KeyTypeEVM  KeyType = "evm"
	KeyTypeTron KeyType = "tron"
)

// Valid reports whether k is a known chain family.
func (k KeyType) Valid() bool {
	return k == KeyTypeEVM || k == KeyTypeTron
}

// PrivateKeyLength is the raw secp256k1 private key size in bytes.
const PrivateKeyLength = 32

// TronVersionByte prefixes the 20-byte account hash before Base58Check
// encoding on Tron mainnet.
const TronVersionByte = 0x41

// PrivateKey is a 32-byte secp256k1 key tagged with its chain family. It is
// never logged; String is deliberately redacted.
type PrivateKey struct {
	KeyType KeyType
	Bytes   []byte
}

// Hex formats the key the way its chain family expects: EVM keys are
// 0x-prefixed, Tron keys are bare hex.
func (p PrivateKey) Hex() string {
	encoded := hex.EncodeToString(p.Bytes)
	if p.KeyType == KeyTypeEVM {
		return "0x" + encoded
	}
	return encoded
}

func (p PrivateKey) String() string {
	return "PrivateKey(redacted)"
}

// Zero overwrites the key material in place.
func (p *PrivateKey) Zero() {
	for i := range p.Bytes {
		p.Bytes[i] = 0
	}
}
