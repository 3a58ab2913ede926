package address_test

import (
	"strings"
	"testing"

	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artlu99/velvet-wallet/internal/wallet/address"
)

// checksummedAddress carries a correct EIP-55 casing (the canonical test
// account for the all-zero-entropy mnemonic).
const checksummedAddress = "0x9858EfFD232B4033E47d90003D41EC34EcaEda94"

func TestIsValidEVMChecksummed(t *testing.T) {
	assert.True(t, address.IsValid(checksummedAddress, address.KeyTypeEVM))
}

func TestIsValidEVMUnchecksummedCases(t *testing.T) {
	lower := "0x" + strings.ToLower(checksummedAddress[2:])
	upper := "0x" + strings.ToUpper(checksummedAddress[2:])

	assert.True(t, address.IsValid(lower, address.KeyTypeEVM))
	assert.True(t, address.IsValid(upper, address.KeyTypeEVM))
}

func TestIsValidEVMRejectsWrongChecksumCasing(t *testing.T) {
	// Flip the case of one checksummed letter.
	broken := strings.Replace(checksummedAddress, "Ef", "eF", 1)
	require.NotEqual(t, checksummedAddress, broken)

	assert.False(t, address.IsValid(broken, address.KeyTypeEVM))
}

func TestIsValidEVMRejectsMalformed(t *testing.T) {
	lower := "0x" + strings.ToLower(checksummedAddress[2:])

	assert.False(t, address.IsValid(lower[:len(lower)-1], address.KeyTypeEVM), "one char short")
	assert.False(t, address.IsValid(lower+"a", address.KeyTypeEVM), "one char long")
	assert.False(t, address.IsValid(lower[2:], address.KeyTypeEVM), "missing 0x prefix")
	assert.False(t, address.IsValid("0x"+strings.Repeat("g", 40), address.KeyTypeEVM), "non-hex characters")
	assert.False(t, address.IsValid("", address.KeyTypeEVM))
}

func TestIsValidTron(t *testing.T) {
	// Well-known mainnet contract address (USDT).
	valid := "TR7NHqjeKQxGTCi8q8ZY4pL8otSzgjLj6t"
	assert.True(t, address.IsValid(valid, address.KeyTypeTron))

	// Any single-character change breaks the 4-byte checksum.
	broken := valid[:len(valid)-1] + "u"
	assert.False(t, address.IsValid(broken, address.KeyTypeTron))

	assert.False(t, address.IsValid(valid[:len(valid)-1], address.KeyTypeTron), "truncated")
	assert.False(t, address.IsValid("", address.KeyTypeTron))
}

func TestIsValidTronConstructed(t *testing.T) {
	payload := make([]byte, 20)
	for i := range payload {
		payload[i] = byte(i)
	}

	encoded := base58.CheckEncode(payload, address.TronVersionByte)
	assert.True(t, address.IsValid(encoded, address.KeyTypeTron))

	// Same payload with a non-Tron version byte must not validate.
	wrongVersion := base58.CheckEncode(payload, 0x00)
	assert.False(t, address.IsValid(wrongVersion, address.KeyTypeTron))
}

func TestCrossFamilyValidationIsAlwaysFalse(t *testing.T) {
	tron := "TR7NHqjeKQxGTCi8q8ZY4pL8otSzgjLj6t"

	assert.False(t, address.IsValid(checksummedAddress, address.KeyTypeTron))
	assert.False(t, address.IsValid(tron, address.KeyTypeEVM))
}

func TestEqual(t *testing.T) {
	lower := "0x" + strings.ToLower(checksummedAddress[2:])
	tron := "TR7NHqjeKQxGTCi8q8ZY4pL8otSzgjLj6t"

	assert.True(t, address.Equal(checksummedAddress, address.KeyTypeEVM, lower, address.KeyTypeEVM))
	assert.True(t, address.Equal(tron, address.KeyTypeTron, tron, address.KeyTypeTron))
	assert.False(t, address.Equal(tron, address.KeyTypeTron, strings.ToLower(tron), address.KeyTypeTron), "Base58 is case-sensitive")
	assert.False(t, address.Equal(checksummedAddress, address.KeyTypeEVM, tron, address.KeyTypeTron), "cross-family comparison")
}

func TestFromPrivateKeyRejectsBadKey(t *testing.T) {
	_, err := address.EVMFromPrivateKey([]byte{0x01})
	require.Error(t, err)
	assert.ErrorIs(t, err, address.ErrInvalidPrivateKey)

	_, err = address.TronFromPrivateKey(make([]byte, 31))
	require.Error(t, err)
	assert.ErrorIs(t, err, address.ErrInvalidPrivateKey)

	// All-zero 32 bytes is not a valid scalar.
	_, err = address.EVMFromPrivateKey(make([]byte, 32))
	assert.Error(t, err)
}

func TestPrivateKeyStringIsRedacted(t *testing.T) {
	key := address.PrivateKey{KeyType: address.KeyTypeEVM, Bytes: []byte{0xaa, 0xbb}}
	assert.NotContains(t, key.String(), "aabb")
}

func TestPrivateKeyZero(t *testing.T) {
	key := address.PrivateKey{KeyType: address.KeyTypeEVM, Bytes: []byte{0xaa, 0xbb}}
	key.Zero()
	assert.Equal(t, []byte{0x00, 0x00}, key.Bytes)
}

func TestFamilyOf(t *testing.T) {
	assert.Equal(t, address.KeyTypeEVM, address.FamilyOf(checksummedAddress))
	assert.Equal(t, address.KeyTypeEVM, address.FamilyOf("0X9858EFFD232B4033E47D90003D41EC34ECAEDA94"))
	assert.Equal(t, address.KeyTypeTron, address.FamilyOf("TR7NHqjeKQxGTCi8q8ZY4pL8otSzgjLj6t"))
	assert.Equal(t, address.KeyTypeTron, address.FamilyOf(""))
}
