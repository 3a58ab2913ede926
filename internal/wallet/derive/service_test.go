package derive_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artlu99/velvet-wallet/internal/wallet/address"
	"github.com/artlu99/velvet-wallet/internal/wallet/derive"
	"github.com/artlu99/velvet-wallet/internal/wallet/mnemonic"
)

//nolint:dupword // BIP39 test mnemonic repeats words by construction
const testMnemonic = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

func testSeed(t *testing.T) []byte {
	t.Helper()

	seed, err := mnemonic.ToSeed(testMnemonic, "")
	require.NoError(t, err)
	return seed
}

func TestDeriveKnownVector(t *testing.T) {
	// m/44'/60'/0'/0/0 of the all-zero-entropy mnemonic is the canonical
	// test account used across wallet implementations.
	service := derive.NewService()
	ctx := context.Background()
	seed := testSeed(t)

	privateKey, err := service.DerivePrivateKey(ctx, seed, address.KeyTypeEVM, 0)
	require.NoError(t, err)

	assert.Equal(t, "0x1ab42cc412b618bdea3a599e3c9bae199ebf030895b039e9db1e30dafb12b727", privateKey.Hex())

	derivedAddress, err := address.FromPrivateKey(privateKey)
	require.NoError(t, err)
	assert.Equal(t, "0x9858EfFD232B4033E47d90003D41EC34EcaEda94", derivedAddress)
}

func TestDeriveKeyFormat(t *testing.T) {
	service := derive.NewService()
	ctx := context.Background()
	seed := testSeed(t)

	evmKey, err := service.DerivePrivateKey(ctx, seed, address.KeyTypeEVM, 0)
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^0x[0-9a-f]{64}$`), evmKey.Hex())

	tronKey, err := service.DerivePrivateKey(ctx, seed, address.KeyTypeTron, 0)
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]{64}$`), tronKey.Hex())

	// Different coin types must yield different keys at the same index.
	assert.NotEqual(t, evmKey.Bytes, tronKey.Bytes)
}

func TestDeriveIsDeterministic(t *testing.T) {
	service := derive.NewService()
	ctx := context.Background()
	seed := testSeed(t)

	for _, keyType := range []address.KeyType{address.KeyTypeEVM, address.KeyTypeTron} {
		for _, index := range []int64{0, 1, 7, 1 << 20} {
			first, err := service.DeriveAddress(ctx, seed, keyType, index)
			require.NoError(t, err)

			second, err := service.DeriveAddress(ctx, seed, keyType, index)
			require.NoError(t, err)

			assert.Equal(t, first, second, "key type %s index %d", keyType, index)
		}
	}
}

func TestDeriveDistinctIndicesYieldDistinctAddresses(t *testing.T) {
	service := derive.NewService()
	ctx := context.Background()
	seed := testSeed(t)

	seen := make(map[string]int64)
	indices := []int64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 1 << 20}

	for _, index := range indices {
		derivedAddress, err := service.DeriveAddress(ctx, seed, address.KeyTypeEVM, index)
		require.NoError(t, err)

		previous, collision := seen[derivedAddress]
		require.False(t, collision, "indices %d and %d collided on %s", previous, index, derivedAddress)
		seen[derivedAddress] = index
	}
}

func TestDeriveRejectsNegativeIndex(t *testing.T) {
	service := derive.NewService()
	seed := testSeed(t)

	_, err := service.DerivePrivateKey(context.Background(), seed, address.KeyTypeEVM, -1)
	require.Error(t, err)
	assert.ErrorIs(t, err, derive.ErrNegativeIndex)
}

func TestDeriveRejectsIndexAtHardenedCeiling(t *testing.T) {
	service := derive.NewService()
	seed := testSeed(t)

	_, err := service.DerivePrivateKey(context.Background(), seed, address.KeyTypeEVM, derive.HardenedIndexCeiling)
	require.Error(t, err)
	assert.ErrorIs(t, err, derive.ErrIndexOutOfRange)
}

func TestDeriveRejectsInvalidSeed(t *testing.T) {
	service := derive.NewService()

	_, err := service.DerivePrivateKey(context.Background(), []byte{0x01, 0x02}, address.KeyTypeEVM, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, derive.ErrInvalidSeed)
}

func TestPath(t *testing.T) {
	service := derive.NewService()

	assert.Equal(t, "m/44'/60'/0'/0/0", service.Path(address.KeyTypeEVM, 0))
	assert.Equal(t, "m/44'/60'/0'/0/42", service.Path(address.KeyTypeEVM, 42))
	assert.Equal(t, "m/44'/195'/0'/0/0", service.Path(address.KeyTypeTron, 0))
	assert.Equal(t, "m/44'/195'/0'/0/7", service.Path(address.KeyTypeTron, 7))
}

func TestTronAddressShape(t *testing.T) {
	service := derive.NewService()
	ctx := context.Background()
	seed := testSeed(t)

	tronAddress, err := service.DeriveAddress(ctx, seed, address.KeyTypeTron, 0)
	require.NoError(t, err)

	assert.True(t, address.IsValid(tronAddress, address.KeyTypeTron), "derived Tron address must pass Base58Check validation: %s", tronAddress)
	assert.Equal(t, byte('T'), tronAddress[0])
	assert.False(t, address.IsValid(tronAddress, address.KeyTypeEVM))
}
