package chain_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artlu99/velvet-wallet/internal/wallet/chain"
	"github.com/artlu99/velvet-wallet/internal/wallet/walleterrors"
)

func TestValidateChainIDAcceptsEVMChainsEverywhere(t *testing.T) {
	kinds := []chain.Kind{chain.KindBalance, chain.KindENS, chain.KindTxCount, chain.KindGasEstimate}

	for _, kind := range kinds {
		for _, raw := range []string{"1", "8453"} {
			id, err := chain.ValidateChainID(raw, kind)
			require.NoError(t, err, "kind %s raw %s", kind, raw)
			assert.Equal(t, chain.ID(raw), id)
		}
	}
}

func TestValidateChainIDTronOnlyWhereSupported(t *testing.T) {
	id, err := chain.ValidateChainID("tron", chain.KindBalance)
	require.NoError(t, err)
	assert.Equal(t, chain.IDTron, id)

	for _, kind := range []chain.Kind{chain.KindENS, chain.KindTxCount, chain.KindGasEstimate} {
		_, err := chain.ValidateChainID("tron", kind)
		require.Error(t, err, "kind %s", kind)
		assert.True(t, walleterrors.IsCode(err, walleterrors.CodeInvalidChain))
	}
}

func TestValidateChainIDRejectsUnsupported(t *testing.T) {
	for _, raw := range []string{"2", "137", "0", "-1", "solana", "", "base"} {
		_, err := chain.ValidateChainID(raw, chain.KindBalance)
		require.Error(t, err, "raw %q", raw)
		assert.True(t, walleterrors.IsCode(err, walleterrors.CodeInvalidChain))
	}
}

func TestValidateChainIDErrorMessagesByContext(t *testing.T) {
	_, err := chain.ValidateChainID("999", chain.KindBalance)
	require.Error(t, err)
	assert.EqualError(t, err, "Invalid or unsupported chain ID. Supported: 1 (mainnet), 8453 (Base)")

	_, err = chain.ValidateChainID("999", chain.KindTxCount)
	require.Error(t, err)
	assert.EqualError(t, err, "Invalid or unsupported chain ID")
}

func TestParseAmount(t *testing.T) {
	value, err := chain.ParseAmount("123", "amount")
	require.NoError(t, err)
	assert.Equal(t, "123", value.String())

	// Leading zeros are permitted.
	value, err = chain.ParseAmount("000123", "amount")
	require.NoError(t, err)
	assert.Equal(t, "123", value.String())

	value, err = chain.ParseAmount("0", "amount")
	require.NoError(t, err)
	assert.Equal(t, "0", value.String())

	// Unbounded magnitude.
	huge := strings.Repeat("9", 100)
	value, err = chain.ParseAmount(huge, "amount")
	require.NoError(t, err)
	assert.Equal(t, huge, value.String())
}

func TestParseAmountRejectsMalformed(t *testing.T) {
	for _, raw := range []string{"1.5", "1e5", "0x10", "abc", "", "1 000", "+1", "12-3"} {
		_, err := chain.ParseAmount(raw, "amount")
		require.Error(t, err, "raw %q", raw)
		assert.EqualError(t, err, "Invalid amount format")
		assert.True(t, walleterrors.IsCode(err, walleterrors.CodeNetworkError))
	}
}

func TestParseAmountRejectsNegative(t *testing.T) {
	_, err := chain.ParseAmount("-5", "value")
	require.Error(t, err)
	assert.EqualError(t, err, "Value must be non-negative")
	assert.True(t, walleterrors.IsCode(err, walleterrors.CodeNetworkError))
}

func TestParseAmountInterpolatesFieldName(t *testing.T) {
	_, err := chain.ParseAmount("x", "value")
	require.Error(t, err)
	assert.EqualError(t, err, "Invalid value format")
}

func TestIsValidAddressFormatSameCheckForAllKinds(t *testing.T) {
	valid := "0x9858EfFD232B4033E47d90003D41EC34EcaEda94"
	invalid := "0x9858"

	for _, kind := range []chain.Kind{chain.KindBalance, chain.KindENS, chain.KindTxCount, chain.KindGasEstimate} {
		assert.True(t, chain.IsValidAddressFormat(valid, kind), "kind %s", kind)
		assert.False(t, chain.IsValidAddressFormat(invalid, kind), "kind %s", kind)
	}
}

func TestIDHelpers(t *testing.T) {
	assert.True(t, chain.IDEthereum.IsEVM())
	assert.True(t, chain.IDBase.IsEVM())
	assert.False(t, chain.IDTron.IsEVM())
}
