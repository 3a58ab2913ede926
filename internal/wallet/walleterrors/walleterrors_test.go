package walleterrors_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artlu99/velvet-wallet/internal/wallet/walleterrors"
)

func TestInvalidAddressMessageIsKindIndependent(t *testing.T) {
	for _, kind := range []string{"balance", "ens", "txCount", "gasEstimate"} {
		err := walleterrors.InvalidAddress(kind)
		assert.Equal(t, "Invalid Ethereum address format", err.Message, "kind %s", kind)
		assert.Equal(t, walleterrors.CodeInvalidAddress, err.Code)
	}
}

func TestInvalidChainMessages(t *testing.T) {
	balance := walleterrors.InvalidChain("balance")
	assert.Equal(t, "Invalid or unsupported chain ID. Supported: 1 (mainnet), 8453 (Base)", balance.Message)
	assert.Equal(t, walleterrors.CodeInvalidChain, balance.Code)

	txCount := walleterrors.InvalidChain("txCount")
	assert.Equal(t, "Invalid or unsupported chain ID", txCount.Message)
	assert.Equal(t, walleterrors.CodeInvalidChain, txCount.Code)
}

func TestBigIntMessages(t *testing.T) {
	invalid := walleterrors.InvalidBigInt("amount")
	assert.Equal(t, "Invalid amount format", invalid.Message)
	assert.Equal(t, walleterrors.CodeNetworkError, invalid.Code)

	negative := walleterrors.NegativeBigInt("value")
	assert.Equal(t, "Value must be non-negative", negative.Message)
	assert.Equal(t, walleterrors.CodeNetworkError, negative.Code)
}

func TestErrorsIsMatchesByCode(t *testing.T) {
	err := walleterrors.InvalidAddress("balance")
	wrapped := errors.Wrap(err, "handler context")

	assert.True(t, walleterrors.IsCode(wrapped, walleterrors.CodeInvalidAddress))
	assert.False(t, walleterrors.IsCode(wrapped, walleterrors.CodeInvalidChain))

	extracted, ok := walleterrors.AsError(wrapped)
	require.True(t, ok)
	assert.Equal(t, err.Message, extracted.Message)
}

func TestForwardedCodes(t *testing.T) {
	err := walleterrors.New(walleterrors.CodeRateLimited, "Too many requests")
	assert.Equal(t, walleterrors.CodeRateLimited, err.Code)
	assert.EqualError(t, err, "Too many requests")
}
