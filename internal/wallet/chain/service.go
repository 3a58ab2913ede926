// Package chain validates chain identifiers and monetary values at the
// boundary between the route layer and the wallet core.
package chain

import (
	"math/big"
	"regexp"
	"strings"

	"github.com/artlu99/velvet-wallet/internal/wallet/address"
	"github.com/artlu99/velvet-wallet/internal/wallet/walleterrors"
)

// signedIntegerPattern matches optionally-signed decimal integers. Decimals,
// scientific notation and anything non-numeric are parse failures; a leading
// minus parses so the negative case can be reported distinctly.
var signedIntegerPattern = regexp.MustCompile(`^-?[0-9]+$`)

const amountBase = 10

// ValidateChainID validates a raw chain identifier for an endpoint kind.
// Numeric identifiers outside {1, 8453} are invalid; the only non-numeric
// identifier is "tron", accepted solely where the kind supports it.
func ValidateChainID(raw string, kind Kind) (ID, error) {
	trimmed := strings.TrimSpace(raw)

	if trimmed == string(IDTron) {
		if !kind.SupportsTron() {
			return "", walleterrors.InvalidChain(string(kind))
		}
		return IDTron, nil
	}

	switch ID(trimmed) {
	case IDEthereum, IDBase:
		return ID(trimmed), nil
	default:
		return "", walleterrors.InvalidChain(string(kind))
	}
}

// ParseAmount parses an arbitrary-precision monetary value (wei, sun or
// smallest token unit) from its decimal string form. fieldName is
// interpolated into the error message.
func ParseAmount(raw string, fieldName string) (*big.Int, error) {
	trimmed := strings.TrimSpace(raw)

	if !signedIntegerPattern.MatchString(trimmed) {
		return nil, walleterrors.InvalidBigInt(fieldName)
	}

	value, ok := new(big.Int).SetString(trimmed, amountBase)
	if !ok {
		return nil, walleterrors.InvalidBigInt(fieldName)
	}

	if value.Sign() < 0 {
		return nil, walleterrors.NegativeBigInt(fieldName)
	}

	return value, nil
}

// IsValidAddressFormat checks an address string for the given endpoint kind.
// Every kind applies the identical EVM format check; the kind exists so the
// caller can pick the matching error template.
func IsValidAddressFormat(raw string, kind Kind) bool {
	_ = kind
	return address.IsValid(raw, address.KeyTypeEVM)
}
