package wallet

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/artlu99/velvet-wallet/internal/wallet/address"
	"github.com/artlu99/velvet-wallet/internal/wallet/derive"
	"github.com/artlu99/velvet-wallet/internal/wallet/seed"
)

const (
	// VerificationAddressIndex is the account index used to confirm a
	// restored mnemonic and passphrase match the stored wallet.
	VerificationAddressIndex = 0
)

// VerifySeedByAddress re-derives the index-0 EVM address from the in-memory
// seed and compares it with the address recorded when the wallet was first
// created. Derivation is deterministic, so a mismatch means the wrong
// mnemonic or passphrase was supplied.
func VerifySeedByAddress(ctx context.Context, seedManager seed.Manager, deriver derive.Service, storedAddress string) (bool, error) {
	log := log.With().Str("component", "seed_verification").Logger()

	seedBytes := seedManager.Seed()
	if seedBytes == nil {
		return false, errors.New("seed not initialized")
	}
	defer zeroBytes(seedBytes)

	derivedAddress, err := deriver.DeriveAddress(ctx, seedBytes, address.KeyTypeEVM, VerificationAddressIndex)
	if err != nil {
		log.Error().Err(err).Msg("Failed to derive verification address")
		return false, errors.Wrap(err, "failed to derive verification address")
	}

	if storedAddress == "" {
		// First unlock: nothing recorded yet, the caller stores the
		// derived address now.
		log.Info().Msg("No verification address recorded - first wallet unlock")
		return true, nil
	}

	if !address.Equal(derivedAddress, address.KeyTypeEVM, storedAddress, address.KeyTypeEVM) {
		log.Warn().Msg("Seed verification failed: derived address does not match stored address")
		return false, nil
	}

	return true, nil
}
