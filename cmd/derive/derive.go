// Package derive implements the CLI subcommand that derives wallet
// addresses from a mnemonic. The mnemonic is read from the environment so
// it never appears in shell history or process listings; private keys are
// never printed.
package derive

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/artlu99/velvet-wallet/internal/config"
	"github.com/artlu99/velvet-wallet/internal/wallet"
	"github.com/artlu99/velvet-wallet/internal/wallet/address"
	walletderive "github.com/artlu99/velvet-wallet/internal/wallet/derive"
	"github.com/artlu99/velvet-wallet/internal/wallet/safety"
)

const (
	mnemonicEnvVar = "VELVET_MNEMONIC"

	indexFlag  = "index"
	familyFlag = "family"
	countFlag  = "count"
)

func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "derive",
		Short: "Derive wallet addresses from the mnemonic in " + mnemonicEnvVar,
		Run: func(cmd *cobra.Command, _ []string) {
			run(cmd)
		},
	}

	cmd.Flags().Int64(indexFlag, 0, "first derivation index")
	cmd.Flags().String(familyFlag, string(address.KeyTypeEVM), "chain family (evm|tron)")
	cmd.Flags().Int(countFlag, 1, "number of consecutive addresses to derive")

	return cmd
}

func run(cmd *cobra.Command) {
	logger := log.With().Str("component", "cmd_derive").Logger()

	phrase := os.Getenv(mnemonicEnvVar)
	if phrase == "" {
		logger.Fatal().Msgf("%s is not set", mnemonicEnvVar)
	}

	startIndex, err := cmd.Flags().GetInt64(indexFlag)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to read index flag")
	}

	family, err := cmd.Flags().GetString(familyFlag)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to read family flag")
	}

	count, err := cmd.Flags().GetInt(countFlag)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to read count flag")
	}

	keyType := address.KeyType(family)
	if !keyType.Valid() {
		logger.Fatal().Str("family", family).Msg("Unsupported chain family")
	}

	cfg := config.DefaultServiceConfigFromEnv()

	if count > cfg.Wallet.VisibleWalletLimit {
		logger.Warn().Int("limit", cfg.Wallet.VisibleWalletLimit).Msg("Count exceeds the visible wallet limit, truncating")
		count = cfg.Wallet.VisibleWalletLimit
	}

	var classifier safety.Service // derivation alone needs no classifier
	service, err := wallet.NewService(walletderive.NewService(), classifier, cfg.Wallet.BIP39Passphrase)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to construct wallet service")
	}

	ctx := cmd.Context()
	for i := int64(0); i < int64(count); i++ {
		derived, err := service.DeriveWallet(ctx, phrase, startIndex+i, keyType)
		if err != nil {
			logger.Fatal().Err(err).Int64("index", startIndex+i).Msg("Derivation failed")
		}

		fmt.Printf("%s\t%s\t%s\n", derived.DerivationPath, derived.KeyType, derived.Address)
		derived.Zero()
	}
}
