// Package classify implements the CLI subcommand that classifies a
// counterparty address before a send, combining blocklist membership with
// recent on-chain interaction history.
package classify

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/artlu99/velvet-wallet/internal/config"
	"github.com/artlu99/velvet-wallet/internal/wallet/chain"
	"github.com/artlu99/velvet-wallet/internal/wallet/history"
	"github.com/artlu99/velvet-wallet/internal/wallet/safety"
	"github.com/artlu99/velvet-wallet/internal/wallet/store"
)

const (
	walletFlag    = "wallet"
	chainFlag     = "chain"
	rpcURLFlag    = "rpc-url"
	scanDepthFlag = "scan-depth"
	blocklistFlag = "blocklist-file"
)

func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify <destination>",
		Short: "Classify a counterparty address before a send",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			run(cmd, args[0])
		},
	}

	cmd.Flags().String(walletFlag, "", "wallet address the send originates from")
	cmd.Flags().String(chainFlag, "1", "chain identifier")
	cmd.Flags().StringSlice(rpcURLFlag, nil, "EVM JSON-RPC endpoints, in failover order")
	cmd.Flags().Uint64(scanDepthFlag, 0, "blocks of history to scan (0 uses the default window)")
	cmd.Flags().String(blocklistFlag, "", "path to a JSON file of app blocklist entries")

	return cmd
}

func run(cmd *cobra.Command, destination string) {
	logger := log.With().Str("component", "cmd_classify").Logger()
	ctx := cmd.Context()

	walletAddress, err := cmd.Flags().GetString(walletFlag)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to read wallet flag")
	}

	chainRaw, err := cmd.Flags().GetString(chainFlag)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to read chain flag")
	}

	chainID, err := chain.ValidateChainID(chainRaw, chain.KindBalance)
	if err != nil {
		logger.Fatal().Err(err).Str("chain_id", chainRaw).Msg("Invalid chain identifier")
	}

	blocklist := loadBlocklist(cmd, logger)
	historySource := buildHistorySource(cmd, chainID, walletAddress, logger)
	classifier := safety.NewService(blocklist, historySource)

	cfg := config.DefaultServiceConfigFromEnv()
	cache := buildCache(ctx, cfg, logger)

	snapshot, err := classifier.Classify(ctx, walletAddress, chainID, destination)
	if err != nil {
		logger.Fatal().Err(err).Msg("Classification failed")
	}

	encoded, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to marshal safety snapshot")
	}

	if cache != nil {
		key := store.CacheKey{Address: destination, ChainID: chainID}
		if err := cache.Upsert(ctx, store.CacheKindSafety, key, string(encoded)); err != nil {
			logger.Warn().Err(err).Msg("Failed to cache safety snapshot")
		}
	}

	fmt.Println(string(encoded))
}

// loadBlocklist seeds a memory-backed blocklist from the optional JSON file.
// Entries loaded this way are app-sourced and therefore take precedence.
func loadBlocklist(cmd *cobra.Command, logger zerolog.Logger) store.Blocklist {
	memory := store.NewMemoryStore()

	path, err := cmd.Flags().GetString(blocklistFlag)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to read blocklist-file flag")
	}
	if path == "" {
		return memory
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		logger.Fatal().Err(err).Str("path", path).Msg("Failed to read blocklist file")
	}

	var entries []store.BlocklistEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		logger.Fatal().Err(err).Str("path", path).Msg("Failed to parse blocklist file")
	}

	memory.SeedAppBlocklist(entries)
	return memory
}

// buildHistorySource connects the RPC-backed history source when endpoints
// are configured. Without endpoints classification runs blocklist-only.
func buildHistorySource(cmd *cobra.Command, chainID chain.ID, walletAddress string, logger zerolog.Logger) store.History {
	urls, err := cmd.Flags().GetStringSlice(rpcURLFlag)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to read rpc-url flag")
	}
	if len(urls) == 0 {
		return nil
	}
	if !chainID.IsEVM() {
		logger.Warn().Str("chain_id", string(chainID)).Msg("Chain has no history endpoint, classifying blocklist-only")
		return nil
	}
	if walletAddress == "" {
		logger.Fatal().Msg("--wallet is required when RPC endpoints are configured")
	}

	scanDepth, err := cmd.Flags().GetUint64(scanDepthFlag)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to read scan-depth flag")
	}

	client, err := history.NewRPCClient(urls)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to connect to RPC endpoints")
	}

	source, err := history.NewService(client, chainID, scanDepth)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to construct history source")
	}

	return source
}

// buildCache connects the Redis-backed cache when enabled. An unreachable
// Redis downgrades to no caching instead of failing the classification.
func buildCache(ctx context.Context, cfg config.Service, logger zerolog.Logger) store.Cache {
	if !cfg.Cache.Enabled {
		return nil
	}

	redisCache, err := store.NewRedisCache(cfg.Cache.RedisURL, cfg.Cache.TTL)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to configure redis cache")
	}

	if err := redisCache.Ping(ctx); err != nil {
		logger.Warn().Err(err).Msg("Redis unreachable, classifying without cache")
		return nil
	}

	return redisCache
}
