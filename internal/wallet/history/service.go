package history

import (
	"context"
	"math/big"
	"strconv"
	"time"

	"github.com/ethereum/go-ethereum/core/types"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/artlu99/velvet-wallet/internal/wallet/address"
	"github.com/artlu99/velvet-wallet/internal/wallet/chain"
	"github.com/artlu99/velvet-wallet/internal/wallet/store"
)

// defaultScanDepth is how many recent blocks a history query walks. Deep
// history belongs to an indexer; the classifier only needs the recent
// interaction window.
const defaultScanDepth = 128

// Service implements store.History by scanning recent blocks of one EVM
// chain for native transfers into the wallet.
type Service struct {
	client    *RPCClient
	chainID   chain.ID
	scanDepth uint64
}

// NewService creates a history source bound to one EVM chain. scanDepth 0
// uses the default window.
func NewService(client *RPCClient, chainID chain.ID, scanDepth uint64) (*Service, error) {
	if client == nil {
		return nil, errors.New("RPC client is required")
	}
	if !chainID.IsEVM() {
		return nil, errors.Errorf("history source requires an EVM chain, got %s", chainID)
	}

	if scanDepth == 0 {
		scanDepth = defaultScanDepth
	}

	return &Service{
		client:    client,
		chainID:   chainID,
		scanDepth: scanDepth,
	}, nil
}

// QueryTransactionHistory returns native transfers into walletAddress found
// in the recent block window. Requests for other chains, Tron included,
// report ErrHistoryUnsupported.
func (s *Service) QueryTransactionHistory(ctx context.Context, walletAddress string, chainID chain.ID) ([]store.HistoryTx, error) {
	if chainID != s.chainID {
		return nil, errors.Wrapf(store.ErrHistoryUnsupported, "chain %s", chainID)
	}

	logger := log.With().Str("component", "history_source").Str("chain_id", string(chainID)).Logger()

	latest, err := s.client.LatestBlockNumber(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get latest block number")
	}

	start := uint64(0)
	if latest > s.scanDepth {
		start = latest - s.scanDepth
	}

	numericChainID, err := strconv.ParseInt(string(chainID), 10, 64)
	if err != nil {
		return nil, errors.Wrapf(err, "non-numeric EVM chain ID %s", chainID)
	}
	signer := types.LatestSignerForChainID(big.NewInt(numericChainID))

	var result []store.HistoryTx
	for blockNumber := start; blockNumber <= latest; blockNumber++ {
		block, err := s.client.BlockByNumber(ctx, new(big.Int).SetUint64(blockNumber))
		if err != nil {
			return nil, errors.Wrapf(err, "failed to fetch block %d", blockNumber)
		}

		blockTime := time.Unix(int64(block.Time()), 0).UTC()

		for _, tx := range block.Transactions() {
			to := tx.To()
			if to == nil {
				continue // contract creation
			}
			if !address.Equal(to.Hex(), address.KeyTypeEVM, walletAddress, address.KeyTypeEVM) {
				continue
			}

			from, err := types.Sender(signer, tx)
			if err != nil {
				logger.Warn().Str("tx_hash", tx.Hash().Hex()).Err(err).Msg("Failed to recover transaction sender, skipping")
				continue
			}

			result = append(result, store.HistoryTx{
				Hash:      tx.Hash().Hex(),
				From:      from.Hex(),
				To:        to.Hex(),
				Value:     tx.Value().String(),
				Timestamp: blockTime,
			})
		}
	}

	return result, nil
}
