// Package safety classifies counterparty addresses by combining blocklist
// membership with historical-interaction reputation. Blocklist hits always
// win; a failed history fetch degrades to blocklist-only classification.
package safety

import (
	"context"
	"math/big"
	"sync"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/artlu99/velvet-wallet/internal/metrics"
	"github.com/artlu99/velvet-wallet/internal/wallet/address"
	"github.com/artlu99/velvet-wallet/internal/wallet/chain"
	"github.com/artlu99/velvet-wallet/internal/wallet/store"
)

type service struct {
	blocklist store.Blocklist
	history   store.History
}

// NewService creates a safety classifier. history may be nil when no
// transaction-history collaborator is available; classification then runs
// blocklist-only.
//
//nolint:ireturn // Returning interface is intentional for dependency injection
func NewService(blocklist store.Blocklist, history store.History) Service {
	return &service{
		blocklist: blocklist,
		history:   history,
	}
}

// Classify computes the reputation snapshot for a destination address. The
// blocklist query and the history fetch run concurrently and are joined
// before classification. A history failure is a recoverable degradation; a
// blocklist failure is fatal because a transfer must never be authorized
// without a blocklist verdict.
func (s *service) Classify(ctx context.Context, walletAddress string, chainID chain.ID, destination string) (*Snapshot, error) {
	logger := log.With().Str("component", "safety_classifier").Logger()

	var (
		wg            sync.WaitGroup
		entries       []store.BlocklistEntry
		blocklistErr  error
		transactions  []store.HistoryTx
		historyErr    error
		historyLoaded bool
	)

	wg.Add(1)
	go func() {
		defer wg.Done()
		entries, blocklistErr = s.blocklist.QueryBlocklist(ctx, destination)
	}()

	if s.history != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			transactions, historyErr = s.history.QueryTransactionHistory(ctx, walletAddress, chainID)
			historyLoaded = historyErr == nil
		}()
	}

	wg.Wait()

	if blocklistErr != nil {
		return nil, errors.Wrap(blocklistErr, "failed to query blocklist")
	}

	if s.history != nil && historyErr != nil {
		// Recoverable: fall back to blocklist-only classification.
		metrics.HistoryDegradations.Inc()
		if errors.Is(historyErr, store.ErrHistoryUnsupported) {
			logger.Debug().Str("chain_id", string(chainID)).Msg("Transaction history unsupported, classifying blocklist-only")
		} else {
			logger.Warn().Err(historyErr).Msg("Transaction history fetch failed, classifying blocklist-only")
		}
	}

	snapshot := buildSnapshot(walletAddress, chainID, destination, entries, transactions, historyLoaded)
	metrics.Classifications.WithLabelValues(string(snapshot.SafetyLevel)).Inc()

	return snapshot, nil
}

func buildSnapshot(walletAddress string, chainID chain.ID, destination string, entries []store.BlocklistEntry, transactions []store.HistoryTx, historyLoaded bool) *Snapshot {
	snapshot := &Snapshot{
		SafetyLevel: LevelNew,
		TotalSent:   new(big.Int),
	}

	if historyLoaded {
		aggregateInteractions(snapshot, walletAddress, chainID, destination, transactions)
		if snapshot.InteractionCount > 0 {
			snapshot.SafetyLevel = LevelKnown
		}
	}

	// Blocklist membership overrides everything else.
	if entry, found := liveBlocklistEntry(entries, destination); found {
		snapshot.SafetyLevel = LevelBlocklisted
		snapshot.BlocklistReason = entry.Reason
	}

	return snapshot
}

// liveBlocklistEntry picks the governing entry for the destination:
// soft-deleted rows are excluded and app-sourced entries win over
// user-sourced ones for the same address.
func liveBlocklistEntry(entries []store.BlocklistEntry, destination string) (store.BlocklistEntry, bool) {
	var (
		match store.BlocklistEntry
		found bool
	)

	for _, entry := range entries {
		if entry.IsDeleted {
			continue
		}
		if !blocklistAddressMatches(entry.Address, destination) {
			continue
		}
		if entry.Source == store.BlocklistSourceApp {
			return entry, true
		}
		if !found {
			match = entry
			found = true
		}
	}

	return match, found
}

// blocklistAddressMatches selects the comparison family from the
// destination's shape so a Tron entry never matches case-insensitively.
func blocklistAddressMatches(entryAddress string, destination string) bool {
	family := address.FamilyOf(destination)
	return address.Equal(entryAddress, family, destination, family)
}

// aggregateInteractions folds the wallet's incoming transactions from the
// destination into the snapshot: count, big-integer value sum and first and
// last timestamps.
func aggregateInteractions(snapshot *Snapshot, walletAddress string, chainID chain.ID, destination string, transactions []store.HistoryTx) {
	keyType := chainID.KeyType()

	for _, tx := range transactions {
		if !address.Equal(tx.To, keyType, walletAddress, keyType) {
			continue
		}
		if !address.Equal(tx.From, keyType, destination, keyType) {
			continue
		}

		snapshot.InteractionCount++

		if value, ok := new(big.Int).SetString(tx.Value, 10); ok && value.Sign() >= 0 {
			snapshot.TotalSent.Add(snapshot.TotalSent, value)
		} else {
			log.Warn().Str("tx_hash", tx.Hash).Msg("Skipping history value that does not parse as a non-negative integer")
		}

		timestamp := tx.Timestamp
		if snapshot.FirstInteraction == nil || timestamp.Before(*snapshot.FirstInteraction) {
			first := timestamp
			snapshot.FirstInteraction = &first
		}
		if snapshot.LastInteraction == nil || timestamp.After(*snapshot.LastInteraction) {
			last := timestamp
			snapshot.LastInteraction = &last
		}
	}
}
