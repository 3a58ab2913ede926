package store

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/artlu99/velvet-wallet/internal/metrics"
	"github.com/artlu99/velvet-wallet/internal/wallet/address"
	"github.com/artlu99/velvet-wallet/internal/wallet/chain"
)

// MemoryStore is an in-process implementation of the Blocklist, History and
// Cache contracts. It backs tests and local single-process runs; the
// production storage engine replaces it behind the same interfaces.
type MemoryStore struct {
	mu        sync.RWMutex
	blocklist []BlocklistEntry
	history   map[string][]HistoryTx // keyed by lowercased wallet address
	cache     map[string]string
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		history: make(map[string][]HistoryTx),
		cache:   make(map[string]string),
	}
}

// SeedAppBlocklist loads the app-sourced blocklist. App entries are seeded
// once and never user-removable.
func (m *MemoryStore) SeedAppBlocklist(entries []BlocklistEntry) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, entry := range entries {
		entry.Source = BlocklistSourceApp
		m.blocklist = append(m.blocklist, entry)
	}
}

// AddUserBlocklistEntry appends a user-sourced blocklist entry.
func (m *MemoryStore) AddUserBlocklistEntry(addr string, reason string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.blocklist = append(m.blocklist, BlocklistEntry{
		Address: addr,
		Reason:  reason,
		Source:  BlocklistSourceUser,
		AddedAt: time.Now().UTC(),
	})
}

// RemoveUserBlocklistEntry soft-deletes user-sourced entries for an address.
// App-sourced entries are immutable and left untouched.
func (m *MemoryStore) RemoveUserBlocklistEntry(addr string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	family := address.FamilyOf(addr)
	for i := range m.blocklist {
		if m.blocklist[i].Source != BlocklistSourceUser {
			continue
		}
		if address.Equal(m.blocklist[i].Address, family, addr, family) {
			m.blocklist[i].IsDeleted = true
		}
	}
}

// QueryBlocklist returns every entry recorded for the address, soft-deleted
// rows included.
func (m *MemoryStore) QueryBlocklist(_ context.Context, addr string) ([]BlocklistEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	family := address.FamilyOf(addr)
	var matches []BlocklistEntry
	for _, entry := range m.blocklist {
		if address.Equal(entry.Address, family, addr, family) {
			matches = append(matches, entry)
		}
	}
	return matches, nil
}

// RecordHistoryTx appends an incoming transaction for a wallet.
func (m *MemoryStore) RecordHistoryTx(walletAddress string, tx HistoryTx) {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := normalizeAddressKey(walletAddress)
	m.history[key] = append(m.history[key], tx)
}

// QueryTransactionHistory returns the wallet's recorded incoming
// transactions. Tron has no history endpoint.
func (m *MemoryStore) QueryTransactionHistory(_ context.Context, walletAddress string, chainID chain.ID) ([]HistoryTx, error) {
	if !chainID.IsEVM() {
		return nil, errors.Wrapf(ErrHistoryUnsupported, "chain %s", chainID)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	txs := m.history[normalizeAddressKey(walletAddress)]
	result := make([]HistoryTx, len(txs))
	copy(result, txs)
	return result, nil
}

// Upsert writes a cache row, replacing any previous value for the key.
func (m *MemoryStore) Upsert(_ context.Context, kind CacheKind, key CacheKey, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.cache[cacheRowKey(kind, key)] = value
	metrics.CacheUpserts.WithLabelValues(string(kind), "ok").Inc()
	return nil
}

// Read returns the cached value for a key, if present.
func (m *MemoryStore) Read(_ context.Context, kind CacheKind, key CacheKey) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.cache[cacheRowKey(kind, key)]
	return value, ok, nil
}

func cacheRowKey(kind CacheKind, key CacheKey) string {
	return string(kind) + ":" + normalizeAddressKey(key.Address) + ":" + string(key.ChainID)
}
