// Package store defines the persisted-cache and collaborator contracts the
// wallet core consumes. The production sync/storage engine implements these
// interfaces; the package also ships a memory store for tests and local use
// and a Redis-backed cache adapter.
package store

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/artlu99/velvet-wallet/internal/wallet/address"
	"github.com/artlu99/velvet-wallet/internal/wallet/chain"
)

// BlocklistSource is a source of blocklist entries. app-sourced entries are
// seeded once and immutable; user-sourced entries support soft deletion.
type BlocklistSource string

const (
	BlocklistSourceApp  BlocklistSource = "app"
	BlocklistSourceUser BlocklistSource = "user"
)

// BlocklistEntry marks a counterparty address as unsafe.
type BlocklistEntry struct {
	Address   string
	Reason    string
	Source    BlocklistSource
	AddedAt   time.Time
	IsDeleted bool
}

// HistoryTx is one incoming transaction from the wallet's history, as
// produced by the external transaction-history collaborator.
type HistoryTx struct {
	Hash      string
	From      string
	To        string
	Value     string // smallest-unit decimal string
	Timestamp time.Time
}

// EoaRecordOrigin describes how an account entered the wallet.
type EoaRecordOrigin string

const (
	OriginDerived   EoaRecordOrigin = "derived"
	OriginImported  EoaRecordOrigin = "imported"
	OriginWatchOnly EoaRecordOrigin = "watchOnly"
)

// EoaRecord is the account row owned by the storage collaborator. The core
// produces and validates Address, KeyType and EncryptedPrivateKey; insert
// and soft-delete lifecycle belongs to the collaborator.
type EoaRecord struct {
	ID                  string
	Address             string
	KeyType             address.KeyType
	Origin              EoaRecordOrigin
	DerivationIndex     *int64
	EncryptedPrivateKey string
	IsSelected          bool
	IsDeleted           bool
}

// CacheKind selects which cached value an upsert targets.
type CacheKind string

const (
	CacheKindBalance      CacheKind = "balance"
	CacheKindTokenBalance CacheKind = "tokenBalance"
	CacheKindENSName      CacheKind = "ensName"
	CacheKindPriceUSD     CacheKind = "priceUsd"
	CacheKindSafety       CacheKind = "safetySnapshot"
)

// CacheKey addresses a cached row. ChainID is empty for kinds keyed by
// address alone (ensName).
type CacheKey struct {
	Address string
	ChainID chain.ID
}

// ErrHistoryUnsupported is returned by history queries for chains without a
// history endpoint (Tron). The classifier treats it as a recoverable
// degradation, not a failure.
var ErrHistoryUnsupported = errors.New("transaction history unsupported for chain")

// Blocklist reads the blocklist rows matching an address, soft-deleted
// entries included (filtering is the reader's concern). Finite, one-shot.
type Blocklist interface {
	QueryBlocklist(ctx context.Context, addr string) ([]BlocklistEntry, error)
}

// History reads the wallet's recent incoming transactions. Finite,
// restartable; returns ErrHistoryUnsupported for chains without a history
// endpoint.
type History interface {
	QueryTransactionHistory(ctx context.Context, walletAddress string, chainID chain.ID) ([]HistoryTx, error)
}

// Cache provides idempotent upserts keyed by (address, chainId) or
// (address,). Writing the same row twice leaves the cache in the same
// observable state as writing it once; last write wins.
type Cache interface {
	Upsert(ctx context.Context, kind CacheKind, key CacheKey, value string) error
	Read(ctx context.Context, kind CacheKind, key CacheKey) (string, bool, error)
}
