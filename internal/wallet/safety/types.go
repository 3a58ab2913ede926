package safety

import (
	"context"
	"math/big"
	"time"

	"github.com/artlu99/velvet-wallet/internal/wallet/chain"
)

// Level is the safety verdict for a counterparty address.
type Level string

const (
	// LevelBlocklisted means the destination matches a live blocklist
	// entry. Always takes precedence over interaction history.
	LevelBlocklisted Level = "blocklisted"

	// LevelKnown means the destination has at least one prior incoming
	// interaction with the wallet.
	LevelKnown Level = "known"

	// LevelNew means the destination has no recorded interactions.
	LevelNew Level = "new"
)

// Snapshot is the per-query reputation of a destination address. Derived,
// never stored authoritatively.
type Snapshot struct {
	SafetyLevel      Level
	BlocklistReason  string
	InteractionCount int
	TotalSent        *big.Int
	FirstInteraction *time.Time
	LastInteraction  *time.Time
}

// Service classifies counterparty addresses before a transfer is
// authorized.
type Service interface {
	// Classify computes the reputation snapshot for a destination address
	// against the wallet's blocklist and incoming-transaction history.
	Classify(ctx context.Context, walletAddress string, chainID chain.ID, destination string) (*Snapshot, error)
}
