package seed

import (
	"sync"

	"github.com/pkg/errors"

	"github.com/artlu99/velvet-wallet/internal/wallet/mnemonic"
)

// manager implements seed management with thread-safe access
type manager struct {
	seed        []byte
	mu          sync.RWMutex
	initialized bool
}

// NewManager creates a new seed Manager
//
//nolint:ireturn // Returning interface is intentional for dependency injection
func NewManager() Manager {
	return &manager{
		seed:        nil,
		initialized: false,
	}
}

// Initialize validates the mnemonic and converts it to a BIP39 seed held in
// memory. A malformed phrase leaves the manager uninitialized.
func (m *manager) Initialize(phrase string, passphrase string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	derived, err := mnemonic.ToSeed(phrase, passphrase)
	if err != nil {
		return errors.Wrap(err, "failed to derive seed from mnemonic")
	}

	m.seed = derived
	m.initialized = true

	return nil
}

// Seed gets the seed (returns a copy to prevent external modification)
func (m *manager) Seed() []byte {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if !m.initialized || m.seed == nil {
		return nil
	}

	seedCopy := make([]byte, len(m.seed))
	copy(seedCopy, m.seed)
	return seedCopy
}

// IsInitialized checks if seed is initialized
func (m *manager) IsInitialized() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.initialized
}

// Clear clears the seed from memory
func (m *manager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.seed != nil {
		for i := range m.seed {
			m.seed[i] = 0
		}
		m.seed = nil
	}
	m.initialized = false
}
