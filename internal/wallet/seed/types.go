package seed

// Manager holds the BIP39 seed in memory for the lifetime of an unlocked
// wallet session.
type Manager interface {
	// Initialize validates the mnemonic and derives the seed into memory.
	Initialize(phrase string, passphrase string) error

	// Seed returns a copy of the seed, or nil when not initialized.
	Seed() []byte

	// IsInitialized checks if a seed is held in memory.
	IsInitialized() bool

	// Clear zeroizes and releases the seed.
	Clear()
}
