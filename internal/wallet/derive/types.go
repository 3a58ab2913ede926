package derive

import (
	"context"

	"github.com/pkg/errors"

	"github.com/artlu99/velvet-wallet/internal/wallet/address"
)

// BIP44 registered coin types per chain family.
const (
	CoinTypeEVM  uint32 = 60
	CoinTypeTron uint32 = 195
)

// HardenedIndexCeiling is the exclusive upper bound for the non-hardened
// account index segment. Indices at or beyond it would collide with the
// hardened key space and are rejected.
const HardenedIndexCeiling = 1 << 31

var (
	// ErrNegativeIndex is returned for an account index below zero.
	ErrNegativeIndex = errors.New("derivation index must be non-negative")

	// ErrIndexOutOfRange is returned for an account index at or beyond the
	// hardened-path ceiling.
	ErrIndexOutOfRange = errors.New("derivation index exceeds hardened-path ceiling")

	// ErrInvalidSeed is returned when the seed length or format cannot
	// produce a BIP32 master key.
	ErrInvalidSeed = errors.New("invalid seed")
)

// Service provides deterministic BIP32/BIP44 key derivation for EVM and
// Tron chain families.
type Service interface {
	// DerivePrivateKey derives the private key at
	// m/44'/coin'/0'/0/{index} for the given chain family.
	// WARNING: Caller must zeroize the key after use.
	DerivePrivateKey(ctx context.Context, seed []byte, keyType address.KeyType, index int64) (address.PrivateKey, error)

	// DeriveAddress derives the private key and converts it to the chain
	// family's address form, clearing key material before returning.
	DeriveAddress(ctx context.Context, seed []byte, keyType address.KeyType, index int64) (string, error)

	// Path formats the BIP44 path for a chain family and index.
	Path(keyType address.KeyType, index int64) string
}
