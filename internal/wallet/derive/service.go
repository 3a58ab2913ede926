// Package derive implements BIP32/BIP44 hierarchical-deterministic key
// derivation. Re-deriving the same (seed, family, index) triple always
// yields the identical key; distinct indices yield distinct keys.
package derive

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/tyler-smith/go-bip32"

	"github.com/artlu99/velvet-wallet/internal/wallet/address"
)

type service struct{}

// NewService creates a new derivation Service
//
//nolint:ireturn // Returning interface is intentional for dependency injection
func NewService() Service {
	return &service{}
}

// DerivePrivateKey derives the private key at m/44'/coin'/0'/0/{index}
// WARNING: Caller must zeroize the key after use
func (s *service) DerivePrivateKey(_ context.Context, seed []byte, keyType address.KeyType, index int64) (address.PrivateKey, error) {
	if index < 0 {
		return address.PrivateKey{}, errors.Wrapf(ErrNegativeIndex, "index %d", index)
	}
	if index >= HardenedIndexCeiling {
		return address.PrivateKey{}, errors.Wrapf(ErrIndexOutOfRange, "index %d", index)
	}
	if !keyType.Valid() {
		return address.PrivateKey{}, errors.Errorf("unsupported key type: %s", keyType)
	}

	masterKey, err := bip32.NewMasterKey(seed)
	if err != nil {
		return address.PrivateKey{}, errors.Wrap(ErrInvalidSeed, err.Error())
	}

	derivedKey, err := deriveKeyFromPath(masterKey, s.Path(keyType, index))
	if err != nil {
		return address.PrivateKey{}, errors.Wrap(err, "failed to derive key from path")
	}

	// bip32 keys shorter than 32 bytes are left-padded to the raw key size.
	keyBytes := make([]byte, address.PrivateKeyLength)
	copy(keyBytes[address.PrivateKeyLength-len(derivedKey.Key):], derivedKey.Key)

	return address.PrivateKey{KeyType: keyType, Bytes: keyBytes}, nil
}

// DeriveAddress derives the address at the given index, never retaining key
// material past the call.
func (s *service) DeriveAddress(ctx context.Context, seed []byte, keyType address.KeyType, index int64) (string, error) {
	privateKey, err := s.DerivePrivateKey(ctx, seed, keyType, index)
	if err != nil {
		return "", err
	}
	defer privateKey.Zero()

	derived, err := address.FromPrivateKey(privateKey)
	if err != nil {
		return "", errors.Wrap(err, "failed to derive address")
	}

	return derived, nil
}

// Path formats the BIP44 path for a chain family and index.
// EVM:  m/44'/60'/0'/0/{index}
// Tron: m/44'/195'/0'/0/{index}
func (s *service) Path(keyType address.KeyType, index int64) string {
	coinType := CoinTypeEVM
	if keyType == address.KeyTypeTron {
		coinType = CoinTypeTron
	}
	return fmt.Sprintf("m/44'/%d'/0'/0/%d", coinType, index)
}

// deriveKeyFromPath derives a key from a BIP44 path, one child at a time.
func deriveKeyFromPath(masterKey *bip32.Key, path string) (*bip32.Key, error) {
	indices, err := parseBIP44Path(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse BIP44 path")
	}

	key := masterKey
	for _, index := range indices {
		key, err = key.NewChildKey(index)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to derive child key at index %d", index)
		}
	}

	return key, nil
}

// parseBIP44Path parses a BIP44 path string into child indices.
// Example: "m/44'/60'/0'/0/0" -> [2147483692, 2147483708, 2147483648, 0, 0]
func parseBIP44Path(path string) ([]uint32, error) {
	if len(path) == 0 || path[0] != 'm' {
		return nil, errors.Errorf("invalid BIP44 path: %s", path)
	}

	trimmed := strings.TrimPrefix(path, "m")
	trimmed = strings.TrimPrefix(trimmed, "/")

	parts := strings.Split(trimmed, "/")
	indices := make([]uint32, 0, len(parts))

	for _, part := range parts {
		if part == "" {
			return nil, errors.Errorf("empty path segment in: %s", path)
		}

		hardened := strings.HasSuffix(part, "'")
		part = strings.TrimSuffix(part, "'")

		parsed, err := strconv.ParseUint(part, 10, 32)
		if err != nil {
			return nil, errors.Errorf("invalid path segment: %s", part)
		}

		index := uint32(parsed)
		if hardened {
			index += bip32.FirstHardenedChild
		}

		indices = append(indices, index)
	}

	return indices, nil
}
