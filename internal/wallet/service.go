// Package wallet is the boundary surface the route and UI layers consume:
// deterministic wallet derivation, address and chain-identifier validation,
// monetary-value parsing and counterparty safety classification.
package wallet

import (
	"context"
	"math/big"

	"github.com/pkg/errors"

	"github.com/artlu99/velvet-wallet/internal/metrics"
	"github.com/artlu99/velvet-wallet/internal/util"
	"github.com/artlu99/velvet-wallet/internal/wallet/address"
	"github.com/artlu99/velvet-wallet/internal/wallet/chain"
	"github.com/artlu99/velvet-wallet/internal/wallet/derive"
	"github.com/artlu99/velvet-wallet/internal/wallet/keystore"
	"github.com/artlu99/velvet-wallet/internal/wallet/mnemonic"
	"github.com/artlu99/velvet-wallet/internal/wallet/safety"
	"github.com/artlu99/velvet-wallet/internal/wallet/store"
	"github.com/artlu99/velvet-wallet/internal/wallet/walleterrors"
)

// Service provides the wallet core functionality
type Service interface {
	// DeriveWallet derives the account at the given index for a chain
	// family from a BIP39 mnemonic. The same (mnemonic, index, family)
	// always yields the same address and key.
	DeriveWallet(ctx context.Context, phrase string, index int64, keyType address.KeyType) (*DerivedWallet, error)

	// DeriveEoaRecord derives an account and encrypts its private key with
	// the given password, producing the fields of an account record the
	// storage collaborator owns.
	DeriveEoaRecord(ctx context.Context, phrase string, index int64, keyType address.KeyType, password string) (*store.EoaRecord, error)

	// ValidateAddress validates an address string for an endpoint kind and
	// returns it unchanged on success.
	ValidateAddress(raw string, kind chain.Kind) (string, error)

	// ValidateChainID validates a raw chain identifier for an endpoint kind.
	ValidateChainID(raw string, kind chain.Kind) (chain.ID, error)

	// ParseAmount parses an unbounded non-negative integer amount.
	ParseAmount(raw string, fieldName string) (*big.Int, error)

	// ClassifySafety classifies a destination address before a send.
	ClassifySafety(ctx context.Context, walletAddress string, chainID chain.ID, destination string) (*safety.Snapshot, error)
}

type service struct {
	deriver    derive.Service
	classifier safety.Service
	passphrase string // optional BIP39 passphrase, empty for standard wallets
}

// NewService creates a new wallet Service
//
//nolint:ireturn // Returning interface is intentional for dependency injection
func NewService(deriver derive.Service, classifier safety.Service, passphrase string) (Service, error) {
	if deriver == nil {
		return nil, errors.New("derive service is required")
	}

	return &service{
		deriver:    deriver,
		classifier: classifier,
		passphrase: passphrase,
	}, nil
}

// DeriveWallet derives the account at the given index for a chain family.
func (s *service) DeriveWallet(ctx context.Context, phrase string, index int64, keyType address.KeyType) (*DerivedWallet, error) {
	log := util.LogFromContext(ctx).With().
		Str("component", "wallet_service").
		Str("key_type", string(keyType)).
		Int64("index", index).
		Logger()

	seedBytes, err := mnemonic.ToSeed(phrase, s.passphrase)
	if err != nil {
		metrics.Derivations.WithLabelValues(string(keyType), "invalid_mnemonic").Inc()
		return nil, err
	}
	defer zeroBytes(seedBytes)

	privateKey, err := s.deriver.DerivePrivateKey(ctx, seedBytes, keyType, index)
	if err != nil {
		metrics.Derivations.WithLabelValues(string(keyType), "derivation_failed").Inc()
		return nil, err
	}

	derivedAddress, err := address.FromPrivateKey(privateKey)
	if err != nil {
		privateKey.Zero()
		metrics.Derivations.WithLabelValues(string(keyType), "codec_failed").Inc()
		return nil, errors.Wrap(err, "failed to derive address")
	}

	metrics.Derivations.WithLabelValues(string(keyType), "ok").Inc()
	log.Debug().Str("address", derivedAddress).Msg("Derived wallet account")

	return &DerivedWallet{
		Address:         derivedAddress,
		KeyType:         keyType,
		DerivationIndex: index,
		DerivationPath:  s.deriver.Path(keyType, index),
		PrivateKey:      privateKey,
	}, nil
}

// DeriveEoaRecord derives an account and encrypts its private key, leaving
// no plaintext key material behind.
func (s *service) DeriveEoaRecord(ctx context.Context, phrase string, index int64, keyType address.KeyType, password string) (*store.EoaRecord, error) {
	derived, err := s.DeriveWallet(ctx, phrase, index, keyType)
	if err != nil {
		return nil, err
	}
	defer derived.Zero()

	encrypted, err := keystore.EncryptPrivateKey(derived.PrivateKey.Bytes, password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encrypt private key")
	}

	return &store.EoaRecord{
		Address:             derived.Address,
		KeyType:             keyType,
		Origin:              store.OriginDerived,
		DerivationIndex:     util.IntPtr(index),
		EncryptedPrivateKey: encrypted,
	}, nil
}

// ValidateAddress validates an address string for an endpoint kind.
func (s *service) ValidateAddress(raw string, kind chain.Kind) (string, error) {
	if !chain.IsValidAddressFormat(raw, kind) {
		return "", walleterrors.InvalidAddress(string(kind))
	}
	return raw, nil
}

// ValidateChainID validates a raw chain identifier for an endpoint kind.
func (s *service) ValidateChainID(raw string, kind chain.Kind) (chain.ID, error) {
	return chain.ValidateChainID(raw, kind)
}

// ParseAmount parses an unbounded non-negative integer amount.
func (s *service) ParseAmount(raw string, fieldName string) (*big.Int, error) {
	return chain.ParseAmount(raw, fieldName)
}

// ClassifySafety classifies a destination address before a send.
func (s *service) ClassifySafety(ctx context.Context, walletAddress string, chainID chain.ID, destination string) (*safety.Snapshot, error) {
	if s.classifier == nil {
		return nil, errors.New("safety classifier not configured")
	}
	return s.classifier.Classify(ctx, walletAddress, chainID, destination)
}

func zeroBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
