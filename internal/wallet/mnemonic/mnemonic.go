// Package mnemonic implements BIP39 phrase validation, normalization and
// seed generation for the wallet core.
package mnemonic

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/tyler-smith/go-bip39"
	"golang.org/x/text/unicode/norm"
)

// Word counts accepted for wallet phrases. BIP39 also allows 15/18/21 words,
// but the wallet only ever mints and imports 12- or 24-word phrases.
const (
	WordCount12 = 12
	WordCount24 = 24
)

// ErrInvalidMnemonic is returned for any phrase that fails word count,
// wordlist membership or checksum validation.
var ErrInvalidMnemonic = errors.New("invalid mnemonic")

// Normalize lowercases a phrase, applies NFKD normalization and collapses
// all whitespace to single spaces. Validation and seed generation always
// operate on the normalized form so that visually identical phrases derive
// identical keys.
func Normalize(phrase string) string {
	normalized := norm.NFKD.String(strings.ToLower(phrase))
	return strings.Join(strings.Fields(normalized), " ")
}

// Validate normalizes and validates a BIP39 phrase. It returns the
// normalized phrase on success and ErrInvalidMnemonic otherwise.
func Validate(phrase string) (string, error) {
	normalized := Normalize(phrase)

	wordCount := len(strings.Fields(normalized))
	if wordCount != WordCount12 && wordCount != WordCount24 {
		return "", errors.Wrapf(ErrInvalidMnemonic, "unexpected word count %d", wordCount)
	}

	if !bip39.IsMnemonicValid(normalized) {
		return "", errors.Wrap(ErrInvalidMnemonic, "wordlist or checksum validation failed")
	}

	return normalized, nil
}

// ToSeed converts a phrase to its 64-byte BIP39 seed. The phrase is
// validated first; the passphrase may be empty. Pure and deterministic.
func ToSeed(phrase string, passphrase string) ([]byte, error) {
	normalized, err := Validate(phrase)
	if err != nil {
		return nil, err
	}

	return bip39.NewSeed(normalized, passphrase), nil
}

// Generate mints a new random mnemonic with the given word count
// (WordCount12 or WordCount24).
func Generate(wordCount int) (string, error) {
	var entropyBits int
	switch wordCount {
	case WordCount12:
		entropyBits = 128
	case WordCount24:
		entropyBits = 256
	default:
		return "", errors.Errorf("unsupported word count: %d", wordCount)
	}

	entropy, err := bip39.NewEntropy(entropyBits)
	if err != nil {
		return "", errors.Wrap(err, "failed to generate entropy")
	}

	phrase, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", errors.Wrap(err, "failed to generate mnemonic")
	}

	return phrase, nil
}
