package wallet

import (
	"github.com/artlu99/velvet-wallet/internal/wallet/address"
)

// DerivedWallet is the result of deriving one account from the wallet's
// mnemonic: the chain-family-tagged address and its private key. The
// private key is present only until the caller encrypts or discards it.
type DerivedWallet struct {
	Address         string
	KeyType         address.KeyType
	DerivationIndex int64
	DerivationPath  string
	PrivateKey      address.PrivateKey
}

// Zero clears the private key material held by the derived wallet.
func (w *DerivedWallet) Zero() {
	w.PrivateKey.Zero()
}
