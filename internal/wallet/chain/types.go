package chain

import "github.com/artlu99/velvet-wallet/internal/wallet/address"

// ID identifies a supported chain. EVM chains use their numeric chain ID in
// decimal string form; Tron uses the literal "tron".
type ID string

const (
	IDEthereum ID = "1"
	IDBase     ID = "8453"
	IDTron     ID = "tron"
)

// KeyType returns the chain family an ID belongs to.
func (id ID) KeyType() address.KeyType {
	if id == IDTron {
		return address.KeyTypeTron
	}
	return address.KeyTypeEVM
}

// IsEVM reports whether the chain is an EVM chain.
func (id ID) IsEVM() bool {
	return id != IDTron
}

// Kind names the endpoint a validation runs for. All kinds share the same
// underlying checks; the kind selects the error-message template and
// whether Tron is an acceptable chain.
type Kind string

const (
	KindBalance     Kind = "balance"
	KindENS         Kind = "ens"
	KindTxCount     Kind = "txCount"
	KindGasEstimate Kind = "gasEstimate"
)

// SupportsTron reports whether the endpoint kind accepts the Tron chain.
// Nonce, gas-estimate and ENS endpoints are EVM-only.
func (k Kind) SupportsTron() bool {
	return k == KindBalance
}
