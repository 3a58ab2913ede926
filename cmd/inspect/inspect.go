// Package inspect implements the CLI subcommand that validates address
// strings and chain identifiers without touching key material.
package inspect

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/artlu99/velvet-wallet/internal/wallet/address"
	"github.com/artlu99/velvet-wallet/internal/wallet/chain"
)

func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Validate addresses and chain identifiers",
	}

	cmd.AddCommand(
		newAddress(),
		newChain(),
	)

	return cmd
}

func newAddress() *cobra.Command {
	return &cobra.Command{
		Use:   "address <address>",
		Short: "Check an address against both chain families",
		Args:  cobra.ExactArgs(1),
		Run: func(_ *cobra.Command, args []string) {
			raw := args[0]
			fmt.Printf("evm:\t%t\n", address.IsValid(raw, address.KeyTypeEVM))
			fmt.Printf("tron:\t%t\n", address.IsValid(raw, address.KeyTypeTron))
		},
	}
}

func newChain() *cobra.Command {
	return &cobra.Command{
		Use:   "chain <id>",
		Short: "Check a chain identifier for each endpoint kind",
		Args:  cobra.ExactArgs(1),
		Run: func(_ *cobra.Command, args []string) {
			raw := args[0]
			for _, kind := range []chain.Kind{chain.KindBalance, chain.KindENS, chain.KindTxCount, chain.KindGasEstimate} {
				if _, err := chain.ValidateChainID(raw, kind); err != nil {
					fmt.Printf("%s:\tinvalid (%s)\n", kind, err.Error())
					continue
				}
				fmt.Printf("%s:\tok\n", kind)
			}
		},
	}
}
