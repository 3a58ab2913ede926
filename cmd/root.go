package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/artlu99/velvet-wallet/cmd/classify"
	"github.com/artlu99/velvet-wallet/cmd/derive"
	"github.com/artlu99/velvet-wallet/cmd/env"
	"github.com/artlu99/velvet-wallet/cmd/inspect"
	"github.com/artlu99/velvet-wallet/internal/config"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Version: config.GetFormattedBuildArgs(),
	Use:     "velvet",
	Short:   config.ModuleName,
	Long: fmt.Sprintf(`%v

Non-custodial EVM and Tron wallet core.
Requires configuration through ENV.`, config.ModuleName),
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)

	// attach the subcommands
	rootCmd.AddCommand(
		classify.New(),
		derive.New(),
		env.New(),
		inspect.New(),
	)

	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("Failed to execute root command")
		os.Exit(1)
	}
}
