// Root command for the seedgen CLI.
package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfig string
	flagOut    string
	flagSeed   int64
)

var rootCmd = &cobra.Command{
	Use:   "seedgen",
	Short: "Seedgen generates consistent synthetic data for the tool shop",
	Long: `Seedgen produces nine interrelated CSV tables (users, categories,
brands, product images, products, favorites, invoices, invoice items,
payments) with referential integrity and realistic distributions, then
validates the persisted output before declaring success.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "configuration file (default: seedgen.yaml if present)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(exportCmd)
}

// newLogger builds the console logger used by all subcommands.
func newLogger() zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
}
