// Export command for the seedgen CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/toolshop/seedgen/internal/sqlite"
	"github.com/toolshop/seedgen/pkg/types"
)

var flagDB string

var exportCmd = &cobra.Command{
	Use:   "export <dir>",
	Short: "Export a validated CSV dataset into a SQLite database",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := args[0]
		if _, err := os.Stat(dir); err != nil {
			fmt.Fprintln(os.Stderr, "export:", err)
			os.Exit(exitUserError)
		}

		if err := sqlite.Export(dir, flagDB); err != nil {
			fmt.Fprintln(os.Stderr, "export:", err)
			if errors.Is(err, types.ErrValidationFailed) {
				os.Exit(exitUserError)
			}
			os.Exit(exitSysError)
		}

		fmt.Println("Dataset exported to", flagDB)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&flagDB, "db", "seedgen.db", "SQLite database file to create")
}
