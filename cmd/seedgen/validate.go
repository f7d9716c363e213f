// Validate command for the seedgen CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/toolshop/seedgen/internal/pipeline"
	"github.com/toolshop/seedgen/internal/validate"
)

var validateCmd = &cobra.Command{
	Use:   "validate <dir>",
	Short: "Validate a previously generated dataset directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := args[0]
		if _, err := os.Stat(dir); err != nil {
			fmt.Fprintln(os.Stderr, "validate:", err)
			os.Exit(exitUserError)
		}

		log := newLogger()
		result := validate.New(dir).Run()
		validate.Summarize(log, result)

		if !result.Valid {
			reportPath := filepath.Join(dir, pipeline.ReportFileName)
			if err := validate.WriteReport(reportPath, result); err != nil {
				fmt.Fprintln(os.Stderr, "validate:", err)
				os.Exit(exitSysError)
			}
			fmt.Fprintln(os.Stderr, "validate: dataset invalid, see", reportPath)
			os.Exit(exitUserError)
		}

		fmt.Println("Dataset valid")
		return nil
	},
}
