// Generate command for the seedgen CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/toolshop/seedgen/internal/pipeline"
	"github.com/toolshop/seedgen/pkg/types"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the nine CSV tables and validate the output",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			fmt.Fprintln(os.Stderr, "generate:", err)
			os.Exit(exitUserError)
		}

		log := newLogger()
		runner := pipeline.New(cfg, log)
		if _, err := runner.Run(); err != nil {
			if errors.Is(err, types.ErrInvalidConfig) {
				fmt.Fprintln(os.Stderr, "generate:", err)
				os.Exit(exitUserError)
			}
			if errors.Is(err, types.ErrValidationFailed) {
				fmt.Fprintln(os.Stderr, "generate:", err)
				fmt.Fprintln(os.Stderr, "see", runner.ReportPath())
				os.Exit(exitUserError)
			}
			fmt.Fprintln(os.Stderr, "generate:", err)
			os.Exit(exitSysError)
		}

		fmt.Println("Dataset written to", cfg.OutputDir)
		return nil
	},
}

func init() {
	generateCmd.Flags().StringVar(&flagOut, "out", "", "output directory (overrides config)")
	generateCmd.Flags().Int64Var(&flagSeed, "seed", 0, "random seed (overrides config)")
}
