// Init command for the seedgen CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default seedgen.yaml in the working directory",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configFileExt
		if flagConfig != "" {
			path = flagConfig
		}

		created, err := ensureDefaultConfigFile(path)
		if err != nil {
			fmt.Fprintln(os.Stderr, "init:", err)
			os.Exit(exitSysError)
		}
		if !created {
			fmt.Println("Config already exists:", path)
			return nil
		}

		fmt.Println("Config written:", path)
		return nil
	},
}
