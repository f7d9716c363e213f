// Package main provides the seedgen CLI: synthetic relational data
// generation, validation, and database export for the tool-shop
// application under test.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitUserError)
	}
}
