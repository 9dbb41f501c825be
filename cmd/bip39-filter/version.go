package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of bip39-filter",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "bip39-filter %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
