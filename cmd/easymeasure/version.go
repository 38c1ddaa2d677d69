package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var Version = "v0.1.0-dev"

func init() {
	rootCmd.AddCommand(VersionCmd)
}

var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "print the version",

	// SilenceUsage is an option to silence usage when an error occurs.
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), Version)
		return err
	},
}
