package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is set with -ldflags "-X main.Version=..."
var Version = "dev"

var cmdVersion = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", cmdMain.Use, Version)
	},
}

func init() {
	cmdMain.AddCommand(cmdVersion)
}
