package main

import (
	"github.com/spf13/cobra"

	"github.com/markovic-nikola/keyhint/update"
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update keyhint to the latest release",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return update.Run(cmd.Context(), cmd.OutOrStdout(), version)
	},
}

func init() {
	rootCmd.AddCommand(updateCmd)
}
