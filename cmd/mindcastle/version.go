package main

import (
	"fmt"

	"github.com/spf13/cobra"

	castle "github.com/mindcastle/mindcastle/internal/server"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the mindcastle version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("mindcastle v%s\n", castle.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
