package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	castle "github.com/mindcastle/mindcastle/internal/server"
	"github.com/mindcastle/mindcastle/internal/updater"
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update mindcastle to the latest release",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(os.Stderr, "Checking for updates...")

		result := updater.CheckVersion(castle.Version)
		if !result.UpdateAvailable {
			fmt.Fprintf(os.Stderr, "Already at the latest version (v%s)\n", result.CurrentVersion)
			return nil
		}

		fmt.Fprintf(os.Stderr, "New version available: v%s -> v%s\nDownloading...\n",
			result.CurrentVersion, result.LatestVersion)

		if err := updater.SelfUpdate(castle.Version); err != nil {
			fmt.Fprintf(os.Stderr, "You can download manually from:\n  %s\n", result.ReleaseURL)
			return fmt.Errorf("update failed: %w", err)
		}

		fmt.Fprintf(os.Stderr, "Updated to v%s. Restart mindcastle to use the new version.\n", result.LatestVersion)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(updateCmd)
}
