package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	castle "github.com/mindcastle/mindcastle/internal/server"
	"github.com/mindcastle/mindcastle/internal/updater"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server (stdio transport)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, cleanup, err := castle.New(cfg)
		if err != nil {
			return fmt.Errorf("creating server: %w", err)
		}
		defer cleanup()

		// Background version check — prints to stderr so it doesn't
		// interfere with MCP's stdio transport on stdout.
		go notifyUpdates()

		slog.Info("mindcastle serving over stdio", "version", castle.Version, "data_dir", cfg.DataDir)
		return server.ServeStdio(s)
	},
}

// notifyUpdates runs a non-blocking version check and prints a notice to
// stderr if a newer release exists. Best-effort: network failures are
// silently ignored.
func notifyUpdates() {
	result := updater.CheckVersion(castle.Version)
	if result.UpdateAvailable {
		fmt.Fprintf(os.Stderr,
			"\n  Update available: v%s -> v%s\n"+
				"  Run: mindcastle update\n"+
				"  Release: %s\n\n",
			result.CurrentVersion, result.LatestVersion, result.ReleaseURL,
		)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
