package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/mindcastle/mindcastle/internal/config"
	"github.com/mindcastle/mindcastle/internal/journal"
)

var (
	cfg     config.Config
	verbose bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "mindcastle",
	Short: "A personal journal that sorts your thoughts into rooms",
	Long: `Mind Castle captures your thoughts, files each one into a themed room,
and keeps everything in a local database under your home directory.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Parse()
		if err != nil {
			return err
		}
		if verbose {
			cfg.LogLevel = "debug"
		}
		return initLogger(cfg)
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
}

// initLogger installs the process-wide slog handler. Logs always go to
// stderr so they never interfere with the MCP stdio transport on stdout.
func initLogger(cfg config.Config) error {
	level, err := parseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}

	var handler slog.Handler
	if cfg.Pretty {
		handler = tint.NewHandler(os.Stderr, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
		})
	} else {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		})
	}

	slog.SetDefault(slog.New(handler))
	return nil
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("parse log level %q: %w", s, err)
	}
	return level, nil
}

// openStore opens the journal store using the parsed configuration.
// Callers must Close it when done.
func openStore() (*journal.Store, error) {
	store, err := journal.Open(journal.Config{
		DataDir:        cfg.DataDir,
		EchoMinAgeDays: cfg.EchoMinAgeDays,
	})
	if err != nil {
		return nil, fmt.Errorf("opening journal store: %w", err)
	}
	return store, nil
}
