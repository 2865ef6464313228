package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mindcastle/mindcastle/internal/journal"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show journal statistics",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		stats := store.Stats()

		mostFrequent := stats.MostFrequentRoom
		if mostFrequent != journal.NoFrequentRoom {
			mostFrequent = store.DisplayName(mostFrequent)
		}

		fmt.Printf("Total thoughts:     %d\n", stats.TotalNotes)
		fmt.Printf("Most visited room:  %s\n", mostFrequent)
		fmt.Printf("Daily streak:       %d\n", stats.DailyStreak)
		fmt.Println()
		for _, id := range store.AllRoomIDs() {
			fmt.Printf("  %-20s %d\n", store.DisplayName(id), stats.RoomCounts[id])
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
