package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var roomColor string

var roomsCmd = &cobra.Command{
	Use:   "rooms",
	Short: "List the rooms of the castle",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		stats := store.Stats()
		for _, id := range store.AllRoomIDs() {
			fmt.Printf("%-24s %-20s %d thoughts\n", id, store.DisplayName(id), stats.RoomCounts[id])
		}
		return nil
	},
}

var createRoomCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a custom room",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		room, err := store.CreateCustomRoom(args[0], roomColor)
		if err != nil {
			return fmt.Errorf("creating room: %w", err)
		}
		fmt.Printf("Created room %q (%s)\n", room.Name, room.ID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(roomsCmd)
	roomsCmd.AddCommand(createRoomCmd)
	createRoomCmd.Flags().StringVar(&roomColor, "color", "", "Hex color for the room (default palette color if empty)")
}
