package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mindcastle/mindcastle/internal/journal"
)

var (
	listRoom string
	listJSON bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List captured thoughts, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		var notes []journal.Note
		if listRoom != "" {
			notes = store.NotesByRoom(listRoom)
		} else {
			notes = store.Notes()
		}

		if listJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			return encoder.Encode(notes)
		}

		if len(notes) == 0 {
			fmt.Println("The castle is empty.")
			return nil
		}
		for _, n := range notes {
			printNote(store, n)
		}
		return nil
	},
}

func printNote(store *journal.Store, n journal.Note) {
	fmt.Printf("%s  %s  [%s]\n", n.CreatedAt.Format("2006-01-02"), n.Title, store.DisplayName(n.Category))
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringVar(&listRoom, "room", "", "Only show thoughts from this room ID")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
}
