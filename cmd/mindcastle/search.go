package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search thoughts by title, content, or room",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		query := strings.Join(args, " ")
		notes := store.Search(query)
		if len(notes) == 0 {
			fmt.Printf("No thoughts match %q.\n", query)
			return nil
		}
		for _, n := range notes {
			printNote(store, n)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}
