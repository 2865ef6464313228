package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var recallCmd = &cobra.Command{
	Use:   "recall",
	Short: "Resurface a random thought",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		note, ok := store.RandomNote()
		if !ok {
			fmt.Println("The castle is empty. Capture a thought first.")
			return nil
		}
		fmt.Printf("%s (%s, %s)\n\n%s\n",
			note.Title, store.DisplayName(note.Category),
			note.CreatedAt.Format("Jan 2, 2006"), note.Content)
		return nil
	},
}

var echoesCmd = &cobra.Command{
	Use:   "echoes",
	Short: "List emotionally significant thoughts old enough to resurface",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		echoes := store.EchoCandidates(time.Now())
		if len(echoes) == 0 {
			fmt.Println("No echoes yet. Thoughts resurface once they have aged.")
			return nil
		}
		for _, n := range echoes {
			printNote(store, n)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(recallCmd)
	rootCmd.AddCommand(echoesCmd)
}
