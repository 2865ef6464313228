package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mindcastle/mindcastle/internal/classify"
	"github.com/mindcastle/mindcastle/internal/journal"
)

var (
	addTitle string
	addRoom  string
)

var addCmd = &cobra.Command{
	Use:   "add <thought>",
	Short: "Capture a thought into the castle",
	Long: `Records a thought and files it into a room. Without --room the thought
is classified by its content; without --title one is derived from the
first few words.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		content := strings.TrimSpace(strings.Join(args, " "))
		if content == "" {
			return fmt.Errorf("thought content is empty")
		}

		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		classifier := classify.New()

		title := strings.TrimSpace(addTitle)
		if title == "" {
			title = classify.SuggestTitle(content)
		}
		room := strings.TrimSpace(addRoom)
		if room == "" {
			room = classifier.Classify(content)
		}

		note := journal.Note{
			ID:            journal.NewNoteID(),
			Title:         title,
			Content:       content,
			Category:      room,
			CreatedAt:     time.Now(),
			EchoCandidate: classify.EchoCandidate(content),
		}
		if err := store.CreateNote(note); err != nil {
			return fmt.Errorf("saving thought: %w", err)
		}

		fmt.Printf("Captured %q in %s\n", note.Title, store.DisplayName(note.Category))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().StringVar(&addTitle, "title", "", "Title for the thought (derived from content if empty)")
	addCmd.Flags().StringVar(&addRoom, "room", "", "Room ID to file the thought into (classified if empty)")
}
