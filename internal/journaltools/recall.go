package journaltools

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mindcastle/mindcastle/internal/journal"
)

// RecallTool handles the journal_recall MCP tool.
type RecallTool struct {
	store *journal.Store
}

// NewRecallTool creates a RecallTool.
func NewRecallTool(store *journal.Store) *RecallTool {
	return &RecallTool{store: store}
}

// Definition returns the MCP tool definition for journal_recall.
func (t *RecallTool) Definition() mcp.Tool {
	return mcp.NewTool("journal_recall",
		mcp.WithDescription(
			"Resurface one thought chosen uniformly at random from the whole journal.",
		),
	)
}

// Handle processes the journal_recall tool call.
func (t *RecallTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	note, ok := t.store.RandomNote()
	if !ok {
		return mcp.NewToolResultText("No thoughts saved yet. Capture some thoughts first."), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf(
		"## %s\n\n%s\n\n— %s, %s (ID: %s)",
		note.Title, note.Content,
		t.store.DisplayName(note.Category), formatNoteDate(note.CreatedAt), note.ID,
	)), nil
}

// EchoTool handles the journal_echoes MCP tool.
type EchoTool struct {
	store *journal.Store
}

// NewEchoTool creates an EchoTool.
func NewEchoTool(store *journal.Store) *EchoTool {
	return &EchoTool{store: store}
}

// Definition returns the MCP tool definition for journal_echoes.
func (t *EchoTool) Definition() mcp.Tool {
	return mcp.NewTool("journal_echoes",
		mcp.WithDescription(
			"List older thoughts flagged at capture time as emotionally or action-oriented — candidates for a follow-up.",
		),
		mcp.WithNumber("min_age_days",
			mcp.Description("Minimum age in days before a flagged thought qualifies (default: 7)"),
		),
	)
}

// Handle processes the journal_echoes tool call.
func (t *EchoTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	minAge := intArg(req, "min_age_days", journal.DefaultEchoAgeDays)

	candidates := journal.EchoCandidates(t.store.Notes(), minAge, time.Now())
	if len(candidates) == 0 {
		return mcp.NewToolResultText("No echo candidates right now."), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d echo candidates:\n\n", len(candidates))
	for _, n := range candidates {
		fmt.Fprintf(&b, "- [%s] %s (%s)\n  %s\n", formatNoteDate(n.CreatedAt), n.Title,
			t.store.DisplayName(n.Category), journal.Truncate(n.Content, 150))
	}

	return mcp.NewToolResultText(b.String()), nil
}
