package journaltools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mindcastle/mindcastle/internal/journal"
)

// StatsTool handles the journal_stats MCP tool.
type StatsTool struct {
	store *journal.Store
}

// NewStatsTool creates a StatsTool with the given journal store.
func NewStatsTool(store *journal.Store) *StatsTool {
	return &StatsTool{store: store}
}

// Definition returns the MCP tool definition for journal_stats.
func (t *StatsTool) Definition() mcp.Tool {
	return mcp.NewTool("journal_stats",
		mcp.WithDescription(
			"Show journal statistics — total thoughts, per-room counts, the most active room, and the daily streak.",
		),
	)
}

// Handle processes the journal_stats tool call.
func (t *StatsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	stats := t.store.Stats()

	mostFrequent := stats.MostFrequentRoom
	if mostFrequent != journal.NoFrequentRoom {
		mostFrequent = t.store.DisplayName(mostFrequent)
	}

	var b strings.Builder
	b.WriteString("## Journal Statistics\n\n")
	fmt.Fprintf(&b, "- **Total thoughts**: %d\n", stats.TotalNotes)
	fmt.Fprintf(&b, "- **Most active room**: %s\n", mostFrequent)
	fmt.Fprintf(&b, "- **Daily streak**: %d\n\n", stats.DailyStreak)

	b.WriteString("### Per-room counts\n\n")
	for _, id := range t.store.AllRoomIDs() {
		fmt.Fprintf(&b, "- %s: %d\n", t.store.DisplayName(id), stats.RoomCounts[id])
	}

	return mcp.NewToolResultText(b.String()), nil
}
