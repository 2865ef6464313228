package journaltools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mindcastle/mindcastle/internal/journal"
)

// RoomNotesTool handles the journal_room MCP tool.
type RoomNotesTool struct {
	store *journal.Store
}

// NewRoomNotesTool creates a RoomNotesTool.
func NewRoomNotesTool(store *journal.Store) *RoomNotesTool {
	return &RoomNotesTool{store: store}
}

// Definition returns the MCP tool definition for journal_room.
func (t *RoomNotesTool) Definition() mcp.Tool {
	return mcp.NewTool("journal_room",
		mcp.WithDescription(
			"List the thoughts in one room, newest first.",
		),
		mcp.WithString("room",
			mcp.Required(),
			mcp.Description("Room id, e.g. dreams-visions or a custom room id"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Max thoughts to return (default: 20)"),
		),
	)
}

// Handle processes the journal_room tool call.
func (t *RoomNotesTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	room := req.GetString("room", "")
	if room == "" {
		return mcp.NewToolResultError("'room' is required"), nil
	}
	limit := intArg(req, "limit", 20)
	if limit <= 0 {
		limit = 20
	}

	notes := t.store.NotesByRoom(room)
	if len(notes) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf(
			"No thoughts in %s yet. Capture one to fill this room.", t.store.DisplayName(room),
		)), nil
	}
	total := len(notes)
	if total > limit {
		notes = notes[:limit]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "## %s — %d thoughts\n\n", t.store.DisplayName(room), total)
	if total > len(notes) {
		fmt.Fprintf(&b, "Showing the %d most recent.\n\n", len(notes))
	}
	for _, n := range notes {
		fmt.Fprintf(&b, "- [%s] %s — %s\n  %s\n", formatNoteDate(n.CreatedAt), n.Title, n.ID, journal.Truncate(n.Content, 120))
	}

	return mcp.NewToolResultText(b.String()), nil
}
