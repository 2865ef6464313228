package journaltools

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mindcastle/mindcastle/internal/journal"
)

// RoomsTool handles the journal_rooms MCP tool.
type RoomsTool struct {
	store *journal.Store
}

// NewRoomsTool creates a RoomsTool.
func NewRoomsTool(store *journal.Store) *RoomsTool {
	return &RoomsTool{store: store}
}

// Definition returns the MCP tool definition for journal_rooms.
func (t *RoomsTool) Definition() mcp.Tool {
	return mcp.NewTool("journal_rooms",
		mcp.WithDescription(
			"List all rooms — the five built-in rooms plus any custom rooms — with thought counts.",
		),
	)
}

// Handle processes the journal_rooms tool call.
func (t *RoomsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	stats := t.store.Stats()

	var b strings.Builder
	b.WriteString("## Rooms\n\n")
	for _, id := range journal.BuiltinRooms() {
		fmt.Fprintf(&b, "- %s (%s): %d thoughts\n", t.store.DisplayName(id), id, stats.RoomCounts[id])
	}
	custom := t.store.CustomRooms()
	if len(custom) > 0 {
		b.WriteString("\n### Custom Rooms\n\n")
		for _, r := range custom {
			fmt.Fprintf(&b, "- %s (%s, %s): %d thoughts\n", r.Name, r.ID, r.Color, stats.RoomCounts[r.ID])
		}
	}

	return mcp.NewToolResultText(b.String()), nil
}

// CreateRoomTool handles the journal_create_room MCP tool.
type CreateRoomTool struct {
	store *journal.Store
}

// NewCreateRoomTool creates a CreateRoomTool.
func NewCreateRoomTool(store *journal.Store) *CreateRoomTool {
	return &CreateRoomTool{store: store}
}

// Definition returns the MCP tool definition for journal_create_room.
func (t *CreateRoomTool) Definition() mcp.Tool {
	return mcp.NewTool("journal_create_room",
		mcp.WithDescription(
			"Create a custom room for grouping thoughts. The room id is derived from the name.",
		),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Display name for the room"),
		),
		mcp.WithString("color",
			mcp.Description("Color token for the room, e.g. #b798e0 (default: the standard room color)"),
		),
	)
}

// Handle processes the journal_create_room tool call.
func (t *CreateRoomTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := req.GetString("name", "")
	color := req.GetString("color", "")

	room, err := t.store.CreateCustomRoom(name, color)
	if err != nil {
		if errors.Is(err, journal.ErrEmptyRoomName) {
			return mcp.NewToolResultError("'name' must not be empty"), nil
		}
		return mcp.NewToolResultError(fmt.Sprintf("failed to create room: %v", err)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Room created: %q\nID: %s\nColor: %s", room.Name, room.ID, room.Color)), nil
}
