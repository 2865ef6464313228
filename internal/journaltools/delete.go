package journaltools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mindcastle/mindcastle/internal/journal"
)

// DeleteTool handles the journal_delete MCP tool.
type DeleteTool struct {
	store *journal.Store
}

// NewDeleteTool creates a DeleteTool.
func NewDeleteTool(store *journal.Store) *DeleteTool {
	return &DeleteTool{store: store}
}

// Definition returns the MCP tool definition for journal_delete.
func (t *DeleteTool) Definition() mcp.Tool {
	return mcp.NewTool("journal_delete",
		mcp.WithDescription(
			"Delete a thought by id. Deleting an id that does not exist is a no-op.",
		),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("The thought id, e.g. thought_1712345678901234567"),
		),
	)
}

// Handle processes the journal_delete tool call.
func (t *DeleteTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := req.GetString("id", "")
	if id == "" {
		return mcp.NewToolResultError("'id' is required"), nil
	}

	_, existed := t.store.GetNote(id)
	if err := t.store.DeleteNote(id); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to delete thought: %v", err)), nil
	}

	if !existed {
		return mcp.NewToolResultText(fmt.Sprintf("No thought with id %s — nothing to delete.", id)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Thought %s deleted.", id)), nil
}
