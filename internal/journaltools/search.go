package journaltools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mindcastle/mindcastle/internal/journal"
)

// SearchTool handles the journal_search MCP tool.
type SearchTool struct {
	store *journal.Store
}

// NewSearchTool creates a SearchTool.
func NewSearchTool(store *journal.Store) *SearchTool {
	return &SearchTool{store: store}
}

// Definition returns the MCP tool definition for journal_search.
func (t *SearchTool) Definition() mcp.Tool {
	return mcp.NewTool("journal_search",
		mcp.WithDescription(
			"Search all thoughts by substring match over title, content, and room id (case-insensitive).",
		),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Text to search for"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Max results (default: 10)"),
		),
	)
}

// Handle processes the journal_search tool call.
func (t *SearchTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query := strings.TrimSpace(req.GetString("query", ""))
	if query == "" {
		return mcp.NewToolResultError("'query' is required"), nil
	}
	limit := intArg(req, "limit", 10)
	if limit <= 0 {
		limit = 10
	}

	results := t.store.Search(query)
	if len(results) == 0 {
		return mcp.NewToolResultText("No thoughts found matching your search."), nil
	}
	if len(results) > limit {
		results = results[:limit]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d thoughts:\n\n", len(results))
	for i, n := range results {
		fmt.Fprintf(&b, "[%d] %s (%s) — %s\n    %s\n\n",
			i+1, n.Title, t.store.DisplayName(n.Category), formatNoteDate(n.CreatedAt),
			journal.Truncate(n.Content, 200),
		)
	}

	return mcp.NewToolResultText(b.String()), nil
}
