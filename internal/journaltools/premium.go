package journaltools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mindcastle/mindcastle/internal/journal"
)

// PremiumTool handles the journal_premium MCP tool. The flag is purely
// local — there is no payment verification behind it.
type PremiumTool struct {
	store *journal.Store
}

// NewPremiumTool creates a PremiumTool.
func NewPremiumTool(store *journal.Store) *PremiumTool {
	return &PremiumTool{store: store}
}

// Definition returns the MCP tool definition for journal_premium.
func (t *PremiumTool) Definition() mcp.Tool {
	return mcp.NewTool("journal_premium",
		mcp.WithDescription(
			"Show or set the local premium flag, which lifts the daily insight limit.",
		),
		mcp.WithBoolean("enabled",
			mcp.Description("Set the premium flag; omit to just show the current state"),
		),
	)
}

// Handle processes the journal_premium tool call.
func (t *PremiumTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if _, present := req.GetArguments()["enabled"]; present {
		state := journal.UserState{IsPremium: boolArg(req, "enabled", false)}
		if err := t.store.SetUserState(state); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to save premium flag: %v", err)), nil
		}
	}

	if t.store.UserState().IsPremium {
		return mcp.NewToolResultText("Premium is enabled — daily insight limits are lifted."), nil
	}
	return mcp.NewToolResultText("Premium is disabled — insights are limited per day."), nil
}
