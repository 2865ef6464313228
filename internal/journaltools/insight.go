package journaltools

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mindcastle/mindcastle/internal/insight"
	"github.com/mindcastle/mindcastle/internal/journal"
)

// InsightTool handles the journal_insight MCP tool. Insights are canned
// reflections paced by the daily quota.
type InsightTool struct {
	store     *journal.Store
	freeLimit int
}

// NewInsightTool creates an InsightTool with the given free-tier daily limit.
func NewInsightTool(store *journal.Store, freeLimit int) *InsightTool {
	return &InsightTool{store: store, freeLimit: freeLimit}
}

// Definition returns the MCP tool definition for journal_insight.
func (t *InsightTool) Definition() mcp.Tool {
	return mcp.NewTool("journal_insight",
		mcp.WithDescription(
			"Generate a short reflection on a saved thought. Limited per day on the free tier.",
		),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("The thought id to reflect on"),
		),
	)
}

// Handle processes the journal_insight tool call.
func (t *InsightTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := req.GetString("id", "")
	if id == "" {
		return mcp.NewToolResultError("'id' is required"), nil
	}

	note, ok := t.store.GetNote(id)
	if !ok {
		return mcp.NewToolResultText(fmt.Sprintf("No thought with id %s.", id)), nil
	}

	limiter := insight.NewLimiter(t.store.UserState(), t.store.Usage(), t.freeLimit)
	now := time.Now()
	if !limiter.Allow(now) {
		return mcp.NewToolResultText("Daily insight limit reached. Upgrade to premium or try again tomorrow."), nil
	}
	limiter.Record(now)
	if err := t.store.SetUsage(limiter.Usage()); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to record usage: %v", err)), nil
	}

	response := fmt.Sprintf("## Insight on %q\n\n%s", note.Title, insight.RandomReflection())
	if rem := limiter.Remaining(now); rem >= 0 {
		response += fmt.Sprintf("\n\n(%d insights left today)", rem)
	}
	return mcp.NewToolResultText(response), nil
}

// AnalysisTool handles the journal_analysis MCP tool — the templated
// business report offered for business-ideas thoughts.
type AnalysisTool struct {
	store     *journal.Store
	freeLimit int
}

// NewAnalysisTool creates an AnalysisTool.
func NewAnalysisTool(store *journal.Store, freeLimit int) *AnalysisTool {
	return &AnalysisTool{store: store, freeLimit: freeLimit}
}

// Definition returns the MCP tool definition for journal_analysis.
func (t *AnalysisTool) Definition() mcp.Tool {
	return mcp.NewTool("journal_analysis",
		mcp.WithDescription(
			"Produce a templated business analysis for a thought filed under business-ideas. Limited per day on the free tier.",
		),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("The thought id to analyze"),
		),
	)
}

// Handle processes the journal_analysis tool call.
func (t *AnalysisTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := req.GetString("id", "")
	if id == "" {
		return mcp.NewToolResultError("'id' is required"), nil
	}

	note, ok := t.store.GetNote(id)
	if !ok {
		return mcp.NewToolResultText(fmt.Sprintf("No thought with id %s.", id)), nil
	}
	if note.Category != journal.RoomBusinessIdeas {
		return mcp.NewToolResultText("Business analysis is only available for thoughts in Business Ideas."), nil
	}

	limiter := insight.NewLimiter(t.store.UserState(), t.store.Usage(), t.freeLimit)
	now := time.Now()
	if !limiter.Allow(now) {
		return mcp.NewToolResultText("Daily analysis limit reached. Upgrade to premium or try again tomorrow."), nil
	}
	limiter.Record(now)
	if err := t.store.SetUsage(limiter.Usage()); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to record usage: %v", err)), nil
	}

	return mcp.NewToolResultText(formatAnalysis(note.Title, insight.BusinessAnalysis())), nil
}

func formatAnalysis(title string, a insight.Analysis) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## Business Analysis: %s\n\n%s\n", title, a.Summary)

	section := func(heading string, items []string) {
		fmt.Fprintf(&b, "\n### %s\n", heading)
		for _, item := range items {
			fmt.Fprintf(&b, "- %s\n", item)
		}
	}
	section("Strengths", a.Strengths)
	section("Weaknesses", a.Weaknesses)
	section("Opportunities", a.Opportunities)
	section("Suggestions", a.Suggestions)

	return b.String()
}
