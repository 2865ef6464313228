package journaltools

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mindcastle/mindcastle/internal/classify"
	"github.com/mindcastle/mindcastle/internal/journal"
)

// CaptureTool handles the journal_capture MCP tool.
type CaptureTool struct {
	store      *journal.Store
	classifier *classify.Classifier
}

// NewCaptureTool creates a CaptureTool with the given store and classifier.
func NewCaptureTool(store *journal.Store, classifier *classify.Classifier) *CaptureTool {
	return &CaptureTool{store: store, classifier: classifier}
}

// Definition returns the MCP tool definition for journal_capture.
func (t *CaptureTool) Definition() mcp.Tool {
	return mcp.NewTool("journal_capture",
		mcp.WithDescription(
			"Save a thought to the journal. Pass the finished transcript or typed text as content; "+
				"title and room are suggested automatically from the content but can be overridden.",
		),
		mcp.WithString("content",
			mcp.Required(),
			mcp.Description("The thought text — a finished, trimmed transcript or typed entry"),
		),
		mcp.WithString("title",
			mcp.Description("Title for the thought (default: suggested from the first words of content)"),
		),
		mcp.WithString("room",
			mcp.Description("Room id to file the thought under (default: suggested by keyword matching)"),
		),
	)
}

// Handle processes the journal_capture tool call.
func (t *CaptureTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	content := strings.TrimSpace(req.GetString("content", ""))
	if content == "" {
		return mcp.NewToolResultError("'content' is required"), nil
	}

	title := strings.TrimSpace(req.GetString("title", ""))
	suggested := false
	if title == "" {
		title = classify.SuggestTitle(content)
		suggested = true
	}

	room := req.GetString("room", "")
	if room == "" {
		room = t.classifier.Classify(content)
	}

	note := journal.Note{
		ID:            journal.NewNoteID(),
		Title:         title,
		Content:       content,
		Category:      room,
		CreatedAt:     time.Now(),
		EchoCandidate: classify.EchoCandidate(content),
	}
	if err := t.store.CreateNote(note); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to save thought: %v", err)), nil
	}

	response := fmt.Sprintf("Thought saved: %q in %s", note.Title, t.store.DisplayName(note.Category))
	if suggested {
		response += "\nTitle was suggested from the content — pass 'title' to override."
	}
	if note.EchoCandidate {
		response += "\nFlagged for later resurfacing (emotional or action-oriented content)."
	}
	response += fmt.Sprintf("\nID: %s", note.ID)

	return mcp.NewToolResultText(response), nil
}
