// Package journaltools provides the MCP tool handlers for Mind Castle.
//
// Each tool follows the same pattern:
// - A struct with dependencies (journal.Store, classifier) injected via constructor
// - Definition() returns the mcp.Tool schema
// - Handle() processes the request and returns a result
//
// Handlers return plain text for the assistant to render; all state lives
// in the journal store.
package journaltools

import (
	"time"

	"github.com/mark3labs/mcp-go/mcp"
)

// noteDateFormat is how note creation times are shown in tool output.
const noteDateFormat = "Jan 2, 2006"

// intArg extracts an integer argument from a tool request, returning
// defaultVal if the key is missing or not a number (JSON numbers are float64).
func intArg(req mcp.CallToolRequest, key string, defaultVal int) int {
	v, ok := req.GetArguments()[key].(float64)
	if !ok {
		return defaultVal
	}
	return int(v)
}

// boolArg extracts a boolean argument from a tool request.
func boolArg(req mcp.CallToolRequest, key string, defaultVal bool) bool {
	v, ok := req.GetArguments()[key].(bool)
	if !ok {
		return defaultVal
	}
	return v
}

func formatNoteDate(t time.Time) string {
	return t.Format(noteDateFormat)
}
