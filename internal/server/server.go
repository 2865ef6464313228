// Package server wires all MCP components and creates the server instance.
//
// This is the composition root: it creates the journal store and the
// classifier and injects them into the tool handlers. No business logic
// lives here — only wiring.
package server

import (
	"fmt"

	"github.com/mark3labs/mcp-go/server"
	"github.com/mindcastle/mindcastle/internal/classify"
	"github.com/mindcastle/mindcastle/internal/config"
	"github.com/mindcastle/mindcastle/internal/journal"
	"github.com/mindcastle/mindcastle/internal/journaltools"
)

// Version is set at build time via ldflags.
var Version = "dev"

// New creates and configures the MCP server with all journal tools
// registered.
//
// The returned cleanup function closes the journal store's database and
// must be called on shutdown (typically via defer). It is always non-nil.
func New(cfg config.Config) (*server.MCPServer, func(), error) {
	store, err := journal.Open(journal.Config{
		DataDir:        cfg.DataDir,
		EchoMinAgeDays: cfg.EchoMinAgeDays,
	})
	if err != nil {
		return nil, func() {}, fmt.Errorf("opening journal store: %w", err)
	}
	cleanup := func() { _ = store.Close() }

	classifier := classify.New()

	s := server.NewMCPServer(
		"mindcastle",
		Version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(serverInstructions()),
	)

	capture := journaltools.NewCaptureTool(store, classifier)
	s.AddTool(capture.Definition(), capture.Handle)

	rooms := journaltools.NewRoomsTool(store)
	s.AddTool(rooms.Definition(), rooms.Handle)

	createRoom := journaltools.NewCreateRoomTool(store)
	s.AddTool(createRoom.Definition(), createRoom.Handle)

	roomNotes := journaltools.NewRoomNotesTool(store)
	s.AddTool(roomNotes.Definition(), roomNotes.Handle)

	search := journaltools.NewSearchTool(store)
	s.AddTool(search.Definition(), search.Handle)

	stats := journaltools.NewStatsTool(store)
	s.AddTool(stats.Definition(), stats.Handle)

	recall := journaltools.NewRecallTool(store)
	s.AddTool(recall.Definition(), recall.Handle)

	echoes := journaltools.NewEchoTool(store)
	s.AddTool(echoes.Definition(), echoes.Handle)

	del := journaltools.NewDeleteTool(store)
	s.AddTool(del.Definition(), del.Handle)

	insightTool := journaltools.NewInsightTool(store, cfg.FreeDailyInsights)
	s.AddTool(insightTool.Definition(), insightTool.Handle)

	analysis := journaltools.NewAnalysisTool(store, cfg.FreeDailyInsights)
	s.AddTool(analysis.Definition(), analysis.Handle)

	premium := journaltools.NewPremiumTool(store)
	s.AddTool(premium.Definition(), premium.Handle)

	return s, cleanup, nil
}

func serverInstructions() string {
	return `Mind Castle is a personal journaling system. Thoughts are filed into
rooms — five built-in (Personal Growth, Business Ideas, Dreams Visions,
Relationships, Creativity) plus any custom rooms the user creates.

Typical flow:
1. When the user shares a thought worth keeping, call journal_capture with
   the text. Title and room are suggested automatically; pass them
   explicitly when the user states a preference.
2. Use journal_rooms and journal_room to browse, journal_search to find
   past thoughts, and journal_stats for totals, the most active room, and
   the daily streak.
3. journal_recall resurfaces one random thought ("remind me of something I
   wrote"). journal_echoes lists older emotionally charged or
   action-oriented thoughts worth following up on.
4. journal_insight and journal_analysis produce short templated
   reflections; they are quota-limited per day unless premium is enabled.

The title and room suggestions are keyword heuristics, never authoritative —
let the user override them. Deletion is permanent; confirm before calling
journal_delete.`
}
