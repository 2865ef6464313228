package journal_test

import (
	"strings"
	"testing"
	"time"

	"github.com/mindcastle/mindcastle/internal/journal"
)

// ─── Built-in rooms ─────────────────────────────────────────────────────────

func TestBuiltinRooms_StableOrder(t *testing.T) {
	want := []string{
		journal.RoomPersonalGrowth,
		journal.RoomBusinessIdeas,
		journal.RoomDreamsVisions,
		journal.RoomRelationships,
		journal.RoomCreativity,
	}
	got := journal.BuiltinRooms()
	if len(got) != len(want) {
		t.Fatalf("BuiltinRooms len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("BuiltinRooms[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestIsBuiltinRoom(t *testing.T) {
	if !journal.IsBuiltinRoom(journal.RoomDreamsVisions) {
		t.Error("dreams-visions should be built-in")
	}
	if journal.IsBuiltinRoom("custom-travel-123") {
		t.Error("custom id reported as built-in")
	}
}

// ─── Display names and colors ───────────────────────────────────────────────

func TestDisplayName(t *testing.T) {
	s := newTestStore(t)

	if got := s.DisplayName(journal.RoomPersonalGrowth); got != "Personal Growth" {
		t.Errorf("DisplayName(personal-growth) = %q, want %q", got, "Personal Growth")
	}
	if got := s.DisplayName(journal.RoomCreativity); got != "Creativity" {
		t.Errorf("DisplayName(creativity) = %q, want %q", got, "Creativity")
	}

	room, err := s.CreateCustomRoom("Travel Plans", "#123456")
	if err != nil {
		t.Fatalf("CreateCustomRoom: %v", err)
	}
	if got := s.DisplayName(room.ID); got != "Travel Plans" {
		t.Errorf("DisplayName(custom) = %q, want %q", got, "Travel Plans")
	}

	if got := s.DisplayName("no-such-room"); got != journal.UnknownRoomName {
		t.Errorf("DisplayName(unknown) = %q, want %q", got, journal.UnknownRoomName)
	}
	if got := s.DisplayName("uncategorized"); got != journal.UnknownRoomName {
		t.Errorf("DisplayName(uncategorized) = %q, want %q", got, journal.UnknownRoomName)
	}
}

func TestRoomColor(t *testing.T) {
	s := newTestStore(t)

	if got := s.RoomColor(journal.RoomBusinessIdeas); got != "#e6be8a" {
		t.Errorf("RoomColor(business-ideas) = %q, want #e6be8a", got)
	}

	room, err := s.CreateCustomRoom("Garden", "#00ff00")
	if err != nil {
		t.Fatalf("CreateCustomRoom: %v", err)
	}
	if got := s.RoomColor(room.ID); got != "#00ff00" {
		t.Errorf("RoomColor(custom) = %q, want #00ff00", got)
	}

	if got := s.RoomColor("no-such-room"); got != journal.DefaultRoomColor {
		t.Errorf("RoomColor(unknown) = %q, want default %q", got, journal.DefaultRoomColor)
	}
}

func TestAllRoomIDs_BuiltinsThenCustoms(t *testing.T) {
	s := newTestStore(t)
	room, err := s.CreateCustomRoom("Extra", "")
	if err != nil {
		t.Fatalf("CreateCustomRoom: %v", err)
	}

	ids := s.AllRoomIDs()
	if len(ids) != 6 {
		t.Fatalf("AllRoomIDs len = %d, want 6", len(ids))
	}
	if ids[0] != journal.RoomPersonalGrowth {
		t.Errorf("ids[0] = %q, want built-ins first", ids[0])
	}
	if ids[5] != room.ID {
		t.Errorf("ids[5] = %q, want custom room last", ids[5])
	}
}

// ─── Room id derivation ─────────────────────────────────────────────────────

func TestNewRoomID_SlugRules(t *testing.T) {
	tests := []struct {
		name     string
		wantSlug string
	}{
		{"Travel Plans", "travel-plans"},
		{"  My   Big  Idea!  ", "my-big-idea"},
		{"Rock & Roll", "rock-roll"},
		{"already-dashed", "already-dashed"},
		{"CAPS Lock", "caps-lock"},
	}

	for _, tt := range tests {
		id := journal.NewRoomID(tt.name)
		prefix := "custom-" + tt.wantSlug + "-"
		if !strings.HasPrefix(id, prefix) {
			t.Errorf("NewRoomID(%q) = %q, want prefix %q", tt.name, id, prefix)
		}
	}
}

func TestNewRoomID_UniqueForSameName(t *testing.T) {
	seen := make(map[string]bool)
	for range 5 {
		id := journal.NewRoomID("Same Name")
		if seen[id] {
			t.Fatalf("duplicate room id %q", id)
		}
		seen[id] = true
		time.Sleep(time.Microsecond)
	}
}
