package journal_test

import (
	"testing"
	"time"
	"unicode/utf8"

	"github.com/mindcastle/mindcastle/internal/journal"
	"github.com/mindcastle/mindcastle/internal/kv"
)

// newTestStore creates a Store backed by a temp directory for isolation.
func newTestStore(t *testing.T) *journal.Store {
	t.Helper()
	s, err := journal.Open(journal.Config{
		DataDir:        t.TempDir(),
		EchoMinAgeDays: journal.DefaultEchoAgeDays,
	})
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func newNote(id, title, content, room string, createdAt time.Time) journal.Note {
	return journal.Note{
		ID:        id,
		Title:     title,
		Content:   content,
		Category:  room,
		CreatedAt: createdAt,
	}
}

// ─── Notes: create / list ───────────────────────────────────────────────────

func TestCreateNote_RoundTrip(t *testing.T) {
	s := newTestStore(t)

	note := newNote("thought_1", "First", "hello castle", journal.RoomCreativity, time.Now())
	if err := s.CreateNote(note); err != nil {
		t.Fatalf("CreateNote: %v", err)
	}

	got, ok := s.GetNote("thought_1")
	if !ok {
		t.Fatal("GetNote: note not found after create")
	}
	if got.Title != "First" || got.Content != "hello castle" || got.Category != journal.RoomCreativity {
		t.Errorf("round-tripped note mismatch: %+v", got)
	}
}

func TestNotes_NewestFirst(t *testing.T) {
	s := newTestStore(t)
	base := time.Now().Add(-time.Hour)

	for i, id := range []string{"thought_a", "thought_b", "thought_c"} {
		n := newNote(id, id, "content", journal.RoomPersonalGrowth, base.Add(time.Duration(i)*time.Minute))
		if err := s.CreateNote(n); err != nil {
			t.Fatalf("CreateNote %s: %v", id, err)
		}
	}

	notes := s.Notes()
	if len(notes) != 3 {
		t.Fatalf("Notes() len = %d, want 3", len(notes))
	}
	if notes[0].ID != "thought_c" || notes[2].ID != "thought_a" {
		t.Errorf("order = [%s %s %s], want newest first", notes[0].ID, notes[1].ID, notes[2].ID)
	}
}

func TestNotes_PersistAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	cfg := journal.Config{DataDir: dir, EchoMinAgeDays: journal.DefaultEchoAgeDays}

	s1, err := journal.Open(cfg)
	if err != nil {
		t.Fatalf("first open: %v", err)
	}
	if err := s1.CreateNote(newNote("thought_1", "T", "survives restart", journal.RoomDreamsVisions, time.Now())); err != nil {
		t.Fatalf("CreateNote: %v", err)
	}
	s1.Close()

	s2, err := journal.Open(cfg)
	if err != nil {
		t.Fatalf("second open: %v", err)
	}
	defer s2.Close()

	if _, ok := s2.GetNote("thought_1"); !ok {
		t.Error("note did not survive a store reopen")
	}
}

func TestNotesByRoom(t *testing.T) {
	s := newTestStore(t)
	now := time.Now()

	s.CreateNote(newNote("thought_1", "a", "x", journal.RoomBusinessIdeas, now))
	s.CreateNote(newNote("thought_2", "b", "y", journal.RoomCreativity, now))
	s.CreateNote(newNote("thought_3", "c", "z", journal.RoomBusinessIdeas, now))

	got := s.NotesByRoom(journal.RoomBusinessIdeas)
	if len(got) != 2 {
		t.Fatalf("NotesByRoom len = %d, want 2", len(got))
	}
	for _, n := range got {
		if n.Category != journal.RoomBusinessIdeas {
			t.Errorf("note %s has category %s", n.ID, n.Category)
		}
	}
}

// ─── Search ─────────────────────────────────────────────────────────────────

func TestSearch_CaseInsensitiveSubstring(t *testing.T) {
	s := newTestStore(t)
	s.CreateNote(newNote("thought_1", "Morning Pages", "I want to LEARN piano", journal.RoomCreativity, time.Now()))
	s.CreateNote(newNote("thought_2", "Groceries", "buy milk", journal.RoomPersonalGrowth, time.Now()))

	if got := s.Search("learn"); len(got) != 1 || got[0].ID != "thought_1" {
		t.Errorf("Search(learn) = %v, want thought_1", got)
	}
	if got := s.Search("MORNING"); len(got) != 1 {
		t.Errorf("Search(MORNING) matched %d notes, want 1 (title match)", len(got))
	}
	if got := s.Search(journal.RoomPersonalGrowth); len(got) != 1 {
		t.Errorf("Search(room id) matched %d notes, want 1 (category match)", len(got))
	}
}

func TestSearch_EmptyQueryMatchesNothing(t *testing.T) {
	s := newTestStore(t)
	s.CreateNote(newNote("thought_1", "T", "content", journal.RoomCreativity, time.Now()))

	if got := s.Search(""); len(got) != 0 {
		t.Errorf("Search(\"\") = %d notes, want 0", len(got))
	}
	if got := s.Search("   "); len(got) != 0 {
		t.Errorf("Search(blank) = %d notes, want 0", len(got))
	}
}

// ─── Delete ─────────────────────────────────────────────────────────────────

func TestDeleteNote_RemovesNote(t *testing.T) {
	s := newTestStore(t)
	s.CreateNote(newNote("thought_1", "T", "c", journal.RoomCreativity, time.Now()))

	if err := s.DeleteNote("thought_1"); err != nil {
		t.Fatalf("DeleteNote: %v", err)
	}
	if _, ok := s.GetNote("thought_1"); ok {
		t.Error("note still present after delete")
	}
}

func TestDeleteNote_MissingIDIsNoError(t *testing.T) {
	s := newTestStore(t)
	if err := s.DeleteNote("thought_nope"); err != nil {
		t.Errorf("DeleteNote(missing) = %v, want nil", err)
	}
}

// ─── Custom rooms ───────────────────────────────────────────────────────────

func TestCreateCustomRoom(t *testing.T) {
	s := newTestStore(t)

	room, err := s.CreateCustomRoom("  Travel Plans  ", "")
	if err != nil {
		t.Fatalf("CreateCustomRoom: %v", err)
	}
	if room.Name != "Travel Plans" {
		t.Errorf("Name = %q, want trimmed %q", room.Name, "Travel Plans")
	}
	if room.Color != journal.DefaultRoomColor {
		t.Errorf("Color = %q, want default %q", room.Color, journal.DefaultRoomColor)
	}

	rooms := s.CustomRooms()
	if len(rooms) != 1 || rooms[0].ID != room.ID {
		t.Errorf("CustomRooms = %v, want the created room", rooms)
	}
}

func TestCreateCustomRoom_EmptyName(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.CreateCustomRoom("   ", "#abcdef"); err == nil {
		t.Error("CreateCustomRoom(blank) = nil error, want ErrEmptyRoomName")
	}
}

func TestDeleteCustomRoom(t *testing.T) {
	s := newTestStore(t)
	room, err := s.CreateCustomRoom("Scratch", "#111111")
	if err != nil {
		t.Fatalf("CreateCustomRoom: %v", err)
	}

	if err := s.DeleteCustomRoom(room.ID); err != nil {
		t.Fatalf("DeleteCustomRoom: %v", err)
	}
	if len(s.CustomRooms()) != 0 {
		t.Error("room still listed after delete")
	}
}

// ─── User state and usage ───────────────────────────────────────────────────

func TestUserState_DefaultsToFree(t *testing.T) {
	s := newTestStore(t)
	if s.UserState().IsPremium {
		t.Error("fresh store reports premium")
	}

	if err := s.SetUserState(journal.UserState{IsPremium: true}); err != nil {
		t.Fatalf("SetUserState: %v", err)
	}
	if !s.UserState().IsPremium {
		t.Error("premium flag did not stick")
	}
}

func TestUsage_RoundTrip(t *testing.T) {
	s := newTestStore(t)
	u := journal.Usage{Date: "2026-08-30", Count: 2}
	if err := s.SetUsage(u); err != nil {
		t.Fatalf("SetUsage: %v", err)
	}
	if got := s.Usage(); got != u {
		t.Errorf("Usage() = %+v, want %+v", got, u)
	}
}

// ─── Truncate ───────────────────────────────────────────────────────────────

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		s    string
		max  int
		want string
	}{
		{"shorter than max", "hello", 10, "hello"},
		{"exactly max", "hello", 5, "hello"},
		{"ascii cut", "hello world", 5, "hello..."},
		{"multi-byte rune not split", "ééééé", 3, "é..."},
		{"cut lands between runes", "ééééé", 4, "éé..."},
		{"emoji boundary", "ab🎉cd", 4, "ab..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := journal.Truncate(tt.s, tt.max)
			if got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.s, tt.max, got, tt.want)
			}
			if !utf8.ValidString(got) {
				t.Errorf("Truncate(%q, %d) produced invalid UTF-8", tt.s, tt.max)
			}
		})
	}
}

// ─── Corruption handling ────────────────────────────────────────────────────

func TestOpen_CorruptedNotesDegradeToEmpty(t *testing.T) {
	dir := t.TempDir()

	db, err := kv.Open(dir)
	if err != nil {
		t.Fatalf("kv.Open: %v", err)
	}
	if err := db.Set("mindcastle_thoughts", []byte("{not json")); err != nil {
		t.Fatalf("seeding garbage: %v", err)
	}
	db.Close()

	s, err := journal.Open(journal.Config{DataDir: dir, EchoMinAgeDays: journal.DefaultEchoAgeDays})
	if err != nil {
		t.Fatalf("Open over corrupt data: %v", err)
	}
	defer s.Close()

	if got := s.Notes(); len(got) != 0 {
		t.Errorf("Notes over corrupt data = %d, want 0", len(got))
	}

	// A fresh write replaces the corrupt payload.
	if err := s.CreateNote(newNote("thought_1", "T", "c", journal.RoomCreativity, time.Now())); err != nil {
		t.Fatalf("CreateNote after corruption: %v", err)
	}
	if len(s.Notes()) != 1 {
		t.Error("store did not recover after write")
	}
}
