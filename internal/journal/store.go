package journal

import (
	"encoding/json"
	"errors"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/mindcastle/mindcastle/internal/kv"
)

// ErrEmptyRoomName is returned when a custom room is created with a blank name.
var ErrEmptyRoomName = errors.New("journal: room name must not be empty")

// Store is the persistent thought repository. It owns both the durable
// key-value handle and the in-memory mirror of the last-read collections.
// A single Store instance must be the only writer over its backing keys.
type Store struct {
	mu  sync.Mutex
	kv  *kv.Store
	cfg Config

	notes       []Note
	notesLoaded bool
	rooms       []Room
	roomsLoaded bool
}

// Open opens the journal store at cfg.DataDir, creating it if needed.
func Open(cfg Config) (*Store, error) {
	if cfg.EchoMinAgeDays <= 0 {
		cfg.EchoMinAgeDays = DefaultEchoAgeDays
	}
	db, err := kv.Open(cfg.DataDir)
	if err != nil {
		return nil, err
	}
	return &Store{kv: db, cfg: cfg}, nil
}

// Close closes the backing key-value store.
func (s *Store) Close() error {
	return s.kv.Close()
}

// ─── Notes ──────────────────────────────────────────────────────────────────

// CreateNote appends note to the collection and persists it. The store does
// not enforce id uniqueness; callers generate ids via NewNoteID.
func (s *Store) CreateNote(note Note) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	updated := append(s.loadNotes(), note)
	if err := s.persistNotes(updated); err != nil {
		return err
	}
	return nil
}

// Notes returns all notes, newest-first by creation time. A corrupted or
// missing backing value degrades to an empty result, never an error.
func (s *Store) Notes() []Note {
	s.mu.Lock()
	defer s.mu.Unlock()
	return sortedCopy(s.loadNotes())
}

// NotesByRoom returns the notes filed under roomID, newest-first.
func (s *Store) NotesByRoom(roomID string) []Note {
	var out []Note
	for _, n := range s.Notes() {
		if n.Category == roomID {
			out = append(out, n)
		}
	}
	return out
}

// Search returns notes whose title, content, or category contains query,
// case-insensitively, newest-first. An empty or whitespace-only query
// returns no results rather than the full set.
func (s *Store) Search(query string) []Note {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	var out []Note
	for _, n := range s.Notes() {
		if strings.Contains(strings.ToLower(n.Title), q) ||
			strings.Contains(strings.ToLower(n.Content), q) ||
			strings.Contains(strings.ToLower(n.Category), q) {
			out = append(out, n)
		}
	}
	return out
}

// GetNote looks up a note by id. ok is false when no note matches.
func (s *Store) GetNote(id string) (Note, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, n := range s.loadNotes() {
		if n.ID == id {
			return n, true
		}
	}
	return Note{}, false
}

// DeleteNote removes the note with the given id if present. Deleting a
// missing id is a no-op, not an error; the collection is persisted either way.
func (s *Store) DeleteNote(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	notes := s.loadNotes()
	kept := notes[:0:0]
	for _, n := range notes {
		if n.ID != id {
			kept = append(kept, n)
		}
	}
	return s.persistNotes(kept)
}

func (s *Store) loadNotes() []Note {
	if s.notesLoaded {
		return s.notes
	}
	s.notes = readCollection[Note](s.kv, notesKey)
	s.notesLoaded = true
	return s.notes
}

func (s *Store) persistNotes(notes []Note) error {
	data, err := json.Marshal(notes)
	if err != nil {
		return err
	}
	if err := s.kv.Set(notesKey, data); err != nil {
		return err
	}
	s.notes = notes
	s.notesLoaded = true
	return nil
}

// ─── Custom rooms ───────────────────────────────────────────────────────────

// CustomRooms returns all user-created rooms in creation order.
func (s *Store) CustomRooms() []Room {
	s.mu.Lock()
	defer s.mu.Unlock()
	rooms := s.loadRooms()
	out := make([]Room, len(rooms))
	copy(out, rooms)
	return out
}

// CreateCustomRoom derives a unique room id from name, persists the room,
// and returns it. A blank name is rejected before touching storage.
func (s *Store) CreateCustomRoom(name, color string) (Room, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Room{}, ErrEmptyRoomName
	}
	if color == "" {
		color = DefaultRoomColor
	}

	room := Room{
		ID:        NewRoomID(name),
		Name:      name,
		Color:     color,
		CreatedAt: time.Now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	updated := append(s.loadRooms(), room)
	if err := s.persistRooms(updated); err != nil {
		return Room{}, err
	}
	return room, nil
}

// DeleteCustomRoom removes a custom room by id. Idempotent like DeleteNote.
// Notes filed under the removed room keep their category and resolve to
// "Unknown Room" from then on.
func (s *Store) DeleteCustomRoom(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rooms := s.loadRooms()
	kept := rooms[:0:0]
	for _, r := range rooms {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	return s.persistRooms(kept)
}

func (s *Store) loadRooms() []Room {
	if s.roomsLoaded {
		return s.rooms
	}
	s.rooms = readCollection[Room](s.kv, roomsKey)
	s.roomsLoaded = true
	return s.rooms
}

func (s *Store) persistRooms(rooms []Room) error {
	data, err := json.Marshal(rooms)
	if err != nil {
		return err
	}
	if err := s.kv.Set(roomsKey, data); err != nil {
		return err
	}
	s.rooms = rooms
	s.roomsLoaded = true
	return nil
}

// ─── User state / usage counter ─────────────────────────────────────────────

// UserState reads the local subscription flag. Missing or corrupted state
// degrades to the free tier.
func (s *Store) UserState() UserState {
	return readJSON[UserState](s.kv, userKey)
}

// SetUserState persists the local subscription flag.
func (s *Store) SetUserState(u UserState) error {
	data, err := json.Marshal(u)
	if err != nil {
		return err
	}
	return s.kv.Set(userKey, data)
}

// Usage reads the daily generation counter. Missing or corrupted state
// degrades to a zero counter.
func (s *Store) Usage() Usage {
	return readJSON[Usage](s.kv, usageKey)
}

// SetUsage persists the daily generation counter.
func (s *Store) SetUsage(u Usage) error {
	data, err := json.Marshal(u)
	if err != nil {
		return err
	}
	return s.kv.Set(usageKey, data)
}

// ─── Helpers ────────────────────────────────────────────────────────────────

// readCollection loads a JSON array from the key-value store. Any read or
// decode failure yields an empty collection so downstream logic always has
// something well-typed to work with.
func readCollection[T any](db *kv.Store, key string) []T {
	raw, err := db.Get(key)
	if err != nil || len(raw) == 0 {
		if err != nil {
			slog.Warn("journal: read failed, treating as empty", "key", key, "error", err)
		}
		return nil
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		slog.Warn("journal: corrupted value, treating as empty", "key", key, "error", err)
		return nil
	}
	return items
}

// readJSON loads a single JSON record, degrading to the zero value on any
// read or decode failure.
func readJSON[T any](db *kv.Store, key string) T {
	var zero T
	raw, err := db.Get(key)
	if err != nil || len(raw) == 0 {
		return zero
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		slog.Warn("journal: corrupted value, treating as empty", "key", key, "error", err)
		return zero
	}
	return v
}

func sortedCopy(notes []Note) []Note {
	out := make([]Note, len(notes))
	copy(out, notes)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}
