// Package journal implements the persistent thought store for Mind Castle.
//
// Thoughts ("notes") and user-created rooms are kept as JSON collections
// under fixed keys in a local key-value store, with an in-memory mirror
// owned by the Store to avoid redundant deserialization. All mutation goes
// through Store methods; the backing keys are never touched directly by
// other packages.
package journal

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
	"unicode/utf8"
)

// Storage keys in the backing key-value store.
const (
	notesKey = "mindcastle_thoughts"
	roomsKey = "mindcastle_custom_rooms"
	usageKey = "mindcastle_usage"
	userKey  = "mindcastle_user"
)

// Note is a single captured thought. Notes are immutable once created;
// the only lifecycle operations are create, read, and delete.
type Note struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Content       string    `json:"content"`
	Category      string    `json:"category"`
	CreatedAt     time.Time `json:"created_at"`
	EchoCandidate bool      `json:"echo_candidate"`
}

// Room is a named, colored grouping bucket for notes. Built-in rooms are
// fixed constants and never persisted; only custom rooms become records.
type Room struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"created_at"`
}

// UserState is the local subscription flag. There is no payment
// verification behind it; it only lifts the daily generation quota.
type UserState struct {
	IsPremium bool `json:"is_premium"`
}

// Usage tracks how many templated generations happened on a calendar day.
// The counter resets whenever the stored date differs from the current day.
type Usage struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// Config holds journal store configuration.
type Config struct {
	DataDir        string
	EchoMinAgeDays int
}

// DefaultConfig returns the default configuration for the journal store.
func DefaultConfig() Config {
	home, _ := os.UserHomeDir()
	return Config{
		DataDir:        filepath.Join(home, ".mindcastle"),
		EchoMinAgeDays: DefaultEchoAgeDays,
	}
}

// NewNoteID generates a collision-resistant note id from the current time.
// Uniqueness is the caller's responsibility, not the store's; nanosecond
// resolution makes collisions between interactive captures implausible.
func NewNoteID() string {
	return fmt.Sprintf("thought_%d", time.Now().UnixNano())
}

// Truncate shortens s to at most max bytes, appending an ellipsis when cut.
// The cut lands on a rune boundary so multi-byte characters never split.
func Truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	for max > 0 && !utf8.RuneStart(s[max]) {
		max--
	}
	return s[:max] + "..."
}
