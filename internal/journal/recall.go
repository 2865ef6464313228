package journal

import (
	"math/rand/v2"
	"time"
)

// DefaultEchoAgeDays is the minimum age before a flagged note becomes an
// echo candidate for resurfacing.
const DefaultEchoAgeDays = 7

// RandomNote selects one note uniformly at random. ok is false when the
// collection is empty so callers can render an empty-state message instead
// of handling an error.
func RandomNote(notes []Note) (Note, bool) {
	if len(notes) == 0 {
		return Note{}, false
	}
	return notes[rand.IntN(len(notes))], true
}

// EchoCandidates filters notes down to those flagged as echo candidates at
// creation time and older than minAgeDays relative to now.
func EchoCandidates(notes []Note, minAgeDays int, now time.Time) []Note {
	if minAgeDays <= 0 {
		minAgeDays = DefaultEchoAgeDays
	}
	cutoff := now.AddDate(0, 0, -minAgeDays)

	var out []Note
	for _, n := range notes {
		if n.EchoCandidate && n.CreatedAt.Before(cutoff) {
			out = append(out, n)
		}
	}
	return out
}

// RandomNote picks a random note from the store's full collection.
func (s *Store) RandomNote() (Note, bool) {
	return RandomNote(s.Notes())
}

// EchoCandidates returns the store's current echo candidates using the
// configured minimum age.
func (s *Store) EchoCandidates(now time.Time) []Note {
	return EchoCandidates(s.Notes(), s.cfg.EchoMinAgeDays, now)
}
