package journal

import "time"

// NoFrequentRoom is reported as the most-frequent room when no notes exist.
const NoFrequentRoom = "None"

// Statistics is an aggregate view over the full note set. It is recomputed
// from scratch on every call; nothing here is maintained incrementally.
type Statistics struct {
	TotalNotes       int
	RoomCounts       map[string]int
	MostFrequentRoom string
	DailyStreak      int
}

// Stats computes current statistics over all stored notes.
func (s *Store) Stats() Statistics {
	return ComputeStatistics(s.Notes(), s.AllRoomIDs(), time.Now())
}

// ComputeStatistics derives aggregate statistics from notes. roomIDs fixes
// the enumeration order for counts and tie-breaking; now anchors the streak
// computation (injectable for tests).
func ComputeStatistics(notes []Note, roomIDs []string, now time.Time) Statistics {
	counts := make(map[string]int, len(roomIDs))
	for _, id := range roomIDs {
		counts[id] = 0
	}
	for _, n := range notes {
		if _, known := counts[n.Category]; known {
			counts[n.Category]++
		}
	}

	// Strictly-greatest count wins; ties keep the earlier room in
	// enumeration order. All-zero reports the sentinel.
	mostFrequent := NoFrequentRoom
	maxCount := 0
	for _, id := range roomIDs {
		if counts[id] > maxCount {
			maxCount = counts[id]
			mostFrequent = id
		}
	}

	return Statistics{
		TotalNotes:       len(notes),
		RoomCounts:       counts,
		MostFrequentRoom: mostFrequent,
		DailyStreak:      DailyStreak(notes, now),
	}
}

// DailyStreak returns the length of the maximal run of consecutive local
// calendar days, ending today, each containing at least one note. If no
// note was created today the streak is zero.
func DailyStreak(notes []Note, now time.Time) int {
	if len(notes) == 0 {
		return 0
	}

	loc := now.Location()
	days := make(map[time.Time]bool, len(notes))
	for _, n := range notes {
		y, m, d := n.CreatedAt.In(loc).Date()
		days[time.Date(y, m, d, 0, 0, 0, 0, loc)] = true
	}

	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, loc)

	streak := 0
	for day := today; days[day]; day = day.AddDate(0, 0, -1) {
		streak++
	}
	return streak
}
