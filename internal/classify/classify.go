// Package classify provides the keyword heuristics that suggest a title,
// room, and echo flag for freshly captured thoughts.
//
// These are intentionally naive substring matches, not language
// understanding. Suggestions are advisory: the user can override any of
// them before a note is persisted.
package classify

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Uncategorized is the sentinel category returned when no keyword list
// clearly wins. It resolves to no room, so the registry renders it as
// "Unknown Room".
const Uncategorized = "uncategorized"

// titleWordLimit caps suggested titles at the first few words of content.
const titleWordLimit = 6

// CategoryKeywords binds one candidate category to its fixed keyword list.
// Order matters: the classifier scores categories in table order.
type CategoryKeywords struct {
	Category string
	Keywords []string
}

// DefaultTable returns the built-in scoring table, one entry per built-in
// room.
func DefaultTable() []CategoryKeywords {
	return []CategoryKeywords{
		{Category: "personal-growth", Keywords: []string{
			"why", "meaning", "purpose", "life", "growth", "learn", "improve", "habit", "truth", "reality",
		}},
		{Category: "business-ideas", Keywords: []string{
			"idea", "concept", "project", "plan", "business", "startup", "market", "solve", "innovation", "product",
		}},
		{Category: "dreams-visions", Keywords: []string{
			"dream", "hope", "future", "aspiration", "wish", "imagine", "vision",
		}},
		{Category: "relationships", Keywords: []string{
			"feel", "emotion", "love", "friend", "family", "partner", "relationship", "happy", "sad", "angry",
		}},
		{Category: "creativity", Keywords: []string{
			"create", "design", "art", "music", "write", "story", "paint", "build", "compose",
		}},
	}
}

// echoKeywords flag emotionally charged or action-oriented content worth
// resurfacing later.
var echoKeywords = []string{
	"feel", "love", "fear", "excited", "anxious", "happy", "grateful",
	"must", "should", "need", "remember", "promise", "decide", "goal",
}

// Classifier scores content against an ordered keyword table. The scoring
// function is fixed but the table is pluggable, so a smarter scorer can be
// substituted without changing the store or statistics contracts.
type Classifier struct {
	table    []CategoryKeywords
	fallback string
}

// New returns a classifier over the default table.
func New() *Classifier {
	return NewWithTable(DefaultTable(), Uncategorized)
}

// NewWithTable returns a classifier over a custom table and fallback
// category.
func NewWithTable(table []CategoryKeywords, fallback string) *Classifier {
	return &Classifier{table: table, fallback: fallback}
}

// Classify suggests a category for content. The category with the strictly
// highest keyword score wins; ties and an all-zero score both yield the
// fallback sentinel.
func (c *Classifier) Classify(content string) string {
	scores := c.Score(content)

	best := c.fallback
	bestScore := 0
	tied := false
	for i, entry := range c.table {
		switch {
		case scores[i] > bestScore:
			bestScore = scores[i]
			best = entry.Category
			tied = false
		case scores[i] == bestScore && bestScore > 0:
			tied = true
		}
	}
	if tied || bestScore == 0 {
		return c.fallback
	}
	return best
}

// Score counts case-insensitive keyword occurrences per table entry,
// returned in table order.
func (c *Classifier) Score(content string) []int {
	lower := strings.ToLower(content)
	scores := make([]int, len(c.table))
	for i, entry := range c.table {
		for _, kw := range entry.Keywords {
			if strings.Contains(lower, kw) {
				scores[i]++
			}
		}
	}
	return scores
}

// SuggestTitle builds a title from the first words of content: at most six
// whitespace-delimited tokens joined by single spaces, an ellipsis when the
// content runs longer, and the first character capitalized.
func SuggestTitle(content string) string {
	words := strings.Fields(content)
	if len(words) == 0 {
		return ""
	}

	n := len(words)
	if n > titleWordLimit {
		n = titleWordLimit
	}
	title := strings.Join(words[:n], " ")
	if len(words) > titleWordLimit {
		title += "..."
	}

	r, size := utf8.DecodeRuneInString(title)
	return string(unicode.ToUpper(r)) + title[size:]
}

// EchoCandidate reports whether content carries emotional or
// action-oriented keywords, marking the note for later resurfacing.
func EchoCandidate(content string) bool {
	lower := strings.ToLower(content)
	for _, kw := range echoKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
