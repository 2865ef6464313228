package journal

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Built-in room ids, in stable declaration order.
const (
	RoomPersonalGrowth = "personal-growth"
	RoomBusinessIdeas  = "business-ideas"
	RoomDreamsVisions  = "dreams-visions"
	RoomRelationships  = "relationships"
	RoomCreativity     = "creativity"
)

// UnknownRoomName is shown for categories that resolve to neither a
// built-in nor an existing custom room.
const UnknownRoomName = "Unknown Room"

// DefaultRoomColor is the fallback color token for unresolved categories
// and for custom rooms created without an explicit color.
const DefaultRoomColor = "#7bbfcf"

var builtinRooms = []string{
	RoomPersonalGrowth,
	RoomBusinessIdeas,
	RoomDreamsVisions,
	RoomRelationships,
	RoomCreativity,
}

var builtinColors = map[string]string{
	RoomPersonalGrowth: "#61a67c",
	RoomBusinessIdeas:  "#e6be8a",
	RoomDreamsVisions:  "#b798e0",
	RoomRelationships:  "#e4b5b5",
	RoomCreativity:     "#7bbfcf",
}

// BuiltinRooms returns the fixed built-in room ids in declaration order.
func BuiltinRooms() []string {
	out := make([]string, len(builtinRooms))
	copy(out, builtinRooms)
	return out
}

// IsBuiltinRoom reports whether id names one of the five built-in rooms.
func IsBuiltinRoom(id string) bool {
	_, ok := builtinColors[id]
	return ok
}

// AllRoomIDs returns built-in room ids followed by custom room ids, the
// enumeration order used by the statistics engine.
func (s *Store) AllRoomIDs() []string {
	ids := BuiltinRooms()
	for _, r := range s.CustomRooms() {
		ids = append(ids, r.ID)
	}
	return ids
}

// DisplayName resolves a category id to a human-readable room name.
// Built-in ids are formatted by capitalizing each dash-separated segment;
// custom ids resolve by lookup; anything else is "Unknown Room".
func (s *Store) DisplayName(categoryID string) string {
	if IsBuiltinRoom(categoryID) {
		return formatBuiltinName(categoryID)
	}
	for _, r := range s.CustomRooms() {
		if r.ID == categoryID {
			return r.Name
		}
	}
	return UnknownRoomName
}

// RoomColor resolves a category id to its color token, falling back to
// DefaultRoomColor when the category is unresolved.
func (s *Store) RoomColor(categoryID string) string {
	if c, ok := builtinColors[categoryID]; ok {
		return c
	}
	for _, r := range s.CustomRooms() {
		if r.ID == categoryID {
			return r.Color
		}
	}
	return DefaultRoomColor
}

func formatBuiltinName(id string) string {
	parts := strings.Split(id, "-")
	for i, p := range parts {
		if p != "" {
			parts[i] = strings.ToUpper(p[:1]) + p[1:]
		}
	}
	return strings.Join(parts, " ")
}

// ─── Room id derivation ─────────────────────────────────────────────────────

var (
	nonWordChars   = regexp.MustCompile(`[^\w\s-]`)
	whitespaceRuns = regexp.MustCompile(`\s+`)
	dashRuns       = regexp.MustCompile(`-+`)
)

// NewRoomID derives a custom room id from its display name: a normalized
// slug plus a time-derived suffix for uniqueness across same-name rooms.
func NewRoomID(name string) string {
	return fmt.Sprintf("custom-%s-%d", slugify(name), time.Now().UnixNano()%1_000_000)
}

func slugify(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = nonWordChars.ReplaceAllString(slug, "")
	slug = whitespaceRuns.ReplaceAllString(slug, "-")
	slug = dashRuns.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}
