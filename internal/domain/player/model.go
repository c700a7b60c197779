package player

import "strings"

// Player is one roster entry from the upstream roster endpoint.
type Player struct {
	ID           int    `json:"id"`
	FullName     string `json:"fullName"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	JerseyNumber string `json:"jerseyNumber"`
	Position     string `json:"position"`
	Status       string `json:"status"`
	TeamID       int    `json:"teamId"`
}

// MatchesName reports whether the player's full name equals
// "first last" case-insensitively, trimmed.
func (p Player) MatchesName(first, last string) bool {
	wanted := strings.TrimSpace(strings.TrimSpace(first) + " " + strings.TrimSpace(last))
	return wanted != "" && strings.EqualFold(strings.TrimSpace(p.FullName), wanted)
}
