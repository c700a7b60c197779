package team

import "strings"

// Team is one franchise row from the upstream team catalog. Only the fields
// the resolver and composer read are mapped; everything else rides along in
// the raw passthrough payloads.
type Team struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	TeamName      string `json:"teamName"`
	ClubName      string `json:"clubName"`
	LocationName  string `json:"locationName"`
	FranchiseName string `json:"franchiseName"`
	Abbreviation  string `json:"abbreviation"`
	LeagueName    string `json:"league"`
	DivisionName  string `json:"division"`
	VenueName     string `json:"venue"`
}

// FullName is the canonical "location + club" display name used for matching
// against schedules and the color reference page.
func (t Team) FullName() string {
	name := strings.TrimSpace(t.Name)
	if name != "" {
		return name
	}
	return strings.TrimSpace(strings.TrimSpace(t.LocationName) + " " + strings.TrimSpace(t.TeamName))
}

// MatchMode identifies which discriminator a MatchSpec carries.
type MatchMode string

const (
	MatchModeNone         MatchMode = "none"
	MatchModeFullName     MatchMode = "full_name"
	MatchModeLocation     MatchMode = "location"
	MatchModeName         MatchMode = "name"
	MatchModeAbbreviation MatchMode = "abbreviation"
)

// MatchSpec carries the caller-supplied team discriminators. Exactly one
// resolution mode is active per request, selected by Mode precedence:
// full name > location only > name only > abbreviation.
type MatchSpec struct {
	Location     string
	Name         string
	Abbreviation string
}

func (s MatchSpec) location() string     { return strings.TrimSpace(s.Location) }
func (s MatchSpec) name() string         { return strings.TrimSpace(s.Name) }
func (s MatchSpec) abbreviation() string { return strings.TrimSpace(s.Abbreviation) }

// Mode selects the active resolution strategy.
func (s MatchSpec) Mode() MatchMode {
	switch {
	case s.location() != "" && s.name() != "":
		return MatchModeFullName
	case s.location() != "":
		return MatchModeLocation
	case s.name() != "":
		return MatchModeName
	case s.abbreviation() != "":
		return MatchModeAbbreviation
	default:
		return MatchModeNone
	}
}

// FullName returns "location name" for the full-name strategy.
func (s MatchSpec) FullName() string {
	return strings.TrimSpace(s.location() + " " + s.name())
}

// Matches reports whether a team satisfies the spec under its active mode.
func (s MatchSpec) Matches(t Team) bool {
	switch s.Mode() {
	case MatchModeFullName:
		return equalFold(t.FullName(), s.FullName())
	case MatchModeLocation:
		return equalFold(t.LocationName, s.location())
	case MatchModeName:
		return equalFold(t.TeamName, s.name()) || equalFold(t.ClubName, s.name())
	case MatchModeAbbreviation:
		return t.Abbreviation != "" && equalFold(t.Abbreviation, s.abbreviation())
	default:
		return false
	}
}

// MatchesGameSide is the schedule filter predicate: OR across full-name
// equality and abbreviation equality, never AND. An empty spec matches
// nothing rather than failing mid-scan.
func (s MatchSpec) MatchesGameSide(fullName, abbreviation string) bool {
	if specName := s.FullName(); specName != "" && equalFold(fullName, specName) {
		return true
	}
	if abbrev := s.abbreviation(); abbrev != "" && abbreviation != "" && equalFold(abbreviation, abbrev) {
		return true
	}
	return false
}

func equalFold(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
