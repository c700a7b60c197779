package usecase

import (
	"context"
	"encoding/json"

	"github.com/tuhmez/sports-stats-web-service/internal/domain/player"
	"github.com/tuhmez/sports-stats-web-service/internal/domain/schedule"
	"github.com/tuhmez/sports-stats-web-service/internal/domain/team"
)

// GameEntity is a decoded per-game upstream response: structured payload or
// the informational substitution, decided once at the transport boundary.
type GameEntity struct {
	Data    json.RawMessage
	Message string
}

// IsMessage reports whether the upstream substituted an informational
// message for the structured payload.
func (e GameEntity) IsMessage() bool {
	return e.Message != ""
}

// StatsProvider is the read-only upstream statistics source.
type StatsProvider interface {
	Teams(ctx context.Context) ([]team.Team, error)
	TeamsRaw(ctx context.Context, teamID string) (json.RawMessage, error)
	ScheduleByDate(ctx context.Context, date string) (schedule.Day, error)
	GameResource(ctx context.Context, gamePk int64, kind schedule.ResourceKind) (GameEntity, error)
	Roster(ctx context.Context, teamID int) ([]player.Player, error)
	RosterRaw(ctx context.Context, teamID int) (json.RawMessage, error)
	PersonRaw(ctx context.Context, personID int) (json.RawMessage, error)
	PersonStatsRaw(ctx context.Context, personID int) (json.RawMessage, error)
	TeamLeadersRaw(ctx context.Context, teamID int, season string) (json.RawMessage, error)
	StandingsRaw(ctx context.Context, year, date string) (json.RawMessage, error)
}

// LogoSource fetches team logo artwork.
type LogoSource interface {
	LogoURL(teamID int) string
	CapLogoURL(teamID int) string
	HeadshotURL(personID int, magnification string) string
	TeamLogo(ctx context.Context, teamID int) ([]byte, error)
	FetchImage(ctx context.Context, url string) ([]byte, error)
}

// ColorTable is one parsed table from the color reference page.
type ColorTable struct {
	Caption string
	Rows    []ColorRow
}

// ColorRow is one table row: the header cell naming the team and the data
// cells carrying color descriptions.
type ColorRow struct {
	Header string
	Cells  []string
}

// ColorPageSource scrapes the color reference page into tables.
type ColorPageSource interface {
	Tables(ctx context.Context) ([]ColorTable, error)
}
