package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// StatsService is the thin passthrough surface over the upstream provider:
// identifier validation here, payload shape untouched.
type StatsService struct {
	provider StatsProvider
	logos    LogoSource
	now      func() time.Time
}

func NewStatsService(provider StatsProvider, logos LogoSource) *StatsService {
	return &StatsService{
		provider: provider,
		logos:    logos,
		now:      time.Now,
	}
}

// Teams returns the catalog, or a single team when id is given.
func (s *StatsService) Teams(ctx context.Context, teamID string) (json.RawMessage, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.Teams")
	defer span.End()

	teamID = strings.TrimSpace(teamID)
	if teamID != "" {
		if _, err := strconv.Atoi(teamID); err != nil {
			return nil, fmt.Errorf("%w: team id must be numeric, got %q", ErrInvalidInput, teamID)
		}
	}
	return s.provider.TeamsRaw(ctx, teamID)
}

// Roster returns a team's active roster payload.
func (s *StatsService) Roster(ctx context.Context, teamID int) (json.RawMessage, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.Roster")
	defer span.End()

	if teamID <= 0 {
		return nil, fmt.Errorf("%w: team id must be positive", ErrInvalidInput)
	}
	return s.provider.RosterRaw(ctx, teamID)
}

// Player returns one player record.
func (s *StatsService) Player(ctx context.Context, playerID int) (json.RawMessage, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.Player")
	defer span.End()

	if playerID <= 0 {
		return nil, fmt.Errorf("%w: player id must be positive", ErrInvalidInput)
	}
	return s.provider.PersonRaw(ctx, playerID)
}

// PlayerStats returns one player's season stats.
func (s *StatsService) PlayerStats(ctx context.Context, playerID int) (json.RawMessage, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.PlayerStats")
	defer span.End()

	if playerID <= 0 {
		return nil, fmt.Errorf("%w: player id must be positive", ErrInvalidInput)
	}
	return s.provider.PersonStatsRaw(ctx, playerID)
}

// TeamLeaders returns a team's statistical leaders for the current season.
func (s *StatsService) TeamLeaders(ctx context.Context, teamID int) (json.RawMessage, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.TeamLeaders")
	defer span.End()

	if teamID <= 0 {
		return nil, fmt.Errorf("%w: team id must be positive", ErrInvalidInput)
	}
	season := strconv.Itoa(s.now().Year())
	return s.provider.TeamLeadersRaw(ctx, teamID, season)
}

// Standings returns both leagues' standings. Year defaults to the current
// year; date optionally narrows to a point-in-time table.
func (s *StatsService) Standings(ctx context.Context, year, date string) (json.RawMessage, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.Standings")
	defer span.End()

	year = strings.TrimSpace(year)
	if year == "" {
		year = strconv.Itoa(s.now().Year())
	} else if _, err := strconv.Atoi(year); err != nil {
		return nil, fmt.Errorf("%w: year must be numeric, got %q", ErrInvalidInput, year)
	}
	return s.provider.StandingsRaw(ctx, year, date)
}

// HeadshotURL builds a player headshot URL without fetching it.
func (s *StatsService) HeadshotURL(playerID int, magnification string) (string, error) {
	if playerID <= 0 {
		return "", fmt.Errorf("%w: player id must be positive", ErrInvalidInput)
	}
	return s.logos.HeadshotURL(playerID, magnification), nil
}

// TeamLogo returns the team's SVG logo bytes.
func (s *StatsService) TeamLogo(ctx context.Context, teamID int) ([]byte, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.TeamLogo")
	defer span.End()

	if teamID <= 0 {
		return nil, fmt.Errorf("%w: team id must be positive", ErrInvalidInput)
	}
	return s.logos.TeamLogo(ctx, teamID)
}
