package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/tuhmez/sports-stats-web-service/internal/domain/player"
	"github.com/tuhmez/sports-stats-web-service/internal/domain/team"
)

// PlayerService resolves a player by name within a resolved team's roster.
type PlayerService struct {
	teams    *TeamService
	provider StatsProvider
}

func NewPlayerService(teams *TeamService, provider StatsProvider) *PlayerService {
	return &PlayerService{teams: teams, provider: provider}
}

// ResolvePlayer resolves the team first, then scans its active roster for
// "first last" case-insensitively. A missing team and a missing player are
// distinct not-found errors; neither is transport-shaped.
func (s *PlayerService) ResolvePlayer(ctx context.Context, first, last string, spec team.MatchSpec) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.ResolvePlayer")
	defer span.End()

	first = strings.TrimSpace(first)
	last = strings.TrimSpace(last)
	if first == "" || last == "" {
		return player.Player{}, fmt.Errorf("%w: player first and last name are required", ErrInvalidInput)
	}

	switch spec.Mode() {
	case team.MatchModeFullName, team.MatchModeAbbreviation:
	case team.MatchModeNone:
		return player.Player{}, fmt.Errorf("%w: a team name or abbreviation is required", ErrInvalidInput)
	default:
		return player.Player{}, fmt.Errorf("%w: player lookup requires a full team name or abbreviation", ErrInvalidInput)
	}

	resolved, err := s.teams.Resolve(ctx, spec)
	if err != nil {
		return player.Player{}, err
	}

	roster, err := s.provider.Roster(ctx, resolved.ID)
	if err != nil {
		return player.Player{}, fmt.Errorf("fetch roster team_id=%d: %w", resolved.ID, err)
	}

	for _, candidate := range roster {
		if candidate.MatchesName(first, last) {
			return candidate, nil
		}
	}

	return player.Player{}, fmt.Errorf("%w: no player named %q on %s roster", ErrNotFound, first+" "+last, resolved.FullName())
}
