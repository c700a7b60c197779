package usecase

import (
	"context"
	"fmt"

	"github.com/tuhmez/sports-stats-web-service/internal/domain/team"
)

// TeamService resolves caller-supplied team discriminators into catalog rows.
type TeamService struct {
	provider StatsProvider
}

func NewTeamService(provider StatsProvider) *TeamService {
	return &TeamService{provider: provider}
}

// Resolve scans the full team catalog under the spec's active strategy.
// Precedence is full name over location over club name over abbreviation;
// exactly one strategy runs per call.
func (s *TeamService) Resolve(ctx context.Context, spec team.MatchSpec) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Resolve")
	defer span.End()

	mode := spec.Mode()
	if mode == team.MatchModeNone {
		return team.Team{}, fmt.Errorf("%w: a team name, location, or abbreviation is required", ErrInvalidInput)
	}

	teams, err := s.provider.Teams(ctx)
	if err != nil {
		return team.Team{}, fmt.Errorf("fetch team catalog: %w", err)
	}

	for _, candidate := range teams {
		if spec.Matches(candidate) {
			return candidate, nil
		}
	}

	return team.Team{}, fmt.Errorf("%w: no team matched %s=%q", ErrNotFound, mode, attemptedInput(spec, mode))
}

func attemptedInput(spec team.MatchSpec, mode team.MatchMode) string {
	switch mode {
	case team.MatchModeFullName:
		return spec.FullName()
	case team.MatchModeLocation:
		return spec.Location
	case team.MatchModeName:
		return spec.Name
	case team.MatchModeAbbreviation:
		return spec.Abbreviation
	default:
		return ""
	}
}
