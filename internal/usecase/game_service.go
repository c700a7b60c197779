package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/tuhmez/sports-stats-web-service/internal/domain/schedule"
	"github.com/tuhmez/sports-stats-web-service/internal/domain/team"
)

const scheduleDateLayout = "01/02/2006"

// GameService selects a team's games for a date and fans per-game resource
// fetches out over a worker pool.
type GameService struct {
	provider   StatsProvider
	maxWorkers int
	now        func() time.Time
}

func NewGameService(provider StatsProvider, maxWorkers int) *GameService {
	if maxWorkers < 1 {
		maxWorkers = 2
	}
	return &GameService{
		provider:   provider,
		maxWorkers: maxWorkers,
		now:        time.Now,
	}
}

// GamesForTeam returns the team's games on the given date in schedule order.
// An empty date means today; zero matching games is success, not an error.
// Doubleheaders yield one entry per game.
func (s *GameService) GamesForTeam(ctx context.Context, spec team.MatchSpec, date string) ([]schedule.Game, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameService.GamesForTeam")
	defer span.End()

	normalized, err := s.normalizeDate(date)
	if err != nil {
		return nil, err
	}

	day, err := s.provider.ScheduleByDate(ctx, normalized)
	if err != nil {
		return nil, fmt.Errorf("fetch schedule date=%s: %w", normalized, err)
	}

	games := make([]schedule.Game, 0, 2)
	for _, game := range day.Games {
		if spec.MatchesGameSide(game.Teams.Home.TeamName, game.Teams.Home.TeamAbbreviation) ||
			spec.MatchesGameSide(game.Teams.Away.TeamName, game.Teams.Away.TeamAbbreviation) {
			games = append(games, game)
		}
	}
	return games, nil
}

// FetchPerGame fetches one secondary resource per game concurrently. Results
// pair positionally with the input; any single failure fails the whole batch.
func (s *GameService) FetchPerGame(ctx context.Context, games []schedule.Game, kind schedule.ResourceKind) ([]schedule.GameResource, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameService.FetchPerGame")
	defer span.End()

	if !kind.Valid() {
		return nil, fmt.Errorf("%w: unknown game resource kind %q", ErrInvalidInput, kind)
	}
	if len(games) == 0 {
		return []schedule.GameResource{}, nil
	}

	workerCount := s.maxWorkers
	if workerCount > len(games) {
		workerCount = len(games)
	}
	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	resources := make([]schedule.GameResource, len(games))
	errs := make([]error, len(games))

	var workers sync.WaitGroup
	for i, game := range games {
		i, game := i, game
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			entity, fetchErr := s.provider.GameResource(ctx, game.GamePk, kind)
			if fetchErr != nil {
				errs[i] = fetchErr
				return
			}
			resources[i] = schedule.GameResource{
				GamePk:  game.GamePk,
				Data:    entity.Data,
				Message: entity.Message,
			}
		}); err != nil {
			workers.Done()
			return nil, fmt.Errorf("submit fetch to worker pool: %w", err)
		}
	}
	workers.Wait()

	// First failure in input order wins so the batch error is deterministic.
	for i, fetchErr := range errs {
		if fetchErr != nil {
			return nil, fmt.Errorf("fetch %s game_pk=%d: %w", kind, games[i].GamePk, fetchErr)
		}
	}
	return resources, nil
}

// normalizeDate defaults an empty date to today and rejects anything that is
// not MM/DD/YYYY. Dashed dates are rejected before parsing so the error names
// the expected separator.
func (s *GameService) normalizeDate(date string) (string, error) {
	date = strings.TrimSpace(date)
	if date == "" {
		return s.now().Format(scheduleDateLayout), nil
	}
	if strings.Contains(date, "-") {
		return "", fmt.Errorf("%w: date must be MM/DD/YYYY, got %q", ErrInvalidInput, date)
	}
	if _, err := time.Parse(scheduleDateLayout, date); err != nil {
		return "", fmt.Errorf("%w: date must be MM/DD/YYYY, got %q", ErrInvalidInput, date)
	}
	return date, nil
}
