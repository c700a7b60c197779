package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/tuhmez/sports-stats-web-service/internal/domain/schedule"
	"github.com/tuhmez/sports-stats-web-service/internal/domain/team"
)

func scheduleFixture() schedule.Day {
	return schedule.Day{
		Date:       "2024-07-04",
		TotalGames: 3,
		Games: []schedule.Game{
			{
				GamePk: 1,
				Teams: schedule.Sides{
					Home: schedule.Side{TeamID: 121, TeamName: "New York Mets", TeamAbbreviation: "NYM"},
					Away: schedule.Side{TeamID: 120, TeamName: "Washington Nationals", TeamAbbreviation: "WSH"},
				},
			},
			{
				GamePk: 2,
				Teams: schedule.Sides{
					Home: schedule.Side{TeamID: 147, TeamName: "New York Yankees", TeamAbbreviation: "NYY"},
					Away: schedule.Side{TeamID: 139, TeamName: "Tampa Bay Rays", TeamAbbreviation: "TB"},
				},
			},
			{
				// Doubleheader game two for the same matchup.
				GamePk: 3,
				Teams: schedule.Sides{
					Home: schedule.Side{TeamID: 121, TeamName: "New York Mets", TeamAbbreviation: "NYM"},
					Away: schedule.Side{TeamID: 120, TeamName: "Washington Nationals", TeamAbbreviation: "WSH"},
				},
			},
		},
	}
}

func TestGamesForTeamFiltersBothSides(t *testing.T) {
	provider := &fakeProvider{scheduleFn: func(ctx context.Context, date string) (schedule.Day, error) {
		return scheduleFixture(), nil
	}}
	service := NewGameService(provider, 2)

	games, err := service.GamesForTeam(context.Background(), team.MatchSpec{Abbreviation: "WSH"}, "07/04/2024")
	if err != nil {
		t.Fatalf("GamesForTeam: %v", err)
	}
	if len(games) != 2 {
		t.Fatalf("len(games) = %d, want doubleheader pair", len(games))
	}
	if games[0].GamePk != 1 || games[1].GamePk != 3 {
		t.Errorf("games out of schedule order: %d, %d", games[0].GamePk, games[1].GamePk)
	}
}

func TestGamesForTeamMatchesFullName(t *testing.T) {
	provider := &fakeProvider{scheduleFn: func(ctx context.Context, date string) (schedule.Day, error) {
		return scheduleFixture(), nil
	}}
	service := NewGameService(provider, 2)

	games, err := service.GamesForTeam(context.Background(), team.MatchSpec{Location: "Tampa Bay", Name: "Rays"}, "07/04/2024")
	if err != nil {
		t.Fatalf("GamesForTeam: %v", err)
	}
	if len(games) != 1 || games[0].GamePk != 2 {
		t.Fatalf("unexpected games %+v", games)
	}
}

func TestGamesForTeamEmptyDayIsSuccess(t *testing.T) {
	provider := &fakeProvider{scheduleFn: func(ctx context.Context, date string) (schedule.Day, error) {
		return schedule.Day{Date: date}, nil
	}}
	service := NewGameService(provider, 2)

	games, err := service.GamesForTeam(context.Background(), team.MatchSpec{Abbreviation: "NYM"}, "01/15/2024")
	if err != nil {
		t.Fatalf("GamesForTeam: %v", err)
	}
	if len(games) != 0 {
		t.Errorf("expected no games, got %d", len(games))
	}
}

func TestGamesForTeamDefaultsToToday(t *testing.T) {
	var requested string
	provider := &fakeProvider{scheduleFn: func(ctx context.Context, date string) (schedule.Day, error) {
		requested = date
		return schedule.Day{}, nil
	}}
	service := NewGameService(provider, 2)
	service.now = func() time.Time {
		return time.Date(2024, time.July, 4, 12, 0, 0, 0, time.UTC)
	}

	if _, err := service.GamesForTeam(context.Background(), team.MatchSpec{Abbreviation: "NYM"}, ""); err != nil {
		t.Fatalf("GamesForTeam: %v", err)
	}
	if requested != "07/04/2024" {
		t.Errorf("requested date = %q, want 07/04/2024", requested)
	}
}

func TestGamesForTeamRejectsBadDates(t *testing.T) {
	provider := &fakeProvider{scheduleFn: func(ctx context.Context, date string) (schedule.Day, error) {
		t.Error("schedule fetched despite invalid date")
		return schedule.Day{}, nil
	}}
	service := NewGameService(provider, 2)

	for _, date := range []string{"2024-07-04", "07-04-2024", "7/4/24", "13/40/2024", "july 4"} {
		if _, err := service.GamesForTeam(context.Background(), team.MatchSpec{Abbreviation: "NYM"}, date); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("date %q: expected ErrInvalidInput, got %v", date, err)
		}
	}
}

func TestFetchPerGamePairsResultsPositionally(t *testing.T) {
	provider := &fakeProvider{gameResourceFn: func(ctx context.Context, gamePk int64, kind schedule.ResourceKind) (GameEntity, error) {
		// Finish in reverse arrival order to prove position pairing.
		if gamePk == 1 {
			time.Sleep(20 * time.Millisecond)
		}
		return GameEntity{Data: []byte(fmt.Sprintf(`{"gamePk":%d}`, gamePk))}, nil
	}}
	service := NewGameService(provider, 2)

	games := []schedule.Game{{GamePk: 1}, {GamePk: 2}}
	resources, err := service.FetchPerGame(context.Background(), games, schedule.ResourceFeed)
	if err != nil {
		t.Fatalf("FetchPerGame: %v", err)
	}
	if len(resources) != 2 {
		t.Fatalf("len(resources) = %d", len(resources))
	}
	if resources[0].GamePk != 1 || resources[1].GamePk != 2 {
		t.Errorf("resources out of input order: %d, %d", resources[0].GamePk, resources[1].GamePk)
	}
	if string(resources[0].Data) != `{"gamePk":1}` {
		t.Errorf("resource 0 data = %s", resources[0].Data)
	}
}

func TestFetchPerGameSurfacesInformationalMessage(t *testing.T) {
	provider := &fakeProvider{gameResourceFn: func(ctx context.Context, gamePk int64, kind schedule.ResourceKind) (GameEntity, error) {
		return GameEntity{Message: "Game has not started."}, nil
	}}
	service := NewGameService(provider, 2)

	resources, err := service.FetchPerGame(context.Background(), []schedule.Game{{GamePk: 7}}, schedule.ResourceBoxscore)
	if err != nil {
		t.Fatalf("FetchPerGame: %v", err)
	}
	if resources[0].Message != "Game has not started." {
		t.Errorf("Message = %q", resources[0].Message)
	}
	if resources[0].Data != nil {
		t.Error("expected no data alongside message")
	}
}

func TestFetchPerGameOneFailureFailsBatch(t *testing.T) {
	wantErr := fmt.Errorf("feed unavailable")
	var calls atomic.Int32
	provider := &fakeProvider{gameResourceFn: func(ctx context.Context, gamePk int64, kind schedule.ResourceKind) (GameEntity, error) {
		calls.Add(1)
		if gamePk == 2 {
			return GameEntity{}, wantErr
		}
		return GameEntity{Data: []byte(`{}`)}, nil
	}}
	service := NewGameService(provider, 2)

	games := []schedule.Game{{GamePk: 1}, {GamePk: 2}, {GamePk: 3}}
	_, err := service.FetchPerGame(context.Background(), games, schedule.ResourceFeed)
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected batch failure, got %v", err)
	}
	if calls.Load() != 3 {
		t.Errorf("calls = %d, want 3", calls.Load())
	}
}

func TestFetchPerGameRejectsUnknownKind(t *testing.T) {
	service := NewGameService(&fakeProvider{}, 2)

	_, err := service.FetchPerGame(context.Background(), []schedule.Game{{GamePk: 1}}, schedule.ResourceKind("lineups"))
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestFetchPerGameEmptyInput(t *testing.T) {
	service := NewGameService(&fakeProvider{}, 2)

	resources, err := service.FetchPerGame(context.Background(), nil, schedule.ResourceFeed)
	if err != nil {
		t.Fatalf("FetchPerGame: %v", err)
	}
	if len(resources) != 0 {
		t.Errorf("expected empty result, got %d", len(resources))
	}
}
