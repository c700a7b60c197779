package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/tuhmez/sports-stats-web-service/internal/domain/player"
	"github.com/tuhmez/sports-stats-web-service/internal/domain/schedule"
	"github.com/tuhmez/sports-stats-web-service/internal/domain/team"
)

// fakeProvider implements StatsProvider with overridable hooks; unset hooks
// fail loudly so tests only exercise the calls they declare.
type fakeProvider struct {
	teamsFn        func(ctx context.Context) ([]team.Team, error)
	scheduleFn     func(ctx context.Context, date string) (schedule.Day, error)
	gameResourceFn func(ctx context.Context, gamePk int64, kind schedule.ResourceKind) (GameEntity, error)
	rosterFn       func(ctx context.Context, teamID int) ([]player.Player, error)
	rawFn          func(name string) (json.RawMessage, error)
}

func (f *fakeProvider) Teams(ctx context.Context) ([]team.Team, error) {
	if f.teamsFn == nil {
		return nil, fmt.Errorf("unexpected Teams call")
	}
	return f.teamsFn(ctx)
}

func (f *fakeProvider) ScheduleByDate(ctx context.Context, date string) (schedule.Day, error) {
	if f.scheduleFn == nil {
		return schedule.Day{}, fmt.Errorf("unexpected ScheduleByDate call")
	}
	return f.scheduleFn(ctx, date)
}

func (f *fakeProvider) GameResource(ctx context.Context, gamePk int64, kind schedule.ResourceKind) (GameEntity, error) {
	if f.gameResourceFn == nil {
		return GameEntity{}, fmt.Errorf("unexpected GameResource call")
	}
	return f.gameResourceFn(ctx, gamePk, kind)
}

func (f *fakeProvider) Roster(ctx context.Context, teamID int) ([]player.Player, error) {
	if f.rosterFn == nil {
		return nil, fmt.Errorf("unexpected Roster call")
	}
	return f.rosterFn(ctx, teamID)
}

func (f *fakeProvider) raw(name string) (json.RawMessage, error) {
	if f.rawFn == nil {
		return nil, fmt.Errorf("unexpected %s call", name)
	}
	return f.rawFn(name)
}

func (f *fakeProvider) TeamsRaw(ctx context.Context, teamID string) (json.RawMessage, error) {
	return f.raw("TeamsRaw")
}

func (f *fakeProvider) RosterRaw(ctx context.Context, teamID int) (json.RawMessage, error) {
	return f.raw("RosterRaw")
}

func (f *fakeProvider) PersonRaw(ctx context.Context, personID int) (json.RawMessage, error) {
	return f.raw("PersonRaw")
}

func (f *fakeProvider) PersonStatsRaw(ctx context.Context, personID int) (json.RawMessage, error) {
	return f.raw("PersonStatsRaw")
}

func (f *fakeProvider) TeamLeadersRaw(ctx context.Context, teamID int, season string) (json.RawMessage, error) {
	return f.raw("TeamLeadersRaw")
}

func (f *fakeProvider) StandingsRaw(ctx context.Context, year, date string) (json.RawMessage, error) {
	return f.raw("StandingsRaw")
}

// fakeLogoSource serves canned image bytes keyed by URL.
type fakeLogoSource struct {
	images map[string][]byte
	err    error
}

func (f *fakeLogoSource) LogoURL(teamID int) string {
	return fmt.Sprintf("https://logos.test/%d.svg", teamID)
}

func (f *fakeLogoSource) CapLogoURL(teamID int) string {
	return fmt.Sprintf("https://logos.test/cap/%d.svg", teamID)
}

func (f *fakeLogoSource) HeadshotURL(personID int, magnification string) string {
	return fmt.Sprintf("https://headshots.test/%d/%s", personID, magnification)
}

func (f *fakeLogoSource) TeamLogo(ctx context.Context, teamID int) ([]byte, error) {
	return f.FetchImage(ctx, f.LogoURL(teamID))
}

func (f *fakeLogoSource) FetchImage(ctx context.Context, url string) ([]byte, error) {
	if f.err != nil {
		return nil, f.err
	}
	raw, ok := f.images[url]
	if !ok {
		return nil, fmt.Errorf("no fixture image for %s", url)
	}
	return raw, nil
}

// fakeColorPage returns a fixed table set.
type fakeColorPage struct {
	tables []ColorTable
	err    error
}

func (f *fakeColorPage) Tables(ctx context.Context) ([]ColorTable, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.tables, nil
}

func catalogFixture() []team.Team {
	return []team.Team{
		{ID: 121, Name: "New York Mets", TeamName: "Mets", ClubName: "Mets", LocationName: "New York", Abbreviation: "NYM"},
		{ID: 147, Name: "New York Yankees", TeamName: "Yankees", ClubName: "Yankees", LocationName: "New York", Abbreviation: "NYY"},
		{ID: 139, Name: "Tampa Bay Rays", TeamName: "Rays", ClubName: "Rays", LocationName: "Tampa Bay", Abbreviation: "TB"},
	}
}

func catalogProvider() *fakeProvider {
	return &fakeProvider{
		teamsFn: func(ctx context.Context) ([]team.Team, error) {
			return catalogFixture(), nil
		},
	}
}
