package httpapi

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"

	"github.com/tuhmez/sports-stats-web-service/external/statsapi"
	"github.com/tuhmez/sports-stats-web-service/internal/domain/player"
	"github.com/tuhmez/sports-stats-web-service/internal/domain/schedule"
	"github.com/tuhmez/sports-stats-web-service/internal/domain/team"
	"github.com/tuhmez/sports-stats-web-service/internal/platform/logging"
	"github.com/tuhmez/sports-stats-web-service/internal/usecase"
)

// stubProvider serves fixed fixtures for router-level tests.
type stubProvider struct {
	day        schedule.Day
	teamsErr   error
	rawPayload json.RawMessage
	rawErr     error
}

func (s *stubProvider) Teams(ctx context.Context) ([]team.Team, error) {
	if s.teamsErr != nil {
		return nil, s.teamsErr
	}
	return []team.Team{
		{ID: 121, Name: "New York Mets", TeamName: "Mets", LocationName: "New York", Abbreviation: "NYM"},
	}, nil
}

func (s *stubProvider) ScheduleByDate(ctx context.Context, date string) (schedule.Day, error) {
	return s.day, nil
}

func (s *stubProvider) GameResource(ctx context.Context, gamePk int64, kind schedule.ResourceKind) (usecase.GameEntity, error) {
	return usecase.GameEntity{Data: []byte(`{"gamePk":1}`)}, nil
}

func (s *stubProvider) Roster(ctx context.Context, teamID int) ([]player.Player, error) {
	return []player.Player{
		{ID: 624413, FullName: "Pete Alonso", FirstName: "Pete", LastName: "Alonso", TeamID: teamID},
	}, nil
}

func (s *stubProvider) raw() (json.RawMessage, error) {
	if s.rawErr != nil {
		return nil, s.rawErr
	}
	return s.rawPayload, nil
}

func (s *stubProvider) TeamsRaw(ctx context.Context, teamID string) (json.RawMessage, error) {
	return s.raw()
}

func (s *stubProvider) RosterRaw(ctx context.Context, teamID int) (json.RawMessage, error) {
	return s.raw()
}

func (s *stubProvider) PersonRaw(ctx context.Context, personID int) (json.RawMessage, error) {
	return s.raw()
}

func (s *stubProvider) PersonStatsRaw(ctx context.Context, personID int) (json.RawMessage, error) {
	return s.raw()
}

func (s *stubProvider) TeamLeadersRaw(ctx context.Context, teamID int, season string) (json.RawMessage, error) {
	return s.raw()
}

func (s *stubProvider) StandingsRaw(ctx context.Context, year, date string) (json.RawMessage, error) {
	return s.raw()
}

type stubLogoSource struct{}

func (stubLogoSource) LogoURL(teamID int) string    { return "https://logos.test/logo.svg" }
func (stubLogoSource) CapLogoURL(teamID int) string { return "https://logos.test/cap.svg" }
func (stubLogoSource) HeadshotURL(personID int, magnification string) string {
	return "https://headshots.test/shot.png"
}
func (stubLogoSource) TeamLogo(ctx context.Context, teamID int) ([]byte, error) {
	return []byte("<svg/>"), nil
}
func (stubLogoSource) FetchImage(ctx context.Context, url string) ([]byte, error) {
	return []byte("<svg/>"), nil
}

type stubColorPage struct{}

func (stubColorPage) Tables(ctx context.Context) ([]usecase.ColorTable, error) {
	return []usecase.ColorTable{{
		Caption: "MLB HEX",
		Rows: []usecase.ColorRow{
			{Header: "New York Mets", Cells: []string{"Blue #002D72", "Orange #FF5910"}},
		},
	}}, nil
}

func newTestRouter(provider *stubProvider) http.Handler {
	teams := usecase.NewTeamService(provider)
	games := usecase.NewGameService(provider, 2)
	players := usecase.NewPlayerService(teams, provider)
	colors := usecase.NewColorService(stubColorPage{}, teams, team.DefaultBrandingOverrides())
	matchups := usecase.NewMatchupService(games, colors, stubLogoSource{}, team.DefaultBrandingOverrides(), logging.NewNop())
	stats := usecase.NewStatsService(provider, stubLogoSource{})

	handler := NewHandler(teams, games, players, colors, matchups, stats, slog.New(slog.DiscardHandler))
	return NewRouter(handler, slog.New(slog.DiscardHandler), nil)
}

func TestRouterHealthz(t *testing.T) {
	router := newTestRouter(&stubProvider{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestRouterResolveTeam(t *testing.T) {
	router := newTestRouter(&stubProvider{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/teams/resolve?abbreviation=NYM", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", rec.Code, rec.Body.String())
	}

	var resolved team.Team
	if err := sonic.Unmarshal(rec.Body.Bytes(), &resolved); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resolved.ID != 121 {
		t.Errorf("ID = %d, want 121", resolved.ID)
	}
}

func TestRouterResolveTeamWithoutDiscriminatorIs400(t *testing.T) {
	router := newTestRouter(&stubProvider{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/teams/resolve", nil))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}

	var body errorEnvelope
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body.StatusCode != http.StatusBadRequest {
		t.Errorf("envelope statusCode = %d", body.StatusCode)
	}
}

func TestRouterGamesRejectsDashedDate(t *testing.T) {
	router := newTestRouter(&stubProvider{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/games?abbreviation=NYM&date=2024-07-04", nil))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestRouterGamesEmptyDayIsSuccess(t *testing.T) {
	router := newTestRouter(&stubProvider{day: schedule.Day{Date: "01/15/2024"}})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/games?abbreviation=NYM&date=01/15/2024", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", rec.Code, rec.Body.String())
	}

	var day schedule.Day
	if err := sonic.Unmarshal(rec.Body.Bytes(), &day); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if day.TotalGames != 0 {
		t.Errorf("TotalGames = %d, want 0", day.TotalGames)
	}
}

func TestRouterTeamColors(t *testing.T) {
	router := newTestRouter(&stubProvider{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/colors?location=New+York&name=Mets", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "#002D72") {
		t.Errorf("palette missing primary color: %s", rec.Body.String())
	}
}

func TestRouterMatchupNoGamesReturnsNotice(t *testing.T) {
	router := newTestRouter(&stubProvider{day: schedule.Day{Date: "01/15/2024"}})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/matchup?abbreviation=NYM&date=01/15/2024", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", rec.Code, rec.Body.String())
	}
	if got := rec.Header().Get("Content-Type"); !strings.HasPrefix(got, "application/json") {
		t.Errorf("Content-Type = %q, want JSON notice", got)
	}
	if !strings.Contains(rec.Body.String(), "no games found") {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestRouterForwardsProviderStatus(t *testing.T) {
	router := newTestRouter(&stubProvider{
		rawErr: &statsapi.ProviderStatusError{StatusCode: http.StatusNotFound, Body: "no such team"},
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/teams?id=9999", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want forwarded 404", rec.Code)
	}
}

func TestRouterPlayerPassthrough(t *testing.T) {
	payload := json.RawMessage(`{"people":[{"id":624413}]}`)
	router := newTestRouter(&stubProvider{rawPayload: payload})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/players/624413", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if rec.Body.String() != string(payload) {
		t.Errorf("payload reshaped: %s", rec.Body.String())
	}
}

func TestRouterPlayerResolve(t *testing.T) {
	router := newTestRouter(&stubProvider{})

	rec := httptest.NewRecorder()
	target := "/v1/players/resolve?firstName=Pete&lastName=Alonso&abbreviation=NYM"
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", rec.Code, rec.Body.String())
	}

	var resolved player.Player
	if err := sonic.Unmarshal(rec.Body.Bytes(), &resolved); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resolved.ID != 624413 {
		t.Errorf("ID = %d, want 624413", resolved.ID)
	}
}
