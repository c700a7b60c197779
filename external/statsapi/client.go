package statsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"

	"github.com/tuhmez/sports-stats-web-service/internal/domain/player"
	"github.com/tuhmez/sports-stats-web-service/internal/domain/schedule"
	"github.com/tuhmez/sports-stats-web-service/internal/domain/team"
	"github.com/tuhmez/sports-stats-web-service/internal/platform/logging"
	"github.com/tuhmez/sports-stats-web-service/internal/platform/resilience"
	"github.com/tuhmez/sports-stats-web-service/internal/usecase"
)

const (
	defaultBaseURL     = "https://statsapi.mlb.com"
	defaultLogoBaseURL = "https://www.mlbstatic.com/team-logos"

	sportID          = "1"
	scheduleHydrate  = "team,linescore"
	probablesHydrate = "probablePitcher(note),linescore"
	leaderCategories = "homeRuns,battingAverage,runsBattedIn,wins,strikeouts,earnedRunAverage"
	leadersLimit     = "5"
	// American League and National League.
	standingsLeagueIDs = "103,104"

	maxResponseBytes = 6 << 20
)

var errStatsTransient = crerr.New("statsapi transient failure")

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	LogoBaseURL    string
	Timeout        time.Duration
	MaxRetries     int
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client is the read-only MLB Stats API client. All calls are idempotent
// GETs guarded by a circuit breaker and collapsed through single-flight.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	logoBaseURL    string
	maxRetries     int
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	flight         resilience.SingleFlight
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 20 * time.Second
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	logoBaseURL := strings.TrimRight(strings.TrimSpace(cfg.LogoBaseURL), "/")
	if logoBaseURL == "" {
		logoBaseURL = defaultLogoBaseURL
	}
	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Client{
		httpClient:     httpClient,
		baseURL:        baseURL,
		logoBaseURL:    logoBaseURL,
		maxRetries:     max(cfg.MaxRetries, 0),
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled: breakerCfg.Enabled,
	}
}

// Teams fetches the complete team catalog.
func (c *Client) Teams(ctx context.Context) ([]team.Team, error) {
	var envelope teamsEnvelope
	if _, err := c.doJSON(ctx, "/api/v1/teams", map[string]string{"sportId": sportID}, &envelope); err != nil {
		return nil, fmt.Errorf("fetch team catalog: %w", err)
	}

	teams := make([]team.Team, 0, len(envelope.Teams))
	for _, item := range envelope.Teams {
		teams = append(teams, mapTeamItem(item))
	}
	return teams, nil
}

// TeamsRaw passes the catalog response through unmodified; an empty teamID
// returns every franchise.
func (c *Client) TeamsRaw(ctx context.Context, teamID string) (json.RawMessage, error) {
	query := map[string]string{"sportId": sportID}
	if id := strings.TrimSpace(teamID); id != "" {
		query["teamId"] = id
	}

	raw, err := c.doJSON(ctx, "/api/v1/teams", query, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch teams: %w", err)
	}
	return raw, nil
}

// ScheduleByDate fetches one day's schedule. Date is MM/DD/YYYY.
func (c *Client) ScheduleByDate(ctx context.Context, date string) (schedule.Day, error) {
	var envelope scheduleEnvelope
	query := map[string]string{
		"sportId":  sportID,
		"date":     date,
		"language": "en",
		"sortBy":   "gameDate",
		"hydrate":  scheduleHydrate,
	}
	if _, err := c.doJSON(ctx, "/api/v1/schedule", query, &envelope); err != nil {
		return schedule.Day{}, fmt.Errorf("fetch schedule date=%s: %w", date, err)
	}

	return mapScheduleDay(envelope, date), nil
}

// GameResource fetches one per-game secondary resource and decodes the
// informational-message sentinel at the boundary.
func (c *Client) GameResource(ctx context.Context, gamePk int64, kind schedule.ResourceKind) (usecase.GameEntity, error) {
	var (
		path  string
		query map[string]string
	)
	switch kind {
	case schedule.ResourceFeed:
		path = fmt.Sprintf("/api/v1.1/game/%d/feed/live", gamePk)
	case schedule.ResourceBoxscore:
		path = fmt.Sprintf("/api/v1/game/%d/boxscore", gamePk)
	case schedule.ResourceProbables:
		path = "/api/v1/schedule"
		query = map[string]string{
			"sportId": sportID,
			"gamePk":  strconv.FormatInt(gamePk, 10),
			"hydrate": probablesHydrate,
		}
	default:
		return usecase.GameEntity{}, fmt.Errorf("unknown game resource kind %q", kind)
	}

	raw, err := c.doJSON(ctx, path, query, nil)
	if err != nil {
		return usecase.GameEntity{}, fmt.Errorf("fetch game %s game_pk=%d: %w", kind, gamePk, err)
	}

	entity, err := decodeSingleEntity(raw)
	if err != nil {
		return usecase.GameEntity{}, fmt.Errorf("decode game %s game_pk=%d: %w", kind, gamePk, err)
	}
	return usecase.GameEntity{Data: entity.Data, Message: entity.Message}, nil
}

// Roster fetches a team's active roster.
func (c *Client) Roster(ctx context.Context, teamID int) ([]player.Player, error) {
	var envelope rosterEnvelope
	path := fmt.Sprintf("/api/v1/teams/%d/roster", teamID)
	if _, err := c.doJSON(ctx, path, map[string]string{"hydrate": "person"}, &envelope); err != nil {
		return nil, fmt.Errorf("fetch roster team_id=%d: %w", teamID, err)
	}

	players := make([]player.Player, 0, len(envelope.Roster))
	for _, entry := range envelope.Roster {
		players = append(players, mapRosterEntry(entry, teamID))
	}
	return players, nil
}

// RosterRaw passes the roster response through unmodified.
func (c *Client) RosterRaw(ctx context.Context, teamID int) (json.RawMessage, error) {
	raw, err := c.doJSON(ctx, fmt.Sprintf("/api/v1/teams/%d/roster", teamID), nil, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch roster team_id=%d: %w", teamID, err)
	}
	return raw, nil
}

// PersonRaw fetches a single player record.
func (c *Client) PersonRaw(ctx context.Context, personID int) (json.RawMessage, error) {
	raw, err := c.doJSON(ctx, fmt.Sprintf("/api/v1/people/%d", personID), nil, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch person person_id=%d: %w", personID, err)
	}
	return raw, nil
}

// PersonStatsRaw fetches a player's season stats.
func (c *Client) PersonStatsRaw(ctx context.Context, personID int) (json.RawMessage, error) {
	path := fmt.Sprintf("/api/v1/people/%d/stats", personID)
	raw, err := c.doJSON(ctx, path, map[string]string{"stats": "season"}, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch person stats person_id=%d: %w", personID, err)
	}
	return raw, nil
}

// TeamLeadersRaw fetches a team's statistical leaders for a season, with the
// category list and result limit fixed.
func (c *Client) TeamLeadersRaw(ctx context.Context, teamID int, season string) (json.RawMessage, error) {
	path := fmt.Sprintf("/api/v1/teams/%d/leaders", teamID)
	query := map[string]string{
		"leaderCategories": leaderCategories,
		"season":           season,
		"limit":            leadersLimit,
	}
	raw, err := c.doJSON(ctx, path, query, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch team leaders team_id=%d: %w", teamID, err)
	}
	return raw, nil
}

// StandingsRaw fetches both leagues' standings for a year; date narrows to a
// point-in-time table when provided.
func (c *Client) StandingsRaw(ctx context.Context, year, date string) (json.RawMessage, error) {
	query := map[string]string{
		"leagueId": standingsLeagueIDs,
		"season":   year,
	}
	if d := strings.TrimSpace(date); d != "" {
		query["date"] = d
	}
	raw, err := c.doJSON(ctx, "/api/v1/standings", query, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch standings season=%s: %w", year, err)
	}
	return raw, nil
}

// LogoURL builds the default per-team SVG logo URL.
func (c *Client) LogoURL(teamID int) string {
	return fmt.Sprintf("%s/%d.svg", c.logoBaseURL, teamID)
}

// CapLogoURL builds the team-cap-on-dark logo variant URL.
func (c *Client) CapLogoURL(teamID int) string {
	return fmt.Sprintf("%s/team-cap-on-dark/%d.svg", c.logoBaseURL, teamID)
}

// HeadshotURL builds a player headshot URL. Construction only, never fetched.
func (c *Client) HeadshotURL(personID int, magnification string) string {
	mag := strings.TrimSpace(magnification)
	if mag == "" {
		mag = "120"
	}
	return fmt.Sprintf("https://midfield.mlbstatic.com/v1/people/%d/spots/%s", personID, mag)
}

// TeamLogo fetches the default SVG logo bytes for a team.
func (c *Client) TeamLogo(ctx context.Context, teamID int) ([]byte, error) {
	return c.FetchImage(ctx, c.LogoURL(teamID))
}

// FetchImage fetches raw image bytes from an absolute URL.
func (c *Client) FetchImage(ctx context.Context, imageURL string) ([]byte, error) {
	raw, err := c.guarded(ctx, imageURL, func() ([]byte, error) {
		return c.executeRequest(ctx, imageURL)
	})
	if err != nil {
		return nil, fmt.Errorf("fetch image %s: %w", imageURL, err)
	}
	return raw, nil
}

// doJSON performs the request through the breaker and single-flight group;
// target nil skips decoding and returns the raw body for passthroughs.
func (c *Client) doJSON(ctx context.Context, path string, query map[string]string, target any) ([]byte, error) {
	values := url.Values{}
	for key, value := range query {
		values.Set(key, value)
	}

	fullURL := c.baseURL + path
	if encoded := values.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}

	raw, err := c.guarded(ctx, fullURL, func() ([]byte, error) {
		return c.executeRequest(ctx, fullURL)
	})
	if err != nil {
		return nil, err
	}

	if target != nil {
		if err := sonic.Unmarshal(raw, target); err != nil {
			return nil, fmt.Errorf("decode provider payload: %w", err)
		}
	}
	return raw, nil
}

func (c *Client) guarded(ctx context.Context, key string, fn func() ([]byte, error)) ([]byte, error) {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "statsapi circuit breaker rejected request", "state", c.breaker.State())
			return nil, fmt.Errorf("%w: statistics provider is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
	}

	out, err, _ := c.flight.Do(key, func() (any, error) {
		raw, reqErr := fn()
		if c.circuitEnabled {
			if reqErr != nil && crerr.Is(reqErr, errStatsTransient) {
				c.breaker.RecordFailure()
			} else {
				c.breaker.RecordSuccess()
			}
		}
		return raw, reqErr
	})
	if err != nil {
		return nil, err
	}

	raw, ok := out.([]byte)
	if !ok {
		return nil, fmt.Errorf("unexpected response payload type %T", out)
	}
	return raw, nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("%w: send request: %v", errStatsTransient, err)
		} else {
			raw, readErr := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
			_ = resp.Body.Close()
			switch {
			case readErr != nil:
				lastErr = fmt.Errorf("%w: read response body: %v", errStatsTransient, readErr)
			case resp.StatusCode >= 200 && resp.StatusCode < 300:
				return raw, nil
			case isRetryableStatus(resp.StatusCode):
				lastErr = fmt.Errorf("%w: %w", errStatsTransient, &ProviderStatusError{StatusCode: resp.StatusCode, Body: abbreviateBody(raw)})
			default:
				return nil, &ProviderStatusError{StatusCode: resp.StatusCode, Body: abbreviateBody(raw)}
			}
		}

		if attempt == c.maxRetries {
			break
		}
		backoff := time.Duration(attempt+1) * time.Second
		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("provider request failed")
	}
	c.logger.WarnContext(ctx, "statsapi request failed", "url", fullURL, "error", lastErr)
	return nil, lastErr
}

func isRetryableStatus(status int) bool {
	switch status {
	case http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	default:
		return false
	}
}

func abbreviateBody(raw []byte) string {
	const limit = 256
	body := strings.TrimSpace(string(raw))
	if len(body) > limit {
		return body[:limit] + "..."
	}
	return body
}
