package schedule

import "encoding/json"

// Day is one date bucket of the upstream schedule. Zero games is a valid,
// non-error state.
type Day struct {
	Date                 string `json:"date"`
	TotalGames           int    `json:"totalGames"`
	TotalGamesInProgress int    `json:"totalGamesInProgress"`
	Games                []Game `json:"games"`
}

// Game is one scheduled or played game with its two sides.
type Game struct {
	GamePk       int64  `json:"gamePk"`
	GameDate     string `json:"gameDate"`
	OfficialDate string `json:"officialDate"`
	Status       Status `json:"status"`
	Teams        Sides  `json:"teams"`
	VenueName    string `json:"venue"`
	DoubleHeader string `json:"doubleHeader"`
	GameNumber   int    `json:"gameNumber"`
}

// Status is the upstream game state descriptor.
type Status struct {
	AbstractGameState string `json:"abstractGameState"`
	DetailedState     string `json:"detailedState"`
	StatusCode        string `json:"statusCode"`
}

// Sides groups the home and away participants.
type Sides struct {
	Home Side `json:"home"`
	Away Side `json:"away"`
}

// Side is one participant: its team descriptor plus score and record.
type Side struct {
	TeamID           int    `json:"teamId"`
	TeamName         string `json:"teamName"`
	TeamAbbreviation string `json:"teamAbbreviation"`
	Score            *int   `json:"score,omitempty"`
	IsWinner         *bool  `json:"isWinner,omitempty"`
	Wins             int    `json:"wins"`
	Losses           int    `json:"losses"`
}

// ResourceKind selects the per-game secondary resource for fan-out fetches.
type ResourceKind string

const (
	ResourceFeed      ResourceKind = "feed"
	ResourceBoxscore  ResourceKind = "boxscore"
	ResourceProbables ResourceKind = "probables"
)

// Valid reports whether the kind names a known per-game resource.
func (k ResourceKind) Valid() bool {
	switch k {
	case ResourceFeed, ResourceBoxscore, ResourceProbables:
		return true
	default:
		return false
	}
}

// GameResource pairs a fetched per-game payload with its originating game.
// Exactly one of Data and Message is set: Message carries the upstream
// informational substitution verbatim.
type GameResource struct {
	GamePk  int64           `json:"gamePk"`
	Data    json.RawMessage `json:"data,omitempty"`
	Message string          `json:"message,omitempty"`
}
