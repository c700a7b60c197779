package statsapi

import (
	"encoding/json"
	"strings"

	sonic "github.com/bytedance/sonic"

	"github.com/tuhmez/sports-stats-web-service/internal/domain/player"
	"github.com/tuhmez/sports-stats-web-service/internal/domain/schedule"
	"github.com/tuhmez/sports-stats-web-service/internal/domain/team"
)

// informationalMessageNumber marks an upstream response that substituted an
// informational message for the expected structured payload.
const informationalMessageNumber = 11

// SingleEntity is a decoded single-game response: either the structured
// payload or the upstream's informational substitution, never both.
type SingleEntity struct {
	Data    json.RawMessage
	Message string
}

// IsMessage reports whether the upstream substituted an informational
// message for the structured payload.
func (e SingleEntity) IsMessage() bool {
	return e.Message != ""
}

// decodeSingleEntity performs the sentinel check once, at the transport
// boundary, so callers never re-probe messageNumber ad hoc.
func decodeSingleEntity(raw []byte) (SingleEntity, error) {
	var probe struct {
		MessageNumber int    `json:"messageNumber"`
		Message       string `json:"message"`
	}
	if err := sonic.Unmarshal(raw, &probe); err != nil {
		return SingleEntity{}, err
	}

	if probe.MessageNumber == informationalMessageNumber {
		return SingleEntity{Message: probe.Message}, nil
	}
	return SingleEntity{Data: raw}, nil
}

type namedRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type teamsEnvelope struct {
	Teams []teamItem `json:"teams"`
}

type teamItem struct {
	ID            int      `json:"id"`
	Name          string   `json:"name"`
	TeamName      string   `json:"teamName"`
	ClubName      string   `json:"clubName"`
	LocationName  string   `json:"locationName"`
	FranchiseName string   `json:"franchiseName"`
	Abbreviation  string   `json:"abbreviation"`
	League        namedRef `json:"league"`
	Division      namedRef `json:"division"`
	Venue         namedRef `json:"venue"`
}

func mapTeamItem(item teamItem) team.Team {
	return team.Team{
		ID:            item.ID,
		Name:          strings.TrimSpace(item.Name),
		TeamName:      strings.TrimSpace(item.TeamName),
		ClubName:      strings.TrimSpace(item.ClubName),
		LocationName:  strings.TrimSpace(item.LocationName),
		FranchiseName: strings.TrimSpace(item.FranchiseName),
		Abbreviation:  strings.TrimSpace(item.Abbreviation),
		LeagueName:    strings.TrimSpace(item.League.Name),
		DivisionName:  strings.TrimSpace(item.Division.Name),
		VenueName:     strings.TrimSpace(item.Venue.Name),
	}
}

type scheduleEnvelope struct {
	TotalGames int             `json:"totalGames"`
	Dates      []scheduleDate  `json:"dates"`
}

type scheduleDate struct {
	Date                 string         `json:"date"`
	TotalGames           int            `json:"totalGames"`
	TotalGamesInProgress int            `json:"totalGamesInProgress"`
	Games                []scheduleGame `json:"games"`
}

type scheduleGame struct {
	GamePk       int64           `json:"gamePk"`
	GameDate     string          `json:"gameDate"`
	OfficialDate string          `json:"officialDate"`
	Status       gameStatus      `json:"status"`
	Teams        scheduleSides   `json:"teams"`
	Venue        namedRef        `json:"venue"`
	DoubleHeader string          `json:"doubleHeader"`
	GameNumber   int             `json:"gameNumber"`
}

type gameStatus struct {
	AbstractGameState string `json:"abstractGameState"`
	DetailedState     string `json:"detailedState"`
	StatusCode        string `json:"statusCode"`
}

type scheduleSides struct {
	Home scheduleSide `json:"home"`
	Away scheduleSide `json:"away"`
}

type scheduleSide struct {
	Score        *int         `json:"score"`
	IsWinner     *bool        `json:"isWinner"`
	LeagueRecord leagueRecord `json:"leagueRecord"`
	Team         sideTeam     `json:"team"`
}

type leagueRecord struct {
	Wins   int `json:"wins"`
	Losses int `json:"losses"`
}

type sideTeam struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
}

func mapScheduleDay(envelope scheduleEnvelope, requestedDate string) schedule.Day {
	day := schedule.Day{Date: requestedDate, Games: []schedule.Game{}}
	if len(envelope.Dates) == 0 {
		return day
	}

	bucket := envelope.Dates[0]
	day.Date = bucket.Date
	day.TotalGames = bucket.TotalGames
	day.TotalGamesInProgress = bucket.TotalGamesInProgress
	for _, game := range bucket.Games {
		day.Games = append(day.Games, mapScheduleGame(game))
	}
	return day
}

func mapScheduleGame(game scheduleGame) schedule.Game {
	return schedule.Game{
		GamePk:       game.GamePk,
		GameDate:     game.GameDate,
		OfficialDate: game.OfficialDate,
		Status: schedule.Status{
			AbstractGameState: game.Status.AbstractGameState,
			DetailedState:     game.Status.DetailedState,
			StatusCode:        game.Status.StatusCode,
		},
		Teams: schedule.Sides{
			Home: mapScheduleSide(game.Teams.Home),
			Away: mapScheduleSide(game.Teams.Away),
		},
		VenueName:    strings.TrimSpace(game.Venue.Name),
		DoubleHeader: game.DoubleHeader,
		GameNumber:   game.GameNumber,
	}
}

func mapScheduleSide(side scheduleSide) schedule.Side {
	return schedule.Side{
		TeamID:           side.Team.ID,
		TeamName:         strings.TrimSpace(side.Team.Name),
		TeamAbbreviation: strings.TrimSpace(side.Team.Abbreviation),
		Score:            side.Score,
		IsWinner:         side.IsWinner,
		Wins:             side.LeagueRecord.Wins,
		Losses:           side.LeagueRecord.Losses,
	}
}

type rosterEnvelope struct {
	Roster []rosterEntry `json:"roster"`
}

type rosterEntry struct {
	Person       rosterPerson `json:"person"`
	JerseyNumber string       `json:"jerseyNumber"`
	Position     struct {
		Abbreviation string `json:"abbreviation"`
	} `json:"position"`
	Status struct {
		Description string `json:"description"`
	} `json:"status"`
}

type rosterPerson struct {
	ID        int    `json:"id"`
	FullName  string `json:"fullName"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

func mapRosterEntry(entry rosterEntry, teamID int) player.Player {
	return player.Player{
		ID:           entry.Person.ID,
		FullName:     strings.TrimSpace(entry.Person.FullName),
		FirstName:    strings.TrimSpace(entry.Person.FirstName),
		LastName:     strings.TrimSpace(entry.Person.LastName),
		JerseyNumber: strings.TrimSpace(entry.JerseyNumber),
		Position:     strings.TrimSpace(entry.Position.Abbreviation),
		Status:       strings.TrimSpace(entry.Status.Description),
		TeamID:       teamID,
	}
}
