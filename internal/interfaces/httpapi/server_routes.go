package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerDomainRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/teams", handler.GetTeams)
	mux.HandleFunc("GET /v1/teams/resolve", handler.ResolveTeam)
	mux.HandleFunc("GET /v1/teams/{teamID}/roster", handler.GetRoster)
	mux.HandleFunc("GET /v1/teams/{teamID}/leaders", handler.GetTeamLeaders)
	mux.HandleFunc("GET /v1/teams/{teamID}/logo", handler.GetTeamLogo)
	mux.HandleFunc("GET /v1/colors", handler.GetTeamColors)
	mux.HandleFunc("GET /v1/games", handler.GetGames)
	mux.HandleFunc("GET /v1/games/{resource}", handler.GetGameResources)
	mux.HandleFunc("GET /v1/matchup", handler.GetMatchup)
	mux.HandleFunc("GET /v1/players/resolve", handler.ResolvePlayer)
	mux.HandleFunc("GET /v1/players/{playerID}", handler.GetPlayer)
	mux.HandleFunc("GET /v1/players/{playerID}/stats", handler.GetPlayerStats)
	mux.HandleFunc("GET /v1/players/{playerID}/headshot", handler.GetHeadshotURL)
	mux.HandleFunc("GET /v1/standings", handler.GetStandings)
}
