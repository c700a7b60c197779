package httpapi

import (
	"net/http"
	"strings"
)

// GetTeams passes the team catalog through; ?id= narrows to one franchise.
func (h *Handler) GetTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeams")
	defer span.End()

	teamID := strings.TrimSpace(r.URL.Query().Get("id"))
	raw, err := h.statsService.Teams(ctx, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "get teams failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeRawJSON(ctx, w, http.StatusOK, raw)
}

// ResolveTeam resolves the query discriminators into one catalog record.
func (h *Handler) ResolveTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ResolveTeam")
	defer span.End()

	spec := teamSpecFromQuery(r)
	resolved, err := h.teamService.Resolve(ctx, spec)
	if err != nil {
		h.logger.WarnContext(ctx, "resolve team failed",
			"location", spec.Location, "name", spec.Name, "abbreviation", spec.Abbreviation, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, resolved)
}

// GetRoster passes a team's active roster through.
func (h *Handler) GetRoster(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetRoster")
	defer span.End()

	teamID, err := pathID(r, "teamID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	raw, err := h.statsService.Roster(ctx, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "get roster failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeRawJSON(ctx, w, http.StatusOK, raw)
}

// GetTeamLeaders passes a team's current-season statistical leaders through.
func (h *Handler) GetTeamLeaders(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamLeaders")
	defer span.End()

	teamID, err := pathID(r, "teamID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	raw, err := h.statsService.TeamLeaders(ctx, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "get team leaders failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeRawJSON(ctx, w, http.StatusOK, raw)
}

// GetTeamLogo serves the team's SVG logo bytes.
func (h *Handler) GetTeamLogo(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamLogo")
	defer span.End()

	teamID, err := pathID(r, "teamID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	raw, err := h.statsService.TeamLogo(ctx, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "get team logo failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSVG(ctx, w, raw)
}

// GetStandings passes both leagues' standings through. Year defaults to the
// current season; ?date= narrows to a point-in-time table.
func (h *Handler) GetStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetStandings")
	defer span.End()

	query := r.URL.Query()
	year := strings.TrimSpace(query.Get("year"))
	date := strings.TrimSpace(query.Get("date"))

	raw, err := h.statsService.Standings(ctx, year, date)
	if err != nil {
		h.logger.WarnContext(ctx, "get standings failed", "year", year, "date", date, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeRawJSON(ctx, w, http.StatusOK, raw)
}
