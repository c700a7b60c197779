package httpapi

import (
	"net/http"
	"strings"

	"github.com/tuhmez/sports-stats-web-service/internal/domain/schedule"
)

type gamesRequest struct {
	Location     string `validate:"required_without_all=Name Abbreviation"`
	Name         string
	Abbreviation string
	Date         string
}

// GetGames returns the team's games for a date in schedule order. An empty
// result is a success, not an error.
func (h *Handler) GetGames(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetGames")
	defer span.End()

	spec := teamSpecFromQuery(r)
	date := strings.TrimSpace(r.URL.Query().Get("date"))
	req := gamesRequest{
		Location:     spec.Location,
		Name:         spec.Name,
		Abbreviation: spec.Abbreviation,
		Date:         date,
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	games, err := h.gameService.GamesForTeam(ctx, spec, date)
	if err != nil {
		h.logger.WarnContext(ctx, "get games failed", "date", date, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, schedule.Day{
		Date:       date,
		TotalGames: len(games),
		Games:      games,
	})
}

// GetGameResources resolves the team's games for a date, then fans one
// fetch per game for the requested secondary resource. One upstream failure
// fails the whole batch.
func (h *Handler) GetGameResources(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetGameResources")
	defer span.End()

	kind := schedule.ResourceKind(strings.TrimSpace(r.PathValue("resource")))
	spec := teamSpecFromQuery(r)
	date := strings.TrimSpace(r.URL.Query().Get("date"))
	req := gamesRequest{
		Location:     spec.Location,
		Name:         spec.Name,
		Abbreviation: spec.Abbreviation,
		Date:         date,
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	games, err := h.gameService.GamesForTeam(ctx, spec, date)
	if err != nil {
		h.logger.WarnContext(ctx, "get games failed", "date", date, "resource", kind, "error", err)
		writeError(ctx, w, err)
		return
	}

	resources, err := h.gameService.FetchPerGame(ctx, games, kind)
	if err != nil {
		h.logger.WarnContext(ctx, "fetch game resources failed", "date", date, "resource", kind, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, resources)
}
