package httpapi

import (
	"net/http"
	"strings"
)

// GetMatchup renders the matchup graphic for the team's game on a date.
// PNG bytes when a game exists, a JSON notice when none does.
func (h *Handler) GetMatchup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatchup")
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

	matchup, err := h.matchupService.ComposeMatchup(ctx, spec, date)
	if err != nil {
		h.logger.WarnContext(ctx, "compose matchup failed", "date", date, "error", err)
		writeError(ctx, w, err)
		return
	}

	if matchup.IsNotice() {
		writeJSON(ctx, w, http.StatusOK, map[string]string{"message": matchup.Notice})
		return
	}
	writePNG(ctx, w, matchup.PNG)
}
