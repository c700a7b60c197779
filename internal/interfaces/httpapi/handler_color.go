package httpapi

import (
	"net/http"
	"strconv"
	"strings"
)

type teamColorsRequest struct {
	Location string `validate:"required"`
	Name     string `validate:"required"`
}

// GetTeamColors returns the team's hex palette in reference-page order,
// optionally with the secondary/tertiary promotion applied.
func (h *Handler) GetTeamColors(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamColors")
	defer span.End()

	query := r.URL.Query()
	req := teamColorsRequest{
		Location: strings.TrimSpace(query.Get("location")),
		Name:     strings.TrimSpace(query.Get("name")),
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}
	useAltOrdering, _ := strconv.ParseBool(query.Get("alternate"))

	colors, err := h.colorService.TeamColors(ctx, req.Location, req.Name, useAltOrdering)
	if err != nil {
		h.logger.WarnContext(ctx, "get team colors failed",
			"location", req.Location, "name", req.Name, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, map[string][]string{"colors": colors})
}
