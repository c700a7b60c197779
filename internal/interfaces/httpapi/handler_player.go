package httpapi

import (
	"net/http"
	"strings"
)

type resolvePlayerRequest struct {
	FirstName    string `validate:"required"`
	LastName     string `validate:"required"`
	Location     string `validate:"required_without=Abbreviation"`
	Name         string `validate:"required_without=Abbreviation"`
	Abbreviation string
}

// ResolvePlayer finds a player by name on a resolved team's roster.
func (h *Handler) ResolvePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ResolvePlayer")
	defer span.End()

	query := r.URL.Query()
	spec := teamSpecFromQuery(r)
	req := resolvePlayerRequest{
		FirstName:    strings.TrimSpace(query.Get("firstName")),
		LastName:     strings.TrimSpace(query.Get("lastName")),
		Location:     spec.Location,
		Name:         spec.Name,
		Abbreviation: spec.Abbreviation,
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	resolved, err := h.playerService.ResolvePlayer(ctx, req.FirstName, req.LastName, spec)
	if err != nil {
		h.logger.WarnContext(ctx, "resolve player failed",
			"first_name", req.FirstName, "last_name", req.LastName, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, resolved)
}

// GetPlayer passes one player record through.
func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayer")
	defer span.End()

	playerID, err := pathID(r, "playerID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	raw, err := h.statsService.Player(ctx, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "get player failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeRawJSON(ctx, w, http.StatusOK, raw)
}

// GetPlayerStats passes one player's season stats through.
func (h *Handler) GetPlayerStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerStats")
	defer span.End()

	playerID, err := pathID(r, "playerID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	raw, err := h.statsService.PlayerStats(ctx, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "get player stats failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeRawJSON(ctx, w, http.StatusOK, raw)
}

// GetHeadshotURL builds the player's headshot URL without fetching it.
func (h *Handler) GetHeadshotURL(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetHeadshotURL")
	defer span.End()

	playerID, err := pathID(r, "playerID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	magnification := strings.TrimSpace(r.URL.Query().Get("magnification"))
	url, err := h.statsService.HeadshotURL(playerID, magnification)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, map[string]string{"url": url})
}
