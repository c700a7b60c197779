package httpapi

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/tuhmez/sports-stats-web-service/internal/domain/team"
	"github.com/tuhmez/sports-stats-web-service/internal/usecase"
)

type Handler struct {
	teamService    *usecase.TeamService
	gameService    *usecase.GameService
	playerService  *usecase.PlayerService
	colorService   *usecase.ColorService
	matchupService *usecase.MatchupService
	statsService   *usecase.StatsService
	logger         *slog.Logger
	validator      *validator.Validate
}

func NewHandler(
	teamService *usecase.TeamService,
	gameService *usecase.GameService,
	playerService *usecase.PlayerService,
	colorService *usecase.ColorService,
	matchupService *usecase.MatchupService,
	statsService *usecase.StatsService,
	logger *slog.Logger,
) *Handler {
	if logger == nil {
		logger = slog.Default()
	}

	return &Handler{
		teamService:    teamService,
		gameService:    gameService,
		playerService:  playerService,
		colorService:   colorService,
		matchupService: matchupService,
		statsService:   statsService,
		logger:         logger,
		validator:      validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeJSON(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

// teamSpecFromQuery reads the three team discriminators every team-scoped
// route accepts. Mode precedence lives in the domain, not here.
func teamSpecFromQuery(r *http.Request) team.MatchSpec {
	query := r.URL.Query()
	return team.MatchSpec{
		Location:     strings.TrimSpace(query.Get("location")),
		Name:         strings.TrimSpace(query.Get("name")),
		Abbreviation: strings.TrimSpace(query.Get("abbreviation")),
	}
}

// pathID parses a numeric path segment, naming the segment on failure.
func pathID(r *http.Request, segment string) (int, error) {
	raw := strings.TrimSpace(r.PathValue(segment))
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive number, got %q", usecase.ErrInvalidInput, segment, raw)
	}
	return id, nil
}
