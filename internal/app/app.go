package app

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/tuhmez/sports-stats-web-service/external/statsapi"
	"github.com/tuhmez/sports-stats-web-service/external/teamcolors"
	"github.com/tuhmez/sports-stats-web-service/internal/config"
	"github.com/tuhmez/sports-stats-web-service/internal/domain/team"
	"github.com/tuhmez/sports-stats-web-service/internal/interfaces/httpapi"
	"github.com/tuhmez/sports-stats-web-service/internal/platform/logging"
	"github.com/tuhmez/sports-stats-web-service/internal/platform/resilience"
	"github.com/tuhmez/sports-stats-web-service/internal/usecase"
)

func NewHTTPServer(cfg config.Config, logger *slog.Logger) (*http.Server, error) {
	statsClient := statsapi.NewClient(statsapi.ClientConfig{
		BaseURL:     cfg.StatsAPIBaseURL,
		LogoBaseURL: cfg.StatsAPILogoBaseURL,
		Timeout:     cfg.StatsAPITimeout,
		MaxRetries:  cfg.StatsAPIMaxRetries,
		Logger:      logging.Default(),
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.StatsAPICircuitEnabled,
			FailureThreshold: cfg.StatsAPICircuitFailureThreshold,
			OpenTimeout:      cfg.StatsAPICircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.StatsAPICircuitHalfOpenMaxReq,
		},
	})

	colorPage := teamcolors.NewClient(teamcolors.ClientConfig{
		PageURL:    cfg.TeamColorsPageURL,
		Timeout:    cfg.TeamColorsTimeout,
		MaxRetries: cfg.TeamColorsMaxRetries,
		Logger:     logging.Default(),
	})

	branding := team.DefaultBrandingOverrides()

	teamSvc := usecase.NewTeamService(statsClient)
	gameSvc := usecase.NewGameService(statsClient, cfg.GameFetchMaxWorkers)
	playerSvc := usecase.NewPlayerService(teamSvc, statsClient)
	colorSvc := usecase.NewColorService(colorPage, teamSvc, branding)
	matchupSvc := usecase.NewMatchupService(gameSvc, colorSvc, statsClient, branding, logging.Default())
	statsSvc := usecase.NewStatsService(statsClient, statsClient)

	handler := httpapi.NewHandler(teamSvc, gameSvc, playerSvc, colorSvc, matchupSvc, statsSvc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}
