package usecase

import (
	"context"
	"fmt"
	"image"
	"image/color"

	"github.com/tuhmez/sports-stats-web-service/internal/domain/schedule"
	"github.com/tuhmez/sports-stats-web-service/internal/domain/team"
	"github.com/tuhmez/sports-stats-web-service/internal/platform/imaging"
	"github.com/tuhmez/sports-stats-web-service/internal/platform/logging"
)

// Matchup is the composer's result: PNG bytes for a found game, or an
// informational notice when the team has no games that day. Never both.
type Matchup struct {
	PNG    []byte
	Notice string
	GamePk int64
}

// IsNotice reports whether no game was found and Notice carries the
// explanation instead of image bytes.
func (m Matchup) IsNotice() bool {
	return m.Notice != ""
}

// MatchupService renders the pre-game matchup graphic for a team's game.
type MatchupService struct {
	games    *GameService
	colors   *ColorService
	logos    LogoSource
	branding team.BrandingOverrides
	logger   *logging.Logger
}

func NewMatchupService(
	games *GameService,
	colors *ColorService,
	logos LogoSource,
	branding team.BrandingOverrides,
	logger *logging.Logger,
) *MatchupService {
	if logger == nil {
		logger = logging.Default()
	}
	return &MatchupService{
		games:    games,
		colors:   colors,
		logos:    logos,
		branding: branding,
		logger:   logger,
	}
}

// ComposeMatchup resolves the team's game for the date and renders the
// diagonal two-color graphic with both logos. Game resolution failures are
// terminal; color and logo-source degradation never aborts the render, but
// image decode and encode failures do.
func (s *MatchupService) ComposeMatchup(ctx context.Context, spec team.MatchSpec, date string) (Matchup, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchupService.ComposeMatchup")
	defer span.End()

	games, err := s.games.GamesForTeam(ctx, spec, date)
	if err != nil {
		return Matchup{}, err
	}
	if len(games) == 0 {
		return Matchup{Notice: "no games found for the requested team and date"}, nil
	}

	game := games[0]
	home := game.Teams.Home
	away := game.Teams.Away
	homeIsDesired := spec.MatchesGameSide(home.TeamName, home.TeamAbbreviation)

	desired, against := away, home
	if homeIsDesired {
		desired, against = home, away
	}

	desiredLogo, err := s.fetchLogo(ctx, desired)
	if err != nil {
		return Matchup{}, err
	}
	againstLogo, err := s.fetchLogo(ctx, against)
	if err != nil {
		return Matchup{}, err
	}

	canvas := imaging.ComposeMatchup(imaging.MatchupSpec{
		HomeColor:     s.primaryColor(ctx, home),
		AwayColor:     s.primaryColor(ctx, away),
		DesiredLogo:   desiredLogo,
		AgainstLogo:   againstLogo,
		HomeIsDesired: homeIsDesired,
	})

	png, err := imaging.EncodePNG(canvas)
	if err != nil {
		return Matchup{}, fmt.Errorf("%w: encode matchup png: %v", ErrConversion, err)
	}
	return Matchup{PNG: png, GamePk: game.GamePk}, nil
}

// primaryColor resolves the side's lead color with alternate ordering
// applied. Any failure falls back to white so the render always proceeds.
func (s *MatchupService) primaryColor(ctx context.Context, side schedule.Side) color.Color {
	record := team.Team{ID: side.TeamID, Name: side.TeamName}
	colors, err := s.colors.ColorsForTeam(ctx, record, true)
	if err != nil || len(colors) == 0 {
		s.logger.WarnContext(ctx, "matchup color fallback to white",
			"team", side.TeamName, "team_id", side.TeamID, "error", err)
		return imaging.White
	}

	parsed, err := imaging.ParseHexColor(colors[0])
	if err != nil {
		s.logger.WarnContext(ctx, "matchup color fallback to white",
			"team", side.TeamName, "team_id", side.TeamID, "error", err)
		return imaging.White
	}
	return parsed
}

// fetchLogo picks the side's logo source, fetches it, and decodes it scaled
// to the logo box. Decode failures are conversion errors, not degradation.
func (s *MatchupService) fetchLogo(ctx context.Context, side schedule.Side) (image.Image, error) {
	url := s.logoURL(side)
	raw, err := s.logos.FetchImage(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetch logo team_id=%d: %w", side.TeamID, err)
	}

	img, err := imaging.DecodeImage(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: decode logo team_id=%d: %v", ErrConversion, side.TeamID, err)
	}
	return imaging.ScaleToFit(img, imaging.LogoFit, imaging.LogoFit), nil
}

func (s *MatchupService) logoURL(side schedule.Side) string {
	if s.branding.UsesCapLogo(side.TeamAbbreviation) {
		return s.logos.CapLogoURL(side.TeamID)
	}
	if url, ok := s.branding.CustomLogoURL(side.TeamID); ok {
		return url
	}
	return s.logos.LogoURL(side.TeamID)
}
