package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/tuhmez/sports-stats-web-service/internal/domain/team"
)

// hexTableMarker selects the authoritative table on the color reference page.
const hexTableMarker = "HEX"

// ColorService extracts team color palettes from the scraped reference page.
type ColorService struct {
	page     ColorPageSource
	teams    *TeamService
	branding team.BrandingOverrides
}

func NewColorService(page ColorPageSource, teams *TeamService, branding team.BrandingOverrides) *ColorService {
	return &ColorService{page: page, teams: teams, branding: branding}
}

// TeamColors returns the hex palette for "location name" in document order.
// With alternate ordering the team is resolved so its identifier can be
// checked against the secondary/tertiary promotion lists.
func (s *ColorService) TeamColors(ctx context.Context, location, name string, useAltOrdering bool) ([]string, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ColorService.TeamColors")
	defer span.End()

	location = strings.TrimSpace(location)
	name = strings.TrimSpace(name)
	if location == "" || name == "" {
		return nil, fmt.Errorf("%w: team location and name are required", ErrInvalidInput)
	}

	colors, err := s.extract(ctx, location+" "+name)
	if err != nil {
		return nil, err
	}
	if !useAltOrdering {
		return colors, nil
	}

	resolved, err := s.teams.Resolve(ctx, team.MatchSpec{Location: location, Name: name})
	if err != nil {
		return nil, err
	}
	return s.applyAltOrdering(colors, resolved.ID), nil
}

// ColorsForTeam is the composer-facing variant: the team is already resolved,
// so the row key and the promotion lookup come straight off the record.
func (s *ColorService) ColorsForTeam(ctx context.Context, t team.Team, useAltOrdering bool) ([]string, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ColorService.ColorsForTeam")
	defer span.End()

	colors, err := s.extract(ctx, t.FullName())
	if err != nil {
		return nil, err
	}
	if !useAltOrdering {
		return colors, nil
	}
	return s.applyAltOrdering(colors, t.ID), nil
}

// extract scans the page's tables for the first HEX-captioned one, matches
// the row whose header equals the key, and parses hex codes from its cells.
func (s *ColorService) extract(ctx context.Context, key string) ([]string, error) {
	tables, err := s.page.Tables(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch color tables: %w", err)
	}

	var hexTable *ColorTable
	for i := range tables {
		if strings.Contains(tables[i].Caption, hexTableMarker) {
			hexTable = &tables[i]
			break
		}
	}
	if hexTable == nil {
		return nil, fmt.Errorf("%w: color reference page has no table captioned with %q", ErrNotFound, hexTableMarker)
	}

	wanted := strings.ToLower(strings.TrimSpace(key))
	for _, row := range hexTable.Rows {
		if strings.ToLower(strings.TrimSpace(row.Header)) != wanted {
			continue
		}
		return parseHexCells(row.Cells), nil
	}

	return nil, fmt.Errorf("%w: no color row for team %q", ErrNotFound, wanted)
}

// parseHexCells pulls "#HEX" values out of the row's data cells in document
// order. A cell may carry several codes; bare "#" from empty cells is dropped.
func parseHexCells(cells []string) []string {
	colors := make([]string, 0, len(cells))
	for _, cell := range cells {
		segments := strings.Split(cell, "#")
		for _, segment := range segments[1:] {
			value := "#" + leadingHexDigits(segment)
			if value == "#" {
				continue
			}
			colors = append(colors, value)
		}
	}
	return colors
}

func leadingHexDigits(s string) string {
	for i := 0; i < len(s); i++ {
		c := s[i]
		isHex := c >= '0' && c <= '9' ||
			c >= 'a' && c <= 'f' ||
			c >= 'A' && c <= 'F'
		if !isHex {
			return s[:i]
		}
	}
	return s
}

// applyAltOrdering promotes the secondary or tertiary color to the front for
// teams on the respective lists; everyone else keeps document order.
func (s *ColorService) applyAltOrdering(colors []string, teamID int) []string {
	switch {
	case s.branding.UsesSecondaryColor(teamID):
		return promote(colors, 1)
	case s.branding.UsesTertiaryColor(teamID):
		return promote(colors, 2)
	default:
		return colors
	}
}

// promote moves colors[index] to the front, shifting the prefix right.
func promote(colors []string, index int) []string {
	if index <= 0 || index >= len(colors) {
		return colors
	}
	out := make([]string, 0, len(colors))
	out = append(out, colors[index])
	out = append(out, colors[:index]...)
	out = append(out, colors[index+1:]...)
	return out
}
