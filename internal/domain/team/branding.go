package team

// BrandingOverrides is the static per-team presentation table: which clubs
// promote a secondary or tertiary color to primary position, which use the
// cap-on-dark logo variant, and which carry a bespoke logo URL. The table is
// injected into services so tests can substitute fixtures.
type BrandingOverrides struct {
	// SecondaryColorTeams promotes index 1 of the palette to the front.
	SecondaryColorTeams map[int]bool
	// TertiaryColorTeams promotes index 2 of the palette to the front.
	TertiaryColorTeams map[int]bool
	// CapLogoTeams selects the team-cap-on-dark logo, keyed by abbreviation.
	CapLogoTeams map[string]bool
	// CustomLogoURLByTeam replaces the logo URL entirely, keyed by team id.
	CustomLogoURLByTeam map[int]string
}

// UsesSecondaryColor reports whether the team's palette should lead with its
// secondary color when alternate ordering is requested.
func (b BrandingOverrides) UsesSecondaryColor(teamID int) bool {
	return b.SecondaryColorTeams[teamID]
}

// UsesTertiaryColor reports whether the team's palette should lead with its
// tertiary color when alternate ordering is requested.
func (b BrandingOverrides) UsesTertiaryColor(teamID int) bool {
	return b.TertiaryColorTeams[teamID]
}

// UsesCapLogo reports whether the team renders better with the cap-on-dark
// logo variant (clubs whose primary mark vanishes on colored backgrounds).
func (b BrandingOverrides) UsesCapLogo(abbreviation string) bool {
	return b.CapLogoTeams[abbreviation]
}

// CustomLogoURL returns a bespoke logo URL for the team, if one is configured.
func (b BrandingOverrides) CustomLogoURL(teamID int) (string, bool) {
	url, ok := b.CustomLogoURLByTeam[teamID]
	return url, ok
}

// DefaultBrandingOverrides returns the production override table.
func DefaultBrandingOverrides() BrandingOverrides {
	return BrandingOverrides{
		SecondaryColorTeams: map[int]bool{
			110: true, // Baltimore Orioles: orange over black
			134: true, // Pittsburgh Pirates: gold over black
			137: true, // San Francisco Giants: orange over black
			145: true, // Chicago White Sox
		},
		TertiaryColorTeams: map[int]bool{
			108: true, // Los Angeles Angels: red sits third in the table
			136: true, // Seattle Mariners: northwest green
		},
		CapLogoTeams: map[string]bool{
			"ATH": true,
			"CWS": true,
			"NYY": true,
			"SF":  true,
		},
		CustomLogoURLByTeam: map[int]string{
			// Diamondbacks serve a dark-background variant from their CMS.
			109: "https://www.mlbstatic.com/team-logos/share/109.png",
		},
	}
}
