package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/tuhmez/sports-stats-web-service/internal/domain/player"
	"github.com/tuhmez/sports-stats-web-service/internal/domain/team"
)

func rosterProvider() *fakeProvider {
	provider := catalogProvider()
	provider.rosterFn = func(ctx context.Context, teamID int) ([]player.Player, error) {
		if teamID != 121 {
			return nil, nil
		}
		return []player.Player{
			{ID: 624413, FullName: "Pete Alonso", FirstName: "Pete", LastName: "Alonso", TeamID: 121},
			{ID: 596059, FullName: "Francisco Lindor", FirstName: "Francisco", LastName: "Lindor", TeamID: 121},
		}, nil
	}
	return provider
}

func TestResolvePlayerByTeamName(t *testing.T) {
	provider := rosterProvider()
	service := NewPlayerService(NewTeamService(provider), provider)

	resolved, err := service.ResolvePlayer(context.Background(), "pete", "ALONSO", team.MatchSpec{Location: "New York", Name: "Mets"})
	if err != nil {
		t.Fatalf("ResolvePlayer: %v", err)
	}
	if resolved.ID != 624413 {
		t.Errorf("ID = %d, want 624413", resolved.ID)
	}
}

func TestResolvePlayerByAbbreviation(t *testing.T) {
	provider := rosterProvider()
	service := NewPlayerService(NewTeamService(provider), provider)

	resolved, err := service.ResolvePlayer(context.Background(), "Francisco", "Lindor", team.MatchSpec{Abbreviation: "NYM"})
	if err != nil {
		t.Fatalf("ResolvePlayer: %v", err)
	}
	if resolved.ID != 596059 {
		t.Errorf("ID = %d, want 596059", resolved.ID)
	}
}

func TestResolvePlayerTeamNotFound(t *testing.T) {
	provider := rosterProvider()
	service := NewPlayerService(NewTeamService(provider), provider)

	_, err := service.ResolvePlayer(context.Background(), "Pete", "Alonso", team.MatchSpec{Abbreviation: "XYZ"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if !strings.Contains(err.Error(), "no team matched") {
		t.Errorf("error should name the team lookup, got %v", err)
	}
}

func TestResolvePlayerPlayerNotFound(t *testing.T) {
	provider := rosterProvider()
	service := NewPlayerService(NewTeamService(provider), provider)

	_, err := service.ResolvePlayer(context.Background(), "Aaron", "Judge", team.MatchSpec{Abbreviation: "NYM"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if !strings.Contains(err.Error(), "no player named") {
		t.Errorf("error should name the player lookup, got %v", err)
	}
}

func TestResolvePlayerRequiresBothNames(t *testing.T) {
	service := NewPlayerService(NewTeamService(&fakeProvider{}), &fakeProvider{})

	for _, names := range [][2]string{{"", "Alonso"}, {"Pete", ""}, {"", ""}} {
		_, err := service.ResolvePlayer(context.Background(), names[0], names[1], team.MatchSpec{Abbreviation: "NYM"})
		if !errors.Is(err, ErrInvalidInput) {
			t.Errorf("names %q %q: expected ErrInvalidInput, got %v", names[0], names[1], err)
		}
	}
}

func TestResolvePlayerRejectsLocationOnlyLookup(t *testing.T) {
	service := NewPlayerService(NewTeamService(&fakeProvider{}), &fakeProvider{})

	_, err := service.ResolvePlayer(context.Background(), "Pete", "Alonso", team.MatchSpec{Location: "New York"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for location-only lookup, got %v", err)
	}
}
