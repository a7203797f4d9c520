package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/competition-lookup/internal/domain/competition"
)

func TestCompetitionServiceListTeams_RejectsBadInput(t *testing.T) {
	t.Parallel()

	svc := NewCompetitionService(&fakeProvider{})

	if _, err := svc.ListTeams(context.Background(), 0, 0); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for zero id, got %v", err)
	}
	if _, err := svc.ListTeams(context.Background(), 2021, -1); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for negative season, got %v", err)
	}
}

func TestCompetitionServiceListTeams_PassesThrough(t *testing.T) {
	t.Parallel()

	provider := &fakeProvider{
		listTeamsFn: func(_ context.Context, competitionID int64, season int) ([]competition.Team, error) {
			if competitionID != 2021 || season != 2025 {
				t.Fatalf("unexpected arguments: %d %d", competitionID, season)
			}
			return []competition.Team{{ID: 57, Name: "Arsenal FC"}}, nil
		},
	}
	svc := NewCompetitionService(provider)

	teams, err := svc.ListTeams(context.Background(), 2021, 2025)
	if err != nil {
		t.Fatalf("list teams failed: %v", err)
	}
	if len(teams) != 1 || teams[0].Name != "Arsenal FC" {
		t.Fatalf("unexpected teams: %+v", teams)
	}
}

func TestCompetitionServiceListMatches_AppliesDefaults(t *testing.T) {
	t.Parallel()

	provider := &fakeProvider{
		listMatchesFn: func(_ context.Context, filters MatchFilters) ([]competition.Match, error) {
			if filters.Limit != defaultMatchLimit {
				t.Fatalf("expected default limit %d, got %d", defaultMatchLimit, filters.Limit)
			}
			if filters.Offset != 0 {
				t.Fatalf("expected offset reset to 0, got %d", filters.Offset)
			}
			return nil, nil
		},
	}
	svc := NewCompetitionService(provider)

	if _, err := svc.ListMatches(context.Background(), MatchFilters{CompetitionID: 2021, Offset: -3}); err != nil {
		t.Fatalf("list matches failed: %v", err)
	}
}

func TestCompetitionServiceListMatches_RejectsMissingCompetition(t *testing.T) {
	t.Parallel()

	svc := NewCompetitionService(&fakeProvider{})

	_, err := svc.ListMatches(context.Background(), MatchFilters{})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
