package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/competition-lookup/internal/domain/competition"
)

const defaultMatchLimit = 10

// CompetitionService exposes the provider's per-competition listings
// (teams, matches) behind input validation.
type CompetitionService struct {
	provider CompetitionProvider
}

func NewCompetitionService(provider CompetitionProvider) *CompetitionService {
	return &CompetitionService{provider: provider}
}

func (s *CompetitionService) ListTeams(ctx context.Context, competitionID int64, season int) ([]competition.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CompetitionService.ListTeams")
	defer span.End()

	if competitionID <= 0 {
		return nil, fmt.Errorf("%w: competition id must be greater than zero", ErrInvalidInput)
	}
	if season < 0 {
		return nil, fmt.Errorf("%w: season must not be negative", ErrInvalidInput)
	}

	teams, err := s.provider.ListTeams(ctx, competitionID, season)
	if err != nil {
		return nil, fmt.Errorf("list teams competition_id=%d: %w", competitionID, err)
	}

	return teams, nil
}

func (s *CompetitionService) ListMatches(ctx context.Context, filters MatchFilters) ([]competition.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CompetitionService.ListMatches")
	defer span.End()

	if filters.CompetitionID <= 0 {
		return nil, fmt.Errorf("%w: competition id must be greater than zero", ErrInvalidInput)
	}
	if filters.Limit <= 0 {
		filters.Limit = defaultMatchLimit
	}
	if filters.Offset < 0 {
		filters.Offset = 0
	}

	matches, err := s.provider.ListMatches(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("list matches competition_id=%d: %w", filters.CompetitionID, err)
	}

	return matches, nil
}
