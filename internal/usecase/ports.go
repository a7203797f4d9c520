package usecase

import (
	"context"

	"github.com/riskibarqy/competition-lookup/internal/domain/competition"
)

// ListFilters narrows the provider's catalog listing. Zero value lists
// everything.
type ListFilters struct {
	Areas []int64
	Plan  string
}

// MatchFilters narrows a match listing for one competition.
type MatchFilters struct {
	CompetitionID int64
	DateFrom      string
	DateTo        string
	Status        string
	Matchday      int
	Season        int
	Limit         int
	Offset        int
}

// CompetitionProvider is the upstream sports-data gateway. Implementations
// own auth, timeouts and rate-limit handling; callers only see domain
// records or sentinel errors (ErrNotFound, ErrUpstream).
type CompetitionProvider interface {
	ListCompetitions(ctx context.Context, filters ListFilters) ([]competition.Summary, error)
	GetCompetition(ctx context.Context, id int64) (competition.Competition, error)
	ListTeams(ctx context.Context, competitionID int64, season int) ([]competition.Team, error)
	ListMatches(ctx context.Context, filters MatchFilters) ([]competition.Match, error)
}

// NameResolver maps a free-text query against a catalog snapshot. An empty
// candidate slice is a successful "no match"; failures are ErrResolution.
type NameResolver interface {
	Resolve(ctx context.Context, query string, catalog competition.Catalog) ([]competition.Candidate, error)
}

// ChatCompleter is the reasoning capability behind the resolver: one
// prompt in, the model's raw text payload out.
type ChatCompleter interface {
	CompleteJSON(ctx context.Context, prompt string) (string, error)
}
