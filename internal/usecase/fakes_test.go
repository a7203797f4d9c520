package usecase

import (
	"context"
	"sync/atomic"

	"github.com/riskibarqy/competition-lookup/internal/domain/competition"
)

// fakeProvider implements CompetitionProvider with per-method hooks.
type fakeProvider struct {
	listCompetitionsFn func(ctx context.Context, filters ListFilters) ([]competition.Summary, error)
	getCompetitionFn   func(ctx context.Context, id int64) (competition.Competition, error)
	listTeamsFn        func(ctx context.Context, competitionID int64, season int) ([]competition.Team, error)
	listMatchesFn      func(ctx context.Context, filters MatchFilters) ([]competition.Match, error)

	listCalls atomic.Int32
	getCalls  atomic.Int32
}

func (f *fakeProvider) ListCompetitions(ctx context.Context, filters ListFilters) ([]competition.Summary, error) {
	f.listCalls.Add(1)
	return f.listCompetitionsFn(ctx, filters)
}

func (f *fakeProvider) GetCompetition(ctx context.Context, id int64) (competition.Competition, error) {
	f.getCalls.Add(1)
	return f.getCompetitionFn(ctx, id)
}

func (f *fakeProvider) ListTeams(ctx context.Context, competitionID int64, season int) ([]competition.Team, error) {
	return f.listTeamsFn(ctx, competitionID, season)
}

func (f *fakeProvider) ListMatches(ctx context.Context, filters MatchFilters) ([]competition.Match, error) {
	return f.listMatchesFn(ctx, filters)
}

type fakeResolver struct {
	resolveFn func(ctx context.Context, query string, catalog competition.Catalog) ([]competition.Candidate, error)
}

func (f *fakeResolver) Resolve(ctx context.Context, query string, catalog competition.Catalog) ([]competition.Candidate, error) {
	return f.resolveFn(ctx, query, catalog)
}

type fakeCompleter struct {
	completeFn func(ctx context.Context, prompt string) (string, error)
}

func (f *fakeCompleter) CompleteJSON(ctx context.Context, prompt string) (string, error) {
	return f.completeFn(ctx, prompt)
}

func testSummaries() []competition.Summary {
	return []competition.Summary{
		{ID: 2021, Name: "Premier League", Code: "PL"},
		{ID: 2014, Name: "Primera Division", Code: "PD"},
		{ID: 2002, Name: "Bundesliga", Code: "BL1"},
	}
}
