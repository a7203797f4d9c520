package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/competition-lookup/internal/domain/competition"
	"github.com/riskibarqy/competition-lookup/internal/platform/logging"
)

const defaultLookupWorkers = 4

// LookupService composes the catalog cache, the name resolver and the
// provider gateway into the single lookup entry point.
type LookupService struct {
	catalog    *CatalogCache
	resolver   NameResolver
	provider   CompetitionProvider
	maxWorkers int
	logger     *logging.Logger
}

func NewLookupService(
	catalog *CatalogCache,
	resolver NameResolver,
	provider CompetitionProvider,
	maxWorkers int,
	logger *logging.Logger,
) *LookupService {
	if maxWorkers < 1 {
		maxWorkers = defaultLookupWorkers
	}
	if logger == nil {
		logger = logging.Default()
	}

	return &LookupService{
		catalog:    catalog,
		resolver:   resolver,
		provider:   provider,
		maxWorkers: maxWorkers,
		logger:     logger,
	}
}

// Lookup resolves a free-text competition name and returns a formatted
// text report. Catalog-load and resolver failures are fatal for the call;
// per-candidate fetch failures are skipped, and a lookup where nothing
// survives degrades to the catalog-listing "not found" message.
func (s *LookupService) Lookup(ctx context.Context, query string) (string, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LookupService.Lookup")
	defer span.End()

	query = strings.TrimSpace(query)
	if query == "" {
		return "", fmt.Errorf("%w: competition name is required", ErrInvalidInput)
	}

	catalog, err := s.catalog.EnsureLoaded(ctx)
	if err != nil {
		return "", err
	}

	candidates, err := s.resolver.Resolve(ctx, query, catalog)
	if err != nil {
		return "", err
	}

	if len(candidates) == 0 {
		s.logger.InfoContext(ctx, "no competition matched query", "query", query)
		return formatNotFound(query, catalogNames(catalog)), nil
	}

	fetched := s.fetchCandidates(ctx, candidates)

	found := make([]competition.Competition, 0, len(fetched))
	for _, item := range fetched {
		if item != nil {
			found = append(found, *item)
		}
	}
	if len(found) == 0 {
		s.logger.WarnContext(ctx, "all candidate fetches failed",
			"query", query,
			"candidate_count", len(candidates),
		)
		return formatNotFound(query, catalogNames(catalog)), nil
	}

	return formatCompetitions(found), nil
}

// SupportedCompetitions lists every competition name in the catalog,
// sorted ascending.
func (s *LookupService) SupportedCompetitions(ctx context.Context) ([]string, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LookupService.SupportedCompetitions")
	defer span.End()

	catalog, err := s.catalog.EnsureLoaded(ctx)
	if err != nil {
		return nil, err
	}

	return catalogNames(catalog), nil
}

// fetchCandidates fetches every candidate's full record on a bounded
// worker pool. The result slice keeps candidate order regardless of which
// fetch completes first; a failed fetch leaves a nil slot.
func (s *LookupService) fetchCandidates(ctx context.Context, candidates []competition.Candidate) []*competition.Competition {
	results := make([]*competition.Competition, len(candidates))

	workers := s.maxWorkers
	if workers > len(candidates) {
		workers = len(candidates)
	}

	pool, err := ants.NewPool(workers)
	if err != nil {
		// Pool construction only fails on a bad size; fall back to
		// fetching inline.
		s.logger.WarnContext(ctx, "worker pool unavailable, fetching sequentially", "error", err)
		pool = nil
	} else {
		defer pool.Release()
	}

	var wg sync.WaitGroup
	for i, candidate := range candidates {
		wg.Add(1)
		task := func() {
			defer wg.Done()

			found, err := s.provider.GetCompetition(ctx, candidate.ID)
			if err != nil {
				s.logger.WarnContext(ctx, "fetch candidate competition failed",
					"competition_id", candidate.ID,
					"competition_code", candidate.Code,
					"error", err,
				)
				return
			}
			results[i] = &found
		}

		if pool == nil {
			task()
			continue
		}
		if err := pool.Submit(task); err != nil {
			task()
		}
	}
	wg.Wait()

	return results
}

func catalogNames(catalog competition.Catalog) []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
