package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/riskibarqy/competition-lookup/internal/domain/competition"
	"golang.org/x/sync/singleflight"
)

const catalogFlightKey = "competition-catalog"

// CatalogCache holds the name-keyed competition catalog for the lifetime
// of the process. The snapshot loads lazily on first access; concurrent
// first callers share a single upstream listing via singleflight, and a
// failed load leaves the cache empty so a later call can retry.
type CatalogCache struct {
	provider CompetitionProvider

	mu       sync.RWMutex
	snapshot competition.Catalog
	flight   singleflight.Group
}

func NewCatalogCache(provider CompetitionProvider) *CatalogCache {
	return &CatalogCache{provider: provider}
}

// EnsureLoaded returns the catalog snapshot, loading it from the provider
// on first use. The returned map is shared and must be treated as
// read-only.
func (c *CatalogCache) EnsureLoaded(ctx context.Context) (competition.Catalog, error) {
	if snapshot := c.loaded(); snapshot != nil {
		return snapshot, nil
	}

	out, err, _ := c.flight.Do(catalogFlightKey, func() (any, error) {
		if snapshot := c.loaded(); snapshot != nil {
			return snapshot, nil
		}

		summaries, err := c.provider.ListCompetitions(ctx, ListFilters{})
		if err != nil {
			return nil, fmt.Errorf("load competition catalog: %w", err)
		}

		// Names are assumed unique upstream; a collision keeps the
		// entry listed last.
		snapshot := make(competition.Catalog, len(summaries))
		for _, item := range summaries {
			snapshot[item.Name] = competition.CatalogEntry{ID: item.ID, Code: item.Code}
		}

		c.mu.Lock()
		c.snapshot = snapshot
		c.mu.Unlock()

		return snapshot, nil
	})
	if err != nil {
		return nil, err
	}

	return out.(competition.Catalog), nil
}

// Loaded reports whether the snapshot is present without triggering a load.
func (c *CatalogCache) Loaded() bool {
	return c.loaded() != nil
}

func (c *CatalogCache) loaded() competition.Catalog {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snapshot
}
