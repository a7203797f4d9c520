package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/riskibarqy/competition-lookup/internal/domain/competition"
)

func TestCatalogCacheEnsureLoaded_BuildsNameKeyedSnapshot(t *testing.T) {
	t.Parallel()

	provider := &fakeProvider{
		listCompetitionsFn: func(context.Context, ListFilters) ([]competition.Summary, error) {
			return testSummaries(), nil
		},
	}
	cache := NewCatalogCache(provider)

	catalog, err := cache.EnsureLoaded(context.Background())
	if err != nil {
		t.Fatalf("ensure loaded failed: %v", err)
	}
	if len(catalog) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(catalog))
	}

	entry, ok := catalog["Premier League"]
	if !ok {
		t.Fatal("expected Premier League in catalog")
	}
	if entry.ID != 2021 || entry.Code != "PL" {
		t.Fatalf("unexpected entry: %+v", entry)
	}
}

func TestCatalogCacheEnsureLoaded_LoadsOnceAcrossConcurrentCallers(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	provider := &fakeProvider{
		listCompetitionsFn: func(context.Context, ListFilters) ([]competition.Summary, error) {
			<-release
			return testSummaries(), nil
		},
	}
	cache := NewCatalogCache(provider)

	const callers = 16
	var wg sync.WaitGroup
	errs := make([]error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = cache.EnsureLoaded(context.Background())
		}(i)
	}
	close(release)
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			t.Fatalf("caller %d failed: %v", i, err)
		}
	}
	if got := provider.listCalls.Load(); got != 1 {
		t.Fatalf("expected a single upstream listing, got %d", got)
	}
}

func TestCatalogCacheEnsureLoaded_FailedLoadRetriesLater(t *testing.T) {
	t.Parallel()

	failFirst := true
	provider := &fakeProvider{
		listCompetitionsFn: func(context.Context, ListFilters) ([]competition.Summary, error) {
			if failFirst {
				failFirst = false
				return nil, fmt.Errorf("%w: provider down", ErrUpstream)
			}
			return testSummaries(), nil
		},
	}
	cache := NewCatalogCache(provider)

	if _, err := cache.EnsureLoaded(context.Background()); !errors.Is(err, ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}
	if cache.Loaded() {
		t.Fatal("failed load must not populate the snapshot")
	}

	catalog, err := cache.EnsureLoaded(context.Background())
	if err != nil {
		t.Fatalf("retry failed: %v", err)
	}
	if len(catalog) != 3 {
		t.Fatalf("expected 3 entries after retry, got %d", len(catalog))
	}
	if got := provider.listCalls.Load(); got != 2 {
		t.Fatalf("expected 2 upstream calls, got %d", got)
	}
}

func TestCatalogCacheEnsureLoaded_SecondCallUsesSnapshot(t *testing.T) {
	t.Parallel()

	provider := &fakeProvider{
		listCompetitionsFn: func(context.Context, ListFilters) ([]competition.Summary, error) {
			return testSummaries(), nil
		},
	}
	cache := NewCatalogCache(provider)

	if _, err := cache.EnsureLoaded(context.Background()); err != nil {
		t.Fatalf("first load failed: %v", err)
	}
	if _, err := cache.EnsureLoaded(context.Background()); err != nil {
		t.Fatalf("second load failed: %v", err)
	}
	if got := provider.listCalls.Load(); got != 1 {
		t.Fatalf("expected snapshot reuse, got %d upstream calls", got)
	}
}

func TestCatalogCacheEnsureLoaded_NameCollisionKeepsLastEntry(t *testing.T) {
	t.Parallel()

	provider := &fakeProvider{
		listCompetitionsFn: func(context.Context, ListFilters) ([]competition.Summary, error) {
			return []competition.Summary{
				{ID: 1, Name: "Copa", Code: "AAA"},
				{ID: 2, Name: "Copa", Code: "BBB"},
			}, nil
		},
	}
	cache := NewCatalogCache(provider)

	catalog, err := cache.EnsureLoaded(context.Background())
	if err != nil {
		t.Fatalf("ensure loaded failed: %v", err)
	}
	if len(catalog) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(catalog))
	}
	if entry := catalog["Copa"]; entry.ID != 2 || entry.Code != "BBB" {
		t.Fatalf("expected last entry to win, got %+v", entry)
	}
}
