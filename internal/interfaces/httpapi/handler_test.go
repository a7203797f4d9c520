package httpapi

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/competition-lookup/internal/domain/competition"
	"github.com/riskibarqy/competition-lookup/internal/platform/logging"
	"github.com/riskibarqy/competition-lookup/internal/usecase"
)

type stubProvider struct {
	summaries []competition.Summary
	byID      map[int64]competition.Competition
	teams     []competition.Team
	matches   []competition.Match

	lastMatchFilters usecase.MatchFilters
}

func (s *stubProvider) ListCompetitions(context.Context, usecase.ListFilters) ([]competition.Summary, error) {
	return s.summaries, nil
}

func (s *stubProvider) GetCompetition(_ context.Context, id int64) (competition.Competition, error) {
	found, ok := s.byID[id]
	if !ok {
		return competition.Competition{}, fmt.Errorf("%w: provider reports no such resource", usecase.ErrNotFound)
	}
	return found, nil
}

func (s *stubProvider) ListTeams(context.Context, int64, int) ([]competition.Team, error) {
	return s.teams, nil
}

func (s *stubProvider) ListMatches(_ context.Context, filters usecase.MatchFilters) ([]competition.Match, error) {
	s.lastMatchFilters = filters
	return s.matches, nil
}

type stubResolver struct {
	candidates []competition.Candidate
	err        error
}

func (s *stubResolver) Resolve(context.Context, string, competition.Catalog) ([]competition.Candidate, error) {
	return s.candidates, s.err
}

func newTestRouter(t *testing.T, provider *stubProvider, resolver usecase.NameResolver) http.Handler {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	catalog := usecase.NewCatalogCache(provider)
	lookupSvc := usecase.NewLookupService(catalog, resolver, provider, 4, logging.NewNop())
	competitionSvc := usecase.NewCompetitionService(provider)
	handler := NewHandler(lookupSvc, competitionSvc, logging.NewNop())

	return NewRouter(handler, logger, []string{"*"})
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) googleResponseEnvelope {
	t.Helper()

	var envelope googleResponseEnvelope
	if err := sonic.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode response envelope: %v", err)
	}
	return envelope
}

func defaultStubProvider() *stubProvider {
	return &stubProvider{
		summaries: []competition.Summary{
			{ID: 2021, Name: "Premier League", Code: "PL"},
			{ID: 2002, Name: "Bundesliga", Code: "BL1"},
		},
		byID: map[int64]competition.Competition{
			2021: {
				ID:   2021,
				Name: "Premier League",
				Code: "PL",
				Type: "LEAGUE",
				CurrentSeason: competition.Season{
					ID:              2403,
					StartDate:       "2025-08-15",
					EndDate:         "2026-05-24",
					CurrentMatchday: 3,
				},
			},
		},
	}
}

func TestHealthz(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, defaultStubProvider(), &stubResolver{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
	envelope := decodeEnvelope(t, rec)
	if envelope.APIVersion != "2.0" {
		t.Fatalf("unexpected apiVersion: %s", envelope.APIVersion)
	}
}

func TestLookupCompetition_OK(t *testing.T) {
	t.Parallel()

	provider := defaultStubProvider()
	resolver := &stubResolver{candidates: []competition.Candidate{{ID: 2021, Code: "PL"}}}
	router := newTestRouter(t, provider, resolver)

	body := strings.NewReader(`{"name": "premier legue"}`)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/competitions/lookup", body))

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d body=%s", rec.Code, rec.Body.String())
	}

	envelope := decodeEnvelope(t, rec)
	data, err := sonic.Marshal(envelope.Data)
	if err != nil {
		t.Fatalf("re-marshal data: %v", err)
	}
	var resp lookupResponse
	if err := sonic.Unmarshal(data, &resp); err != nil {
		t.Fatalf("decode lookup response: %v", err)
	}
	if resp.Query != "premier legue" {
		t.Fatalf("unexpected query echo: %s", resp.Query)
	}
	if !strings.Contains(resp.Result, "Name: Premier League") {
		t.Fatalf("unexpected result:\n%s", resp.Result)
	}
	if !strings.Contains(resp.Result, "Type: LEAGUE") {
		t.Fatalf("unexpected result:\n%s", resp.Result)
	}
}

func TestLookupCompetition_EmptyBodyIsBadRequest(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, defaultStubProvider(), &stubResolver{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/competitions/lookup", nil))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
	envelope := decodeEnvelope(t, rec)
	if envelope.Error == nil || envelope.Error.Status != "INVALID_ARGUMENT" {
		t.Fatalf("unexpected error body: %+v", envelope.Error)
	}
}

func TestLookupCompetition_BlankNameIsBadRequest(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, defaultStubProvider(), &stubResolver{})

	body := strings.NewReader(`{"name": ""}`)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/competitions/lookup", body))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
}

func TestLookupCompetition_ResolutionFailureIsBadGateway(t *testing.T) {
	t.Parallel()

	resolver := &stubResolver{err: fmt.Errorf("%w: empty model response", usecase.ErrResolution)}
	router := newTestRouter(t, defaultStubProvider(), resolver)

	body := strings.NewReader(`{"name": "premier league"}`)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/competitions/lookup", body))

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
	envelope := decodeEnvelope(t, rec)
	if envelope.Error == nil || len(envelope.Error.Errors) == 0 {
		t.Fatalf("missing error detail: %+v", envelope.Error)
	}
	if envelope.Error.Errors[0].Reason != "resolutionFailed" {
		t.Fatalf("unexpected reason: %s", envelope.Error.Errors[0].Reason)
	}
}

func TestListSupportedCompetitions_SortedNames(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, defaultStubProvider(), &stubResolver{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/competitions", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"competitions":["Bundesliga","Premier League"]`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestListTeamsByCompetition(t *testing.T) {
	t.Parallel()

	provider := defaultStubProvider()
	provider.teams = []competition.Team{{ID: 57, Name: "Arsenal FC", TLA: "ARS"}}
	router := newTestRouter(t, provider, &stubResolver{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/competitions/2021/teams?season=2025", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"name":"Arsenal FC"`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestListTeamsByCompetition_BadIDIsBadRequest(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, defaultStubProvider(), &stubResolver{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/competitions/abc/teams", nil))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
}

func TestListMatchesByCompetition_ForwardsFilters(t *testing.T) {
	t.Parallel()

	kickoff := time.Date(2025, 8, 16, 14, 0, 0, 0, time.UTC)
	provider := defaultStubProvider()
	provider.matches = []competition.Match{{
		ID:       537831,
		UTCDate:  kickoff,
		Status:   "FINISHED",
		Matchday: 1,
		HomeTeam: competition.TeamRef{ID: 57, Name: "Arsenal FC"},
		AwayTeam: competition.TeamRef{ID: 64, Name: "Liverpool FC"},
		Winner:   "HOME_TEAM",
		FullTime: &competition.Score{Home: 2, Away: 1},
	}}
	router := newTestRouter(t, provider, &stubResolver{})

	rec := httptest.NewRecorder()
	target := "/v1/competitions/2021/matches?status=FINISHED&matchday=1&limit=5"
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d body=%s", rec.Code, rec.Body.String())
	}

	if provider.lastMatchFilters.Status != "FINISHED" {
		t.Fatalf("unexpected status filter: %s", provider.lastMatchFilters.Status)
	}
	if provider.lastMatchFilters.Matchday != 1 {
		t.Fatalf("unexpected matchday filter: %d", provider.lastMatchFilters.Matchday)
	}
	if provider.lastMatchFilters.Limit != 5 {
		t.Fatalf("unexpected limit filter: %d", provider.lastMatchFilters.Limit)
	}

	body := rec.Body.String()
	if !strings.Contains(body, `"utcDate":"2025-08-16T14:00:00Z"`) {
		t.Fatalf("unexpected body: %s", body)
	}
	if !strings.Contains(body, `"homeTeam":"Arsenal FC"`) {
		t.Fatalf("unexpected body: %s", body)
	}
}

func TestCORSPreflight(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, defaultStubProvider(), &stubResolver{})

	req := httptest.NewRequest(http.MethodOptions, "/v1/competitions/lookup", nil)
	req.Header.Set("Origin", "https://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("unexpected allow origin: %s", got)
	}
}
