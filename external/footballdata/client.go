package footballdata

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/competition-lookup/internal/domain/competition"
	"github.com/riskibarqy/competition-lookup/internal/platform/logging"
	"github.com/riskibarqy/competition-lookup/internal/platform/resilience"
	"github.com/riskibarqy/competition-lookup/internal/usecase"
	"golang.org/x/sync/singleflight"
)

const (
	defaultBaseURL = "https://api.football-data.org/v4"
	defaultTimeout = 30 * time.Second

	authTokenHeader  = "X-Auth-Token"
	rateLimitHeader  = "X-Requests-Available"
	maxResponseBytes = 4 << 20
)

var authTokenHeaderRegex = regexp.MustCompile(`(?i)x-auth-token:\s*\S+`)

// errProviderBreakerTripped marks failures that count against the breaker.
var errProviderBreakerTripped = crerr.New("football-data request failed")

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	Token          string
	Timeout        time.Duration
	Logger         *logging.Logger
	CircuitBreaker resilience.BreakerConfig

	// sleep overrides the rate-limit pause in tests.
	sleep func(ctx context.Context, d time.Duration) error
}

// Client is the football-data.org v4 gateway. It owns authentication, the
// fixed per-request timeout, one automatic retry on a 429 after the pause
// the provider advertises, and strict response decoding.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	token          string
	logger         *logging.Logger
	validate       *validator.Validate
	breaker        *resilience.Breaker
	circuitEnabled bool
	flight         singleflight.Group
	sleep          func(ctx context.Context, d time.Duration) error
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = defaultTimeout
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	sleep := cfg.sleep
	if sleep == nil {
		sleep = sleepContext
	}

	breakerCfg := resilience.NormalizeBreakerConfig(cfg.CircuitBreaker)

	return &Client{
		httpClient:     httpClient,
		baseURL:        baseURL,
		token:          strings.TrimSpace(cfg.Token),
		logger:         logger,
		validate:       validator.New(),
		breaker:        resilience.NewBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout),
		circuitEnabled: breakerCfg.Enabled,
		sleep:          sleep,
	}
}

func (c *Client) ListCompetitions(ctx context.Context, filters usecase.ListFilters) ([]competition.Summary, error) {
	query := url.Values{}
	if len(filters.Areas) > 0 {
		ids := make([]string, 0, len(filters.Areas))
		for _, id := range filters.Areas {
			ids = append(ids, strconv.FormatInt(id, 10))
		}
		query.Set("areas", strings.Join(ids, ","))
	}
	if plan := strings.TrimSpace(filters.Plan); plan != "" {
		query.Set("plan", plan)
	}

	var envelope competitionsEnvelope
	if err := c.getJSON(ctx, "/competitions", query, &envelope); err != nil {
		return nil, fmt.Errorf("list competitions: %w", err)
	}

	out := make([]competition.Summary, 0, len(envelope.Competitions))
	for _, item := range envelope.Competitions {
		out = append(out, mapSummary(item))
	}

	return out, nil
}

func (c *Client) GetCompetition(ctx context.Context, id int64) (competition.Competition, error) {
	if id <= 0 {
		return competition.Competition{}, fmt.Errorf("%w: competition id must be greater than zero", usecase.ErrInvalidInput)
	}

	var payload competitionPayload
	if err := c.getJSON(ctx, "/competitions/"+strconv.FormatInt(id, 10), nil, &payload); err != nil {
		return competition.Competition{}, fmt.Errorf("get competition id=%d: %w", id, err)
	}

	return mapCompetition(payload), nil
}

func (c *Client) ListTeams(ctx context.Context, competitionID int64, season int) ([]competition.Team, error) {
	if competitionID <= 0 {
		return nil, fmt.Errorf("%w: competition id must be greater than zero", usecase.ErrInvalidInput)
	}

	query := url.Values{}
	if season > 0 {
		query.Set("season", strconv.Itoa(season))
	}

	var envelope teamsEnvelope
	path := fmt.Sprintf("/competitions/%d/teams", competitionID)
	if err := c.getJSON(ctx, path, query, &envelope); err != nil {
		return nil, fmt.Errorf("list teams competition_id=%d: %w", competitionID, err)
	}

	out := make([]competition.Team, 0, len(envelope.Teams))
	for _, item := range envelope.Teams {
		out = append(out, mapTeam(item))
	}

	return out, nil
}

func (c *Client) ListMatches(ctx context.Context, filters usecase.MatchFilters) ([]competition.Match, error) {
	if filters.CompetitionID <= 0 {
		return nil, fmt.Errorf("%w: competition id must be greater than zero", usecase.ErrInvalidInput)
	}

	query := url.Values{}
	if filters.Limit > 0 {
		query.Set("limit", strconv.Itoa(filters.Limit))
	}
	if filters.Offset > 0 {
		query.Set("offset", strconv.Itoa(filters.Offset))
	}
	if v := strings.TrimSpace(filters.DateFrom); v != "" {
		query.Set("dateFrom", v)
	}
	if v := strings.TrimSpace(filters.DateTo); v != "" {
		query.Set("dateTo", v)
	}
	if v := strings.TrimSpace(filters.Status); v != "" {
		query.Set("status", v)
	}
	if filters.Matchday > 0 {
		query.Set("matchday", strconv.Itoa(filters.Matchday))
	}
	if filters.Season > 0 {
		query.Set("season", strconv.Itoa(filters.Season))
	}

	var envelope matchesEnvelope
	path := fmt.Sprintf("/competitions/%d/matches", filters.CompetitionID)
	if err := c.getJSON(ctx, path, query, &envelope); err != nil {
		return nil, fmt.Errorf("list matches competition_id=%d: %w", filters.CompetitionID, err)
	}

	out := make([]competition.Match, 0, len(envelope.Matches))
	for _, item := range envelope.Matches {
		mapped, err := mapMatch(item)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", usecase.ErrUpstream, err)
		}
		out = append(out, mapped)
	}

	return out, nil
}

func mapMatch(item matchPayload) (competition.Match, error) {
	kickoff, err := time.Parse(time.RFC3339, item.UTCDate)
	if err != nil {
		return competition.Match{}, fmt.Errorf("parse match %d utcDate %q: %v", item.ID, item.UTCDate, err)
	}

	out := competition.Match{
		ID:       item.ID,
		UTCDate:  kickoff,
		Status:   item.Status,
		Matchday: item.Matchday,
		Stage:    item.Stage,
		Group:    item.Group,
		HomeTeam: *mapTeamRef(item.HomeTeam),
		AwayTeam: *mapTeamRef(item.AwayTeam),
	}
	if item.Score != nil {
		out.Winner = item.Score.Winner
		out.FullTime = mapScoreSide(item.Score.FullTime)
		out.HalfTime = mapScoreSide(item.Score.HalfTime)
	}

	return out, nil
}

// getJSON performs a GET, decodes into target and validates required field
// presence. Identical in-flight requests share one round trip.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, target any) error {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "football-data circuit breaker rejected request", "path", path)
			return fmt.Errorf("%w: sports data provider is temporarily unavailable", usecase.ErrUpstream)
		}
	}

	fullURL := c.baseURL + path
	if encoded := query.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}

	out, err, _ := c.flight.Do(fullURL, func() (any, error) {
		raw, reqErr := c.executeRequest(ctx, fullURL)
		if c.circuitEnabled {
			if reqErr != nil && crerr.Is(reqErr, errProviderBreakerTripped) {
				c.breaker.RecordFailure()
			} else {
				c.breaker.RecordSuccess()
			}
		}
		return raw, reqErr
	})
	if err != nil {
		return err
	}

	raw, ok := out.([]byte)
	if !ok {
		return fmt.Errorf("%w: unexpected response payload type %T", usecase.ErrUpstream, out)
	}

	if err := sonic.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("%w: decode provider payload: %v", usecase.ErrUpstream, err)
	}
	if err := c.validate.StructCtx(ctx, target); err != nil {
		return fmt.Errorf("%w: provider payload missing required fields: %v", usecase.ErrUpstream, err)
	}

	return nil
}

// executeRequest sends the GET once and, on a 429, pauses for the number
// of seconds advertised in X-Requests-Available before retrying exactly
// once. A second 429 propagates as an upstream failure.
func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	retriedRateLimit := false

	for {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("Accept", "application/json")
		if c.token != "" {
			req.Header.Set(authTokenHeader, c.token)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, crerr.Mark(
				fmt.Errorf("%w: send request: %s", usecase.ErrUpstream, sanitizeSensitiveText(err.Error(), c.token)),
				errProviderBreakerTripped,
			)
		}

		raw, readErr := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
		_ = resp.Body.Close()
		if readErr != nil {
			return nil, crerr.Mark(
				fmt.Errorf("%w: read response body: %v", usecase.ErrUpstream, readErr),
				errProviderBreakerTripped,
			)
		}

		switch {
		case resp.StatusCode >= 200 && resp.StatusCode < 300:
			return raw, nil

		case resp.StatusCode == http.StatusNotFound:
			return nil, fmt.Errorf("%w: provider reports no such resource", usecase.ErrNotFound)

		case resp.StatusCode == http.StatusTooManyRequests && !retriedRateLimit:
			retriedRateLimit = true
			pause := rateLimitPause(resp.Header)
			c.logger.WarnContext(ctx, "football-data rate limited, pausing before single retry",
				"url", fullURL,
				"pause", pause,
			)
			if err := c.sleep(ctx, pause); err != nil {
				return nil, err
			}
			continue

		default:
			return nil, crerr.Mark(
				fmt.Errorf("%w: provider status=%d body=%s", usecase.ErrUpstream, resp.StatusCode, abbreviateBody(raw)),
				errProviderBreakerTripped,
			)
		}
	}
}

// rateLimitPause reads the provider's retry hint; the header carries whole
// seconds. Absent or unparsable hints fall back to one second.
func rateLimitPause(header http.Header) time.Duration {
	hint := strings.TrimSpace(header.Get(rateLimitHeader))
	seconds, err := strconv.Atoi(hint)
	if err != nil || seconds < 1 {
		seconds = 1
	}
	return time.Duration(seconds) * time.Second
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func sanitizeSensitiveText(value, token string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return value
	}
	if token != "" {
		value = strings.ReplaceAll(value, token, "REDACTED")
	}
	return authTokenHeaderRegex.ReplaceAllString(value, "X-Auth-Token: REDACTED")
}

func abbreviateBody(raw []byte) string {
	const max = 256
	body := strings.TrimSpace(string(raw))
	if len(body) > max {
		return body[:max] + "..."
	}
	return body
}
