package httpapi

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/competition-lookup/internal/platform/logging"
	"github.com/riskibarqy/competition-lookup/internal/usecase"
)

const maxRequestBodyBytes = 1 << 20

type Handler struct {
	lookupService      *usecase.LookupService
	competitionService *usecase.CompetitionService
	logger             *logging.Logger
	validator          *validator.Validate
}

func NewHandler(
	lookupService *usecase.LookupService,
	competitionService *usecase.CompetitionService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		lookupService:      lookupService,
		competitionService: competitionService,
		logger:             logger,
		validator:          validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

// LookupCompetition resolves a free-text competition name into a formatted
// text report.
func (h *Handler) LookupCompetition(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.LookupCompetition")
	defer span.End()

	var payload lookupRequest
	if err := h.decodeAndValidate(r, &payload); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.lookupService.Lookup(ctx, payload.Name)
	if err != nil {
		h.logger.ErrorContext(ctx, "competition lookup failed", "query", payload.Name, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, lookupResponse{Query: payload.Name, Result: result})
}

// ListSupportedCompetitions returns every competition name known to the
// catalog, sorted ascending.
func (h *Handler) ListSupportedCompetitions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSupportedCompetitions")
	defer span.End()

	names, err := h.lookupService.SupportedCompetitions(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list supported competitions failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, supportedCompetitionsResponse{Competitions: names})
}

func (h *Handler) ListTeamsByCompetition(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeamsByCompetition")
	defer span.End()

	competitionID, err := parsePathID(r.PathValue("competitionID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	season, err := parseOptionalInt(r.URL.Query().Get("season"))
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid season", usecase.ErrInvalidInput))
		return
	}

	teams, err := h.competitionService.ListTeams(ctx, competitionID, season)
	if err != nil {
		h.logger.WarnContext(ctx, "list teams failed", "competition_id", competitionID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]teamDTO, 0, len(teams))
	for _, item := range teams {
		items = append(items, teamToDTO(item))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListMatchesByCompetition(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatchesByCompetition")
	defer span.End()

	competitionID, err := parsePathID(r.PathValue("competitionID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	filters, err := parseMatchFilters(competitionID, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	matches, err := h.competitionService.ListMatches(ctx, filters)
	if err != nil {
		h.logger.WarnContext(ctx, "list matches failed", "competition_id", competitionID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]matchDTO, 0, len(matches))
	for _, item := range matches {
		items = append(items, matchToDTO(item))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) decodeAndValidate(r *http.Request, payload any) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBodyBytes))
	if err != nil {
		return fmt.Errorf("%w: read request body", usecase.ErrInvalidInput)
	}
	if len(body) == 0 {
		return fmt.Errorf("%w: request body is required", usecase.ErrInvalidInput)
	}
	if err := sonic.Unmarshal(body, payload); err != nil {
		return fmt.Errorf("%w: malformed JSON body", usecase.ErrInvalidInput)
	}
	if err := h.validator.StructCtx(r.Context(), payload); err != nil {
		return fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

func parsePathID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid competition id", usecase.ErrInvalidInput)
	}
	return id, nil
}

func parseOptionalInt(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	out, err := strconv.Atoi(raw)
	if err != nil || out < 0 {
		return 0, fmt.Errorf("invalid number %q", raw)
	}
	return out, nil
}

func parseMatchFilters(competitionID int64, r *http.Request) (usecase.MatchFilters, error) {
	query := r.URL.Query()

	matchday, err := parseOptionalInt(query.Get("matchday"))
	if err != nil {
		return usecase.MatchFilters{}, fmt.Errorf("%w: invalid matchday", usecase.ErrInvalidInput)
	}
	season, err := parseOptionalInt(query.Get("season"))
	if err != nil {
		return usecase.MatchFilters{}, fmt.Errorf("%w: invalid season", usecase.ErrInvalidInput)
	}
	limit, err := parseOptionalInt(query.Get("limit"))
	if err != nil {
		return usecase.MatchFilters{}, fmt.Errorf("%w: invalid limit", usecase.ErrInvalidInput)
	}
	offset, err := parseOptionalInt(query.Get("offset"))
	if err != nil {
		return usecase.MatchFilters{}, fmt.Errorf("%w: invalid offset", usecase.ErrInvalidInput)
	}

	return usecase.MatchFilters{
		CompetitionID: competitionID,
		DateFrom:      strings.TrimSpace(query.Get("dateFrom")),
		DateTo:        strings.TrimSpace(query.Get("dateTo")),
		Status:        strings.TrimSpace(query.Get("status")),
		Matchday:      matchday,
		Season:        season,
		Limit:         limit,
		Offset:        offset,
	}, nil
}
