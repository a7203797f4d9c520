package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"text/template"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/competition-lookup/internal/domain/competition"
	"github.com/riskibarqy/competition-lookup/internal/platform/logging"
)

// The prompt hands the model the full catalog and asks for the ids of the
// best-matching entries. The assistant turn is primed with a ```json fence
// by the transport, so the reply is expected to be a bare JSON array.
const resolvePromptText = `You match free-text soccer competition queries against a catalog.

The catalog below maps each supported competition name to its identifiers:
{{- range .Entries}}
"{{.Name}}": {"id": {{.ID}}, "code": "{{.Code}}"}
{{- end}}

User query: "{{.Query}}"

Find the catalog entries that the query refers to. The query may be
misspelled, abbreviated or a colloquial alias. Respond with a JSON array of
objects of the form {"id": <id>, "code": "<code>"} taken verbatim from the
catalog, best match first. Respond with [] if no entry matches. Respond
with JSON only, no prose.`

var resolvePrompt = template.Must(template.New("resolve-competition").Parse(resolvePromptText))

// ResolverService asks an external reasoning capability to map a query to
// catalog entries. The model output is untrusted: it is parsed and
// shape-checked before use, and any transport or parse failure surfaces as
// ErrResolution. The service itself never retries.
type ResolverService struct {
	completer ChatCompleter
	logger    *logging.Logger
}

func NewResolverService(completer ChatCompleter, logger *logging.Logger) *ResolverService {
	if logger == nil {
		logger = logging.Default()
	}
	return &ResolverService{completer: completer, logger: logger}
}

func (s *ResolverService) Resolve(ctx context.Context, query string, catalog competition.Catalog) ([]competition.Candidate, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ResolverService.Resolve")
	defer span.End()

	prompt, err := renderResolvePrompt(query, catalog)
	if err != nil {
		return nil, fmt.Errorf("render resolve prompt: %w", err)
	}

	raw, err := s.completer.CompleteJSON(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("%w: invoke model: %v", ErrResolution, err)
	}

	candidates, err := parseCandidatePayload(raw)
	if err != nil {
		return nil, err
	}

	s.logger.DebugContext(ctx, "resolved competition query",
		"query", query,
		"candidate_count", len(candidates),
	)

	return candidates, nil
}

type resolvePromptEntry struct {
	Name string
	ID   int64
	Code string
}

func renderResolvePrompt(query string, catalog competition.Catalog) (string, error) {
	entries := make([]resolvePromptEntry, 0, len(catalog))
	for name, entry := range catalog {
		entries = append(entries, resolvePromptEntry{Name: name, ID: entry.ID, Code: entry.Code})
	}
	// Deterministic prompt text for a deterministic decoding setup.
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })

	var sb strings.Builder
	err := resolvePrompt.Execute(&sb, struct {
		Query   string
		Entries []resolvePromptEntry
	}{Query: query, Entries: entries})
	if err != nil {
		return "", err
	}

	return sb.String(), nil
}

// parseCandidatePayload turns the model's raw text into candidates. The
// payload may arrive wrapped in a markdown code fence; after stripping it,
// an empty payload or anything that is not a JSON array of {id, code}
// records is an ErrResolution. An empty array is a valid no-match.
func parseCandidatePayload(raw string) ([]competition.Candidate, error) {
	content := strings.TrimSpace(raw)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(strings.TrimSpace(content), "```")
	content = strings.TrimSpace(content)

	if content == "" {
		return nil, fmt.Errorf("%w: empty model response", ErrResolution)
	}

	var candidates []competition.Candidate
	if err := sonic.UnmarshalString(content, &candidates); err != nil {
		return nil, fmt.Errorf("%w: parse model response %q: %v", ErrResolution, abbreviate(content, 120), err)
	}

	for _, item := range candidates {
		if item.ID <= 0 {
			return nil, fmt.Errorf("%w: candidate without a valid id in model response", ErrResolution)
		}
	}

	return candidates, nil
}

func abbreviate(v string, max int) string {
	if len(v) <= max {
		return v
	}
	return v[:max] + "..."
}
