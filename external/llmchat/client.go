package llmchat

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/competition-lookup/internal/platform/logging"
)

const (
	defaultBaseURL   = "https://api.studio.nebius.com/v1"
	defaultModel     = "meta-llama/Meta-Llama-3.1-70B-Instruct"
	defaultTimeout   = 30 * time.Second
	defaultMaxTokens = 256

	// The sampling setup is pinned near-deterministic so the same query
	// against the same catalog keeps resolving to the same answer.
	samplingTemperature = 0.0
	samplingTopP        = 0.0001

	maxResponseBytes = 1 << 20
)

type ClientConfig struct {
	HTTPClient *http.Client
	BaseURL    string
	APIKey     string
	Model      string
	Timeout    time.Duration
	MaxTokens  int
	Logger     *logging.Logger
}

// Client calls an OpenAI-compatible chat-completions endpoint. One request
// per call, no retries; the caller decides how a failure degrades.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
	maxTokens  int
	logger     *logging.Logger
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

	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = defaultModel
	}

	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		apiKey:     strings.TrimSpace(cfg.APIKey),
		model:      model,
		maxTokens:  maxTokens,
		logger:     logger,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	TopP        float64       `json:"top_p"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// CompleteJSON sends the prompt with the assistant turn primed by an open
// JSON code fence, biasing the model toward answering with bare JSON. The
// returned string is the raw message content; stripping the trailing fence
// is the caller's job.
func (c *Client) CompleteJSON(ctx context.Context, prompt string) (string, error) {
	payload := chatCompletionRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "user", Content: prompt},
			{Role: "assistant", Content: "```json"},
		},
		Temperature: samplingTemperature,
		TopP:        samplingTopP,
		MaxTokens:   c.maxTokens,
	}

	encoded, err := sonic.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal chat completion request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(encoded))
	if err != nil {
		return "", fmt.Errorf("build chat completion request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("send chat completion request: %s", sanitizeSensitiveText(err.Error(), c.apiKey))
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", fmt.Errorf("read chat completion response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("model provider status=%d body=%s", resp.StatusCode, abbreviateBody(raw))
	}

	var decoded chatCompletionResponse
	if err := sonic.Unmarshal(raw, &decoded); err != nil {
		return "", fmt.Errorf("decode chat completion response: %w", err)
	}
	if len(decoded.Choices) == 0 {
		return "", fmt.Errorf("chat completion response has no choices")
	}

	c.logger.DebugContext(ctx, "chat completion finished",
		"model", c.model,
		"duration", time.Since(started),
		"content_len", len(decoded.Choices[0].Message.Content),
	)

	return decoded.Choices[0].Message.Content, nil
}

func sanitizeSensitiveText(value, secret string) string {
	value = strings.TrimSpace(value)
	if value == "" || secret == "" {
		return value
	}
	return strings.ReplaceAll(value, secret, "REDACTED")
}

func abbreviateBody(raw []byte) string {
	const max = 256
	body := strings.TrimSpace(string(raw))
	if len(body) > max {
		return body[:max] + "..."
	}
	return body
}
