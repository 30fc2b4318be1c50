package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// DefaultModel is the model the original deployment of the engine ran
// against. Override via Config.Model.
const DefaultModel = "gemini-2.5-flash"

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// ErrNoContent is returned when the API call succeeds but the response
// carries no candidate text. Callers treat this as "nothing found"
// rather than a transport failure.
var ErrNoContent = errors.New("gemini: no content in response")

// Config holds client settings.
type Config struct {
	APIKey     string
	BaseURL    string        // defaults to the public v1beta endpoint
	Model      string        // defaults to DefaultModel
	Timeout    time.Duration // applied when the context has no deadline
	MaxRetries int           // retries on 429/transport errors
}

// Client calls the generateContent endpoint with structured-output
// enforcement. Safe for concurrent use.
type Client struct {
	apiKey     string
	baseURL    string
	model      string
	maxRetries int
	httpClient *http.Client
	log        *zap.Logger
}

// NewClient creates a client. A nil logger disables diagnostics.
func NewClient(cfg Config, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = DefaultModel
	}
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	retries := cfg.MaxRetries
	if retries < 0 {
		retries = 0
	}
	return &Client{
		apiKey:     cfg.APIKey,
		baseURL:    baseURL,
		model:      model,
		maxRetries: retries,
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

// Model returns the model the client is configured for.
func (c *Client) Model() string {
	return c.model
}

// GenerateJSON sends a prompt and returns the raw response text, which
// the API is instructed to emit as JSON matching schema. The returned
// bytes are NOT validated here; schema-checked decoding is the
// caller's responsibility.
//
// Fails with ErrNoContent when the call succeeds but produces no text.
func (c *Client) GenerateJSON(ctx context.Context, prompt string, schema map[string]any) ([]byte, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("gemini: API key not configured")
	}

	// Centralized timeout: apply ours only if the caller set no deadline.
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.httpClient.Timeout)
		defer cancel()
	}

	reqBody := generateRequest{
		Contents: []content{
			{Role: "user", Parts: []part{{Text: prompt}}},
		},
		GenerationConfig: &generationConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   schema,
		},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("gemini: marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)

	start := time.Now()
	c.log.Debug("gemini request",
		zap.String("model", c.model),
		zap.Int("prompt_len", len(prompt)))

	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(time.Duration(1<<uint(attempt-1)) * time.Second):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		text, retryable, err := c.doOnce(ctx, url, payload)
		if err == nil {
			c.log.Debug("gemini response",
				zap.Duration("elapsed", time.Since(start)),
				zap.Int("response_len", len(text)))
			return text, nil
		}
		if !retryable {
			c.log.Error("gemini request failed", zap.Error(err))
			return nil, err
		}
		lastErr = err
	}

	c.log.Error("gemini retries exhausted",
		zap.Duration("elapsed", time.Since(start)),
		zap.Error(lastErr))
	return nil, fmt.Errorf("gemini: max retries exceeded: %w", lastErr)
}

// doOnce performs a single HTTP round trip. The second return reports
// whether the failure is worth retrying (rate limit, transport).
func (c *Client) doOnce(ctx context.Context, url string, payload []byte) ([]byte, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, false, fmt.Errorf("gemini: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, false, ctx.Err()
		}
		return nil, true, fmt.Errorf("gemini: request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, true, fmt.Errorf("gemini: read response: %w", err)
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, true, fmt.Errorf("gemini: rate limit exceeded (429)")
	}
	if resp.StatusCode != http.StatusOK {
		return nil, false, fmt.Errorf("gemini: API request failed with status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var parsed generateResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, false, fmt.Errorf("gemini: parse response envelope: %w", err)
	}
	if parsed.Error != nil {
		return nil, false, fmt.Errorf("gemini: API error %d: %s", parsed.Error.Code, parsed.Error.Message)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return nil, false, ErrNoContent
	}

	var sb strings.Builder
	for _, p := range parsed.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	text := strings.TrimSpace(sb.String())
	if text == "" {
		return nil, false, ErrNoContent
	}
	return []byte(text), false, nil
}
