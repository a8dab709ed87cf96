package llm

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"trini/internal/services"
)

const (
	defaultEndpoint    = "https://openrouter.ai/api/v1/chat/completions"
	defaultTimeout     = 15 * time.Second
	defaultTemperature = 0.3
	defaultMaxTokens   = 500
)

// Config describes one chat-completions deployment.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	// Referer and Title are sent as OpenRouter attribution headers.
	Referer string
	Title   string
	Timeout time.Duration

	Temperature float64
	MaxTokens   int
}

// Client sends extraction prompts to an OpenAI-compatible chat endpoint.
type Client struct {
	cfg    Config
	http   *http.Client
	policy retryPolicy
}

// Option customizes the client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.http = client
		}
	}
}

// WithRetries sets the total number of attempts per prompt.
func WithRetries(attempts int) Option {
	return func(c *Client) {
		c.policy.attempts = attempts
	}
}

// WithBackoff sets the first retry delay and the ceiling for later ones.
func WithBackoff(base, ceiling time.Duration) Option {
	return func(c *Client) {
		c.policy.base = base
		c.policy.ceiling = ceiling
	}
}

// WithSleeper replaces the timer used between attempts.
func WithSleeper(sleep func(time.Duration)) Option {
	return func(c *Client) {
		c.policy.sleep = sleep
	}
}

// NewClient builds a client, filling unset fields with OpenRouter defaults.
func NewClient(cfg Config, opts ...Option) *Client {
	cfg.APIKey = strings.TrimSpace(cfg.APIKey)
	cfg.BaseURL = strings.TrimSpace(cfg.BaseURL)
	cfg.Model = strings.TrimSpace(cfg.Model)
	cfg.Referer = strings.TrimSpace(cfg.Referer)
	cfg.Title = strings.TrimSpace(cfg.Title)
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultEndpoint
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.Temperature <= 0 {
		cfg.Temperature = defaultTemperature
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = defaultMaxTokens
	}
	c := &Client{
		cfg:    cfg,
		http:   &http.Client{Timeout: cfg.Timeout},
		policy: defaultRetryPolicy(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GenerateText sends prompt as a single user message and returns the model's
// answer verbatim. Failures carry a services marker: ErrConfiguration for a
// missing key, ErrTimeout for deadline expiry, ErrUpstreamUnavailable
// otherwise.
func (c *Client) GenerateText(ctx context.Context, prompt string) (string, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return "", services.Wrap(services.ErrInput, "extract", "llm generate", "prompt required", nil)
	}
	if c.cfg.APIKey == "" {
		return "", services.Wrap(services.ErrConfiguration, "extract", "llm generate", "api key required", nil)
	}

	body, err := json.Marshal(completionRequest{
		Model:          c.cfg.Model,
		Messages:       []message{{Role: "user", Content: prompt}},
		Temperature:    c.cfg.Temperature,
		MaxTokens:      c.cfg.MaxTokens,
		ResponseFormat: &responseFormat{Type: "json_object"},
	})
	if err != nil {
		return "", services.Wrap(services.ErrInput, "extract", "llm generate", "encode request", err)
	}

	var answer string
	err = c.policy.run(ctx, func() error {
		text, err := c.complete(ctx, body)
		if err != nil {
			return err
		}
		answer = text
		return nil
	})
	if err != nil {
		marker := services.ErrUpstreamUnavailable
		if errors.Is(err, context.DeadlineExceeded) || isTimeout(err) {
			marker = services.ErrTimeout
		}
		return "", services.Wrap(marker, "extract", "llm generate", c.cfg.Model, err)
	}
	return answer, nil
}

// complete performs one round trip and returns the first non-empty answer.
func (c *Client) complete(ctx context.Context, body []byte) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("llm request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")
	if c.cfg.Referer != "" {
		req.Header.Set("HTTP-Referer", c.cfg.Referer)
	}
	if c.cfg.Title != "" {
		req.Header.Set("X-Title", c.cfg.Title)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("llm request (timeout %s): %w", c.http.Timeout, err)
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("llm read body: %w", err)
	}
	if resp.StatusCode >= http.StatusMultipleChoices {
		return "", &statusError{
			Code:       resp.StatusCode,
			Body:       strings.TrimSpace(string(raw)),
			RetryAfter: retryAfter(resp.Header.Get("Retry-After")),
		}
	}

	var decoded completionResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return "", fmt.Errorf("llm decode response: %w", err)
	}
	if decoded.Error != nil {
		return "", fmt.Errorf("llm api error: %s", strings.TrimSpace(decoded.Error.Message))
	}
	text, finish, refusal := decoded.answer()
	if text == "" {
		return "", &emptyAnswerError{
			Choices:      len(decoded.Choices),
			FinishReason: finish,
			Refusal:      refusal,
			Snippet:      snippet(string(raw)),
		}
	}
	return text, nil
}

func isTimeout(err error) bool {
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
