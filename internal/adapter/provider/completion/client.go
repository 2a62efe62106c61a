// Package completion is a client for OpenAI-compatible chat-completion APIs.
package completion

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"resty.dev/v3"

	"github.com/heartmarshall/wordforge-backend/internal/domain"
)

// Role tags a chat message.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one role-tagged chat message.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Request is a single non-streamed completion call.
type Request struct {
	Model       string
	Messages    []Message
	Temperature float64
	TopP        *float64
	MaxTokens   int
}

type chatCompletionRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature"`
	TopP        *float64  `json:"top_p,omitempty"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
	Stream      bool      `json:"stream"`
}

type chatCompletionResponse struct {
	ID      string   `json:"id"`
	Model   string   `json:"model"`
	Choices []choice `json:"choices"`
	Usage   usage    `json:"usage"`
}

type choice struct {
	Index        int     `json:"index"`
	Message      Message `json:"message"`
	FinishReason string  `json:"finish_reason"`
}

type usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Client calls the chat-completions endpoint. It never retries: a failed
// call is reported to the caller as domain.ErrUpstream.
type Client struct {
	http *resty.Client
	log  *slog.Logger
}

// NewClient creates a Client for baseURL authenticated with apiKey.
// Every call is bounded by timeout.
func NewClient(baseURL, apiKey string, timeout time.Duration, userAgent string, logger *slog.Logger) *Client {
	c := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetHeader("Authorization", "Bearer "+apiKey).
		SetHeader("Content-Type", "application/json").
		SetHeader("User-Agent", userAgent).
		SetTimeout(timeout)

	return &Client{
		http: c,
		log:  logger.With("adapter", "completion"),
	}
}

// Close releases idle connections.
func (c *Client) Close() error {
	return c.http.Close()
}

// Complete sends req and returns the first choice's message content.
func (c *Client) Complete(ctx context.Context, req Request) (string, error) {
	body := chatCompletionRequest{
		Model:       req.Model,
		Messages:    req.Messages,
		Temperature: req.Temperature,
		TopP:        req.TopP,
		MaxTokens:   req.MaxTokens,
		Stream:      false,
	}

	start := time.Now()
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&chatCompletionResponse{}).
		Post("/chat/completions")
	if err != nil {
		return "", fmt.Errorf("completion: %w: %w", domain.ErrUpstream, err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("completion: %w: status %d: %s", domain.ErrUpstream, resp.StatusCode(), truncate(resp.String(), 512))
	}

	result, ok := resp.Result().(*chatCompletionResponse)
	if !ok || result == nil || len(result.Choices) == 0 {
		return "", fmt.Errorf("completion: %w: no choices in response", domain.ErrUpstream)
	}

	content := strings.TrimSpace(result.Choices[0].Message.Content)
	if content == "" {
		return "", fmt.Errorf("completion: %w: empty content", domain.ErrUpstream)
	}

	c.log.DebugContext(ctx, "completion response",
		slog.String("model", req.Model),
		slog.Int("prompt_tokens", result.Usage.PromptTokens),
		slog.Int("completion_tokens", result.Usage.CompletionTokens),
		slog.String("finish_reason", result.Choices[0].FinishReason),
		slog.Int64("duration_ms", time.Since(start).Milliseconds()),
	)

	return content, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
