// Package chat is the shipment assistant: an OpenAI-compatible chat
// client, a context prompt built from the live shipment, and a command
// interpreter that lets the model mutate the form through fenced JSON
// blocks.
package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"tatdocs/internal/core/apperror"
	"tatdocs/pkg/logger"
)

// Message is one turn of the conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Completer abstracts the chat provider so the service can be tested
// against a canned model.
type Completer interface {
	Complete(ctx context.Context, messages []Message) (string, error)
}

// Config holds the chat provider settings. BaseURL accepts any
// OpenAI-compatible endpoint.
type Config struct {
	APIKey    string
	BaseURL   string
	Model     string
	MaxTokens int
	Timeout   time.Duration
}

// DefaultConfig returns the reference provider settings.
func DefaultConfig(apiKey string) Config {
	return Config{
		APIKey:    apiKey,
		BaseURL:   "https://api.openai.com/v1",
		Model:     "gpt-4o-mini",
		MaxTokens: 1000,
		Timeout:   60 * time.Second,
	}
}

// Client talks to an OpenAI-compatible /chat/completions endpoint.
type Client struct {
	cfg        Config
	httpClient *http.Client
}

// NewClient creates a chat client.
func NewClient(cfg Config) *Client {
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

type completionRequest struct {
	Model     string    `json:"model"`
	Messages  []Message `json:"messages"`
	MaxTokens int       `json:"max_tokens,omitempty"`
}

type completionResponse struct {
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Complete sends the conversation and returns the assistant reply.
// Rate-limited and transient failures are retried with exponential
// backoff; everything surfaces as an upstream AppError.
func (c *Client) Complete(ctx context.Context, messages []Message) (string, error) {
	if c.cfg.APIKey == "" {
		return "", apperror.NewUpstream("openai", fmt.Errorf("API key not configured"))
	}

	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.httpClient.Timeout)
		defer cancel()
	}

	reqBody := completionRequest{
		Model:     c.cfg.Model,
		Messages:  messages,
		MaxTokens: c.cfg.MaxTokens,
	}
	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", apperror.NewUpstream("openai", fmt.Errorf("marshal request: %w", err))
	}

	const maxRetries = 3
	var lastErr error

	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(time.Duration(1<<uint(attempt-1)) * time.Second):
			case <-ctx.Done():
				return "", apperror.NewUpstream("openai", ctx.Err())
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost,
			c.cfg.BaseURL+"/chat/completions", bytes.NewReader(jsonData))
		if err != nil {
			return "", apperror.NewUpstream("openai", fmt.Errorf("create request: %w", err))
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("request failed: %w", err)
			continue
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			lastErr = fmt.Errorf("read response: %w", err)
			continue
		}

		if resp.StatusCode == http.StatusTooManyRequests {
			lastErr = fmt.Errorf("rate limit exceeded (429)")
			continue
		}
		if resp.StatusCode >= http.StatusInternalServerError {
			lastErr = fmt.Errorf("provider error %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
			continue
		}
		if resp.StatusCode != http.StatusOK {
			return "", apperror.NewUpstream("openai",
				fmt.Errorf("request failed with status %d: %s", resp.StatusCode, strings.TrimSpace(string(body))))
		}

		var parsed completionResponse
		if err := json.Unmarshal(body, &parsed); err != nil {
			return "", apperror.NewUpstream("openai", fmt.Errorf("parse response: %w", err))
		}
		if parsed.Error != nil {
			return "", apperror.NewUpstream("openai", fmt.Errorf("API error: %s", parsed.Error.Message))
		}
		if len(parsed.Choices) == 0 {
			return "", apperror.NewUpstream("openai", fmt.Errorf("no completion returned"))
		}

		reply := strings.TrimSpace(parsed.Choices[0].Message.Content)
		logger.Debug(ctx, "chat completion received", "model", c.cfg.Model, "reply_len", len(reply))
		return reply, nil
	}

	return "", apperror.NewUpstream("openai", fmt.Errorf("max retries exceeded: %w", lastErr))
}

var _ Completer = (*Client)(nil)
