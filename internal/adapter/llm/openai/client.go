// Package openai implements provider.Generator for OpenAI-compatible chat
// completion APIs (OpenAI, DeepSeek, OpenRouter and similar).
package openai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	goopenai "github.com/sashabaranov/go-openai"

	"github.com/heartmarshall/dailydose-backend/internal/config"
	"github.com/heartmarshall/dailydose-backend/internal/provider"
)

const name = "openai"

// DeepSeekBaseURL is used when no base URL is configured.
const DeepSeekBaseURL = "https://api.deepseek.com/v1"

// Client calls /chat/completions. A go-openai client is built per call
// because the API key may differ between requests.
type Client struct {
	baseURL    string
	model      string
	apiKey     string
	httpClient *http.Client
	log        *slog.Logger
}

var _ provider.Generator = (*Client)(nil)

// New creates a Client from configuration.
func New(cfg config.GeneratorConfig, logger *slog.Logger) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DeepSeekBaseURL
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		model:      cfg.Model,
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        logger.With("adapter", name),
	}
}

func (c *Client) Name() string { return name }

func (c *Client) Generate(ctx context.Context, req provider.Request) (string, error) {
	key := req.APIKey
	if key == "" {
		key = c.apiKey
	}
	if key == "" {
		return "", &provider.Error{
			Provider:   name,
			StatusCode: http.StatusUnauthorized,
			Message:    provider.ErrMissingAPIKey.Error(),
			Err:        provider.ErrMissingAPIKey,
		}
	}

	ocfg := goopenai.DefaultConfig(key)
	ocfg.BaseURL = c.baseURL
	ocfg.HTTPClient = c.httpClient
	client := goopenai.NewClientWithConfig(ocfg)

	c.log.DebugContext(ctx, "chat completion request",
		slog.String("model", c.model),
		slog.Int("prompt_len", len(req.UserPrompt)),
	)

	resp, err := client.CreateChatCompletion(ctx, goopenai.ChatCompletionRequest{
		Model: c.model,
		Messages: []goopenai.ChatCompletionMessage{
			{Role: goopenai.ChatMessageRoleSystem, Content: req.SystemPrompt},
			{Role: goopenai.ChatMessageRoleUser, Content: req.UserPrompt},
		},
		Temperature: float32(req.Temperature),
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return "", mapError(err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%s: no choices: %w", name, provider.ErrEmptyResponse)
	}
	content := resp.Choices[0].Message.Content
	if strings.TrimSpace(content) == "" {
		return "", fmt.Errorf("%s: empty message: %w", name, provider.ErrEmptyResponse)
	}

	c.log.DebugContext(ctx, "chat completion response",
		slog.String("model", resp.Model),
		slog.Int("completion_tokens", resp.Usage.CompletionTokens),
	)

	return content, nil
}

func mapError(err error) error {
	var apiErr *goopenai.APIError
	if errors.As(err, &apiErr) {
		return &provider.Error{Provider: name, StatusCode: apiErr.HTTPStatusCode, Message: apiErr.Message, Err: err}
	}

	var reqErr *goopenai.RequestError
	if errors.As(err, &reqErr) {
		return &provider.Error{Provider: name, StatusCode: reqErr.HTTPStatusCode, Message: messageFromBody(reqErr.Body), Err: err}
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
		return fmt.Errorf("%s: decode response: %w: %w", name, provider.ErrEmptyResponse, err)
	}

	return &provider.Error{Provider: name, Err: err}
}

// messageFromBody extracts error.message (or a top-level message) from a raw
// error payload the SDK could not decode itself.
func messageFromBody(body []byte) string {
	var payload struct {
		Error   json.RawMessage `json:"error"`
		Message string          `json:"message"`
	}
	if json.Unmarshal(body, &payload) != nil {
		return ""
	}
	var nested struct {
		Message string `json:"message"`
	}
	if len(payload.Error) > 0 && json.Unmarshal(payload.Error, &nested) == nil && nested.Message != "" {
		return nested.Message
	}
	var flat string
	if len(payload.Error) > 0 && json.Unmarshal(payload.Error, &flat) == nil && flat != "" {
		return flat
	}
	return payload.Message
}
