// Package anthropic implements provider.Generator on the Anthropic Messages API.
package anthropic

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/heartmarshall/dailydose-backend/internal/config"
	"github.com/heartmarshall/dailydose-backend/internal/provider"
)

const name = "anthropic"

// Client sends one user message per call. SDK retries are disabled; every
// retry is user-initiated.
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
	return &Client{
		baseURL:    cfg.BaseURL,
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

	opts := []option.RequestOption{
		option.WithAPIKey(key),
		option.WithHTTPClient(c.httpClient),
		option.WithMaxRetries(0),
	}
	if c.baseURL != "" {
		opts = append(opts, option.WithBaseURL(c.baseURL))
	}
	client := sdk.NewClient(opts...)

	params := sdk.MessageNewParams{
		Model:     sdk.Model(c.model),
		MaxTokens: int64(req.MaxTokens),
		Messages: []sdk.MessageParam{
			sdk.NewUserMessage(sdk.NewTextBlock(req.UserPrompt)),
		},
		Temperature: sdk.Float(req.Temperature),
	}
	if req.SystemPrompt != "" {
		params.System = []sdk.TextBlockParam{{Text: req.SystemPrompt}}
	}

	msg, err := client.Messages.New(ctx, params)
	if err != nil {
		return "", mapError(err)
	}

	var b strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}
	if strings.TrimSpace(b.String()) == "" {
		return "", fmt.Errorf("%s: no text blocks: %w", name, provider.ErrEmptyResponse)
	}

	c.log.DebugContext(ctx, "message response",
		slog.String("model", string(msg.Model)),
		slog.Int64("output_tokens", msg.Usage.OutputTokens),
	)

	return b.String(), nil
}

func mapError(err error) error {
	var apiErr *sdk.Error
	if errors.As(err, &apiErr) {
		return &provider.Error{
			Provider:   name,
			StatusCode: apiErr.StatusCode,
			Message:    messageFromBody(apiErr.RawJSON()),
			Err:        err,
		}
	}
	return &provider.Error{Provider: name, Err: err}
}

// messageFromBody reads error.message from an Anthropic error payload.
func messageFromBody(raw string) string {
	var payload struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if json.Unmarshal([]byte(raw), &payload) != nil {
		return ""
	}
	return payload.Error.Message
}
