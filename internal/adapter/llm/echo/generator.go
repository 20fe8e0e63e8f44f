// Package echo is an offline provider.Generator that needs no network or key.
// It is meant for local development and demos.
package echo

import (
	"context"
	"fmt"
	"strings"

	"github.com/heartmarshall/dailydose-backend/internal/provider"
)

// Generator answers with a short deterministic card built from the prompt.
type Generator struct{}

var _ provider.Generator = Generator{}

func (Generator) Name() string { return "echo" }

func (Generator) Generate(ctx context.Context, req provider.Request) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	instruction, _, _ := strings.Cut(req.UserPrompt, "\n\n")
	return fmt.Sprintf("(offline) %s\n\nConfigure a generation provider to receive real content.", strings.TrimSpace(instruction)), nil
}
