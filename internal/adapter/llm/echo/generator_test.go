package echo

import (
	"context"
	"strings"
	"testing"

	"github.com/heartmarshall/dailydose-backend/internal/provider"
)

func TestGenerator_DropsAntiRepeatSuffix(t *testing.T) {
	t.Parallel()

	out, err := Generator{}.Generate(context.Background(), providerRequest("Give a pro tip in Go.\n\nPlease provide unique content..."))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(out, "(offline) Give a pro tip in Go.") {
		t.Errorf("unexpected output %q", out)
	}
	if strings.Contains(out, "unique content") {
		t.Errorf("suffix should be dropped: %q", out)
	}
}

func TestGenerator_Canceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := (Generator{}).Generate(ctx, providerRequest("x")); err == nil {
		t.Fatal("expected context error")
	}
}

func providerRequest(prompt string) provider.Request {
	return provider.Request{UserPrompt: prompt}
}
