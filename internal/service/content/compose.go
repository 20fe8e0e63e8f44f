package content

import (
	"strings"

	"github.com/heartmarshall/dailydose-backend/internal/prompt"
)

// ComposePrompt renders tmpl for topic and appends the anti-repeat
// instruction when history is non-empty.
func ComposePrompt(tmpl prompt.Template, topic string, history []string) string {
	base := tmpl.Render(topic)
	if len(history) == 0 {
		return base
	}
	return base + AntiRepeatInstruction + strings.Join(history, ", ")
}
