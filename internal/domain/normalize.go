package domain

import (
	"strings"
	"unicode"
)

// NormalizeTopicName prepares a topic name for storage and comparison:
//   - trims leading/trailing whitespace
//   - compresses runs of whitespace (tabs, newlines) into one space
//
// Case and punctuation are preserved, so "Go" and "go" stay distinct topics.
func NormalizeTopicName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(name))
	prevSpace := false
	for _, r := range name {
		if unicode.IsSpace(r) {
			if prevSpace {
				continue
			}
			prevSpace = true
			b.WriteByte(' ')
			continue
		}
		prevSpace = false
		b.WriteRune(r)
	}
	return b.String()
}
