package domain

import "slices"

// MaxHistorySize is the number of fingerprints kept per topic.
const MaxHistorySize = 5

// PushFingerprint returns history with fp moved (or inserted) at the front,
// without duplicates and truncated to MaxHistorySize. The input is not modified.
func PushFingerprint(history []string, fp string) []string {
	out := make([]string, 0, MaxHistorySize)
	out = append(out, fp)
	for _, h := range history {
		if h == fp {
			continue
		}
		if len(out) == MaxHistorySize {
			break
		}
		out = append(out, h)
	}
	return slices.Clip(out)
}
