// Package prompt holds the fixed catalog of instructional prompt templates and
// the random sampler that picks distinct templates for a topic.
package prompt

import (
	"fmt"

	"github.com/heartmarshall/dailydose-backend/internal/domain"
)

// NotFound is returned by LookupCategoryIndex for labels outside the catalog.
const NotFound = -1

// Template renders an instructional prompt for a topic.
type Template struct {
	Category string
	format   string
}

// Render returns the prompt text for topic.
func (t Template) Render(topic string) string {
	return fmt.Sprintf(t.format, topic)
}

var catalog = []Template{
	{"Powerful Concept", "You're a senior mentor. Teach one underrated but powerful concept in %s. Explain it with a real-world analogy."},
	{"Challenging MCQ", "Ask a challenging conceptual MCQ in %s. Give 4 options, the correct answer, and a short explanation."},
	{"Coding Challenge", "Give a coding or logical challenge in %s that takes <5 min. Include what to do and sample output."},
	{"Myth Buster", "Reveal one myth or common mistake in %s. Explain why it's wrong and what to do instead."},
	{"Historical Insight", "Share a bite-sized historical story, origin, or fun fact about %s that deepens understanding."},
	{"What If Scenario", `Create a "what if?" scenario in %s and walk the learner through the outcome.`},
	{"Pro Tip", "Give a pro tip or trick in %s that most beginners miss. Explain clearly."},
	{"Resource Recommendation", "Recommend an excellent learning resource (video, article, or GitHub) for %s. Summarize it briefly."},
	{"Technical Term", "Explain a technical term in %s in simple language. Give examples."},
	{"Mini Quiz", `Pose a mini quiz: "Did you know?" in %s with yes/no or fill-in-the-blank. Then explain the answer.`},
}

// Size is the number of templates in the catalog.
func Size() int { return len(catalog) }

// At returns the template at index i. It panics when i is out of range.
func At(i int) Template { return catalog[i] }

// Categories returns the category labels in catalog order.
func Categories() []string {
	out := make([]string, len(catalog))
	for i, t := range catalog {
		out[i] = t.Category
	}
	return out
}

// LookupCategoryIndex returns the catalog index of label, or NotFound.
// Matching is exact and case-sensitive.
func LookupCategoryIndex(label string) int {
	for i, t := range catalog {
		if t.Category == label {
			return i
		}
	}
	return NotFound
}

// Lookup returns the template for label or an *domain.UnknownPromptTypeError.
func Lookup(label string) (Template, error) {
	i := LookupCategoryIndex(label)
	if i == NotFound {
		return Template{}, &domain.UnknownPromptTypeError{Label: label}
	}
	return catalog[i], nil
}
