package domain

import "time"

// Card is one unit of generated content for a (topic, category) pair.
// Cards live only in memory; a new batch replaces the whole set.
type Card struct {
	ID             string    `json:"id"`
	Topic          string    `json:"topic"`
	PromptCategory string    `json:"promptCategory"`
	Content        string    `json:"content"`
	State          CardState `json:"state"`
	Error          string    `json:"error,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// NewLoadingCard returns a placeholder card.
func NewLoadingCard(id, topic, category string, now time.Time) Card {
	return Card{
		ID:             id,
		Topic:          topic,
		PromptCategory: category,
		State:          CardStateLoading,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// Resolve moves the card to Ready with the given content.
func (c *Card) Resolve(content string, now time.Time) {
	c.Content = content
	c.Error = ""
	c.State = CardStateReady
	c.UpdatedAt = now
}

// Fail moves the card to Failed with a client-visible message.
func (c *Card) Fail(message string, now time.Time) {
	c.Content = ""
	c.Error = message
	c.State = CardStateFailed
	c.UpdatedAt = now
}

// Reset puts the card back into Loading and clears previous output.
func (c *Card) Reset(now time.Time) {
	c.Content = ""
	c.Error = ""
	c.State = CardStateLoading
	c.UpdatedAt = now
}

// CardEvent is published whenever the card board changes.
type CardEvent struct {
	Type    CardEventType `json:"type"`
	BatchID string        `json:"batchId,omitempty"`
	Card    *Card         `json:"card,omitempty"`
	Total   int           `json:"total,omitempty"`
	At      time.Time     `json:"at"`
}
