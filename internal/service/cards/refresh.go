package cards

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/dailydose-backend/internal/domain"
)

// Refresh resets a card to Loading and runs a new content request for it.
// It returns the card once that request settles. A refresh supersedes any
// in-flight fill of the same card and does not affect other cards.
func (b *Board) Refresh(ctx context.Context, id string) (domain.Card, error) {
	b.mu.Lock()
	e, ok := b.byID[id]
	if !ok {
		b.mu.Unlock()
		return domain.Card{}, fmt.Errorf("card %s: %w", id, domain.ErrNotFound)
	}
	if b.closed {
		b.mu.Unlock()
		return domain.Card{}, ErrClosed
	}
	e.attempt++
	e.card.Reset(b.now())
	j := job{id: id, attempt: e.attempt, topic: e.card.Topic, category: e.card.PromptCategory}
	card := e.card
	b.publishLocked(domain.CardEvent{Type: domain.CardEventUpdated, Card: &card})
	b.wg.Add(1)
	b.mu.Unlock()

	b.log.InfoContext(ctx, "card refresh",
		slog.String("card_id", id),
		slog.Int("attempt", j.attempt),
	)

	// Leaving the caller does not abandon the card in Loading.
	fillCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), b.opts.BatchTimeout)

	done := make(chan struct{})
	go func() {
		defer b.wg.Done()
		defer close(done)
		defer cancel()
		stop := context.AfterFunc(b.life, cancel)
		defer stop()
		b.fillCard(fillCtx, j)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		return domain.Card{}, ctx.Err()
	}

	return b.Get(id)
}
