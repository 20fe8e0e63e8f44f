package cards

import (
	"context"
	"errors"
	"log/slog"

	"github.com/heartmarshall/dailydose-backend/internal/domain"
	"github.com/heartmarshall/dailydose-backend/internal/service/content"
)

// fillCard requests content for one card and applies the result if the card
// still belongs to the same attempt.
func (b *Board) fillCard(ctx context.Context, j job) {
	if !b.owns(j) {
		return
	}

	res, err := b.content.RequestContent(ctx, content.RequestInput{
		Topic:          j.topic,
		PromptCategory: j.category,
	})

	b.mu.Lock()
	defer b.mu.Unlock()

	e, ok := b.byID[j.id]
	if !ok || e.attempt != j.attempt {
		b.log.DebugContext(ctx, "discarding stale result", slog.String("card_id", j.id))
		return
	}

	now := b.now()
	if err != nil {
		e.card.Fail(failureMessage(err), now)
		b.log.WarnContext(ctx, "card failed",
			slog.String("card_id", j.id),
			slog.String("topic", j.topic),
			slog.String("category", j.category),
			slog.String("error", err.Error()),
		)
	} else {
		e.card.Resolve(res.Content, now)
	}

	card := e.card
	b.publishLocked(domain.CardEvent{Type: domain.CardEventUpdated, Card: &card})
}

func (b *Board) owns(j job) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	e, ok := b.byID[j.id]
	return ok && e.attempt == j.attempt
}

// failureMessage is the client-visible text stored on a failed card.
func failureMessage(err error) string {
	var gerr *domain.GenerationError
	if errors.As(err, &gerr) {
		return gerr.Message
	}
	var uerr *domain.UnknownPromptTypeError
	if errors.As(err, &uerr) {
		return uerr.Error()
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return "generation timed out"
	}
	return domain.GenerationFallbackMessage
}
