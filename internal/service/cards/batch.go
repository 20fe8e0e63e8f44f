package cards

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/dailydose-backend/internal/domain"
)

// Batch is a snapshot of a card set.
type Batch struct {
	ID    string
	Cards []domain.Card
}

type job struct {
	id       string
	attempt  int
	topic    string
	category string
}

// StartBatch replaces the card set with Loading placeholders for every stored
// topic and fills them in the background. The returned snapshot holds only
// placeholders. ErrConflict is returned while another batch is running.
func (b *Board) StartBatch(ctx context.Context) (*Batch, error) {
	batch, jobs, err := b.begin(ctx)
	if err != nil {
		return nil, err
	}

	fillCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), b.opts.BatchTimeout)
	b.mu.Lock()
	if b.closed {
		b.running = false
		b.mu.Unlock()
		cancel()
		return nil, ErrClosed
	}
	b.cancel = cancel
	b.wg.Add(1)
	b.mu.Unlock()

	go func() {
		defer b.wg.Done()
		defer cancel()
		b.fill(fillCtx, batch.ID, jobs)
	}()

	return batch, nil
}

// RunBatch is StartBatch that returns once every card has settled.
func (b *Board) RunBatch(ctx context.Context) (*Batch, error) {
	batch, jobs, err := b.begin(ctx)
	if err != nil {
		return nil, err
	}

	fillCtx, cancel := context.WithTimeout(ctx, b.opts.BatchTimeout)
	defer cancel()
	b.mu.Lock()
	if b.closed {
		cancel()
	}
	b.cancel = cancel
	b.mu.Unlock()

	b.fill(fillCtx, batch.ID, jobs)

	return &Batch{ID: batch.ID, Cards: b.List()}, nil
}

// begin plans the batch and publishes all placeholders before any fill starts.
func (b *Board) begin(ctx context.Context) (*Batch, []job, error) {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil, nil, ErrClosed
	}
	if b.running {
		b.mu.Unlock()
		return nil, nil, fmt.Errorf("batch %s in progress: %w", b.batchID, domain.ErrConflict)
	}
	b.running = true
	b.mu.Unlock()

	topics, err := b.topics.ListTopics(ctx)
	if err != nil {
		b.mu.Lock()
		b.running = false
		b.mu.Unlock()
		return nil, nil, fmt.Errorf("start batch: %w", err)
	}

	now := b.now()
	batchID := uuid.NewString()
	var cards []domain.Card
	for _, topic := range topics {
		n := b.sampler.IntBetween(b.opts.MinPerTopic, b.opts.MaxPerTopic)
		for _, sel := range b.sampler.Select(topic, n) {
			cards = append(cards, domain.NewLoadingCard(uuid.NewString(), topic, sel.Category, now))
		}
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.batchID = batchID
	b.order = make([]string, 0, len(cards))
	b.byID = make(map[string]*entry, len(cards))
	jobs := make([]job, 0, len(cards))
	for _, c := range cards {
		b.order = append(b.order, c.ID)
		b.byID[c.ID] = &entry{card: c}
		jobs = append(jobs, job{id: c.ID, topic: c.Topic, category: c.PromptCategory})
	}

	b.publishLocked(domain.CardEvent{Type: domain.CardEventBatchStarted, Total: len(cards)})
	for _, c := range cards {
		b.publishLocked(domain.CardEvent{Type: domain.CardEventCreated, Card: &c})
	}

	b.log.InfoContext(ctx, "batch started",
		slog.String("batch_id", batchID),
		slog.Int("topics", len(topics)),
		slog.Int("cards", len(cards)),
	)

	return &Batch{ID: batchID, Cards: b.snapshotLocked()}, jobs, nil
}

func (b *Board) fill(ctx context.Context, batchID string, jobs []job) {
	start := time.Now()

	var g errgroup.Group
	g.SetLimit(b.opts.Concurrency)
	for _, j := range jobs {
		g.Go(func() error {
			b.fillCard(ctx, j)
			return nil
		})
	}
	_ = g.Wait()

	b.mu.Lock()
	defer b.mu.Unlock()

	b.running = false
	b.cancel = nil

	var ready, failed int
	for _, e := range b.byID {
		switch e.card.State {
		case domain.CardStateReady:
			ready++
		case domain.CardStateFailed:
			failed++
		}
	}
	b.publishLocked(domain.CardEvent{Type: domain.CardEventBatchCompleted, BatchID: batchID, Total: len(jobs)})

	b.log.InfoContext(ctx, "batch completed",
		slog.String("batch_id", batchID),
		slog.Int("ready", ready),
		slog.Int("failed", failed),
		slog.Duration("duration", time.Since(start)),
	)
}
