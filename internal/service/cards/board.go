// Package cards keeps the in-memory set of knowledge cards and fills them
// with generated content.
package cards

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/heartmarshall/dailydose-backend/internal/config"
	"github.com/heartmarshall/dailydose-backend/internal/domain"
	"github.com/heartmarshall/dailydose-backend/internal/prompt"
	"github.com/heartmarshall/dailydose-backend/internal/service/content"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type contentRequester interface {
	RequestContent(ctx context.Context, input content.RequestInput) (*content.Result, error)
}

type topicLister interface {
	ListTopics(ctx context.Context) ([]string, error)
}

type publisher interface {
	Publish(ev domain.CardEvent)
}

// ErrClosed is returned for batches and refreshes requested after Close.
var ErrClosed = errors.New("card board closed")

// Options tune batch generation.
type Options struct {
	MinPerTopic  int
	MaxPerTopic  int
	Concurrency  int
	BatchTimeout time.Duration
}

// OptionsFromConfig extracts Options from the cards configuration.
func OptionsFromConfig(cfg config.CardsConfig) Options {
	return Options{
		MinPerTopic:  cfg.MinPerTopic,
		MaxPerTopic:  cfg.MaxPerTopic,
		Concurrency:  cfg.Concurrency,
		BatchTimeout: cfg.BatchTimeout,
	}
}

func (o Options) withDefaults() Options {
	if o.MinPerTopic < 1 {
		o.MinPerTopic = 2
	}
	if o.MaxPerTopic < o.MinPerTopic {
		o.MaxPerTopic = o.MinPerTopic
	}
	if o.Concurrency < 1 {
		o.Concurrency = 1
	}
	if o.BatchTimeout <= 0 {
		o.BatchTimeout = 5 * time.Minute
	}
	return o
}

// entry is a card plus the attempt that currently owns it. A fill result is
// applied only when its attempt still matches.
type entry struct {
	card    domain.Card
	attempt int
}

// Board holds the current card set. All card mutations happen under mu and
// events are published while it is held, so subscribers observe them in order.
type Board struct {
	content contentRequester
	topics  topicLister
	sampler *prompt.Sampler
	pub     publisher
	opts    Options
	log     *slog.Logger
	now     func() time.Time

	mu      sync.Mutex
	order   []string
	byID    map[string]*entry
	batchID string
	running bool
	closed  bool
	cancel  context.CancelFunc

	// life ends on Close and cancels in-flight refreshes.
	life context.Context
	stop context.CancelFunc

	// wg.Add happens only under mu while !closed.
	wg sync.WaitGroup
}

// NewBoard creates an empty Board. pub may be nil.
func NewBoard(
	log *slog.Logger,
	contentSvc contentRequester,
	topics topicLister,
	sampler *prompt.Sampler,
	pub publisher,
	opts Options,
) *Board {
	life, stop := context.WithCancel(context.Background())
	return &Board{
		life:    life,
		stop:    stop,
		content: contentSvc,
		topics:  topics,
		sampler: sampler,
		pub:     pub,
		opts:    opts.withDefaults(),
		log:     log.With("service", "cards"),
		now:     time.Now,
		byID:    make(map[string]*entry),
	}
}

// List returns a snapshot of the current cards in creation order.
func (b *Board) List() []domain.Card {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.snapshotLocked()
}

// Get returns a snapshot of one card.
func (b *Board) Get(id string) (domain.Card, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	e, ok := b.byID[id]
	if !ok {
		return domain.Card{}, domain.ErrNotFound
	}
	return e.card, nil
}

// Running reports whether a batch is being filled.
func (b *Board) Running() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.running
}

// Close stops background fills and waits for them to return or for ctx to end.
// Later StartBatch, RunBatch and Refresh calls fail with ErrClosed.
func (b *Board) Close(ctx context.Context) error {
	b.mu.Lock()
	b.closed = true
	b.stop()
	if b.cancel != nil {
		b.cancel()
	}
	b.mu.Unlock()

	done := make(chan struct{})
	go func() {
		b.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (b *Board) snapshotLocked() []domain.Card {
	out := make([]domain.Card, 0, len(b.order))
	for _, id := range b.order {
		out = append(out, b.byID[id].card)
	}
	return out
}

func (b *Board) publishLocked(ev domain.CardEvent) {
	if b.pub == nil {
		return
	}
	ev.At = b.now()
	if ev.BatchID == "" {
		ev.BatchID = b.batchID
	}
	b.pub.Publish(ev)
}
