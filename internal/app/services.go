package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/dailydose-backend/internal/config"
	"github.com/heartmarshall/dailydose-backend/internal/kvstore"
	"github.com/heartmarshall/dailydose-backend/internal/prompt"
	"github.com/heartmarshall/dailydose-backend/internal/service/cards"
	"github.com/heartmarshall/dailydose-backend/internal/service/content"
	"github.com/heartmarshall/dailydose-backend/internal/service/credential"
	"github.com/heartmarshall/dailydose-backend/internal/service/history"
	"github.com/heartmarshall/dailydose-backend/internal/service/streak"
	"github.com/heartmarshall/dailydose-backend/internal/service/topic"
	"github.com/heartmarshall/dailydose-backend/internal/transport/ws"
)

// Services holds the wired application graph shared by the server and the
// command-line tools.
type Services struct {
	Store      kvstore.Store
	Topics     *topic.Service
	History    *history.Service
	Streak     *streak.Service
	Credential *credential.Service
	Content    *content.Service
	Board      *cards.Board
	Hub        *ws.Hub
}

// Build opens the store and wires every service on top of it.
// The caller must Close the result.
func Build(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Services, error) {
	store, err := OpenStore(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	gen, err := NewGenerator(cfg.Generator, logger)
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	credSvc, err := credential.NewService(logger, store, cfg.Credential.Secret, cfg.Generator.APIKey)
	if err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("credential service: %w", err)
	}

	topicSvc := topic.NewService(logger, store)
	historySvc := history.NewService(logger, store)
	contentSvc := content.NewService(logger, gen, historySvc, credSvc, content.SettingsFromConfig(cfg.Generator))
	hub := ws.NewHub(logger, ws.DefaultBuffer)
	sampler := prompt.NewSampler(prompt.NewRand(cfg.Cards.Seed))

	return &Services{
		Store:      store,
		Topics:     topicSvc,
		History:    historySvc,
		Streak:     streak.NewService(logger, store, cfg.Streak.Location),
		Credential: credSvc,
		Content:    contentSvc,
		Board:      cards.NewBoard(logger, contentSvc, topicSvc, sampler, hub, cards.OptionsFromConfig(cfg.Cards)),
		Hub:        hub,
	}, nil
}

// Close stops background card generation, disconnects stream clients and
// closes the store.
func (s *Services) Close(ctx context.Context) error {
	var errs []error
	if err := s.Board.Close(ctx); err != nil {
		errs = append(errs, fmt.Errorf("close board: %w", err))
	}
	s.Hub.Close()
	if err := s.Store.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close store: %w", err))
	}
	return errors.Join(errs...)
}
