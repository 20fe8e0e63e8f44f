// Package credential stores the provider API key and decides which key a
// generation call uses.
package credential

import (
	"log/slog"

	"github.com/heartmarshall/dailydose-backend/internal/kvstore"
)

// Source names where a resolved API key came from.
type Source string

const (
	SourceNone    Source = "none"
	SourceRequest Source = "request"
	SourceStored  Source = "stored"
	SourceConfig  Source = "config"
)

// Service manages the value stored under kvstore.KeyCredential.
type Service struct {
	store    kvstore.Store
	sealer   *sealer
	fallback string
	log      *slog.Logger
}

// NewService creates a new Credential service. secret enables at-rest
// sealing; fallback is the configured provider key used when nothing is stored.
func NewService(log *slog.Logger, store kvstore.Store, secret, fallback string) (*Service, error) {
	sl, err := newSealer(secret)
	if err != nil {
		return nil, err
	}
	return &Service{
		store:    store,
		sealer:   sl,
		fallback: fallback,
		log:      log.With("service", "credential"),
	}, nil
}
