package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"roombooking/config"
	"roombooking/infras/otel"
	"roombooking/internal/domains/session/model"
	"roombooking/shared/cache"
)

// Session persists a single serialized session under a fixed key.
type Session interface {
	Load(ctx context.Context) (model.Session, bool, error)
	Store(ctx context.Context, sess model.Session) error
	Remove(ctx context.Context) error
}

// New picks the backend named by SESSION_DRIVER. Unknown drivers fall back to the file store.
func New(cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Session {
	if cfg.Session.Driver == config.SessionDriverRedis {
		return NewRedis(cache, cfg.Session.Key, cfg.Session.TTL, otel)
	}

	return NewFile(cfg.Session.File, cfg.Session.Key, otel)
}
