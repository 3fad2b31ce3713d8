package repository

import (
	"context"
	"errors"
	"fmt"
	"roombooking/infras/otel"
	"roombooking/internal/domains/session/model"
	"roombooking/shared"
	"roombooking/shared/cache"
	"roombooking/shared/constant"

	"github.com/rs/zerolog/log"
)

type redisRepository struct {
	cache cache.RedisCache
	key   string
	ttl   int
	otel  otel.Otel
}

// NewRedis stores the session at "session:<key>". A ttl of zero never expires it.
func NewRedis(cache cache.RedisCache, key string, ttl int, otel otel.Otel) Session {
	return &redisRepository{
		cache: cache,
		key:   shared.BuildCacheKey(model.RedisKeyPrefix, key),
		ttl:   ttl,
		otel:  otel,
	}
}

func (r *redisRepository) Load(ctx context.Context) (res model.Session, ok bool, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".session.redis.Load")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = r.cache.Get(ctx, r.key, &res)
	if errors.Is(err, cache.Nil) {
		return model.Session{}, false, nil
	}

	if err != nil {
		log.Error().Err(err).Str("key", r.key).Msg("failed to load session")

		return model.Session{}, false, fmt.Errorf("failed to load session: %w", err)
	}

	return res, res.Valid(), nil
}

func (r *redisRepository) Store(ctx context.Context, sess model.Session) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".session.redis.Store")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = r.cache.Save(ctx, r.key, sess, r.ttl); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}

	return nil
}

func (r *redisRepository) Remove(ctx context.Context) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".session.redis.Remove")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = r.cache.Delete(ctx, r.key); err != nil {
		return fmt.Errorf("failed to remove session: %w", err)
	}

	return nil
}
