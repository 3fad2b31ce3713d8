package shared

import (
	"context"
	"roombooking/shared/cache"
	"roombooking/shared/constant"
	"strings"

	"github.com/rs/zerolog/log"
)

const cacheKeySeparator = ":"

// BuildCacheKey joins a cache prefix with its non-empty parts, e.g. "room:get:3".
func BuildCacheKey(prefix string, parts ...string) string {
	key := prefix

	for _, part := range parts {
		if part == constant.Empty {
			continue
		}

		key += cacheKeySeparator + part
	}

	return key
}

// InvalidateCaches removes every key under prefix. Failures are logged, not returned.
func InvalidateCaches(ctx context.Context, c cache.RedisCache, prefix string) {
	pattern := prefix
	if !strings.HasSuffix(pattern, constant.Asterix) {
		pattern += constant.Asterix
	}

	if err := c.Clear(ctx, pattern); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate caches")
	}
}

// Bearer renders an authorization header value for scheme and credential.
func Bearer(scheme, credential string) string {
	if scheme == constant.Empty {
		return credential
	}

	return scheme + " " + credential
}
