package throttle

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"

	"github.com/aclgate/aclgate/core"
)

var tracer = otel.Tracer("throttle")

const (
	loginPrefix   = "acl:login_attempts:"
	requestPrefix = "acl:admin_rate:"
)

// incrWindowScript increments a fixed-window counter and stamps the
// window TTL only when the key is created, so the window does not
// slide on subsequent hits.
var incrWindowScript = redis.NewScript(`
local current = redis.call('INCRBY', KEYS[1], ARGV[1])
if current == tonumber(ARGV[1]) then
    redis.call('EXPIRE', KEYS[1], ARGV[2])
end
return current
`)

// Repository is the counter backend for both limiters. It fails open:
// any redis fault reports zero usage so a cache outage never locks
// subjects out.
type Repository interface {
	IncrWindow(ctx context.Context, key string, window time.Duration) int64
	IncrRefresh(ctx context.Context, key string, window time.Duration) int64
	Count(ctx context.Context, key string) int64
	TTL(ctx context.Context, key string) time.Duration
	Reset(ctx context.Context, key string) error
}

type repository struct {
	rdb *redis.Client
}

// NewRepository creates a new throttle repository
func NewRepository(rdb *redis.Client) Repository {
	return &repository{rdb}
}

func (r *repository) IncrWindow(ctx context.Context, key string, window time.Duration) int64 {
	ctx, span := tracer.Start(ctx, "Throttle.Repository.IncrWindow")
	defer span.End()

	if r.rdb == nil {
		return 0
	}

	count, err := incrWindowScript.Run(ctx, r.rdb, []string{key}, 1, int(window.Seconds())).Int64()
	if err != nil {
		span.RecordError(err)
		slog.WarnContext(ctx, "throttle counter unavailable", slog.String("key", key), slog.String("error", err.Error()))
		return 0
	}

	return count
}

// IncrRefresh increments and re-stamps the TTL on every call, so the
// block window extends while attempts keep coming.
func (r *repository) IncrRefresh(ctx context.Context, key string, window time.Duration) int64 {
	ctx, span := tracer.Start(ctx, "Throttle.Repository.IncrRefresh")
	defer span.End()

	if r.rdb == nil {
		return 0
	}

	pipe := r.rdb.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, window)
	if _, err := pipe.Exec(ctx); err != nil {
		span.RecordError(err)
		slog.WarnContext(ctx, "throttle counter unavailable", slog.String("key", key), slog.String("error", err.Error()))
		return 0
	}

	return incr.Val()
}

func (r *repository) Count(ctx context.Context, key string) int64 {
	ctx, span := tracer.Start(ctx, "Throttle.Repository.Count")
	defer span.End()

	if r.rdb == nil {
		return 0
	}

	count, err := r.rdb.Get(ctx, key).Int64()
	if err != nil {
		if err != redis.Nil {
			span.RecordError(err)
			slog.WarnContext(ctx, "throttle counter unavailable", slog.String("key", key), slog.String("error", err.Error()))
		}
		return 0
	}

	return count
}

func (r *repository) TTL(ctx context.Context, key string) time.Duration {
	ctx, span := tracer.Start(ctx, "Throttle.Repository.TTL")
	defer span.End()

	if r.rdb == nil {
		return 0
	}

	ttl, err := r.rdb.TTL(ctx, key).Result()
	if err != nil || ttl < 0 {
		return 0
	}

	return ttl
}

func (r *repository) Reset(ctx context.Context, key string) error {
	ctx, span := tracer.Start(ctx, "Throttle.Repository.Reset")
	defer span.End()

	if r.rdb == nil {
		return core.NewErrorCacheUnavailable()
	}

	if err := r.rdb.Del(ctx, key).Err(); err != nil {
		span.RecordError(err)
		return err
	}

	return nil
}
