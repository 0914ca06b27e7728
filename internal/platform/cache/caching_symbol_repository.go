// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"schedule_backend/internal/feature/symbollist/domain"
	"schedule_backend/internal/feature/symbollist/domain/entity"
	"schedule_backend/internal/feature/symbollist/usecase"
)

// SymbolStore is the read and write side of the symbol catalogue.
type SymbolStore interface {
	usecase.SymbolRepository
	usecase.SymbolWriter
}

var _ SymbolStore = (*CachingSymbolRepository)(nil)

// CachingSymbolRepository decorates a SymbolStore with Redis caching.
// Entry keys carry the namespace generation (namespace:v<N>:...). A write bumps
// the generation before deleting old entries, so a read that loaded from the
// database before the write can only refill a generation nobody reads anymore.
type CachingSymbolRepository struct {
	inner     SymbolStore
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// NewCachingSymbolRepository decorates a SymbolStore with Redis caching.
// If ttl is 0, each entry lives until the next nightly refresh (see TimeUntilNextRefresh).
// If namespace is empty, it uses "symbols".
func NewCachingSymbolRepository(rdb *redis.Client, ttl time.Duration, inner SymbolStore, namespace string) *CachingSymbolRepository {
	if ttl < 0 {
		ttl = 0
	}
	if namespace == "" {
		namespace = "symbols"
	}
	return &CachingSymbolRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// ListActive returns active symbols, checking cache first then falling back to the database.
func (c *CachingSymbolRepository) ListActive(ctx context.Context) ([]entity.Symbol, error) {
	return getOrLoad(ctx, c, "active", func() ([]entity.Symbol, error) {
		return c.inner.ListActive(ctx)
	})
}

// ListActiveCodes returns the codes of active symbols through the cache.
func (c *CachingSymbolRepository) ListActiveCodes(ctx context.Context) ([]string, error) {
	return getOrLoad(ctx, c, "codes", func() ([]string, error) {
		return c.inner.ListActiveCodes(ctx)
	})
}

// FindByCode returns one active symbol through the cache.
// Misses (domain.ErrSymbolNotFound) are not cached.
func (c *CachingSymbolRepository) FindByCode(ctx context.Context, code string) (*entity.Symbol, error) {
	return getOrLoad(ctx, c, "code:"+safe(code), func() (*entity.Symbol, error) {
		return c.inner.FindByCode(ctx, code)
	})
}

// ReplaceActive writes the catalogue and invalidates the namespace.
// A failed write leaves the cache untouched.
func (c *CachingSymbolRepository) ReplaceActive(ctx context.Context, symbols []entity.Symbol) (int64, error) {
	n, err := c.inner.ReplaceActive(ctx, symbols)
	if err != nil {
		return 0, err
	}
	c.invalidate(ctx)
	return n, nil
}

// getOrLoad reads namespace:v<gen>:suffix from Redis or calls load and stores its result.
// Redis failures are best effort and never fail the read.
func getOrLoad[T any](ctx context.Context, c *CachingSymbolRepository, suffix string, load func() (T, error)) (T, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return load()
	}

	gen, err := c.generation(ctx)
	if err != nil {
		slog.Warn("cache generation read failed", "namespace", c.namespace, "error", err)
		return load()
	}
	key := c.entryKey(gen, suffix)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out T
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	} else if err != nil && !errors.Is(err, redis.Nil) {
		slog.Warn("cache read failed", "key", key, "error", err)
	}

	// 2) Fallback to database
	out, err := load()
	if err != nil {
		if !errors.Is(err, domain.ErrSymbolNotFound) {
			slog.Error("symbol lookup failed", "key", key, "error", err)
		}
		return out, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.expiry()).Err()
	}
	return out, nil
}

// generation returns the current namespace generation ("0" before the first write).
func (c *CachingSymbolRepository) generation(ctx context.Context) (string, error) {
	gen, err := c.rdb.Get(ctx, c.generationKey()).Result()
	if errors.Is(err, redis.Nil) {
		return "0", nil
	}
	return gen, err
}

func (c *CachingSymbolRepository) invalidate(ctx context.Context) {
	if c.rdb == nil {
		return
	}
	if err := c.rdb.Incr(ctx, c.generationKey()).Err(); err != nil {
		slog.Warn("cache generation bump failed", "namespace", c.namespace, "error", err)
	}
	if err := c.deleteByPattern(ctx, c.namespace+":v*"); err != nil {
		slog.Warn("cache invalidation failed", "namespace", c.namespace, "error", err)
	}
}

func (c *CachingSymbolRepository) expiry() time.Duration {
	if c.ttl > 0 {
		return c.ttl
	}
	return TimeUntilNextRefresh()
}

func (c *CachingSymbolRepository) generationKey() string {
	return c.namespace + ":gen"
}

func (c *CachingSymbolRepository) entryKey(gen, suffix string) string {
	return c.namespace + ":v" + gen + ":" + suffix
}

// deleteByPattern deletes all cache keys matching a given pattern using SCAN.
func (c *CachingSymbolRepository) deleteByPattern(ctx context.Context, pattern string) error {
	var cursor uint64
	for {
		keys, cur, err := c.rdb.Scan(ctx, cursor, pattern, 200).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		cursor = cur
		if cursor == 0 {
			break
		}
	}
	return nil
}

// safe escapes characters that are problematic for Redis keys.
// Glob metacharacters are escaped too so a code never widens a SCAN pattern.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	s = strings.ReplaceAll(s, "*", "_")
	s = strings.ReplaceAll(s, "?", "_")
	return s
}
