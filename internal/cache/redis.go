package cache

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/segmento-labs/pulse-web/internal/models"
)

type redisCache struct {
	rdb    *redis.Client
	prefix string
}

// NewRedis создаёт Redis-кэш из URL (например, redis://:pass@host:6379/0).
// Если prefix пустой — используется "pulse:stats:".
func NewRedis(redisURL, prefix string) (StatsCache, error) {
	if prefix == "" {
		prefix = "pulse:stats:"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	rdb := redis.NewClient(opt)

	// Fail-fast на старте.
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}

	return &redisCache{rdb: rdb, prefix: prefix}, nil
}

func (c *redisCache) key(id string) string { return c.prefix + id }

// Храним как Redis Hash с полями: v (views), l (likes), d (dislikes).
func (c *redisCache) Get(ctx context.Context, id string) (models.ArticleStats, bool, error) {
	m, err := c.rdb.HGetAll(ctx, c.key(id)).Result()
	if err != nil {
		return models.ArticleStats{}, false, err
	}

	if len(m) == 0 {
		return models.ArticleStats{}, false, nil
	}

	views, err := strconv.ParseInt(m["v"], 10, 64)
	if err != nil {
		return models.ArticleStats{}, false, err
	}

	likes, err := strconv.ParseInt(m["l"], 10, 64)
	if err != nil {
		return models.ArticleStats{}, false, err
	}

	dislikes, err := strconv.ParseInt(m["d"], 10, 64)
	if err != nil {
		return models.ArticleStats{}, false, err
	}

	return models.ArticleStats{
		ViewCount:    views,
		LikeCount:    likes,
		DislikeCount: dislikes,
	}, true, nil
}

func (c *redisCache) Set(ctx context.Context, id string, stats models.ArticleStats, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}

	kv := map[string]string{
		"v": strconv.FormatInt(stats.ViewCount, 10),
		"l": strconv.FormatInt(stats.LikeCount, 10),
		"d": strconv.FormatInt(stats.DislikeCount, 10),
	}

	pipe := c.rdb.TxPipeline()
	pipe.HSet(ctx, c.key(id), kv)
	pipe.Expire(ctx, c.key(id), ttl)

	_, err := pipe.Exec(ctx)
	return err
}

func (c *redisCache) Invalidate(ctx context.Context, id string) error {
	return c.rdb.Del(ctx, c.key(id)).Err()
}

func (c *redisCache) Close() error { return c.rdb.Close() }
