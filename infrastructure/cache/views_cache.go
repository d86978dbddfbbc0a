package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"clipstream/infrastructure/logger"

	"github.com/redis/go-redis/v9"
)

// IViewsCache caches provider view counts so feed reads do not hit the
// Mux Data API on every request. Misses and errors both report a miss;
// the caller falls through to the provider.
type IViewsCache interface {
	GetViews(ctx context.Context, videoID string) (int64, bool)
	SetViews(ctx context.Context, videoID string, views int64)
}

type ViewsCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisClient(host, port, password string) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", host, port),
		Password: password,
	})
}

func NewViewsCache(client *redis.Client, ttl time.Duration) IViewsCache {
	if ttl == 0 {
		ttl = 10 * time.Minute
	}
	return &ViewsCache{client: client, ttl: ttl}
}

func viewsKey(videoID string) string {
	return "views:" + videoID
}

func (c *ViewsCache) GetViews(ctx context.Context, videoID string) (int64, bool) {
	val, err := c.client.Get(ctx, viewsKey(videoID)).Result()
	if err != nil {
		if err != redis.Nil {
			logger.GetLogger().WithField("error", err).Warn("Views cache read failed")
		}
		return 0, false
	}
	views, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, false
	}
	return views, true
}

func (c *ViewsCache) SetViews(ctx context.Context, videoID string, views int64) {
	if err := c.client.Set(ctx, viewsKey(videoID), views, c.ttl).Err(); err != nil {
		logger.GetLogger().WithField("error", err).Warn("Views cache write failed")
	}
}
