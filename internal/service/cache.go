package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/nihatdadaloglu/oda/pkg/logger"
)

const cacheTTL = 5 * time.Minute

// readCache 按命名空间缓存读取结果。
// 缓存键包含命名空间的版本号，写入后递增版本号即可让旧键全部失效；
// 写入前开始的读取即使在失效之后才回填，也只会写到旧版本的键上。
type readCache struct {
	client    *redis.Client
	namespace string
	logger    *logger.Logger
}

func newReadCache(client *redis.Client, namespace string, logger *logger.Logger) *readCache {
	return &readCache{client: client, namespace: namespace, logger: logger}
}

func (c *readCache) generationKey() string {
	return c.namespace + ":gen"
}

// key 返回当前版本下的缓存键。未配置Redis或读取版本号失败时返回空字符串，表示不使用缓存
func (c *readCache) key(ctx context.Context, kind, suffix string) string {
	if c.client == nil {
		return ""
	}
	gen, err := c.client.Get(ctx, c.generationKey()).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		c.logger.Warn("读取缓存版本失败", "namespace", c.namespace, "error", err)
		return ""
	}
	return fmt.Sprintf("%s:%s:%d:%s", c.namespace, kind, gen, suffix)
}

func (c *readCache) get(ctx context.Context, key string, dest interface{}) bool {
	if key == "" {
		return false
	}
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("读取缓存失败", "key", key, "error", err)
		}
		return false
	}
	return json.Unmarshal(data, dest) == nil
}

func (c *readCache) set(ctx context.Context, key string, value interface{}) {
	if key == "" {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, key, data, cacheTTL).Err(); err != nil {
		c.logger.Warn("写入缓存失败", "key", key, "error", err)
	}
}

// invalidate 递增版本号，使该命名空间下已有的缓存全部失效
func (c *readCache) invalidate(ctx context.Context) {
	if c.client == nil {
		return
	}
	if err := c.client.Incr(ctx, c.generationKey()).Err(); err != nil {
		c.logger.Error("更新缓存版本失败", "namespace", c.namespace, "error", err)
	}
}
