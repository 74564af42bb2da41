package lib

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var redisClient *redis.Client

func GetRedisClient() *redis.Client {
	if redisClient != nil {
		return redisClient
	}
	redisHost := os.Getenv("REDIS_HOST")
	opt, err := redis.ParseURL(redisHost)
	if err != nil {
		log.Printf("[redis] Error parsing connection string: %s\n", err.Error())
		return nil
	}
	rdb := redis.NewClient(opt)
	redisClient = rdb
	return rdb
}

// NewRedisClient Replace redis instance with custom client implementation
func NewRedisClient(c *redis.Client) *redis.Client {
	redisClient = c
	return redisClient
}

// CacheGet reports a hit and decodes into dst. The cache is optional: a
// missing redis connection behaves like a miss.
func CacheGet(ctx context.Context, key string, dst any) bool {
	rd := GetRedisClient()
	if rd == nil {
		return false
	}
	v, err := rd.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return false
	}
	if err != nil {
		log.Printf("[redis] Error reading key %s: %s\n", key, err.Error())
		return false
	}
	return json.Unmarshal(v, dst) == nil
}

func CacheSet(ctx context.Context, key string, v any, ttl time.Duration) {
	rd := GetRedisClient()
	if rd == nil {
		return
	}
	b, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := rd.Set(ctx, key, b, ttl).Err(); err != nil {
		log.Printf("[redis] Error caching key %s: %s\n", key, err.Error())
	}
}

func CacheDel(ctx context.Context, keys ...string) {
	rd := GetRedisClient()
	if rd == nil {
		return
	}
	if err := rd.Del(ctx, keys...).Err(); err != nil {
		log.Printf("[redis] Error dropping keys %v: %s\n", keys, err.Error())
	}
}
