package kv

import (
	"context"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"RoutineOK/storage/redis"
)

// RedisStore 基于 Redis 的 Store 实现，namespace 用于按用户隔离键空间
type RedisStore struct {
	namespace string
}

// NewRedisStore 创建指定命名空间的 Redis KV 存储
func NewRedisStore(namespace string) *RedisStore {
	return &RedisStore{namespace: namespace}
}

func (s *RedisStore) key(k string) string {
	return redis.Key(s.namespace, k)
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, error) {
	val, err := redis.Client().Get(ctx, s.key(key)).Result()
	if err == goredis.Nil {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to get key %s: %w", key, err)
	}
	return val, nil
}

func (s *RedisStore) Set(ctx context.Context, key, value string) error {
	// 计数器是长期状态，不设 TTL
	if err := redis.Client().Set(ctx, s.key(key), value, 0).Err(); err != nil {
		return fmt.Errorf("failed to set key %s: %w", key, err)
	}
	return nil
}

func (s *RedisStore) Remove(ctx context.Context, key string) error {
	return redis.Client().Del(ctx, s.key(key)).Err()
}

// Clear 清空该命名空间下的全部键（注销账号时使用）
func (s *RedisStore) Clear(ctx context.Context) error {
	pattern := redis.Key(s.namespace, "*")
	iter := redis.Client().Scan(ctx, 0, pattern, 0).Iterator()

	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan namespace %s: %w", s.namespace, err)
	}

	if len(keys) == 0 {
		return nil
	}
	return redis.Client().Del(ctx, keys...).Err()
}
