package cache

import (
	"context"
	"fmt"
	"time"

	"RoutineOK/storage/redis"
)

const (
	messageProcessedPrefix = "message:processed"
	notifySentPrefix       = "notify:sent"

	processedTTL = 48 * time.Hour
)

// TryMarkMessageProcessing 用 SETNX 原子抢占消息处理权
// true 表示首次处理，false 表示重复消息或正在被其他 worker 处理
func TryMarkMessageProcessing(ctx context.Context, messageID string, ttl time.Duration) (bool, error) {
	key := redis.Key(messageProcessedPrefix, messageID)
	if ttl <= 0 {
		ttl = processedTTL
	}

	result, err := redis.Client().SetNX(ctx, key, "processing", ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to mark message as processing: %w", err)
	}
	return result, nil
}

// UnmarkMessageProcessing 清除处理标记，处理失败时调用以允许重试
func UnmarkMessageProcessing(ctx context.Context, messageID string) error {
	key := redis.Key(messageProcessedPrefix, messageID)
	return redis.Client().Del(ctx, key).Err()
}

// MarkMessageProcessed 标记消息处理成功并延长 TTL
func MarkMessageProcessed(ctx context.Context, messageID string, ttl time.Duration) error {
	key := redis.Key(messageProcessedPrefix, messageID)
	if ttl <= 0 {
		ttl = processedTTL
	}
	return redis.Client().Set(ctx, key, "completed", ttl).Err()
}

// IsNotifySent 某用户当日某类通知是否已发过
func IsNotifySent(ctx context.Context, kind, date string, userID int64) (bool, error) {
	key := redis.Key(notifySentPrefix, kind, date, fmt.Sprintf("%d", userID))
	result, err := redis.Client().Exists(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check notify sent status: %w", err)
	}
	return result > 0, nil
}

// MarkNotifySent 标记当日通知已发
func MarkNotifySent(ctx context.Context, kind, date string, userID int64) error {
	key := redis.Key(notifySentPrefix, kind, date, fmt.Sprintf("%d", userID))
	return redis.Client().Set(ctx, key, "1", 24*time.Hour).Err()
}
