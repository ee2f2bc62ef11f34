package storage

import (
	"context"
	"time"

	"go.uber.org/zap"

	"RoutineOK/pkg/logger"
	"RoutineOK/storage/mq"
	"RoutineOK/storage/redis"
)

// Close 优雅关闭所有存储连接
// 先停 MQ（不再接收新消息），再关 Redis，保证计数器写入先落地
func Close() {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logger.Logger.Info("Closing storage connections...")

	if err := mq.Close(ctx); err != nil {
		logger.Logger.Error("Failed to close message queue", zap.Error(err))
	} else {
		logger.Logger.Info("Message queue closed successfully")
	}

	if err := redis.Close(ctx); err != nil {
		logger.Logger.Error("Failed to close Redis connection", zap.Error(err))
	} else {
		logger.Logger.Info("Redis connection closed successfully")
	}

	logger.Logger.Info("All storage connections closed")
}
