package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"RoutineOK/config"
	"RoutineOK/internal/queue"
	"RoutineOK/pkg/logger"
	"RoutineOK/pkg/snowflake"
	"RoutineOK/storage"
)

// logNotifier 默认通知实现，仅落日志
// 真正的推送通道接入后替换这里
type logNotifier struct{}

func (logNotifier) NotifyUser(ctx context.Context, userID int64, title, body string) error {
	logger.Logger.Info("Notify user",
		zap.Int64("user_id", userID),
		zap.String("title", title),
		zap.String("body", body),
	)
	return nil
}

func main() {
	logger.Init()
	defer logger.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		logger.Logger.Info("Received shutdown signal",
			zap.String("signal", sig.String()),
		)
		cancel()
	}()

	if err := storage.Init(); err != nil {
		logger.Logger.Fatal("Failed to initialize storage", zap.Error(err))
	}
	defer storage.Close()

	if err := snowflake.Init(config.Cfg.SnowflakeMachineID, config.Cfg.SnowflakeDataCenter); err != nil {
		logger.Logger.Fatal("Failed to initialize snowflake", zap.Error(err))
	}

	queue.SetNotifier(logNotifier{})

	logger.Logger.Info("Worker service starting",
		zap.String("service", config.Cfg.ServiceName+"-worker"),
		zap.String("environment", config.Cfg.Environment),
	)

	queue.StartAllConsumers(ctx)

	logger.Logger.Info("Worker service shutting down gracefully")
}
