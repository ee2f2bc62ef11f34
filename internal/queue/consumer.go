package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"RoutineOK/internal/cache"
	"RoutineOK/internal/model"
	"RoutineOK/pkg/errors"
	"RoutineOK/pkg/logger"
	"RoutineOK/storage/mq"
	"RoutineOK/utils"
)

// Notifier 终端通知投递（推送/站内信），在 worker 启动时注入
type Notifier interface {
	NotifyUser(ctx context.Context, userID int64, title, body string) error
}

var notifier Notifier

// SetNotifier 设置通知投递实现
func SetNotifier(n Notifier) {
	notifier = n
}

// StartProofSubmittedConsumer 启动凭证提交消费者
// 小组有新的待审凭证时通知组内其他成员
func StartProofSubmittedConsumer(ctx context.Context) error {
	handler := func(body []byte) error {
		var msg model.ProofSubmittedMessage
		if err := json.Unmarshal(body, &msg); err != nil {
			return fmt.Errorf("failed to unmarshal proof submitted message: %w", err)
		}

		processed, err := cache.TryMarkMessageProcessing(ctx, msg.MessageID, 24*time.Hour)
		if err != nil {
			logger.Logger.Warn("Failed to check message processed status",
				zap.String("message_id", msg.MessageID),
				zap.Error(err),
			)
			// 检查失败时继续处理，宁可重复不可丢
		} else if !processed {
			logger.Logger.Info("Message already processed or being processed, skipping",
				zap.String("message_id", msg.MessageID),
				zap.Int64("proof_id", msg.ProofID),
			)
			return &errors.SkipMessageError{Reason: fmt.Sprintf("Message %s already processed", msg.MessageID)}
		}

		logger.Logger.Info("Processing proof submitted notification",
			zap.String("message_id", msg.MessageID),
			zap.Int64("group_id", msg.GroupID),
			zap.Int64("proof_id", msg.ProofID),
			zap.Int64("user_id", msg.UserID),
		)

		if notifier != nil {
			title := "새로운 인증 요청"
			text := fmt.Sprintf("%s님이 루틴 인증을 요청했어요", msg.Nickname)
			for _, memberID := range msg.Recipients {
				if err := notifier.NotifyUser(ctx, memberID, title, text); err != nil {
					cache.UnmarkMessageProcessing(ctx, msg.MessageID)
					return fmt.Errorf("failed to deliver proof submitted notification: %w", err)
				}
			}
		}

		if err := cache.MarkMessageProcessed(ctx, msg.MessageID, 48*time.Hour); err != nil {
			logger.Logger.Warn("Failed to mark message as processed",
				zap.String("message_id", msg.MessageID),
				zap.Error(err),
			)
		}

		return nil
	}

	return mq.Consume(mq.ConsumeOptions{
		Queue:         "routine.proof.submitted",
		ConsumerTag:   "proof_submitted_consumer",
		PrefetchCount: 10,
		Handler:       handler,
	})
}

// StartProofResolvedConsumer 启动凭证审批结果消费者，通知提交者
func StartProofResolvedConsumer(ctx context.Context) error {
	handler := func(body []byte) error {
		var msg model.ProofResolvedMessage
		if err := json.Unmarshal(body, &msg); err != nil {
			return fmt.Errorf("failed to unmarshal proof resolved message: %w", err)
		}

		processed, err := cache.TryMarkMessageProcessing(ctx, msg.MessageID, 24*time.Hour)
		if err != nil {
			logger.Logger.Warn("Failed to check message processed status",
				zap.String("message_id", msg.MessageID),
				zap.Error(err),
			)
		} else if !processed {
			logger.Logger.Info("Message already processed or being processed, skipping",
				zap.String("message_id", msg.MessageID),
				zap.Int64("proof_id", msg.ProofID),
			)
			return &errors.SkipMessageError{Reason: fmt.Sprintf("Message %s already processed", msg.MessageID)}
		}

		logger.Logger.Info("Processing proof resolved notification",
			zap.String("message_id", msg.MessageID),
			zap.Int64("proof_id", msg.ProofID),
			zap.Int64("user_id", msg.UserID),
			zap.Bool("approved", msg.Approved),
		)

		// 同一用户同一天同类结果只推一次
		day := utils.Today()
		kind := "proof_rejected"
		text := "제출한 인증이 반려되었어요"
		if msg.Approved {
			kind = "proof_approved"
			text = "제출한 인증이 승인되었어요"
		}

		sent, err := cache.IsNotifySent(ctx, kind, day, msg.UserID)
		if err != nil {
			logger.Logger.Warn("Failed to check notify sent status",
				zap.String("message_id", msg.MessageID),
				zap.Error(err),
			)
		}

		if notifier != nil && !sent {
			if err := notifier.NotifyUser(ctx, msg.UserID, "인증 결과", text); err != nil {
				cache.UnmarkMessageProcessing(ctx, msg.MessageID)
				return fmt.Errorf("failed to deliver proof resolved notification: %w", err)
			}
			if err := cache.MarkNotifySent(ctx, kind, day, msg.UserID); err != nil {
				logger.Logger.Warn("Failed to mark notify sent",
					zap.String("message_id", msg.MessageID),
					zap.Error(err),
				)
			}
		}

		if err := cache.MarkMessageProcessed(ctx, msg.MessageID, 48*time.Hour); err != nil {
			logger.Logger.Warn("Failed to mark message as processed",
				zap.String("message_id", msg.MessageID),
				zap.Error(err),
			)
		}

		return nil
	}

	return mq.Consume(mq.ConsumeOptions{
		Queue:         "routine.proof.resolved",
		ConsumerTag:   "proof_resolved_consumer",
		PrefetchCount: 10,
		Handler:       handler,
	})
}

// StartBadgeAwardedConsumer 启动徽章授予消费者
func StartBadgeAwardedConsumer(ctx context.Context) error {
	handler := func(body []byte) error {
		var msg model.BadgeAwardedMessage
		if err := json.Unmarshal(body, &msg); err != nil {
			return fmt.Errorf("failed to unmarshal badge awarded message: %w", err)
		}

		processed, err := cache.TryMarkMessageProcessing(ctx, msg.MessageID, 24*time.Hour)
		if err != nil {
			logger.Logger.Warn("Failed to check message processed status",
				zap.String("message_id", msg.MessageID),
				zap.Error(err),
			)
		} else if !processed {
			logger.Logger.Info("Message already processed or being processed, skipping",
				zap.String("message_id", msg.MessageID),
				zap.Int64("user_id", msg.UserID),
			)
			return &errors.SkipMessageError{Reason: fmt.Sprintf("Message %s already processed", msg.MessageID)}
		}

		logger.Logger.Info("Processing badge awarded notification",
			zap.String("message_id", msg.MessageID),
			zap.Int64("user_id", msg.UserID),
			zap.Strings("badges", msg.Badges),
		)

		if notifier != nil {
			for _, name := range msg.Badges {
				badge, ok := model.BadgeCatalog[name]
				if !ok {
					logger.Logger.Warn("Unknown badge in message, skipping",
						zap.String("message_id", msg.MessageID),
						zap.String("badge", name),
					)
					continue
				}

				text := fmt.Sprintf("%s %s 배지를 획득했어요!", badge.Icon, badge.Title)
				if err := notifier.NotifyUser(ctx, msg.UserID, "새로운 배지", text); err != nil {
					cache.UnmarkMessageProcessing(ctx, msg.MessageID)
					return fmt.Errorf("failed to deliver badge notification: %w", err)
				}
			}
		}

		if err := cache.MarkMessageProcessed(ctx, msg.MessageID, 48*time.Hour); err != nil {
			logger.Logger.Warn("Failed to mark message as processed",
				zap.String("message_id", msg.MessageID),
				zap.Error(err),
			)
		}

		return nil
	}

	return mq.Consume(mq.ConsumeOptions{
		Queue:         "routine.badge.awarded",
		ConsumerTag:   "badge_awarded_consumer",
		PrefetchCount: 10,
		Handler:       handler,
	})
}

// StartAllConsumers 启动全部消费者并阻塞至退出
func StartAllConsumers(ctx context.Context) {
	var wg sync.WaitGroup

	consumers := []struct {
		name     string
		consumer func(context.Context) error
	}{
		{"proof_submitted", StartProofSubmittedConsumer},
		{"proof_resolved", StartProofResolvedConsumer},
		{"badge_awarded", StartBadgeAwardedConsumer},
	}

	for _, c := range consumers {
		wg.Add(1)
		go func(name string, consumer func(context.Context) error) {
			defer wg.Done()

			logger.Logger.Info("Starting consumer",
				zap.String("consumer_name", name),
			)

			if err := consumer(ctx); err != nil {
				logger.Logger.Error("Consumer exited with error",
					zap.String("consumer_name", name),
					zap.Error(err),
				)
			}
		}(c.name, c.consumer)
	}

	wg.Wait()
}
