package queue

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"RoutineOK/internal/model"
	"RoutineOK/pkg/logger"
	"RoutineOK/pkg/snowflake"
	"RoutineOK/storage/mq"

	"go.uber.org/zap"
)

// PublishProofSubmitted 发布凭证提交消息，通知小组成员有新的待审项
func PublishProofSubmitted(msg model.ProofSubmittedMessage) error {
	if msg.MessageID == "" {
		id, err := snowflake.NextID(snowflake.GeneratorTypeMessage)
		if err != nil {
			logger.Logger.Error("Failed to generate message ID",
				zap.Int64("group_id", msg.GroupID),
				zap.Error(err),
			)
			return fmt.Errorf("failed to generate message ID: %w", err)
		}
		msg.MessageID = fmt.Sprintf("proof_submitted_%d", id)
	}
	if msg.BatchID == "" {
		msg.BatchID = uuid.New().String()
	}

	err := mq.PublishMessage(
		"routine.topic",
		"routine.proof.submitted",
		msg,
	)

	if err != nil {
		logger.Logger.Error("Failed to publish proof submitted message",
			zap.String("message_id", msg.MessageID),
			zap.Int64("group_id", msg.GroupID),
			zap.Int64("proof_id", msg.ProofID),
			zap.Error(err),
		)
		return err
	}

	logger.Logger.Info("Published proof submitted message",
		zap.String("message_id", msg.MessageID),
		zap.Int64("group_id", msg.GroupID),
		zap.Int64("proof_id", msg.ProofID),
	)

	return nil
}

// PublishProofResolved 发布凭证审批结果消息，通知提交者
func PublishProofResolved(msg model.ProofResolvedMessage) error {
	if msg.MessageID == "" {
		id, err := snowflake.NextID(snowflake.GeneratorTypeMessage)
		if err != nil {
			logger.Logger.Error("Failed to generate message ID",
				zap.Int64("proof_id", msg.ProofID),
				zap.Error(err),
			)
			return fmt.Errorf("failed to generate message ID: %w", err)
		}
		msg.MessageID = fmt.Sprintf("proof_resolved_%d", id)
	}

	err := mq.PublishMessage(
		"routine.topic",
		"routine.proof.resolved",
		msg,
	)

	if err != nil {
		logger.Logger.Error("Failed to publish proof resolved message",
			zap.String("message_id", msg.MessageID),
			zap.Int64("proof_id", msg.ProofID),
			zap.Bool("approved", msg.Approved),
			zap.Error(err),
		)
		return err
	}

	logger.Logger.Info("Published proof resolved message",
		zap.String("message_id", msg.MessageID),
		zap.Int64("proof_id", msg.ProofID),
		zap.Bool("approved", msg.Approved),
	)

	return nil
}

// PublishBadgeAwarded 发布徽章授予消息
func PublishBadgeAwarded(msg model.BadgeAwardedMessage) error {
	if msg.MessageID == "" {
		id, err := snowflake.NextID(snowflake.GeneratorTypeMessage)
		if err != nil {
			logger.Logger.Error("Failed to generate message ID",
				zap.Int64("user_id", msg.UserID),
				zap.Error(err),
			)
			return fmt.Errorf("failed to generate message ID: %w", err)
		}
		msg.MessageID = fmt.Sprintf("badge_awarded_%d", id)
	}

	err := mq.PublishMessage(
		"routine.topic",
		"routine.badge.awarded",
		msg,
	)

	if err != nil {
		logger.Logger.Error("Failed to publish badge awarded message",
			zap.String("message_id", msg.MessageID),
			zap.Int64("user_id", msg.UserID),
			zap.Strings("badges", msg.Badges),
			zap.Error(err),
		)
		return err
	}

	logger.Logger.Info("Published badge awarded message",
		zap.String("message_id", msg.MessageID),
		zap.Int64("user_id", msg.UserID),
		zap.Strings("badges", msg.Badges),
	)

	return nil
}

// PublishStreakMilestoneEvent 发布连续打卡里程碑事件
func PublishStreakMilestoneEvent(userID int64, streakDays int) error {
	event := model.EventMessage{
		EventKey:   "streak.milestone",
		EventType:  "streak_milestone",
		OccurredAt: time.Now().Format(time.RFC3339),
		Payload: map[string]interface{}{
			"user_id":     userID,
			"streak_days": streakDays,
		},
	}

	err := mq.PublishMessage(
		"events.topic",
		"streak.milestone",
		event,
	)

	if err != nil {
		logger.Logger.Error("Failed to publish streak milestone event",
			zap.Int64("user_id", userID),
			zap.Int("streak_days", streakDays),
			zap.Error(err),
		)
		return err
	}

	return nil
}

// PublishMemberJoinedEvent 发布成员入组事件
func PublishMemberJoinedEvent(groupID, userID int64) error {
	event := model.EventMessage{
		EventKey:   "group.member.joined",
		EventType:  "member_joined",
		OccurredAt: time.Now().Format(time.RFC3339),
		Payload: map[string]interface{}{
			"group_id": groupID,
			"user_id":  userID,
		},
	}

	err := mq.PublishMessage(
		"events.topic",
		"group.member.joined",
		event,
	)

	if err != nil {
		logger.Logger.Error("Failed to publish member joined event",
			zap.Int64("group_id", groupID),
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		return err
	}

	return nil
}
