package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"RoutineOK/config"
	"RoutineOK/internal/model"
	"RoutineOK/internal/model/dto"
	"RoutineOK/internal/queue"
	pkgerrors "RoutineOK/pkg/errors"
	"RoutineOK/pkg/logger"
	"RoutineOK/pkg/snowflake"
)

// ApprovalService 凭证审批管线：提交 → 待审队列 → 通过/驳回
// 通过时「出队 + 例程置完成 + 成员置认证」三处变更对外表现为原子，
// 提交与裁决全部在服务级互斥锁内串行执行
type ApprovalService struct {
	mu sync.Mutex

	// 消息发布钩子，测试时可置 nil 跳过
	publishSubmitted func(msg model.ProofSubmittedMessage)
	publishResolved  func(msg model.ProofResolvedMessage)
}

var (
	approvalService *ApprovalService
	approvalOnce    sync.Once
)

func Approval() *ApprovalService {
	approvalOnce.Do(func() {
		approvalService = &ApprovalService{
			publishSubmitted: func(msg model.ProofSubmittedMessage) {
				_ = queue.PublishProofSubmitted(msg)
			},
			publishResolved: func(msg model.ProofResolvedMessage) {
				_ = queue.PublishProofResolved(msg)
			},
		}
	})

	return approvalService
}

// Submit 提交打卡凭证，入待审队列，此时尚无任何完成副作用
func (s *ApprovalService) Submit(ctx context.Context, userID, groupID int64, req *dto.SubmitProofRequest) (*model.ProofSubmission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, err := routineStore.GetGroup(groupID)
	if err != nil {
		return nil, err
	}

	member := g.FindMember(userID)
	if member == nil {
		return nil, pkgerrors.MemberNotFound
	}

	if g.FindRoutine(req.RoutineID) == nil {
		return nil, pkgerrors.RoutineNotFound
	}

	if limit := config.Cfg.GroupMaxPendProofs; limit > 0 && pendingStore.Len(groupID) >= limit {
		return nil, pkgerrors.ProofQueueFull
	}

	id, err := snowflake.NextID(snowflake.GeneratorTypeProof)
	if err != nil {
		return nil, err
	}

	proof := &model.ProofSubmission{
		ID:        id,
		UserID:    userID,
		Nickname:  member.Nickname,
		Message:   req.Message,
		ImageURL:  req.ImageURL,
		RoutineID: req.RoutineID,
		CreatedAt: time.Now(),
	}
	pendingStore.Submit(groupID, proof)

	logger.Logger.Info("Proof submitted",
		zap.Int64("group_id", groupID),
		zap.Int64("proof_id", proof.ID),
		zap.Int64("routine_id", proof.RoutineID),
		zap.Int64("user_id", userID),
	)

	if s.publishSubmitted != nil {
		// 审批提醒发给提交者以外的组内成员
		recipients := make([]int64, 0, len(g.Members))
		for _, m := range g.Members {
			if m.ID != userID {
				recipients = append(recipients, m.ID)
			}
		}

		s.publishSubmitted(model.ProofSubmittedMessage{
			GroupID:    groupID,
			ProofID:    proof.ID,
			RoutineID:  proof.RoutineID,
			UserID:     userID,
			Nickname:   member.Nickname,
			Recipients: recipients,
		})
	}

	return proof, nil
}

// List 小组待审凭证，按提交顺序
func (s *ApprovalService) List(ctx context.Context, groupID int64) ([]*model.ProofSubmission, error) {
	if _, err := routineStore.GetGroup(groupID); err != nil {
		return nil, err
	}
	return pendingStore.List(groupID), nil
}

// Approve 通过凭证：出队 + 例程置完成 + 成员置认证，三者要么全发生要么全不发生
// 凭证不存在时返回明确的 PROOF_NOT_FOUND 而不是静默忽略
func (s *ApprovalService) Approve(ctx context.Context, groupID, proofID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	proof, ok := pendingStore.Peek(groupID, proofID)
	if !ok {
		return pkgerrors.ProofNotFound
	}

	if err := routineStore.CertifyCompletion(groupID, proof.RoutineID, proof.UserID); err != nil {
		if errors.Is(err, pkgerrors.GroupNotFound) {
			return err
		}

		// 目标例程或成员已不在小组里，该凭证永远无法通过，顺手清掉
		pendingStore.Remove(groupID, proofID)
		logger.Logger.Warn("Proof target gone, removed from pending queue",
			zap.Int64("group_id", groupID),
			zap.Int64("proof_id", proofID),
			zap.Error(err),
		)
		return err
	}

	pendingStore.Remove(groupID, proofID)

	logger.Logger.Info("Proof approved",
		zap.Int64("group_id", groupID),
		zap.Int64("proof_id", proofID),
		zap.Int64("routine_id", proof.RoutineID),
		zap.Int64("user_id", proof.UserID),
	)

	if s.publishResolved != nil {
		s.publishResolved(model.ProofResolvedMessage{
			GroupID:   groupID,
			ProofID:   proofID,
			RoutineID: proof.RoutineID,
			UserID:    proof.UserID,
			Approved:  true,
		})
	}

	return nil
}

// Reject 驳回凭证：仅出队，无其他副作用
func (s *ApprovalService) Reject(ctx context.Context, groupID, proofID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	proof, ok := pendingStore.Remove(groupID, proofID)
	if !ok {
		return pkgerrors.ProofNotFound
	}

	logger.Logger.Info("Proof rejected",
		zap.Int64("group_id", groupID),
		zap.Int64("proof_id", proofID),
		zap.Int64("user_id", proof.UserID),
	)

	if s.publishResolved != nil {
		s.publishResolved(model.ProofResolvedMessage{
			GroupID:   groupID,
			ProofID:   proofID,
			RoutineID: proof.RoutineID,
			UserID:    proof.UserID,
			Approved:  false,
		})
	}

	return nil
}
