package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"RoutineOK/internal/model/dto"
	"RoutineOK/internal/service"
	"RoutineOK/pkg/response"
)

// SubmitProof 提交打卡凭证
// POST /v1/groups/:group_id/proofs
func SubmitProof(ctx context.Context, c *app.RequestContext) {
	userID, ok := currentUserID(ctx, c)
	if !ok {
		return
	}
	groupID, ok := pathID(ctx, c, "group_id")
	if !ok {
		return
	}

	var req dto.SubmitProofRequest
	if err := c.Bind(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	proof, err := service.Approval().Submit(ctx, userID, groupID, &req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}
	response.Success(ctx, c, proof)
}

// ListProofs 小组待审凭证
// GET /v1/groups/:group_id/proofs
func ListProofs(ctx context.Context, c *app.RequestContext) {
	groupID, ok := pathID(ctx, c, "group_id")
	if !ok {
		return
	}

	proofs, err := service.Approval().List(ctx, groupID)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}
	response.Success(ctx, c, proofs)
}

// ApproveProof 通过凭证：出队 + 例程完成 + 成员认证
// POST /v1/groups/:group_id/proofs/:proof_id/approve
func ApproveProof(ctx context.Context, c *app.RequestContext) {
	groupID, ok := pathID(ctx, c, "group_id")
	if !ok {
		return
	}
	proofID, ok := pathID(ctx, c, "proof_id")
	if !ok {
		return
	}

	if err := service.Approval().Approve(ctx, groupID, proofID); err != nil {
		response.Error(ctx, c, err)
		return
	}
	response.Success(ctx, c, map[string]interface{}{"approved": true})
}

// RejectProof 驳回凭证：仅出队
// POST /v1/groups/:group_id/proofs/:proof_id/reject
func RejectProof(ctx context.Context, c *app.RequestContext) {
	groupID, ok := pathID(ctx, c, "group_id")
	if !ok {
		return
	}
	proofID, ok := pathID(ctx, c, "proof_id")
	if !ok {
		return
	}

	if err := service.Approval().Reject(ctx, groupID, proofID); err != nil {
		response.Error(ctx, c, err)
		return
	}
	response.Success(ctx, c, map[string]interface{}{"rejected": true})
}
