package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"RoutineOK/internal/service"
	"RoutineOK/pkg/response"
)

// GetSessionState 会话状态快照：计数器、当前弹窗、徽章队列、连续阶段
// GET /v1/session/state
func GetSessionState(ctx context.Context, c *app.RequestContext) {
	userID, ok := currentUserID(ctx, c)
	if !ok {
		return
	}

	state, err := service.Session().State(ctx, userID)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}
	response.Success(ctx, c, state)
}

// CloseAttendanceModal 关闭出席确认弹窗，计数落库并走里程碑/徽章分流
// POST /v1/session/modals/attendance/close
func CloseAttendanceModal(ctx context.Context, c *app.RequestContext) {
	userID, ok := currentUserID(ctx, c)
	if !ok {
		return
	}

	data, err := service.Session().CloseAttendanceModal(ctx, userID)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}
	response.Success(ctx, c, data)
}

// CloseStreakModal 关闭连续打卡弹窗，补做徽章检查
// POST /v1/session/modals/streak/close
func CloseStreakModal(ctx context.Context, c *app.RequestContext) {
	userID, ok := currentUserID(ctx, c)
	if !ok {
		return
	}

	data, err := service.Session().CloseStreakModal(ctx, userID)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}
	response.Success(ctx, c, data)
}

// CloseBadgeModal 关闭徽章弹窗，队列非空则展示下一枚
// POST /v1/session/modals/badge/close
func CloseBadgeModal(ctx context.Context, c *app.RequestContext) {
	userID, ok := currentUserID(ctx, c)
	if !ok {
		return
	}

	data, err := service.Session().CloseBadgeModal(ctx, userID)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}
	response.Success(ctx, c, data)
}
