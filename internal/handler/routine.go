package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"RoutineOK/internal/model/dto"
	"RoutineOK/internal/service"
	"RoutineOK/pkg/response"
)

// ListRoutines 例程列表（个人 + 所在小组共享例程）
// GET /v1/routines
func ListRoutines(ctx context.Context, c *app.RequestContext) {
	userID, ok := currentUserID(ctx, c)
	if !ok {
		return
	}

	data, err := service.Routine().List(ctx, userID)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}
	response.Success(ctx, c, data)
}

// CreateRoutine 创建个人例程
// POST /v1/routines
func CreateRoutine(ctx context.Context, c *app.RequestContext) {
	userID, ok := currentUserID(ctx, c)
	if !ok {
		return
	}

	var req dto.CreateRoutineRequest
	if err := c.Bind(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	routine, err := service.Routine().Create(ctx, userID, &req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}
	response.Success(ctx, c, routine)
}

// GetRoutine 例程详情
// GET /v1/routines/:routine_id
func GetRoutine(ctx context.Context, c *app.RequestContext) {
	userID, ok := currentUserID(ctx, c)
	if !ok {
		return
	}
	routineID, ok := pathID(ctx, c, "routine_id")
	if !ok {
		return
	}

	routine, err := service.Routine().Get(ctx, userID, routineID)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}
	response.Success(ctx, c, routine)
}

// UpdateRoutine 整体替换例程
// PUT /v1/routines/:routine_id
func UpdateRoutine(ctx context.Context, c *app.RequestContext) {
	userID, ok := currentUserID(ctx, c)
	if !ok {
		return
	}
	routineID, ok := pathID(ctx, c, "routine_id")
	if !ok {
		return
	}

	var req dto.UpdateRoutineRequest
	if err := c.Bind(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	routine, err := service.Routine().Update(ctx, userID, routineID, &req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}
	response.Success(ctx, c, routine)
}

// DeleteRoutine 删除例程
// DELETE /v1/routines/:routine_id
func DeleteRoutine(ctx context.Context, c *app.RequestContext) {
	userID, ok := currentUserID(ctx, c)
	if !ok {
		return
	}
	routineID, ok := pathID(ctx, c, "routine_id")
	if !ok {
		return
	}

	if err := service.Routine().Delete(ctx, userID, routineID); err != nil {
		response.Error(ctx, c, err)
		return
	}
	response.NoContent(ctx, c)
}

// ToggleRoutine 切换完成状态，推进出席/徽章状态机
// POST /v1/routines/:routine_id/toggle
func ToggleRoutine(ctx context.Context, c *app.RequestContext) {
	userID, ok := currentUserID(ctx, c)
	if !ok {
		return
	}
	routineID, ok := pathID(ctx, c, "routine_id")
	if !ok {
		return
	}

	result, err := service.Routine().Toggle(ctx, userID, routineID)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}
	response.Success(ctx, c, result)
}

// ListRecommendedRoutines 推荐例程目录
// GET /v1/routines/recommended
func ListRecommendedRoutines(ctx context.Context, c *app.RequestContext) {
	response.Success(ctx, c, service.Routine().ListRecommended(ctx))
}
