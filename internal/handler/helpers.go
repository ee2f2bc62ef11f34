package handler

import (
	"context"
	"strconv"

	"github.com/cloudwego/hertz/pkg/app"

	"RoutineOK/internal/middleware"
	pkgerrors "RoutineOK/pkg/errors"
	"RoutineOK/pkg/response"
)

// currentUserID 取当前登录用户 ID，失败时已写好响应
func currentUserID(ctx context.Context, c *app.RequestContext) (int64, bool) {
	id, ok := middleware.GetUserIDInt64(ctx, c)
	if !ok {
		response.Error(ctx, c, pkgerrors.InvalidUserID)
		return 0, false
	}
	return id, true
}

// pathID 解析路径上的数字 ID，失败时已写好响应
func pathID(ctx context.Context, c *app.RequestContext, name string) (int64, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		response.Error(ctx, c, pkgerrors.Definition{
			Code:    "INVALID_REQUEST",
			Message: "Invalid path parameter: " + name,
		})
		return 0, false
	}
	return id, true
}
