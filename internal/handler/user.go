package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"RoutineOK/internal/model/dto"
	"RoutineOK/internal/service"
	"RoutineOK/pkg/response"
)

// GetProfile 我的档案（连续天数同步自持久化计数器）
// GET /v1/users/me
func GetProfile(ctx context.Context, c *app.RequestContext) {
	userID, ok := currentUserID(ctx, c)
	if !ok {
		return
	}

	profile, err := service.User().SyncStreak(ctx, userID)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}
	response.Success(ctx, c, profile)
}

// UpdateProfile 修改档案
// PATCH /v1/users/me
func UpdateProfile(ctx context.Context, c *app.RequestContext) {
	userID, ok := currentUserID(ctx, c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	response.Success(ctx, c, service.User().UpdateProfile(ctx, userID, &req))
}

// GetSettings 用户偏好（暗色模式）
// GET /v1/users/me/settings
func GetSettings(ctx context.Context, c *app.RequestContext) {
	userID, ok := currentUserID(ctx, c)
	if !ok {
		return
	}

	darkMode, err := service.User().DarkMode(ctx, userID)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}
	response.Success(ctx, c, map[string]interface{}{"dark_mode": darkMode})
}

// UpdateSettings 修改用户偏好
// PUT /v1/users/me/settings
func UpdateSettings(ctx context.Context, c *app.RequestContext) {
	userID, ok := currentUserID(ctx, c)
	if !ok {
		return
	}

	var req struct {
		DarkMode bool `json:"dark_mode"`
	}
	if err := c.Bind(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	if err := service.User().SetDarkMode(ctx, userID, req.DarkMode); err != nil {
		response.Error(ctx, c, err)
		return
	}
	response.Success(ctx, c, map[string]interface{}{"dark_mode": req.DarkMode})
}

// DeleteAccount 注销账号，档案与全部持久化状态清空
// DELETE /v1/users/me
func DeleteAccount(ctx context.Context, c *app.RequestContext) {
	userID, ok := currentUserID(ctx, c)
	if !ok {
		return
	}

	if err := service.User().DeleteAccount(ctx, userID); err != nil {
		response.Error(ctx, c, err)
		return
	}
	response.NoContent(ctx, c)
}
