package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"RoutineOK/internal/model/dto"
	"RoutineOK/internal/service"
	"RoutineOK/pkg/response"
)

// ListGroups 全部小组
// GET /v1/groups
func ListGroups(ctx context.Context, c *app.RequestContext) {
	response.Success(ctx, c, service.Group().List(ctx))
}

// ListJoinedGroups 我加入的小组
// GET /v1/groups/joined
func ListJoinedGroups(ctx context.Context, c *app.RequestContext) {
	userID, ok := currentUserID(ctx, c)
	if !ok {
		return
	}
	response.Success(ctx, c, service.Group().Joined(ctx, userID))
}

// CreateGroup 创建小组
// POST /v1/groups
func CreateGroup(ctx context.Context, c *app.RequestContext) {
	userID, ok := currentUserID(ctx, c)
	if !ok {
		return
	}

	var req dto.CreateGroupRequest
	if err := c.Bind(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	g, err := service.Group().Create(ctx, userID, &req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}
	response.Success(ctx, c, g)
}

// GetGroup 小组详情
// GET /v1/groups/:group_id
func GetGroup(ctx context.Context, c *app.RequestContext) {
	groupID, ok := pathID(ctx, c, "group_id")
	if !ok {
		return
	}

	g, err := service.Group().Get(ctx, groupID)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}
	response.Success(ctx, c, g)
}

// UpdateGroup 部分更新小组
// PATCH /v1/groups/:group_id
func UpdateGroup(ctx context.Context, c *app.RequestContext) {
	groupID, ok := pathID(ctx, c, "group_id")
	if !ok {
		return
	}

	var req dto.UpdateGroupRequest
	if err := c.Bind(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	g, err := service.Group().Update(ctx, groupID, &req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}
	response.Success(ctx, c, g)
}

// JoinGroup 加入小组
// POST /v1/groups/:group_id/join
func JoinGroup(ctx context.Context, c *app.RequestContext) {
	userID, ok := currentUserID(ctx, c)
	if !ok {
		return
	}
	groupID, ok := pathID(ctx, c, "group_id")
	if !ok {
		return
	}

	g, err := service.Group().Join(ctx, userID, groupID)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}
	response.Success(ctx, c, g)
}

// AddGroupRoutine 向小组追加共享例程
// POST /v1/groups/:group_id/routines
func AddGroupRoutine(ctx context.Context, c *app.RequestContext) {
	groupID, ok := pathID(ctx, c, "group_id")
	if !ok {
		return
	}

	var draft dto.GroupRoutineDraft
	if err := c.Bind(&draft); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	r, err := service.Group().AddRoutine(ctx, groupID, &draft)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}
	response.Success(ctx, c, r)
}

// GetGroupRankings 小组排行
// GET /v1/rankings/groups
func GetGroupRankings(ctx context.Context, c *app.RequestContext) {
	response.Success(ctx, c, service.Group().Rankings(ctx))
}
