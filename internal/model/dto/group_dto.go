package dto

import "RoutineOK/internal/model"

// ========== Group 相关 DTO ==========

// CreateGroupRequest 创建小组请求
type CreateGroupRequest struct {
	Name        string              `json:"name" binding:"required"`
	Description string              `json:"description"`
	GroupType   model.GroupType     `json:"group_type" binding:"required"`
	Category    string              `json:"category"`
	AuthTime    string              `json:"auth_time"`
	MaxMembers  int                 `json:"max_members"`
	Routines    []GroupRoutineDraft `json:"routines"`
}

// GroupRoutineDraft 小组创建时附带的共享例程草稿
type GroupRoutineDraft struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Time        string           `json:"time"`
	Frequency   []model.Weekday  `json:"frequency"`
	Difficulty  model.Difficulty `json:"difficulty"`
	Category    string           `json:"category"`
}

// UpdateGroupRequest 更新小组请求
type UpdateGroupRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	AuthTime    *string `json:"auth_time"`
	MaxMembers  *int    `json:"max_members"`
}

// GroupRankingItem 小组排名项
type GroupRankingItem struct {
	Rank        int     `json:"rank"`
	GroupID     int64   `json:"group_id"`
	Name        string  `json:"name"`
	MemberCount int     `json:"member_count"`
	TotalScore  float64 `json:"total_score"`
	AvgScore    float64 `json:"avg_score"`
}
