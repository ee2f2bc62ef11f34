package dto

import "RoutineOK/internal/model"

// ========== Routine 相关 DTO ==========

// CreateRoutineRequest 创建个人例程请求
// Recommended 非空时忽略其余字段，直接从推荐目录取模板
type CreateRoutineRequest struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Time        string           `json:"time"`
	Frequency   []model.Weekday  `json:"frequency"`
	Difficulty  model.Difficulty `json:"difficulty"`
	Category    string           `json:"category"`
	Recommended string           `json:"recommended,omitempty"` // 推荐例程名
}

// UpdateRoutineRequest 更新例程请求（整体替换语义，ID 从路径取）
type UpdateRoutineRequest struct {
	Name        string           `json:"name" binding:"required"`
	Description string           `json:"description"`
	Time        string           `json:"time"`
	Frequency   []model.Weekday  `json:"frequency"`
	Difficulty  model.Difficulty `json:"difficulty"`
	Category    string           `json:"category"`
}

// RoutineListData 例程列表响应：个人例程 + 所在小组的共享例程
type RoutineListData struct {
	Personal []*model.Routine     `json:"personal"`
	Groups   []*GroupRoutinesItem `json:"groups"`
}

// GroupRoutinesItem 某个小组的共享例程切片
type GroupRoutinesItem struct {
	GroupID   int64            `json:"group_id"`
	GroupName string           `json:"group_name"`
	Routines  []*model.Routine `json:"routines"`
}
