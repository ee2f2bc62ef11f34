package dto

import "RoutineOK/internal/model"

// ========== 会话 / 状态机相关 DTO ==========

// Modal 会话当前展示的弹窗种类
type Modal string

const (
	ModalNone       Modal = "none"
	ModalAttendance Modal = "attendance" // 当日首次完成的出席确认
	ModalStreak     Modal = "streak"     // 连续打卡里程碑庆祝
	ModalBadge      Modal = "badge"      // 徽章获得
)

// StageData 连续打卡阶段的展示数据
type StageData struct {
	Stage     string `json:"stage"`
	Icon      string `json:"icon"`
	Message   string `json:"message"`
	Days      int    `json:"days"`
	Milestone bool   `json:"milestone"` // 是否恰好落在里程碑天数上
}

// ToggleResultData 完成切换后的状态机事件视图
type ToggleResultData struct {
	RoutineID           int64        `json:"routine_id"`
	Completed           bool         `json:"completed"`
	CompletionCount     int          `json:"completion_count"`
	AttendanceModalOpen bool         `json:"attendance_modal_open"`
	AwardedBadge        *model.Badge `json:"awarded_badge,omitempty"` // 루틴 마스터 즉시 수여 경로
}

// SessionStateData 会话状态快照：计数器 + 当前弹窗 + 待展示徽章队列
type SessionStateData struct {
	AttendanceCount    int          `json:"attendance_count"`
	CompletionCount    int          `json:"completion_count"`
	StreakDays         int          `json:"streak_days"`
	LastCompletionDate string       `json:"last_completion_date"`
	AttendanceDates    []string     `json:"attendance_dates"`
	EarnedBadges       []string     `json:"earned_badges"`
	Modal              Modal        `json:"modal"`
	CurrentBadge       *model.Badge `json:"current_badge,omitempty"`
	PendingBadges      []string     `json:"pending_badges"`
	Stage              *StageData   `json:"stage,omitempty"`
}

// ModalCloseData 关闭弹窗后的状态机推进结果
type ModalCloseData struct {
	Modal           Modal        `json:"modal"` // 推进后的弹窗状态
	CurrentBadge    *model.Badge `json:"current_badge,omitempty"`
	PendingBadges   []string     `json:"pending_badges"`
	Stage           *StageData   `json:"stage,omitempty"`
	StreakDays      int          `json:"streak_days"`
	AttendanceCount int          `json:"attendance_count"`
}
