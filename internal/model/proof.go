package model

import "time"

// ProofSubmission 小组例程的打卡凭证，挂在所属小组的待审队列里
// 通过后从队列移除并联动例程完成 + 成员认证，驳回则只移除
type ProofSubmission struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Nickname  string    `json:"nickname"`
	Message   string    `json:"message"`
	ImageURL  string    `json:"image_url,omitempty"`
	RoutineID int64     `json:"routine_id"`
	CreatedAt time.Time `json:"created_at"`
}
