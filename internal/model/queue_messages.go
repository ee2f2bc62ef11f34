package model

// ProofSubmittedMessage 凭证提交消息，通知小组待审
// Recipients 在发布侧就展开好：worker 进程没有小组状态，查不了成员表
type ProofSubmittedMessage struct {
	MessageID  string  `json:"message_id"` // 消息唯一ID，用于幂等性检查
	BatchID    string  `json:"batch_id"`
	GroupID    int64   `json:"group_id"`
	ProofID    int64   `json:"proof_id"`
	RoutineID  int64   `json:"routine_id"`
	UserID     int64   `json:"user_id"`
	Nickname   string  `json:"nickname"`
	Recipients []int64 `json:"recipients"` // 待通知的组内成员，不含提交者
}

// ProofResolvedMessage 凭证审批结果消息，通知提交者
type ProofResolvedMessage struct {
	MessageID string `json:"message_id"` // 消息唯一ID，用于幂等性检查
	GroupID   int64  `json:"group_id"`
	ProofID   int64  `json:"proof_id"`
	RoutineID int64  `json:"routine_id"`
	UserID    int64  `json:"user_id"`
	Approved  bool   `json:"approved"`
}

// BadgeAwardedMessage 徽章授予消息
type BadgeAwardedMessage struct {
	MessageID string   `json:"message_id"` // 消息唯一ID，用于幂等性检查
	UserID    int64    `json:"user_id"`
	Badges    []string `json:"badges"` // 新获得的徽章 Name 列表
}

// EventMessage 事件消息（用于事件总线）
type EventMessage struct {
	Payload    map[string]interface{} `json:"payload"`
	EventKey   string                 `json:"event_key"`
	EventType  string                 `json:"event_type"`
	OccurredAt string                 `json:"occurred_at"`
}
