package model

// UserProfile 用户档案，登录时拉取，注销时重置为零值
type UserProfile struct {
	ID            int64  `json:"id"`
	Nickname      string `json:"nickname"`
	Email         string `json:"email"`
	ProfileURL    string `json:"profile_url"`
	StreakDays    int    `json:"streak_days"`
	Level         int    `json:"level"`
	Exp           int    `json:"exp"`
	MaxStreakDays int    `json:"max_streak_days"`
}
