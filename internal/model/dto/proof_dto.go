package dto

// ========== Proof 相关 DTO ==========

// SubmitProofRequest 提交打卡凭证请求
type SubmitProofRequest struct {
	RoutineID int64  `json:"routine_id" binding:"required"`
	Message   string `json:"message"`
	ImageURL  string `json:"image_url"`
}
