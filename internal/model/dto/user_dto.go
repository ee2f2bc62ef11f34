package dto

// ========== User 相关 DTO ==========

// UpdateProfileRequest 修改用户档案请求
type UpdateProfileRequest struct {
	Nickname   *string `json:"nickname"`
	Email      *string `json:"email"`
	ProfileURL *string `json:"profile_url"`
}

// RefreshTokenRequest token 刷新请求
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// TokenPairData token 刷新响应
type TokenPairData struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
}
