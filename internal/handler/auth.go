package handler

import (
	"context"
	"strconv"

	"github.com/cloudwego/hertz/pkg/app"

	"RoutineOK/internal/model/dto"
	pkgerrors "RoutineOK/pkg/errors"
	"RoutineOK/pkg/response"
	"RoutineOK/pkg/token"
)

// IssueToken 签发 token 对
// 身份校验在上游网关完成，这里只负责换发本服务的会话凭证
// POST /v1/auth/token
func IssueToken(ctx context.Context, c *app.RequestContext) {
	var req struct {
		UserID int64 `json:"user_id" binding:"required"`
	}
	if err := c.Bind(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}
	if req.UserID <= 0 {
		response.Error(ctx, c, pkgerrors.InvalidUserID)
		return
	}

	accessToken, refreshToken, expiresIn, err := token.GenerateTokenPair(strconv.FormatInt(req.UserID, 10))
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, dto.TokenPairData{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    expiresIn,
	})
}

// RefreshToken 用 refresh token 换新的 token 对
// POST /v1/auth/refresh
func RefreshToken(ctx context.Context, c *app.RequestContext) {
	var req dto.RefreshTokenRequest
	if err := c.Bind(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	userID, err := token.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		response.Error(ctx, c, pkgerrors.Unauthorized)
		return
	}

	accessToken, refreshToken, expiresIn, err := token.GenerateTokenPair(userID)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, dto.TokenPairData{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    expiresIn,
	})
}
