package middleware

import (
	"context"
	"fmt"
	"runtime/debug"

	"github.com/cloudwego/hertz/pkg/app"
	"go.uber.org/zap"

	"RoutineOK/config"
	"RoutineOK/pkg/errors"
	"RoutineOK/pkg/logger"
	"RoutineOK/pkg/response"
)

// RecoverMiddleware 捕获 handler panic，记日志后返回统一错误
func RecoverMiddleware() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		defer func() {
			if err := recover(); err != nil {
				fields := []zap.Field{
					zap.String("panic", fmt.Sprintf("%v", err)),
					zap.String("path", string(c.Path())),
					zap.String("method", string(c.Method())),
					zap.String("client_ip", c.ClientIP()),
					zap.ByteString("stack", debug.Stack()),
				}
				if id := GetRequestID(c); id != "" {
					fields = append(fields, zap.String("request_id", id))
				}
				if userID, exists := GetUserID(ctx, c); exists {
					fields = append(fields, zap.String("user_id", userID))
				}
				logger.Logger.Error("[PANIC RECOVERED]", fields...)

				errDef := errors.Definition{
					Code:    "INTERNAL_SERVER_ERROR",
					Message: "서버 내부 오류가 발생했어요, 잠시 후 다시 시도해주세요",
				}
				if !config.Cfg.IsProduction() {
					errDef.Message = fmt.Sprintf("Internal error: %v", err)
				}
				response.Error(ctx, c, errDef)
			}
		}()

		c.Next(ctx)
	}
}
