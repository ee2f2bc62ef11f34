package router

import (
	"github.com/cloudwego/hertz/pkg/app/server"

	"RoutineOK/internal/handler"
	"RoutineOK/internal/middleware"
)

func Register(h *server.Hertz) {

	h.Use(middleware.RequestIDMiddleware())
	h.Use(middleware.RecoverMiddleware())
	h.Use(middleware.CORSMiddleware())
	h.Use(middleware.OpenTelemetryMiddleware())

	v1 := h.Group("/v1")

	// 认证相关路由
	auth := v1.Group("/auth")
	{
		auth.POST("/token", handler.IssueToken)
		auth.POST("/refresh", handler.RefreshToken)
	}

	// 用户相关路由
	users := v1.Group("/users")
	users.Use(middleware.AuthMiddleware())
	{
		users.GET("/me", handler.GetProfile)
		users.PATCH("/me", handler.UpdateProfile)
		users.DELETE("/me", handler.DeleteAccount)
		users.GET("/me/settings", handler.GetSettings)
		users.PUT("/me/settings", handler.UpdateSettings)
	}

	// 例程路由
	routines := v1.Group("/routines")
	routines.Use(middleware.AuthMiddleware(), middleware.GeneralRateLimitMiddleware())
	{
		routines.GET("", handler.ListRoutines)
		routines.POST("", handler.CreateRoutine)
		routines.GET("/recommended", handler.ListRecommendedRoutines)
		routines.GET("/:routine_id", handler.GetRoutine)
		routines.PUT("/:routine_id", handler.UpdateRoutine)
		routines.DELETE("/:routine_id", handler.DeleteRoutine)
		routines.POST("/:routine_id/toggle", handler.ToggleRoutine)
	}

	// 小组与审批路由
	groups := v1.Group("/groups")
	groups.Use(middleware.AuthMiddleware())
	{
		groups.GET("", handler.ListGroups)
		groups.POST("", handler.CreateGroup)
		groups.GET("/joined", handler.ListJoinedGroups)
		groups.GET("/:group_id", handler.GetGroup)
		groups.PATCH("/:group_id", handler.UpdateGroup)
		groups.POST("/:group_id/join", handler.JoinGroup)
		groups.POST("/:group_id/routines", handler.AddGroupRoutine)

		groups.GET("/:group_id/proofs", handler.ListProofs)
		groups.POST("/:group_id/proofs", middleware.ProofSubmitRateLimitMiddleware(), handler.SubmitProof)
		groups.POST("/:group_id/proofs/:proof_id/approve", handler.ApproveProof)
		groups.POST("/:group_id/proofs/:proof_id/reject", handler.RejectProof)
	}

	// 排行路由
	rankings := v1.Group("/rankings")
	rankings.Use(middleware.AuthMiddleware())
	{
		rankings.GET("/groups", handler.GetGroupRankings)
	}

	// 会话状态机路由
	session := v1.Group("/session")
	session.Use(middleware.AuthMiddleware())
	{
		session.GET("/state", handler.GetSessionState)
		session.POST("/modals/attendance/close", handler.CloseAttendanceModal)
		session.POST("/modals/streak/close", handler.CloseStreakModal)
		session.POST("/modals/badge/close", handler.CloseBadgeModal)
	}
}
