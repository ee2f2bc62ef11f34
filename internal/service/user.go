package service

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"RoutineOK/internal/cache"
	"RoutineOK/internal/model"
	"RoutineOK/internal/model/dto"
	"RoutineOK/pkg/logger"
)

// UserService 用户档案与偏好
// 档案是会话级内存状态，计数器类数据（streakDays、darkMode）走持久化存储
type UserService struct {
	mu       sync.RWMutex
	profiles map[int64]*model.UserProfile

	counters func(userID int64) *cache.Counters
}

var (
	userService *UserService
	userOnce    sync.Once
)

func User() *UserService {
	userOnce.Do(func() {
		userService = &UserService{
			profiles: make(map[int64]*model.UserProfile),
			counters: countersForUser,
		}
	})

	return userService
}

// GetProfile 获取用户档案，首次访问时创建默认档案
func (s *UserService) GetProfile(ctx context.Context, userID int64) *model.UserProfile {
	s.mu.RLock()
	p, ok := s.profiles[userID]
	s.mu.RUnlock()
	if ok {
		return p
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if p, ok = s.profiles[userID]; ok {
		return p
	}

	p = &model.UserProfile{
		ID:       userID,
		Nickname: fmt.Sprintf("루티너%d", userID%10000),
		Level:    1,
	}
	s.profiles[userID] = p
	return p
}

// UpdateProfile 部分更新档案，nil 字段不动
func (s *UserService) UpdateProfile(ctx context.Context, userID int64, req *dto.UpdateProfileRequest) *model.UserProfile {
	p := s.GetProfile(ctx, userID)

	s.mu.Lock()
	defer s.mu.Unlock()

	if req.Nickname != nil {
		p.Nickname = *req.Nickname
	}
	if req.Email != nil {
		p.Email = *req.Email
	}
	if req.ProfileURL != nil {
		p.ProfileURL = *req.ProfileURL
	}
	return p
}

// SyncStreak 把持久化的连续天数同步进档案，MaxStreakDays 只增不减
func (s *UserService) SyncStreak(ctx context.Context, userID int64) (*model.UserProfile, error) {
	streakDays, err := s.counters(userID).StreakDays(ctx)
	if err != nil {
		return nil, err
	}

	// 所在小组的成员快照一并刷新
	routineStore.SyncMemberStreak(userID, streakDays)

	p := s.GetProfile(ctx, userID)

	s.mu.Lock()
	defer s.mu.Unlock()

	p.StreakDays = streakDays
	if streakDays > p.MaxStreakDays {
		p.MaxStreakDays = streakDays
	}
	return p, nil
}

// DarkMode 读取暗色模式偏好
func (s *UserService) DarkMode(ctx context.Context, userID int64) (bool, error) {
	return s.counters(userID).DarkMode(ctx)
}

// SetDarkMode 写入暗色模式偏好
func (s *UserService) SetDarkMode(ctx context.Context, userID int64, on bool) error {
	return s.counters(userID).SetDarkMode(ctx, on)
}

// DeleteAccount 注销账号：档案、会话弹窗状态、持久化计数器全部清空
func (s *UserService) DeleteAccount(ctx context.Context, userID int64) error {
	if err := s.counters(userID).Clear(ctx); err != nil {
		return err
	}

	Session().Reset(userID)

	s.mu.Lock()
	delete(s.profiles, userID)
	s.mu.Unlock()

	logger.Logger.Info("Account deleted",
		zap.Int64("user_id", userID),
	)
	return nil
}
