package service

import (
	"context"
	"sync"

	"RoutineOK/internal/cache"
	"RoutineOK/internal/model"
	"RoutineOK/internal/model/dto"
	"RoutineOK/internal/queue"
	"RoutineOK/internal/streak"
	"RoutineOK/utils"
)

// SessionService 完成/出席/徽章状态机
// 弹窗状态只存在于会话内存，计数器走持久化存储
// 同一用户的所有转移都在该用户的锁内执行，读-改-写不会交错
type SessionService struct {
	mu       sync.Mutex
	sessions map[int64]*userSession

	counters func(userID int64) *cache.Counters

	// 消息发布钩子，测试时可置 nil 跳过
	publishBadges    func(userID int64, badges []string)
	publishMilestone func(userID int64, streakDays int)
}

type userSession struct {
	mu sync.Mutex

	modal         dto.Modal
	currentBadge  *model.Badge
	pendingBadges []string // 待展示徽章名队列，FIFO
}

var (
	sessionService *SessionService
	sessionOnce    sync.Once
)

func Session() *SessionService {
	sessionOnce.Do(func() {
		sessionService = newSessionService(countersForUser)
		sessionService.publishBadges = func(userID int64, badges []string) {
			_ = queue.PublishBadgeAwarded(model.BadgeAwardedMessage{
				UserID: userID,
				Badges: badges,
			})
		}
		sessionService.publishMilestone = func(userID int64, streakDays int) {
			_ = queue.PublishStreakMilestoneEvent(userID, streakDays)
		}
	})

	return sessionService
}

func newSessionService(counters func(int64) *cache.Counters) *SessionService {
	return &SessionService{
		sessions: make(map[int64]*userSession),
		counters: counters,
	}
}

func (s *SessionService) session(userID int64) *userSession {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[userID]
	if !ok {
		sess = &userSession{modal: dto.ModalNone}
		s.sessions[userID] = sess
	}
	return sess
}

// RecordCompletion 个人例程完成后的状态机推进
// 顺序固定：计数 +1 → 루틴 마스터 判定 → 出席弹窗判定，不可重排
func (s *SessionService) RecordCompletion(ctx context.Context, userID int64) (*dto.ToggleResultData, error) {
	sess := s.session(userID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	c := s.counters(userID)

	count, err := c.CompletionCount(ctx)
	if err != nil {
		return nil, err
	}
	count++
	if err := c.SetCompletionCount(ctx, count); err != nil {
		return nil, err
	}

	result := &dto.ToggleResultData{
		Completed:       true,
		CompletionCount: count,
	}

	// 累计完成 100 次即刻授予 루틴 마스터，与出席徽章路径互不影响
	if count >= 100 {
		newly, err := s.awardBadges(ctx, c, sess, userID, []string{model.BadgeRoutineMaster.Name})
		if err != nil {
			return nil, err
		}
		if len(newly) > 0 {
			badge := model.BadgeRoutineMaster
			result.AwardedBadge = &badge
		}
	}

	// 出席弹窗一天最多触发一次，打开的同时就提交 lastCompletionDate，
	// 快速连续切换不会二次触发
	last, err := c.LastCompletionDate(ctx)
	if err != nil {
		return nil, err
	}
	today := utils.Today()
	if last != today {
		if err := c.SetLastCompletionDate(ctx, today); err != nil {
			return nil, err
		}
		sess.modal = dto.ModalAttendance
		result.AttendanceModalOpen = true
	} else if sess.modal == dto.ModalNone {
		s.promoteBadge(sess)
	}

	return result, nil
}

// CloseAttendanceModal 关闭出席弹窗：计数落库后走里程碑分流
func (s *SessionService) CloseAttendanceModal(ctx context.Context, userID int64) (*dto.ModalCloseData, error) {
	sess := s.session(userID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	c := s.counters(userID)

	if sess.modal != dto.ModalAttendance {
		return s.closeData(ctx, c, sess)
	}

	today := utils.Today()
	if err := c.AddAttendanceDate(ctx, today); err != nil {
		return nil, err
	}

	attendance, err := c.AttendanceCount(ctx)
	if err != nil {
		return nil, err
	}
	attendance++
	if err := c.SetAttendanceCount(ctx, attendance); err != nil {
		return nil, err
	}

	streakDays, err := c.StreakDays(ctx)
	if err != nil {
		return nil, err
	}
	streakDays++
	if err := c.SetStreakDays(ctx, streakDays); err != nil {
		return nil, err
	}

	// 恰好落在里程碑天数时先庆祝连续打卡，徽章检查推迟到关闭连续弹窗之后；
	// 两个庆祝弹窗不会同一事件内叠加
	if streak.IsMilestone(streakDays) {
		sess.modal = dto.ModalStreak
		if s.publishMilestone != nil {
			s.publishMilestone(userID, streakDays)
		}
		return s.closeData(ctx, c, sess)
	}

	if err := s.evaluateBadges(ctx, c, sess, userID, attendance, streakDays); err != nil {
		return nil, err
	}
	return s.closeData(ctx, c, sess)
}

// CloseStreakModal 关闭连续打卡弹窗后补做徽章检查
func (s *SessionService) CloseStreakModal(ctx context.Context, userID int64) (*dto.ModalCloseData, error) {
	sess := s.session(userID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	c := s.counters(userID)

	if sess.modal != dto.ModalStreak {
		return s.closeData(ctx, c, sess)
	}

	attendance, err := c.AttendanceCount(ctx)
	if err != nil {
		return nil, err
	}
	streakDays, err := c.StreakDays(ctx)
	if err != nil {
		return nil, err
	}

	sess.modal = dto.ModalNone
	if err := s.evaluateBadges(ctx, c, sess, userID, attendance, streakDays); err != nil {
		return nil, err
	}
	return s.closeData(ctx, c, sess)
}

// CloseBadgeModal 关闭徽章弹窗，队列非空则顶出下一枚继续展示
func (s *SessionService) CloseBadgeModal(ctx context.Context, userID int64) (*dto.ModalCloseData, error) {
	sess := s.session(userID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	c := s.counters(userID)

	if sess.modal == dto.ModalBadge {
		sess.modal = dto.ModalNone
		sess.currentBadge = nil
		s.promoteBadge(sess)
	}
	return s.closeData(ctx, c, sess)
}

// State 会话状态快照
func (s *SessionService) State(ctx context.Context, userID int64) (*dto.SessionStateData, error) {
	sess := s.session(userID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	c := s.counters(userID)

	attendance, err := c.AttendanceCount(ctx)
	if err != nil {
		return nil, err
	}
	completion, err := c.CompletionCount(ctx)
	if err != nil {
		return nil, err
	}
	streakDays, err := c.StreakDays(ctx)
	if err != nil {
		return nil, err
	}
	last, err := c.LastCompletionDate(ctx)
	if err != nil {
		return nil, err
	}
	dates, err := c.AttendanceDates(ctx)
	if err != nil {
		return nil, err
	}
	earned, err := c.EarnedBadges(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.SessionStateData{
		AttendanceCount:    attendance,
		CompletionCount:    completion,
		StreakDays:         streakDays,
		LastCompletionDate: last,
		AttendanceDates:    dates,
		EarnedBadges:       earned,
		Modal:              sess.modal,
		CurrentBadge:       sess.currentBadge,
		PendingBadges:      append([]string{}, sess.pendingBadges...),
		Stage:              stageData(streakDays),
	}, nil
}

// Reset 清空会话弹窗状态（注销账号时随计数器一起清）
func (s *SessionService) Reset(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, userID)
}

// evaluateBadges 出席相关徽章阈值判定，批量授予后展示第一枚
func (s *SessionService) evaluateBadges(ctx context.Context, c *cache.Counters, sess *userSession, userID int64, attendance, streakDays int) error {
	var candidates []string
	if attendance >= 1 {
		candidates = append(candidates, model.BadgeFirstStep.Name)
	}
	if streakDays >= 7 {
		candidates = append(candidates, model.BadgeWeekStreak.Name)
	}
	if attendance >= 30 {
		candidates = append(candidates, model.BadgeMonthlyChampion.Name)
	}

	if _, err := s.awardBadges(ctx, c, sess, userID, candidates); err != nil {
		return err
	}

	if sess.modal == dto.ModalNone || sess.modal == dto.ModalAttendance {
		sess.modal = dto.ModalNone
		sess.currentBadge = nil
		s.promoteBadge(sess)
	}
	return nil
}

// awardBadges 过滤已有徽章后落库并入队，返回本次新增的徽章名
func (s *SessionService) awardBadges(ctx context.Context, c *cache.Counters, sess *userSession, userID int64, candidates []string) ([]string, error) {
	if len(candidates) == 0 {
		return nil, nil
	}

	earned, err := c.EarnedBadges(ctx)
	if err != nil {
		return nil, err
	}

	owned := make(map[string]bool, len(earned))
	for _, n := range earned {
		owned[n] = true
	}

	var newly []string
	for _, n := range candidates {
		if !owned[n] {
			newly = append(newly, n)
		}
	}
	if len(newly) == 0 {
		return nil, nil
	}

	if err := c.AddEarnedBadges(ctx, newly); err != nil {
		return nil, err
	}
	sess.pendingBadges = append(sess.pendingBadges, newly...)

	if s.publishBadges != nil {
		s.publishBadges(userID, newly)
	}
	return newly, nil
}

// promoteBadge 弹窗空闲时顶出队首徽章
func (s *SessionService) promoteBadge(sess *userSession) {
	if len(sess.pendingBadges) == 0 {
		return
	}

	name := sess.pendingBadges[0]
	sess.pendingBadges = sess.pendingBadges[1:]
	if badge, ok := model.BadgeCatalog[name]; ok {
		sess.currentBadge = &badge
		sess.modal = dto.ModalBadge
	}
}

func (s *SessionService) closeData(ctx context.Context, c *cache.Counters, sess *userSession) (*dto.ModalCloseData, error) {
	streakDays, err := c.StreakDays(ctx)
	if err != nil {
		return nil, err
	}
	attendance, err := c.AttendanceCount(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.ModalCloseData{
		Modal:           sess.modal,
		CurrentBadge:    sess.currentBadge,
		PendingBadges:   append([]string{}, sess.pendingBadges...),
		Stage:           stageData(streakDays),
		StreakDays:      streakDays,
		AttendanceCount: attendance,
	}, nil
}

func stageData(streakDays int) *dto.StageData {
	st := streak.Classify(streakDays)
	return &dto.StageData{
		Stage:     st.Name,
		Icon:      st.Icon,
		Message:   st.Message,
		Days:      streakDays,
		Milestone: streak.IsMilestone(streakDays),
	}
}
