package store

import (
	"sync"

	"RoutineOK/internal/model"
	pkgerrors "RoutineOK/pkg/errors"
)

// RoutineStore 进程内例程/小组状态
// 个人例程按用户分桶，小组例程只存在于所属 Group 的 Routines 里
// 所有入口（首页、例程页、小组页、聊天页）都必须经由这里改状态，
// 不允许改本地副本，否则小组/成员/例程三元组会失联
type RoutineStore struct {
	mu          sync.RWMutex
	personal    map[int64][]*model.Routine
	groups      map[int64]*model.Group
	groupOrder  []int64
	memberships map[int64][]int64 // userID -> 加入的小组
}

func NewRoutineStore() *RoutineStore {
	return &RoutineStore{
		personal:    make(map[int64][]*model.Routine),
		groups:      make(map[int64]*model.Group),
		memberships: make(map[int64][]int64),
	}
}

// ========== 个人例程 ==========

// AddPersonal 追加个人例程，ID 由调用方（service 层的 snowflake）预先分配
func (s *RoutineStore) AddPersonal(userID int64, r *model.Routine) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r.Completed = false
	r.Streak = 0
	r.IsGroupRoutine = false
	r.Frequency = model.SortWeekdays(r.Frequency)
	s.personal[userID] = append(s.personal[userID], r)
}

// ListPersonal 返回个人例程切片副本
func (s *RoutineStore) ListPersonal(userID int64) []*model.Routine {
	s.mu.RLock()
	defer s.mu.RUnlock()

	routines := s.personal[userID]
	out := make([]*model.Routine, len(routines))
	copy(out, routines)
	return out
}

// GetPersonal 按 ID 查找个人例程
func (s *RoutineStore) GetPersonal(userID, routineID int64) (*model.Routine, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, r := range s.personal[userID] {
		if r.ID == routineID {
			return r, nil
		}
	}
	return nil, pkgerrors.RoutineNotFound
}

// UpdatePersonal 整体替换同 ID 的个人例程
func (s *RoutineStore) UpdatePersonal(userID int64, updated *model.Routine) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, r := range s.personal[userID] {
		if r.ID == updated.ID {
			updated.IsGroupRoutine = false
			updated.Frequency = model.SortWeekdays(updated.Frequency)
			s.personal[userID][i] = updated
			return nil
		}
	}
	return pkgerrors.RoutineNotFound
}

// DeletePersonal 删除个人例程
func (s *RoutineStore) DeletePersonal(userID, routineID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	routines := s.personal[userID]
	for i, r := range routines {
		if r.ID == routineID {
			s.personal[userID] = append(routines[:i], routines[i+1:]...)
			return nil
		}
	}
	return pkgerrors.RoutineNotFound
}

// TogglePersonal 翻转完成状态，返回新值
func (s *RoutineStore) TogglePersonal(userID, routineID int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range s.personal[userID] {
		if r.ID == routineID {
			r.Completed = !r.Completed
			if r.Completed {
				r.Streak++
			} else if r.Streak > 0 {
				r.Streak--
			}
			return r.Completed, nil
		}
	}
	return false, pkgerrors.RoutineNotFound
}

// ========== 小组 ==========

// PutGroup 登记小组（创建时调用）
func (s *RoutineStore) PutGroup(g *model.Group) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.groups[g.ID]; !exists {
		s.groupOrder = append(s.groupOrder, g.ID)
	}
	for _, r := range g.Routines {
		r.IsGroupRoutine = true
		r.Frequency = model.SortWeekdays(r.Frequency)
	}
	g.MemberCount = len(g.Members)
	s.groups[g.ID] = g
}

// GetGroup 按 ID 查找小组
func (s *RoutineStore) GetGroup(groupID int64) (*model.Group, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.groups[groupID]
	if !ok {
		return nil, pkgerrors.GroupNotFound
	}
	return g, nil
}

// ListGroups 按创建顺序返回全部小组
func (s *RoutineStore) ListGroups() []*model.Group {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*model.Group, 0, len(s.groupOrder))
	for _, id := range s.groupOrder {
		out = append(out, s.groups[id])
	}
	return out
}

// AddGroupRoutine 向小组追加共享例程
func (s *RoutineStore) AddGroupRoutine(groupID int64, r *model.Routine) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.groups[groupID]
	if !ok {
		return pkgerrors.GroupNotFound
	}

	r.IsGroupRoutine = true
	r.Frequency = model.SortWeekdays(r.Frequency)
	g.Routines = append(g.Routines, r)
	return nil
}

// PatchGroup 在锁内对小组做部分修改
func (s *RoutineStore) PatchGroup(groupID int64, patch func(*model.Group)) (*model.Group, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.groups[groupID]
	if !ok {
		return nil, pkgerrors.GroupNotFound
	}

	patch(g)
	return g, nil
}

// UpdateGroupRoutine 扫描所有小组定位拥有该例程的一组，并原地替换
// 始终改写属主小组的例程数组本身，维持「小组例程只属于一个小组」的不变式
func (s *RoutineStore) UpdateGroupRoutine(updated *model.Routine) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, g := range s.groups {
		for i, r := range g.Routines {
			if r.ID == updated.ID {
				updated.IsGroupRoutine = true
				updated.Frequency = model.SortWeekdays(updated.Frequency)
				g.Routines[i] = updated
				return nil
			}
		}
	}
	return pkgerrors.RoutineNotFound
}

// DeleteGroupRoutine 从属主小组移除例程
func (s *RoutineStore) DeleteGroupRoutine(routineID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, g := range s.groups {
		for i, r := range g.Routines {
			if r.ID == routineID {
				g.Routines = append(g.Routines[:i], g.Routines[i+1:]...)
				return nil
			}
		}
	}
	return pkgerrors.RoutineNotFound
}

// CertifyCompletion 审批通过时的联动：例程置完成 + 成员置已认证
// 两处变更在同一把锁内完成，外部读不到只改了一半的状态
func (s *RoutineStore) CertifyCompletion(groupID, routineID, userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.groups[groupID]
	if !ok {
		return pkgerrors.GroupNotFound
	}

	routine := g.FindRoutine(routineID)
	if routine == nil {
		return pkgerrors.ProofTargetGone
	}

	member := g.FindMember(userID)
	if member == nil {
		return pkgerrors.MemberNotFound
	}

	routine.Completed = true
	routine.Streak++
	member.IsCertified = true
	member.Approvals++
	return nil
}

// ========== 成员关系 ==========

// AddMember 用户加入小组
func (s *RoutineStore) AddMember(groupID int64, m *model.Member) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.groups[groupID]
	if !ok {
		return pkgerrors.GroupNotFound
	}

	if g.FindMember(m.ID) != nil {
		return pkgerrors.AlreadyMember
	}

	if g.MaxMembers > 0 && len(g.Members) >= g.MaxMembers {
		return pkgerrors.GroupFull
	}

	g.Members = append(g.Members, m)
	g.MemberCount = len(g.Members)
	s.memberships[m.ID] = append(s.memberships[m.ID], groupID)
	return nil
}

// SyncMemberStreak 用当前连续天数刷新该用户在所有小组里的成员快照
// 入组时记录的快照会随时间失真，排名打分前和档案同步时都走这里
func (s *RoutineStore) SyncMemberStreak(userID int64, streakDays int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range s.memberships[userID] {
		g, ok := s.groups[id]
		if !ok {
			continue
		}
		if m := g.FindMember(userID); m != nil {
			m.StreakDays = streakDays
		}
	}
}

// JoinedGroups 返回用户加入的小组
func (s *RoutineStore) JoinedGroups(userID int64) []*model.Group {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := s.memberships[userID]
	out := make([]*model.Group, 0, len(ids))
	for _, id := range ids {
		if g, ok := s.groups[id]; ok {
			out = append(out, g)
		}
	}
	return out
}
