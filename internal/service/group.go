package service

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"RoutineOK/config"
	"RoutineOK/internal/model"
	"RoutineOK/internal/model/dto"
	"RoutineOK/internal/queue"
	"RoutineOK/internal/ranking"
	pkgerrors "RoutineOK/pkg/errors"
	"RoutineOK/pkg/logger"
	"RoutineOK/pkg/snowflake"
)

// GroupService 小组 CRUD、成员关系与排行
type GroupService struct {
	publishJoined func(groupID, userID int64)

	// 成员当前连续天数来源，测试时可替换
	streakDays func(ctx context.Context, userID int64) (int, error)
}

var (
	groupService *GroupService
	groupOnce    sync.Once
)

func Group() *GroupService {
	groupOnce.Do(func() {
		groupService = &GroupService{
			publishJoined: func(groupID, userID int64) {
				_ = queue.PublishMemberJoinedEvent(groupID, userID)
			},
			streakDays: func(ctx context.Context, userID int64) (int, error) {
				return countersForUser(userID).StreakDays(ctx)
			},
		}
	})

	return groupService
}

// Create 创建小组，创建者自动成为第一名成员
func (s *GroupService) Create(ctx context.Context, userID int64, req *dto.CreateGroupRequest) (*model.Group, error) {
	if !model.IsValidGroupType(req.GroupType) {
		return nil, pkgerrors.Definition{Code: "GROUP_TYPE_INVALID", Message: "Group type must be FREE or REQUIRED"}
	}

	groupID, err := snowflake.NextID(snowflake.GeneratorTypeGroup)
	if err != nil {
		return nil, err
	}

	maxMembers := req.MaxMembers
	if maxMembers <= 0 {
		maxMembers = config.Cfg.GroupMaxMembers
	}

	routines := make([]*model.Routine, 0, len(req.Routines))
	for _, draft := range req.Routines {
		if err := validateRoutineFields(draft.Frequency, draft.Difficulty); err != nil {
			return nil, err
		}

		routineID, err := snowflake.NextID(snowflake.GeneratorTypeRoutine)
		if err != nil {
			return nil, err
		}
		routines = append(routines, &model.Routine{
			ID:             routineID,
			Name:           draft.Name,
			Description:    draft.Description,
			Time:           draft.Time,
			Frequency:      draft.Frequency,
			Difficulty:     draft.Difficulty,
			Category:       draft.Category,
			IsGroupRoutine: true,
		})
	}

	g := &model.Group{
		ID:          groupID,
		Name:        req.Name,
		Description: req.Description,
		GroupType:   req.GroupType,
		Category:    req.Category,
		AuthTime:    req.AuthTime,
		MaxMembers:  maxMembers,
		Routines:    routines,
		Members:     []*model.Member{},
	}
	routineStore.PutGroup(g)

	profile := User().GetProfile(ctx, userID)
	creator := &model.Member{
		ID:         userID,
		Nickname:   profile.Nickname,
		ProfileURL: profile.ProfileURL,
		StreakDays: profile.StreakDays,
	}
	if err := routineStore.AddMember(groupID, creator); err != nil {
		return nil, err
	}

	logger.Logger.Info("Group created",
		zap.Int64("group_id", groupID),
		zap.Int64("user_id", userID),
		zap.String("name", g.Name),
		zap.String("group_type", string(g.GroupType)),
	)

	return g, nil
}

// Get 小组详情
func (s *GroupService) Get(ctx context.Context, groupID int64) (*model.Group, error) {
	return routineStore.GetGroup(groupID)
}

// List 全部小组，创建顺序
func (s *GroupService) List(ctx context.Context) []*model.Group {
	return routineStore.ListGroups()
}

// Joined 用户加入的小组
func (s *GroupService) Joined(ctx context.Context, userID int64) []*model.Group {
	return routineStore.JoinedGroups(userID)
}

// Update 部分更新小组字段，nil 字段不动
func (s *GroupService) Update(ctx context.Context, groupID int64, req *dto.UpdateGroupRequest) (*model.Group, error) {
	return routineStore.PatchGroup(groupID, func(g *model.Group) {
		if req.Name != nil {
			g.Name = *req.Name
		}
		if req.Description != nil {
			g.Description = *req.Description
		}
		if req.Category != nil {
			g.Category = *req.Category
		}
		if req.AuthTime != nil {
			g.AuthTime = *req.AuthTime
		}
		if req.MaxMembers != nil && *req.MaxMembers > 0 {
			g.MaxMembers = *req.MaxMembers
		}
	})
}

// Join 加入小组
func (s *GroupService) Join(ctx context.Context, userID, groupID int64) (*model.Group, error) {
	profile := User().GetProfile(ctx, userID)

	member := &model.Member{
		ID:         userID,
		Nickname:   profile.Nickname,
		ProfileURL: profile.ProfileURL,
		StreakDays: profile.StreakDays,
	}
	if err := routineStore.AddMember(groupID, member); err != nil {
		return nil, err
	}

	logger.Logger.Info("Member joined group",
		zap.Int64("group_id", groupID),
		zap.Int64("user_id", userID),
	)

	if s.publishJoined != nil {
		s.publishJoined(groupID, userID)
	}

	return routineStore.GetGroup(groupID)
}

// AddRoutine 向小组追加共享例程
func (s *GroupService) AddRoutine(ctx context.Context, groupID int64, draft *dto.GroupRoutineDraft) (*model.Routine, error) {
	if err := validateRoutineFields(draft.Frequency, draft.Difficulty); err != nil {
		return nil, err
	}

	routineID, err := snowflake.NextID(snowflake.GeneratorTypeRoutine)
	if err != nil {
		return nil, err
	}

	r := &model.Routine{
		ID:          routineID,
		Name:        draft.Name,
		Description: draft.Description,
		Time:        draft.Time,
		Frequency:   draft.Frequency,
		Difficulty:  draft.Difficulty,
		Category:    draft.Category,
	}
	if err := routineStore.AddGroupRoutine(groupID, r); err != nil {
		return nil, err
	}

	return r, nil
}

// Rankings 小组排行，总分降序，平分按小组 ID 升序
// 打分前把成员的连续天数快照刷新成当前值，入组时的快照会失真
func (s *GroupService) Rankings(ctx context.Context) []*dto.GroupRankingItem {
	groups := routineStore.ListGroups()

	if s.streakDays != nil {
		synced := make(map[int64]bool)
		for _, g := range groups {
			for _, m := range g.Members {
				if synced[m.ID] {
					continue
				}
				synced[m.ID] = true

				days, err := s.streakDays(ctx, m.ID)
				if err != nil {
					continue // 读不到就沿用快照
				}
				routineStore.SyncMemberStreak(m.ID, days)
			}
		}
	}

	entries := ranking.Rank(groups)

	items := make([]*dto.GroupRankingItem, 0, len(entries))
	for _, e := range entries {
		items = append(items, &dto.GroupRankingItem{
			Rank:        e.Rank,
			GroupID:     e.Group.ID,
			Name:        e.Group.Name,
			MemberCount: e.Group.MemberCount,
			TotalScore:  e.TotalScore,
			AvgScore:    e.AvgScore,
		})
	}
	return items
}
