package service

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"RoutineOK/internal/model"
	"RoutineOK/internal/model/dto"
	pkgerrors "RoutineOK/pkg/errors"
	"RoutineOK/pkg/logger"
	"RoutineOK/pkg/snowflake"
)

// RoutineService 例程 CRUD 与完成切换入口
type RoutineService struct {
	session *SessionService
}

var (
	routineService *RoutineService
	routineOnce    sync.Once
)

func Routine() *RoutineService {
	routineOnce.Do(func() {
		routineService = &RoutineService{session: Session()}
	})

	return routineService
}

func validateRoutineFields(frequency []model.Weekday, difficulty model.Difficulty) error {
	for _, d := range frequency {
		if !model.IsValidWeekday(d) {
			return pkgerrors.RoutineFrequencyInvalid
		}
	}
	if difficulty != "" && !model.IsValidDifficulty(difficulty) {
		return pkgerrors.RoutineDifficultyInvalid
	}
	return nil
}

// Create 创建个人例程；Recommended 非空时从推荐目录取模板
func (s *RoutineService) Create(ctx context.Context, userID int64, req *dto.CreateRoutineRequest) (*model.Routine, error) {
	draft := model.Routine{
		Name:        req.Name,
		Description: req.Description,
		Time:        req.Time,
		Frequency:   req.Frequency,
		Difficulty:  req.Difficulty,
		Category:    req.Category,
	}

	if req.Recommended != "" {
		rec := findRecommended(req.Recommended)
		if rec == nil {
			return nil, pkgerrors.RoutineNotFound
		}
		draft = model.Routine{
			Name:        rec.Name,
			Description: rec.Description,
			Time:        rec.Time,
			Frequency:   rec.Frequency,
			Difficulty:  rec.Difficulty,
			Category:    rec.Category,
		}
	}

	if err := validateRoutineFields(draft.Frequency, draft.Difficulty); err != nil {
		return nil, err
	}

	id, err := snowflake.NextID(snowflake.GeneratorTypeRoutine)
	if err != nil {
		return nil, err
	}
	draft.ID = id

	routineStore.AddPersonal(userID, &draft)

	logger.Logger.Info("Routine created",
		zap.Int64("user_id", userID),
		zap.Int64("routine_id", draft.ID),
		zap.String("name", draft.Name),
	)

	return &draft, nil
}

// List 个人例程 + 所在小组的共享例程
func (s *RoutineService) List(ctx context.Context, userID int64) (*dto.RoutineListData, error) {
	data := &dto.RoutineListData{
		Personal: routineStore.ListPersonal(userID),
		Groups:   []*dto.GroupRoutinesItem{},
	}

	for _, g := range routineStore.JoinedGroups(userID) {
		data.Groups = append(data.Groups, &dto.GroupRoutinesItem{
			GroupID:   g.ID,
			GroupName: g.Name,
			Routines:  g.Routines,
		})
	}

	return data, nil
}

// Get 按 ID 查个人例程
func (s *RoutineService) Get(ctx context.Context, userID, routineID int64) (*model.Routine, error) {
	return routineStore.GetPersonal(userID, routineID)
}

// Update 整体替换例程字段，完成状态与连续计数保留
// 先查个人列表，找不到再回落到小组例程（任何成员都可修改共享例程）
func (s *RoutineService) Update(ctx context.Context, userID, routineID int64, req *dto.UpdateRoutineRequest) (*model.Routine, error) {
	if err := validateRoutineFields(req.Frequency, req.Difficulty); err != nil {
		return nil, err
	}

	updated := model.Routine{
		ID:          routineID,
		Name:        req.Name,
		Description: req.Description,
		Time:        req.Time,
		Frequency:   req.Frequency,
		Difficulty:  req.Difficulty,
		Category:    req.Category,
	}

	if existing, err := routineStore.GetPersonal(userID, routineID); err == nil {
		updated.Completed = existing.Completed
		updated.Streak = existing.Streak
		if err := routineStore.UpdatePersonal(userID, &updated); err != nil {
			return nil, err
		}
		return &updated, nil
	}

	existing, ok := s.findGroupRoutine(userID, routineID)
	if !ok {
		return nil, pkgerrors.RoutineNotFound
	}
	updated.Completed = existing.Completed
	updated.Streak = existing.Streak
	if err := routineStore.UpdateGroupRoutine(&updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete 删除例程，个人优先，小组例程回落
func (s *RoutineService) Delete(ctx context.Context, userID, routineID int64) error {
	if err := routineStore.DeletePersonal(userID, routineID); err == nil {
		return nil
	}

	if _, ok := s.findGroupRoutine(userID, routineID); !ok {
		return pkgerrors.RoutineNotFound
	}
	return routineStore.DeleteGroupRoutine(routineID)
}

// Toggle 切换完成状态并推进会话状态机
// 小组例程不允许直接打完成，必须走凭证审批管线
func (s *RoutineService) Toggle(ctx context.Context, userID, routineID int64) (*dto.ToggleResultData, error) {
	completed, err := routineStore.TogglePersonal(userID, routineID)
	if err == nil {
		if completed {
			result, err := s.session.RecordCompletion(ctx, userID)
			if err != nil {
				return nil, err
			}
			result.RoutineID = routineID
			return result, nil
		}

		// 取消完成不回滚计数器，弹窗也不触发
		c := s.session.counters(userID)
		count, err := c.CompletionCount(ctx)
		if err != nil {
			return nil, err
		}
		return &dto.ToggleResultData{
			RoutineID:       routineID,
			Completed:       false,
			CompletionCount: count,
		}, nil
	}

	if _, ok := s.findGroupRoutine(userID, routineID); ok {
		return nil, pkgerrors.GroupRoutineNeedsApproval
	}
	return nil, pkgerrors.RoutineNotFound
}

// ListRecommended 推荐例程目录
func (s *RoutineService) ListRecommended(ctx context.Context) []model.RecommendedRoutine {
	return recommendedCatalog
}

func (s *RoutineService) findGroupRoutine(userID, routineID int64) (*model.Routine, bool) {
	for _, g := range routineStore.JoinedGroups(userID) {
		if r := g.FindRoutine(routineID); r != nil {
			return r, true
		}
	}
	return nil, false
}
