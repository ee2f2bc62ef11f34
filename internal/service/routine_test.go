package service

import (
	"context"
	"errors"
	"testing"

	"RoutineOK/internal/model"
	"RoutineOK/internal/model/dto"
	pkgerrors "RoutineOK/pkg/errors"
)

func newTestRoutineService() *RoutineService {
	return &RoutineService{session: memSessions()}
}

func TestCreateRoutineFromRecommended(t *testing.T) {
	svc := newTestRoutineService()
	ctx := context.Background()

	r, err := svc.Create(ctx, 100, &dto.CreateRoutineRequest{Recommended: "물 2L 마시기"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if r.Name != "물 2L 마시기" || r.ID == 0 {
		t.Errorf("routine = %+v", r)
	}
	if r.Completed || r.Streak != 0 {
		t.Errorf("new routine carries progress: %+v", r)
	}

	if _, err := svc.Create(ctx, 100, &dto.CreateRoutineRequest{Recommended: "없는 루틴"}); !errors.Is(err, pkgerrors.RoutineNotFound) {
		t.Errorf("unknown recommended = %v, want RoutineNotFound", err)
	}
}

func TestCreateRoutineValidation(t *testing.T) {
	svc := newTestRoutineService()
	ctx := context.Background()

	_, err := svc.Create(ctx, 100, &dto.CreateRoutineRequest{
		Name:      "스트레칭",
		Frequency: []model.Weekday{"monday"},
	})
	if !errors.Is(err, pkgerrors.RoutineFrequencyInvalid) {
		t.Errorf("bad weekday = %v, want RoutineFrequencyInvalid", err)
	}

	_, err = svc.Create(ctx, 100, &dto.CreateRoutineRequest{
		Name:       "스트레칭",
		Difficulty: "impossible",
	})
	if !errors.Is(err, pkgerrors.RoutineDifficultyInvalid) {
		t.Errorf("bad difficulty = %v, want RoutineDifficultyInvalid", err)
	}
}

func TestToggleDrivesSessionStateMachine(t *testing.T) {
	svc := newTestRoutineService()
	ctx := context.Background()

	r, err := svc.Create(ctx, 101, &dto.CreateRoutineRequest{Name: "독서 30분"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	result, err := svc.Toggle(ctx, 101, r.ID)
	if err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if !result.Completed || result.CompletionCount != 1 || result.RoutineID != r.ID {
		t.Errorf("toggle result = %+v", result)
	}
	if !result.AttendanceModalOpen {
		t.Error("first completion should open attendance modal")
	}

	// 取消完成：计数器不回滚
	undo, err := svc.Toggle(ctx, 101, r.ID)
	if err != nil {
		t.Fatalf("untoggle: %v", err)
	}
	if undo.Completed {
		t.Error("second toggle should uncomplete")
	}
	if undo.CompletionCount != 1 {
		t.Errorf("CompletionCount after uncomplete = %d, want 1", undo.CompletionCount)
	}
	if undo.AttendanceModalOpen {
		t.Error("uncompleting must not open modals")
	}
}

func TestToggleGroupRoutineNeedsApproval(t *testing.T) {
	svc := newTestRoutineService()
	ctx := context.Background()

	seedGroup(t, 9101, 102, 601)

	if _, err := svc.Toggle(ctx, 102, 601); !errors.Is(err, pkgerrors.GroupRoutineNeedsApproval) {
		t.Errorf("group routine toggle = %v, want GroupRoutineNeedsApproval", err)
	}
	if _, err := svc.Toggle(ctx, 102, 404); !errors.Is(err, pkgerrors.RoutineNotFound) {
		t.Errorf("unknown routine = %v, want RoutineNotFound", err)
	}
}

func TestUpdateRoutinePreservesProgress(t *testing.T) {
	svc := newTestRoutineService()
	ctx := context.Background()

	r, err := svc.Create(ctx, 103, &dto.CreateRoutineRequest{Name: "하루 일기"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.Toggle(ctx, 103, r.ID); err != nil {
		t.Fatalf("Toggle: %v", err)
	}

	updated, err := svc.Update(ctx, 103, r.ID, &dto.UpdateRoutineRequest{Name: "하루 일기 쓰기"})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Name != "하루 일기 쓰기" {
		t.Errorf("Name = %q", updated.Name)
	}
	if !updated.Completed || updated.Streak != 1 {
		t.Errorf("progress lost on update: completed %v streak %d", updated.Completed, updated.Streak)
	}
}

func TestListIncludesJoinedGroupRoutines(t *testing.T) {
	svc := newTestRoutineService()
	ctx := context.Background()

	seedGroup(t, 9102, 104, 602)
	if _, err := svc.Create(ctx, 104, &dto.CreateRoutineRequest{Name: "영어 단어"}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	data, err := svc.List(ctx, 104)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(data.Personal) != 1 {
		t.Errorf("Personal = %d items", len(data.Personal))
	}
	if len(data.Groups) != 1 || data.Groups[0].GroupID != 9102 || len(data.Groups[0].Routines) != 1 {
		t.Errorf("Groups = %+v", data.Groups)
	}
}

func TestListRecommendedCatalog(t *testing.T) {
	svc := newTestRoutineService()

	catalog := svc.ListRecommended(context.Background())
	if len(catalog) == 0 {
		t.Fatal("recommended catalog is empty")
	}
	for _, rec := range catalog {
		if rec.Name == "" || len(rec.Frequency) == 0 {
			t.Errorf("incomplete catalog entry: %+v", rec)
		}
	}
}
