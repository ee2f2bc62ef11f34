package service

import (
	"context"
	"testing"

	"RoutineOK/internal/model"
	"RoutineOK/internal/model/dto"
	"RoutineOK/utils"
)

func TestRecordCompletionOpensAttendanceOncePerDay(t *testing.T) {
	svc := memSessions()
	ctx := context.Background()

	r1, err := svc.RecordCompletion(ctx, 1)
	if err != nil {
		t.Fatalf("RecordCompletion: %v", err)
	}
	if !r1.Completed || r1.CompletionCount != 1 {
		t.Errorf("first completion = %+v", r1)
	}
	if !r1.AttendanceModalOpen {
		t.Error("first completion of the day should open attendance modal")
	}

	r2, err := svc.RecordCompletion(ctx, 1)
	if err != nil {
		t.Fatalf("second RecordCompletion: %v", err)
	}
	if r2.CompletionCount != 2 {
		t.Errorf("CompletionCount = %d, want 2", r2.CompletionCount)
	}
	if r2.AttendanceModalOpen {
		t.Error("attendance modal opened twice in one day")
	}

	state, err := svc.State(ctx, 1)
	if err != nil {
		t.Fatalf("State: %v", err)
	}
	if state.Modal != dto.ModalAttendance {
		t.Errorf("Modal = %q, want attendance", state.Modal)
	}
	if state.LastCompletionDate != utils.Today() {
		t.Errorf("LastCompletionDate = %q, want today", state.LastCompletionDate)
	}
}

func TestCloseAttendanceAwardsFirstStep(t *testing.T) {
	svc := memSessions()
	ctx := context.Background()

	if _, err := svc.RecordCompletion(ctx, 1); err != nil {
		t.Fatalf("RecordCompletion: %v", err)
	}

	data, err := svc.CloseAttendanceModal(ctx, 1)
	if err != nil {
		t.Fatalf("CloseAttendanceModal: %v", err)
	}
	if data.AttendanceCount != 1 || data.StreakDays != 1 {
		t.Errorf("counters = attendance %d streak %d, want 1/1", data.AttendanceCount, data.StreakDays)
	}
	if data.Modal != dto.ModalBadge {
		t.Fatalf("Modal = %q, want badge", data.Modal)
	}
	if data.CurrentBadge == nil || data.CurrentBadge.Name != model.BadgeFirstStep.Name {
		t.Errorf("CurrentBadge = %+v, want first_step", data.CurrentBadge)
	}
	if len(data.PendingBadges) != 0 {
		t.Errorf("PendingBadges = %v, want empty", data.PendingBadges)
	}

	// 出席弹窗已关，重复关闭不再推进计数
	again, err := svc.CloseAttendanceModal(ctx, 1)
	if err != nil {
		t.Fatalf("repeat close: %v", err)
	}
	if again.AttendanceCount != 1 || again.StreakDays != 1 {
		t.Errorf("repeat close advanced counters: attendance %d streak %d", again.AttendanceCount, again.StreakDays)
	}

	done, err := svc.CloseBadgeModal(ctx, 1)
	if err != nil {
		t.Fatalf("CloseBadgeModal: %v", err)
	}
	if done.Modal != dto.ModalNone || done.CurrentBadge != nil {
		t.Errorf("after badge close = %+v", done)
	}

	state, _ := svc.State(ctx, 1)
	if len(state.EarnedBadges) != 1 || state.EarnedBadges[0] != model.BadgeFirstStep.Name {
		t.Errorf("EarnedBadges = %v", state.EarnedBadges)
	}
}

func TestCloseAttendanceWithoutOpenModalIsNoop(t *testing.T) {
	svc := memSessions()
	ctx := context.Background()

	data, err := svc.CloseAttendanceModal(ctx, 1)
	if err != nil {
		t.Fatalf("CloseAttendanceModal: %v", err)
	}
	if data.Modal != dto.ModalNone || data.AttendanceCount != 0 || data.StreakDays != 0 {
		t.Errorf("noop close changed state: %+v", data)
	}
}

func TestMilestoneDefersBadgeCheck(t *testing.T) {
	svc := memSessions()
	ctx := context.Background()

	var milestoneDays int
	svc.publishMilestone = func(userID int64, streakDays int) { milestoneDays = streakDays }

	// 已有 first_step，本次只应新增 week_streak
	c := svc.counters(1)
	if err := c.SetStreakDays(ctx, 6); err != nil {
		t.Fatal(err)
	}
	if err := c.SetAttendanceCount(ctx, 6); err != nil {
		t.Fatal(err)
	}
	if err := c.AddEarnedBadges(ctx, []string{model.BadgeFirstStep.Name}); err != nil {
		t.Fatal(err)
	}

	if _, err := svc.RecordCompletion(ctx, 1); err != nil {
		t.Fatalf("RecordCompletion: %v", err)
	}

	data, err := svc.CloseAttendanceModal(ctx, 1)
	if err != nil {
		t.Fatalf("CloseAttendanceModal: %v", err)
	}
	if data.StreakDays != 7 {
		t.Fatalf("StreakDays = %d, want 7", data.StreakDays)
	}
	// 里程碑当天先庆祝连续打卡，徽章检查等弹窗关闭后再做
	if data.Modal != dto.ModalStreak {
		t.Fatalf("Modal = %q, want streak", data.Modal)
	}
	if len(data.PendingBadges) != 0 {
		t.Errorf("badges awarded before streak modal closed: %v", data.PendingBadges)
	}
	if milestoneDays != 7 {
		t.Errorf("milestone event days = %d, want 7", milestoneDays)
	}
	if data.Stage == nil || data.Stage.Stage != "growth" || !data.Stage.Milestone {
		t.Errorf("Stage = %+v", data.Stage)
	}

	after, err := svc.CloseStreakModal(ctx, 1)
	if err != nil {
		t.Fatalf("CloseStreakModal: %v", err)
	}
	if after.Modal != dto.ModalBadge {
		t.Fatalf("Modal after streak close = %q, want badge", after.Modal)
	}
	if after.CurrentBadge == nil || after.CurrentBadge.Name != model.BadgeWeekStreak.Name {
		t.Errorf("CurrentBadge = %+v, want week_streak", after.CurrentBadge)
	}

	done, _ := svc.CloseBadgeModal(ctx, 1)
	if done.Modal != dto.ModalNone {
		t.Errorf("Modal = %q after last badge", done.Modal)
	}
}

func TestBadgeQueueShowsOneAtATime(t *testing.T) {
	svc := memSessions()
	ctx := context.Background()

	var published [][]string
	svc.publishBadges = func(userID int64, badges []string) {
		published = append(published, badges)
	}

	c := svc.counters(1)
	if err := c.SetAttendanceCount(ctx, 29); err != nil {
		t.Fatal(err)
	}
	if err := c.SetStreakDays(ctx, 10); err != nil {
		t.Fatal(err)
	}

	if _, err := svc.RecordCompletion(ctx, 1); err != nil {
		t.Fatalf("RecordCompletion: %v", err)
	}
	data, err := svc.CloseAttendanceModal(ctx, 1)
	if err != nil {
		t.Fatalf("CloseAttendanceModal: %v", err)
	}

	// 一次达标三枚，弹窗逐一展示
	if data.Modal != dto.ModalBadge || data.CurrentBadge.Name != model.BadgeFirstStep.Name {
		t.Fatalf("first shown = %+v", data.CurrentBadge)
	}
	wantPending := []string{model.BadgeWeekStreak.Name, model.BadgeMonthlyChampion.Name}
	if len(data.PendingBadges) != 2 || data.PendingBadges[0] != wantPending[0] || data.PendingBadges[1] != wantPending[1] {
		t.Fatalf("PendingBadges = %v, want %v", data.PendingBadges, wantPending)
	}

	for _, want := range wantPending {
		next, err := svc.CloseBadgeModal(ctx, 1)
		if err != nil {
			t.Fatalf("CloseBadgeModal: %v", err)
		}
		if next.Modal != dto.ModalBadge || next.CurrentBadge.Name != want {
			t.Fatalf("next badge = %+v, want %s", next.CurrentBadge, want)
		}
	}

	done, _ := svc.CloseBadgeModal(ctx, 1)
	if done.Modal != dto.ModalNone || len(done.PendingBadges) != 0 {
		t.Errorf("queue not drained: %+v", done)
	}

	if len(published) != 1 || len(published[0]) != 3 {
		t.Errorf("published = %v, want single batch of 3", published)
	}

	state, _ := svc.State(ctx, 1)
	if len(state.EarnedBadges) != 3 {
		t.Errorf("EarnedBadges = %v", state.EarnedBadges)
	}
}

func TestRoutineMasterAwardedAtHundred(t *testing.T) {
	svc := memSessions()
	ctx := context.Background()

	c := svc.counters(1)
	if err := c.SetCompletionCount(ctx, 99); err != nil {
		t.Fatal(err)
	}

	r, err := svc.RecordCompletion(ctx, 1)
	if err != nil {
		t.Fatalf("RecordCompletion: %v", err)
	}
	if r.CompletionCount != 100 {
		t.Errorf("CompletionCount = %d, want 100", r.CompletionCount)
	}
	if r.AwardedBadge == nil || r.AwardedBadge.Name != model.BadgeRoutineMaster.Name {
		t.Errorf("AwardedBadge = %+v, want routine_master", r.AwardedBadge)
	}
	// 出席弹窗优先展示，徽章留在队列里
	if !r.AttendanceModalOpen {
		t.Error("attendance modal should open on first completion of the day")
	}
	state, _ := svc.State(ctx, 1)
	if len(state.PendingBadges) != 1 || state.PendingBadges[0] != model.BadgeRoutineMaster.Name {
		t.Errorf("PendingBadges = %v", state.PendingBadges)
	}

	// 第 101 次不会重复授予
	r2, err := svc.RecordCompletion(ctx, 1)
	if err != nil {
		t.Fatalf("second RecordCompletion: %v", err)
	}
	if r2.AwardedBadge != nil {
		t.Errorf("routine_master awarded twice: %+v", r2.AwardedBadge)
	}
}

func TestResetClearsModalButKeepsCounters(t *testing.T) {
	svc := memSessions()
	ctx := context.Background()

	if _, err := svc.RecordCompletion(ctx, 1); err != nil {
		t.Fatal(err)
	}
	svc.Reset(1)

	state, err := svc.State(ctx, 1)
	if err != nil {
		t.Fatalf("State: %v", err)
	}
	if state.Modal != dto.ModalNone {
		t.Errorf("Modal = %q after reset", state.Modal)
	}
	if state.CompletionCount != 1 {
		t.Errorf("CompletionCount = %d, persisted counters should survive reset", state.CompletionCount)
	}
}
