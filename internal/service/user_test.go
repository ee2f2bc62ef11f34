package service

import (
	"context"
	"testing"

	"RoutineOK/internal/cache"
	"RoutineOK/internal/kv"
	"RoutineOK/internal/model"
	"RoutineOK/internal/model/dto"
)

func newTestUserService() *UserService {
	stores := make(map[int64]*cache.Counters)
	return &UserService{
		profiles: make(map[int64]*model.UserProfile),
		counters: func(userID int64) *cache.Counters {
			c, ok := stores[userID]
			if !ok {
				c = cache.NewCounters(kv.NewMemoryStore())
				stores[userID] = c
			}
			return c
		},
	}
}

func TestGetProfileCreatesDefault(t *testing.T) {
	svc := newTestUserService()
	ctx := context.Background()

	p := svc.GetProfile(ctx, 12345)
	if p.ID != 12345 || p.Nickname == "" || p.Level != 1 {
		t.Errorf("default profile = %+v", p)
	}

	// 同一用户拿到同一份档案
	if svc.GetProfile(ctx, 12345) != p {
		t.Error("GetProfile returned a different instance")
	}
}

func TestUpdateProfilePatchSemantics(t *testing.T) {
	svc := newTestUserService()
	ctx := context.Background()

	nickname := "아침형 인간"
	p := svc.UpdateProfile(ctx, 1, &dto.UpdateProfileRequest{Nickname: &nickname})
	if p.Nickname != nickname {
		t.Errorf("Nickname = %q", p.Nickname)
	}

	email := "runner@example.com"
	p = svc.UpdateProfile(ctx, 1, &dto.UpdateProfileRequest{Email: &email})
	if p.Nickname != nickname || p.Email != email {
		t.Errorf("patch touched other fields: %+v", p)
	}
}

func TestSyncStreakMaxOnlyGrows(t *testing.T) {
	svc := newTestUserService()
	ctx := context.Background()

	c := svc.counters(1)
	if err := c.SetStreakDays(ctx, 10); err != nil {
		t.Fatal(err)
	}

	p, err := svc.SyncStreak(ctx, 1)
	if err != nil {
		t.Fatalf("SyncStreak: %v", err)
	}
	if p.StreakDays != 10 || p.MaxStreakDays != 10 {
		t.Errorf("profile = streak %d max %d", p.StreakDays, p.MaxStreakDays)
	}

	// 连续中断后 MaxStreakDays 保持
	if err := c.SetStreakDays(ctx, 3); err != nil {
		t.Fatal(err)
	}
	p, err = svc.SyncStreak(ctx, 1)
	if err != nil {
		t.Fatalf("SyncStreak: %v", err)
	}
	if p.StreakDays != 3 || p.MaxStreakDays != 10 {
		t.Errorf("after drop = streak %d max %d", p.StreakDays, p.MaxStreakDays)
	}
}

func TestDarkModePreference(t *testing.T) {
	svc := newTestUserService()
	ctx := context.Background()

	on, err := svc.DarkMode(ctx, 1)
	if err != nil || on {
		t.Errorf("default dark mode = (%v, %v), want (false, nil)", on, err)
	}

	if err := svc.SetDarkMode(ctx, 1, true); err != nil {
		t.Fatalf("SetDarkMode: %v", err)
	}
	on, err = svc.DarkMode(ctx, 1)
	if err != nil || !on {
		t.Errorf("dark mode = (%v, %v), want (true, nil)", on, err)
	}
}

func TestDeleteAccountClearsEverything(t *testing.T) {
	svc := newTestUserService()
	ctx := context.Background()

	nickname := "탈퇴 예정"
	svc.UpdateProfile(ctx, 7, &dto.UpdateProfileRequest{Nickname: &nickname})
	if err := svc.counters(7).SetStreakDays(ctx, 5); err != nil {
		t.Fatal(err)
	}

	if err := svc.DeleteAccount(ctx, 7); err != nil {
		t.Fatalf("DeleteAccount: %v", err)
	}

	days, err := svc.counters(7).StreakDays(ctx)
	if err != nil || days != 0 {
		t.Errorf("streak after delete = (%d, %v), want (0, nil)", days, err)
	}
	if p := svc.GetProfile(ctx, 7); p.Nickname == nickname {
		t.Error("profile survived account deletion")
	}
}
