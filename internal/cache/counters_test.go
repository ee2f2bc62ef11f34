package cache

import (
	"context"
	"testing"

	"RoutineOK/internal/kv"
)

func TestCountersDefaultToZero(t *testing.T) {
	c := NewCounters(kv.NewMemoryStore())
	ctx := context.Background()

	if n, err := c.CompletionCount(ctx); err != nil || n != 0 {
		t.Errorf("CompletionCount = (%d, %v), want (0, nil)", n, err)
	}
	if n, err := c.AttendanceCount(ctx); err != nil || n != 0 {
		t.Errorf("AttendanceCount = (%d, %v), want (0, nil)", n, err)
	}
	if n, err := c.StreakDays(ctx); err != nil || n != 0 {
		t.Errorf("StreakDays = (%d, %v), want (0, nil)", n, err)
	}
	if day, err := c.LastCompletionDate(ctx); err != nil || day != "" {
		t.Errorf("LastCompletionDate = (%q, %v), want empty", day, err)
	}
	if dates, err := c.AttendanceDates(ctx); err != nil || len(dates) != 0 {
		t.Errorf("AttendanceDates = (%v, %v), want empty", dates, err)
	}
}

func TestCountersRoundTrip(t *testing.T) {
	c := NewCounters(kv.NewMemoryStore())
	ctx := context.Background()

	if err := c.SetCompletionCount(ctx, 42); err != nil {
		t.Fatal(err)
	}
	if n, _ := c.CompletionCount(ctx); n != 42 {
		t.Errorf("CompletionCount = %d, want 42", n)
	}

	if err := c.SetLastCompletionDate(ctx, "2026-08-31"); err != nil {
		t.Fatal(err)
	}
	if day, _ := c.LastCompletionDate(ctx); day != "2026-08-31" {
		t.Errorf("LastCompletionDate = %q", day)
	}
}

func TestCorruptCounterSurfacesError(t *testing.T) {
	store := kv.NewMemoryStore()
	ctx := context.Background()
	if err := store.Set(ctx, KeyCompletionCount, "not-a-number"); err != nil {
		t.Fatal(err)
	}

	c := NewCounters(store)
	if _, err := c.CompletionCount(ctx); err == nil {
		t.Error("corrupt counter read succeeded")
	}
}

func TestAddAttendanceDateDedup(t *testing.T) {
	c := NewCounters(kv.NewMemoryStore())
	ctx := context.Background()

	for _, day := range []string{"2026-08-30", "2026-08-31", "2026-08-31"} {
		if err := c.AddAttendanceDate(ctx, day); err != nil {
			t.Fatal(err)
		}
	}

	dates, err := c.AttendanceDates(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(dates) != 2 || dates[0] != "2026-08-30" || dates[1] != "2026-08-31" {
		t.Errorf("AttendanceDates = %v", dates)
	}
}

func TestAddEarnedBadgesMergeDedup(t *testing.T) {
	c := NewCounters(kv.NewMemoryStore())
	ctx := context.Background()

	if err := c.AddEarnedBadges(ctx, []string{"first_step"}); err != nil {
		t.Fatal(err)
	}
	if err := c.AddEarnedBadges(ctx, []string{"first_step", "week_streak"}); err != nil {
		t.Fatal(err)
	}

	earned, err := c.EarnedBadges(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(earned) != 2 || earned[0] != "first_step" || earned[1] != "week_streak" {
		t.Errorf("EarnedBadges = %v", earned)
	}
}

func TestClearWipesAllKeys(t *testing.T) {
	c := NewCounters(kv.NewMemoryStore())
	ctx := context.Background()

	c.SetCompletionCount(ctx, 5)
	c.SetDarkMode(ctx, true)
	c.AddAttendanceDate(ctx, "2026-08-31")

	if err := c.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}

	if n, _ := c.CompletionCount(ctx); n != 0 {
		t.Errorf("CompletionCount after clear = %d", n)
	}
	if on, _ := c.DarkMode(ctx); on {
		t.Error("DarkMode survived clear")
	}
	if dates, _ := c.AttendanceDates(ctx); len(dates) != 0 {
		t.Errorf("AttendanceDates after clear = %v", dates)
	}
}
