package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"RoutineOK/internal/kv"
)

// 持久化键布局（值统一字符串编码）
const (
	KeyLastCompletionDate = "lastCompletionDate"     // 日历日字符串
	KeyCompletionCount    = "routineCompletionCount" // 十进制字符串
	KeyAttendanceCount    = "attendanceCount"        // 十进制字符串
	KeyAttendanceDates    = "attendanceDates"        // JSON 日期字符串数组
	KeyEarnedBadges       = "earnedBadges"           // JSON 徽章名数组
	KeyStreakDays         = "streakDays"             // 十进制字符串
	KeyDarkMode           = "darkMode"               // "true"/"false"
)

// Counters 单个用户的持久化计数器，启动时读、每次变更即写
type Counters struct {
	store kv.Store
}

func NewCounters(store kv.Store) *Counters {
	return &Counters{store: store}
}

func (c *Counters) getInt(ctx context.Context, key string) (int, error) {
	val, err := c.store.Get(ctx, key)
	if errors.Is(err, kv.ErrNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("corrupt counter %s: %w", key, err)
	}
	return n, nil
}

func (c *Counters) setInt(ctx context.Context, key string, n int) error {
	return c.store.Set(ctx, key, strconv.Itoa(n))
}

func (c *Counters) getStrings(ctx context.Context, key string) ([]string, error) {
	val, err := c.store.Get(ctx, key)
	if errors.Is(err, kv.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var out []string
	if err := json.Unmarshal([]byte(val), &out); err != nil {
		return nil, fmt.Errorf("corrupt list %s: %w", key, err)
	}
	return out, nil
}

func (c *Counters) setStrings(ctx context.Context, key string, list []string) error {
	if list == nil {
		list = []string{}
	}
	raw, err := json.Marshal(list)
	if err != nil {
		return err
	}
	return c.store.Set(ctx, key, string(raw))
}

func (c *Counters) AttendanceCount(ctx context.Context) (int, error) {
	return c.getInt(ctx, KeyAttendanceCount)
}

func (c *Counters) SetAttendanceCount(ctx context.Context, n int) error {
	return c.setInt(ctx, KeyAttendanceCount, n)
}

func (c *Counters) CompletionCount(ctx context.Context) (int, error) {
	return c.getInt(ctx, KeyCompletionCount)
}

func (c *Counters) SetCompletionCount(ctx context.Context, n int) error {
	return c.setInt(ctx, KeyCompletionCount, n)
}

func (c *Counters) StreakDays(ctx context.Context) (int, error) {
	return c.getInt(ctx, KeyStreakDays)
}

func (c *Counters) SetStreakDays(ctx context.Context, n int) error {
	return c.setInt(ctx, KeyStreakDays, n)
}

func (c *Counters) LastCompletionDate(ctx context.Context) (string, error) {
	val, err := c.store.Get(ctx, KeyLastCompletionDate)
	if errors.Is(err, kv.ErrNotFound) {
		return "", nil
	}
	return val, err
}

func (c *Counters) SetLastCompletionDate(ctx context.Context, day string) error {
	return c.store.Set(ctx, KeyLastCompletionDate, day)
}

func (c *Counters) AttendanceDates(ctx context.Context) ([]string, error) {
	return c.getStrings(ctx, KeyAttendanceDates)
}

// AddAttendanceDate 追加一个出席日，按字符串精确匹配去重
func (c *Counters) AddAttendanceDate(ctx context.Context, day string) error {
	dates, err := c.getStrings(ctx, KeyAttendanceDates)
	if err != nil {
		return err
	}

	for _, d := range dates {
		if d == day {
			return nil
		}
	}
	return c.setStrings(ctx, KeyAttendanceDates, append(dates, day))
}

func (c *Counters) EarnedBadges(ctx context.Context) ([]string, error) {
	return c.getStrings(ctx, KeyEarnedBadges)
}

// AddEarnedBadges 合并徽章名列表，重复授予不会产生重复项
func (c *Counters) AddEarnedBadges(ctx context.Context, names []string) error {
	earned, err := c.getStrings(ctx, KeyEarnedBadges)
	if err != nil {
		return err
	}

	seen := make(map[string]bool, len(earned))
	for _, n := range earned {
		seen[n] = true
	}
	for _, n := range names {
		if !seen[n] {
			seen[n] = true
			earned = append(earned, n)
		}
	}
	return c.setStrings(ctx, KeyEarnedBadges, earned)
}

func (c *Counters) DarkMode(ctx context.Context) (bool, error) {
	val, err := c.store.Get(ctx, KeyDarkMode)
	if errors.Is(err, kv.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return val == "true", nil
}

func (c *Counters) SetDarkMode(ctx context.Context, on bool) error {
	return c.store.Set(ctx, KeyDarkMode, strconv.FormatBool(on))
}

// Clear 清空该用户全部持久化状态（注销账号）
func (c *Counters) Clear(ctx context.Context) error {
	return c.store.Clear(ctx)
}
