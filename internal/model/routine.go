package model

import "sort"

// Weekday 루틴 반복 요일 토큰（客户端显示用的韩文单字）
type Weekday string

const (
	WeekdayMon Weekday = "월"
	WeekdayTue Weekday = "화"
	WeekdayWed Weekday = "수"
	WeekdayThu Weekday = "목"
	WeekdayFri Weekday = "금"
	WeekdaySat Weekday = "토"
	WeekdaySun Weekday = "일"
)

// canonicalWeekdayOrder 展示顺序固定为 월→일，成员判断与顺序无关
var canonicalWeekdayOrder = map[Weekday]int{
	WeekdayMon: 0,
	WeekdayTue: 1,
	WeekdayWed: 2,
	WeekdayThu: 3,
	WeekdayFri: 4,
	WeekdaySat: 5,
	WeekdaySun: 6,
}

// IsValidWeekday 判断是否为合法的要日 token
func IsValidWeekday(w Weekday) bool {
	_, ok := canonicalWeekdayOrder[w]
	return ok
}

// SortWeekdays 把频率集合排成固定展示顺序，去掉重复项
func SortWeekdays(days []Weekday) []Weekday {
	seen := make(map[Weekday]bool, len(days))
	out := make([]Weekday, 0, len(days))
	for _, d := range days {
		if !seen[d] {
			seen[d] = true
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return canonicalWeekdayOrder[out[i]] < canonicalWeekdayOrder[out[j]]
	})
	return out
}

// Difficulty 루틴 난이도
type Difficulty string

const (
	DifficultyEasy   Difficulty = "쉬움"
	DifficultyNormal Difficulty = "보통"
	DifficultyHard   Difficulty = "어려움"
)

// IsValidDifficulty 判断难度枚举是否合法
func IsValidDifficulty(d Difficulty) bool {
	switch d {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return true
	}
	return false
}

// Routine 一条习惯例程
// IsGroupRoutine 为 true 时该例程只存在于某个 Group 的 Routines 列表里，
// 个人例程则挂在用户自己的列表下，两边不会同时持有同一条
type Routine struct {
	ID             int64      `json:"id"`
	Name           string     `json:"name"`
	Description    string     `json:"description"`
	Time           string     `json:"time"` // 计划时刻 "HH:MM:SS"
	Frequency      []Weekday  `json:"frequency"`
	Completed      bool       `json:"completed"`
	Streak         int        `json:"streak"` // 连续完成次数，非负
	Difficulty     Difficulty `json:"difficulty"`
	Category       string     `json:"category"`
	IsGroupRoutine bool       `json:"is_group_routine"`
}

// RecommendedRoutine 推荐例程目录项，「추천 루틴 추가」动作的数据源
type RecommendedRoutine struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Time        string     `json:"time"`
	Frequency   []Weekday  `json:"frequency"`
	Difficulty  Difficulty `json:"difficulty"`
	Category    string     `json:"category"`
}
