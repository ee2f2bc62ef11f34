package ranking

import (
	"sort"

	"RoutineOK/internal/model"
)

// 打分权重：REQUIRED 组认证门槛高，单次通过分值更大
const (
	weightRequired = 1.5
	weightFree     = 1.2

	approvalPoints = 10.0
	streakPoints   = 0.5
	streakCapDays  = 30 // 连续天数加分封顶
)

// MemberScore 单个成员的积分
// approvals×10×权重 + min(30, streakDays)×0.5
func MemberScore(approvals, streakDays int, groupType model.GroupType) float64 {
	weight := weightFree
	if groupType == model.GroupTypeRequired {
		weight = weightRequired
	}

	capped := streakDays
	if capped > streakCapDays {
		capped = streakCapDays
	}
	if capped < 0 {
		capped = 0
	}

	return float64(approvals)*approvalPoints*weight + float64(capped)*streakPoints
}

// GroupScore 小组总分与均分，空组均分为 0
func GroupScore(g *model.Group) (total, avg float64) {
	for _, m := range g.Members {
		total += MemberScore(m.Approvals, m.StreakDays, g.GroupType)
	}

	if len(g.Members) > 0 {
		avg = total / float64(len(g.Members))
	}
	return total, avg
}

// Entry 排名结果项
type Entry struct {
	Group      *model.Group
	Rank       int
	TotalScore float64
	AvgScore   float64
}

// Rank 按总分降序排名，1 起始
// 平分时按小组 ID 升序决出先后，保证同一输入下结果确定
func Rank(groups []*model.Group) []Entry {
	entries := make([]Entry, 0, len(groups))
	for _, g := range groups {
		total, avg := GroupScore(g)
		entries = append(entries, Entry{Group: g, TotalScore: total, AvgScore: avg})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].TotalScore != entries[j].TotalScore {
			return entries[i].TotalScore > entries[j].TotalScore
		}
		return entries[i].Group.ID < entries[j].Group.ID
	})

	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}
