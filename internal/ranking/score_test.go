package ranking

import (
	"testing"

	"RoutineOK/internal/model"
)

func TestMemberScore(t *testing.T) {
	tests := []struct {
		name       string
		approvals  int
		streakDays int
		groupType  model.GroupType
		want       float64
	}{
		{"free group base", 2, 10, model.GroupTypeFree, 2*10*1.2 + 10*0.5},
		{"required group weight", 2, 10, model.GroupTypeRequired, 2*10*1.5 + 10*0.5},
		{"streak capped at 30", 0, 100, model.GroupTypeFree, 30 * 0.5},
		{"zero everything", 0, 0, model.GroupTypeFree, 0},
		{"negative streak clamped", 1, -3, model.GroupTypeFree, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MemberScore(tt.approvals, tt.streakDays, tt.groupType)
			if got != tt.want {
				t.Errorf("MemberScore(%d, %d, %s) = %v, want %v",
					tt.approvals, tt.streakDays, tt.groupType, got, tt.want)
			}
		})
	}
}

func TestGroupScoreEmptyGroup(t *testing.T) {
	g := &model.Group{ID: 1, GroupType: model.GroupTypeFree}

	total, avg := GroupScore(g)
	if total != 0 || avg != 0 {
		t.Errorf("GroupScore(empty) = (%v, %v), want (0, 0)", total, avg)
	}
}

func TestGroupScoreAverage(t *testing.T) {
	g := &model.Group{
		ID:        1,
		GroupType: model.GroupTypeFree,
		Members: []*model.Member{
			{ID: 1, Approvals: 1, StreakDays: 0},
			{ID: 2, Approvals: 3, StreakDays: 0},
		},
	}

	total, avg := GroupScore(g)
	if total != 48 {
		t.Errorf("total = %v, want 48", total)
	}
	if avg != 24 {
		t.Errorf("avg = %v, want 24", avg)
	}
}

func groupWithScore(id int64, approvals int) *model.Group {
	return &model.Group{
		ID:        id,
		GroupType: model.GroupTypeFree,
		Members:   []*model.Member{{ID: id, Approvals: approvals}},
	}
}

func TestRankOrdering(t *testing.T) {
	groups := []*model.Group{
		groupWithScore(10, 5), // 60
		groupWithScore(20, 8), // 96
		groupWithScore(30, 8), // 96
		groupWithScore(40, 2), // 24
	}

	entries := Rank(groups)
	if len(entries) != 4 {
		t.Fatalf("len(entries) = %d, want 4", len(entries))
	}

	// 平分按小组 ID 升序
	wantOrder := []int64{20, 30, 10, 40}
	for i, want := range wantOrder {
		if entries[i].Group.ID != want {
			t.Errorf("entries[%d].Group.ID = %d, want %d", i, entries[i].Group.ID, want)
		}
		if entries[i].Rank != i+1 {
			t.Errorf("entries[%d].Rank = %d, want %d", i, entries[i].Rank, i+1)
		}
	}
}

func TestRankDeterministic(t *testing.T) {
	groups := []*model.Group{
		groupWithScore(3, 4),
		groupWithScore(1, 4),
		groupWithScore(2, 4),
	}

	first := Rank(groups)
	for run := 0; run < 10; run++ {
		again := Rank(groups)
		for i := range first {
			if first[i].Group.ID != again[i].Group.ID {
				t.Fatalf("rank order changed between runs at index %d", i)
			}
		}
	}

	// 全部平分时顺序就是 ID 升序
	wantOrder := []int64{1, 2, 3}
	for i, want := range wantOrder {
		if first[i].Group.ID != want {
			t.Errorf("first[%d].Group.ID = %d, want %d", i, first[i].Group.ID, want)
		}
	}
}
