package model

// GroupType 小组认证模式
type GroupType string

const (
	GroupTypeFree     GroupType = "FREE"     // 自由打卡，权重 1.2
	GroupTypeRequired GroupType = "REQUIRED" // 强制认证，权重 1.5
)

// IsValidGroupType 判断小组类型是否合法
func IsValidGroupType(t GroupType) bool {
	return t == GroupTypeFree || t == GroupTypeRequired
}

// Member 小组成员
// IsCertified 在本周期内最近一次凭证被通过后置 true
type Member struct {
	ID          int64  `json:"id"`
	Nickname    string `json:"nickname"`
	ProfileURL  string `json:"profile_url"`
	IsCertified bool   `json:"is_certified"`
	Approvals   int    `json:"approvals"`   // 累计通过次数，排名打分用
	StreakDays  int    `json:"streak_days"` // 成员连续打卡天数快照
}

// Group 一个习惯小组，共享例程嵌在 Routines 里
type Group struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	MemberCount int        `json:"member_count"`
	GroupType   GroupType  `json:"group_type"`
	Category    string     `json:"category"`
	AuthTime    string     `json:"auth_time"` // 认证提醒时刻 "HH:MM:SS"
	MaxMembers  int        `json:"max_members"`
	Routines    []*Routine `json:"routines"`
	Members     []*Member  `json:"members"`
}

// FindRoutine 按 ID 在小组例程列表中查找
func (g *Group) FindRoutine(routineID int64) *Routine {
	for _, r := range g.Routines {
		if r.ID == routineID {
			return r
		}
	}
	return nil
}

// FindMember 按用户 ID 查找小组成员
func (g *Group) FindMember(userID int64) *Member {
	for _, m := range g.Members {
		if m.ID == userID {
			return m
		}
	}
	return nil
}
