package model

// Badge 一次性成就徽章
type Badge struct {
	Name        string `json:"name"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// 徽章目录。Name 是持久化到 earnedBadges 的键，不可改
var (
	BadgeFirstStep = Badge{
		Name:        "first_step",
		Title:       "첫 걸음",
		Description: "첫 출석 체크를 완료했어요",
		Icon:        "👣",
	}
	BadgeWeekStreak = Badge{
		Name:        "week_streak",
		Title:       "7일 연속",
		Description: "7일 연속으로 출석했어요",
		Icon:        "🔥",
	}
	BadgeMonthlyChampion = Badge{
		Name:        "monthly_champion",
		Title:       "이달의 챔피언",
		Description: "누적 출석 30일을 달성했어요",
		Icon:        "🏆",
	}
	BadgeRoutineMaster = Badge{
		Name:        "routine_master",
		Title:       "루틴 마스터",
		Description: "루틴을 100번 완료했어요",
		Icon:        "🎖️",
	}
)

// BadgeCatalog 按 Name 查找徽章定义
var BadgeCatalog = map[string]Badge{
	BadgeFirstStep.Name:       BadgeFirstStep,
	BadgeWeekStreak.Name:      BadgeWeekStreak,
	BadgeMonthlyChampion.Name: BadgeMonthlyChampion,
	BadgeRoutineMaster.Name:   BadgeRoutineMaster,
}
