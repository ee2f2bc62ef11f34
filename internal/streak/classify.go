package streak

// Stage 连续打卡阶段，按天数阈值划分
type Stage struct {
	Name      string
	Icon      string
	Message   string
	Threshold int
}

// 阶段表按阈值从高到低排列，Classify 取第一个命中的
var stages = []Stage{
	{Name: "legend", Icon: "👑", Message: "1년 연속! 당신은 전설이에요", Threshold: 365},
	{Name: "fruit", Icon: "🍎", Message: "6개월 연속! 열매를 맺었어요", Threshold: 180},
	{Name: "tree", Icon: "🌳", Message: "3개월 연속! 큰 나무가 되었어요", Threshold: 90},
	{Name: "blossom", Icon: "🌸", Message: "한 달 연속! 꽃이 피었어요", Threshold: 30},
	{Name: "growth", Icon: "🌿", Message: "일주일 연속! 쑥쑥 자라고 있어요", Threshold: 7},
	{Name: "sprout", Icon: "🌱", Message: "새싹이 돋았어요, 시작이 반이에요", Threshold: 0},
}

// Milestones 里程碑天数，恰好命中时状态机走 Streak Modal 而不是徽章检查
var Milestones = map[int]bool{7: true, 30: true, 90: true, 180: true, 365: true}

// Classify 把连续打卡天数映射到阶段，全域、无失败
// 每次渲染都重新求值，不做缓存
func Classify(streakDays int) Stage {
	for _, s := range stages {
		if streakDays >= s.Threshold {
			return s
		}
	}
	// streakDays 为负时按 0 处理
	return stages[len(stages)-1]
}

// IsMilestone 判断天数是否恰好是里程碑
func IsMilestone(streakDays int) bool {
	return Milestones[streakDays]
}
