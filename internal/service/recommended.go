package service

import "RoutineOK/internal/model"

// 추천 루틴 목록，「추천 루틴 추가」动作的数据源，内容固定
var recommendedCatalog = []model.RecommendedRoutine{
	{
		Name:        "물 2L 마시기",
		Description: "하루 동안 물 2리터를 마셔요",
		Time:        "09:00:00",
		Frequency:   []model.Weekday{model.WeekdayMon, model.WeekdayTue, model.WeekdayWed, model.WeekdayThu, model.WeekdayFri, model.WeekdaySat, model.WeekdaySun},
		Difficulty:  model.DifficultyEasy,
		Category:    "건강",
	},
	{
		Name:        "아침 스트레칭",
		Description: "일어나서 10분 스트레칭으로 하루를 시작해요",
		Time:        "07:00:00",
		Frequency:   []model.Weekday{model.WeekdayMon, model.WeekdayTue, model.WeekdayWed, model.WeekdayThu, model.WeekdayFri},
		Difficulty:  model.DifficultyEasy,
		Category:    "운동",
	},
	{
		Name:        "독서 30분",
		Description: "자기 전에 30분 책을 읽어요",
		Time:        "22:00:00",
		Frequency:   []model.Weekday{model.WeekdayMon, model.WeekdayWed, model.WeekdayFri, model.WeekdaySun},
		Difficulty:  model.DifficultyNormal,
		Category:    "자기계발",
	},
	{
		Name:        "하루 일기 쓰기",
		Description: "오늘 하루를 짧게 기록해요",
		Time:        "23:00:00",
		Frequency:   []model.Weekday{model.WeekdayMon, model.WeekdayTue, model.WeekdayWed, model.WeekdayThu, model.WeekdayFri, model.WeekdaySat, model.WeekdaySun},
		Difficulty:  model.DifficultyEasy,
		Category:    "자기계발",
	},
	{
		Name:        "30분 러닝",
		Description: "동네 한 바퀴, 30분 달리기",
		Time:        "19:00:00",
		Frequency:   []model.Weekday{model.WeekdayTue, model.WeekdayThu, model.WeekdaySat},
		Difficulty:  model.DifficultyHard,
		Category:    "운동",
	},
	{
		Name:        "영어 단어 20개 외우기",
		Description: "매일 영어 단어 20개를 외워요",
		Time:        "20:00:00",
		Frequency:   []model.Weekday{model.WeekdayMon, model.WeekdayTue, model.WeekdayWed, model.WeekdayThu, model.WeekdayFri},
		Difficulty:  model.DifficultyNormal,
		Category:    "공부",
	},
}

func findRecommended(name string) *model.RecommendedRoutine {
	for i := range recommendedCatalog {
		if recommendedCatalog[i].Name == name {
			return &recommendedCatalog[i]
		}
	}
	return nil
}
