package utils

import (
	"time"
)

const dayLayout = "2006-01-02"

// DayString 返回日历日字符串（出勤判定、lastCompletionDate 都用它，不是时间戳）
func DayString(t time.Time) string {
	return t.Format(dayLayout)
}

// Today 返回本地时区的当天日历日字符串
func Today() string {
	return DayString(time.Now())
}

// ParseClock 解析时间字符串（格式：HH:MM:SS）并应用到指定日期
func ParseClock(clock string, date time.Time) (time.Time, error) {
	if clock == "" {
		return date, nil
	}

	parsed, err := time.Parse("15:04:05", clock)
	if err != nil {
		return date, err
	}

	return time.Date(
		date.Year(),
		date.Month(),
		date.Day(),
		parsed.Hour(),
		parsed.Minute(),
		parsed.Second(),
		0,
		date.Location(),
	), nil
}
