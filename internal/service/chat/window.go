package chat

import (
	"time"
)

// dateWindow is a half-open [From, To) range of creation timestamps,
// computed on calendar-day boundaries in the server's local time.
type dateWindow struct {
	From time.Time
	To   time.Time
}

// dayStart returns midnight of t's calendar day in t's location.
func dayStart(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// todayWindow covers the current calendar day.
func todayWindow(now time.Time) dateWindow {
	from := dayStart(now)
	return dateWindow{From: from, To: from.AddDate(0, 0, 1)}
}

// yesterdayWindow covers the previous calendar day.
func yesterdayWindow(now time.Time) dateWindow {
	to := dayStart(now)
	return dateWindow{From: to.AddDate(0, 0, -1), To: to}
}

// sevenDayWindow covers [today-7d, yesterday): the seven calendar days
// before yesterday, excluding both yesterday and today.
func sevenDayWindow(now time.Time) dateWindow {
	today := dayStart(now)
	return dateWindow{
		From: today.AddDate(0, 0, -7),
		To:   today.AddDate(0, 0, -1),
	}
}
