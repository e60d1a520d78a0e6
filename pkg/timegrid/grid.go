package timegrid

import (
	"fmt"
	"time"
)

const (
	// MinutesPerDay is the number of addressable minute slots in one day.
	MinutesPerDay = 1440
	// LastMinute is the highest valid minute index.
	LastMinute = MinutesPerDay - 1

	dayKeyLayout = "2006-01-02"
)

// MonthCell is one cell of a month grid. Leading cells before the first day
// of the month are empty so that day 1 lands on its weekday column.
type MonthCell struct {
	Day   time.Time
	Empty bool
}

// Midnight normalizes a date to 00:00:00 in its own location.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DayKey formats a date as YYYY-MM-DD. Two times on the same calendar day
// produce the same key regardless of time-of-day.
func DayKey(t time.Time) string {
	return t.Format(dayKeyLayout)
}

// ParseDayKey parses a YYYY-MM-DD key back into a midnight local date.
func ParseDayKey(key string) (time.Time, error) {
	t, err := time.ParseInLocation(dayKeyLayout, key, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid day key %q: %w", key, err)
	}
	return t, nil
}

// DayMinutes returns all minute indices of a day view, in order.
func DayMinutes() []int {
	minutes := make([]int, MinutesPerDay)
	for i := range minutes {
		minutes[i] = i
	}
	return minutes
}

// WeekOf returns the seven days of the week containing t, starting on Sunday,
// each normalized to midnight.
func WeekOf(t time.Time) [7]time.Time {
	start := Midnight(t).AddDate(0, 0, -int(t.Weekday()))
	var week [7]time.Time
	for i := range week {
		week[i] = start.AddDate(0, 0, i)
	}
	return week
}

// MonthCells returns the cells of a month grid for the month containing t.
// The first day of the month is padded with empty cells up to its weekday
// column; there is no trailing padding.
func MonthCells(t time.Time) []MonthCell {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	daysInMonth := first.AddDate(0, 1, -1).Day()

	cells := make([]MonthCell, 0, int(first.Weekday())+daysInMonth)
	for i := 0; i < int(first.Weekday()); i++ {
		cells = append(cells, MonthCell{Empty: true})
	}
	for day := 1; day <= daysInMonth; day++ {
		cells = append(cells, MonthCell{Day: first.AddDate(0, 0, day-1)})
	}
	return cells
}

// RoundUpToHour rounds a minute index up to the next full-hour boundary.
// A minute already on the boundary stays put. The result is clamped so the
// last partial hour of the day cannot round past the minute domain.
func RoundUpToHour(minute int) int {
	rounded := ((minute + 59) / 60) * 60
	return ClampMinute(rounded)
}

// ClampMinute forces a minute index into [0, LastMinute].
func ClampMinute(minute int) int {
	if minute < 0 {
		return 0
	}
	if minute > LastMinute {
		return LastMinute
	}
	return minute
}
