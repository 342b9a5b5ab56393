package domain

import "time"

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD string in local time.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

// FormatDate renders a time as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// weekdayIndex returns the 0-based offset of t's weekday from the configured
// week start day.
func weekdayIndex(t time.Time, weekStart time.Weekday) int {
	return (int(t.Weekday()) - int(weekStart) + 7) % 7
}

// WeekStartOf returns midnight of the first day of the week containing t.
func WeekStartOf(t time.Time, weekStart time.Weekday) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return day.AddDate(0, 0, -weekdayIndex(day, weekStart))
}

// WeekDates returns the seven YYYY-MM-DD dates of the week containing t,
// starting from the configured week start day.
func WeekDates(t time.Time, weekStart time.Weekday) []string {
	start := WeekStartOf(t, weekStart)
	dates := make([]string, 7)
	for i := range dates {
		dates[i] = FormatDate(start.AddDate(0, 0, i))
	}
	return dates
}
