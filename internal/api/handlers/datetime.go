package handlers

import (
	"time"
)

// DateTimeLayout локальное время записи без таймзоны: "2025-03-03T10:00"
const DateTimeLayout = "2006-01-02T15:04"

// ParseDateTime разбирает время записи.
// Без смещения время считается временем бизнеса, RFC3339 принимается как есть.
func ParseDateTime(s string, loc *time.Location) (time.Time, error) {
	if t, err := time.ParseInLocation(DateTimeLayout, s, loc); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.In(loc), nil
}

// FormatDateTime форматирует время записи в таймзоне бизнеса
func FormatDateTime(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(DateTimeLayout)
}
