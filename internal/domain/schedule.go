package domain

import (
	"time"

	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

// WorkingHours is the working window of one weekday
type WorkingHours struct {
	Start types.TimeString `json:"start"`
	End   types.TimeString `json:"end"`
}

// Validate checks both bounds and that Start < End
func (w WorkingHours) Validate() error {
	if err := w.Start.Validate(); err != nil {
		return err
	}
	if err := w.End.Validate(); err != nil {
		return err
	}
	if !w.Start.IsBefore(w.End) {
		return ErrInvalidWorkingHours
	}
	return nil
}

// WeeklySchedule maps weekday (0=Sunday..6=Saturday) to working hours.
// A missing or nil entry means the practitioner does not work that day.
type WeeklySchedule map[time.Weekday]*WorkingHours

// DefaultWeeklySchedule Tuesday to Thursday, 08:00-16:00
func DefaultWeeklySchedule() WeeklySchedule {
	return WeeklySchedule{
		time.Sunday:    nil,
		time.Monday:    nil,
		time.Tuesday:   {Start: "08:00", End: "16:00"},
		time.Wednesday: {Start: "08:00", End: "16:00"},
		time.Thursday:  {Start: "08:00", End: "16:00"},
		time.Friday:    nil,
		time.Saturday:  nil,
	}
}

// Validate checks weekday keys and every configured window
func (s WeeklySchedule) Validate() error {
	for day, hours := range s {
		if day < time.Sunday || day > time.Saturday {
			return ErrInvalidWeekday
		}
		if hours == nil {
			continue
		}
		if err := hours.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Holiday blocks a whole calendar day
type Holiday struct {
	ID   string
	Date time.Time // only the calendar date is meaningful
	Name string
}

// DateKey returns the holiday date as "YYYY-MM-DD"
func (h *Holiday) DateKey() string {
	return h.Date.Format(DateFormat)
}

// ScheduleModel answers availability questions from a weekly schedule and
// a holiday calendar. It is a read-only value built per request.
type ScheduleModel struct {
	weekly   WeeklySchedule
	holidays map[string]*Holiday
}

// NewScheduleModel builds the model; a nil weekly schedule means "never working"
func NewScheduleModel(weekly WeeklySchedule, holidays []*Holiday) *ScheduleModel {
	byDate := make(map[string]*Holiday, len(holidays))
	for _, h := range holidays {
		byDate[h.DateKey()] = h
	}
	return &ScheduleModel{weekly: weekly, holidays: byDate}
}

// WorkingHours returns the window for a weekday or nil if not working
func (m *ScheduleModel) WorkingHours(day time.Weekday) *WorkingHours {
	return m.weekly[day]
}

// IsHoliday returns the holiday on the calendar date of t, ignoring time of day
func (m *ScheduleModel) IsHoliday(t time.Time) *Holiday {
	return m.holidays[t.Format(DateFormat)]
}

// IsWorkingAt reports whether t is inside working hours on a non-holiday
func (m *ScheduleModel) IsWorkingAt(t time.Time) bool {
	if m.IsHoliday(t) != nil {
		return false
	}
	hours := m.WorkingHours(t.Weekday())
	if hours == nil {
		return false
	}
	start, err := hours.Start.Minutes()
	if err != nil {
		return false
	}
	end, err := hours.End.Minutes()
	if err != nil {
		return false
	}
	minute := MinuteOfDay(t)
	return minute >= start && minute < end
}

// MinuteOfDay returns minutes since local midnight of t
func MinuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}
