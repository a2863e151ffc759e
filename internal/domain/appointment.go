package domain

import "time"

// Recurrence is the repeat frequency of a booking series
type Recurrence string

const (
	RecurrenceWeekly   Recurrence = "weekly"
	RecurrenceBiweekly Recurrence = "biweekly"
	RecurrenceMonthly  Recurrence = "monthly"
)

// IsValid returns true for a known frequency
func (r Recurrence) IsValid() bool {
	return r == RecurrenceWeekly || r == RecurrenceBiweekly || r == RecurrenceMonthly
}

// Appointment is a single occurrence, standalone or part of a series
type Appointment struct {
	ID              string
	ClientID        string
	StartAt         time.Time // wall time in the business timezone
	DurationMinutes int
	Cost            *float64
	TagIDs          []string

	// Recurrence metadata is copied to every occurrence at creation time
	Recurrence       *Recurrence
	RecurrenceMonths *int
	SeriesID         *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// EndAt returns StartAt + duration
func (a *Appointment) EndAt() time.Time {
	return a.StartAt.Add(time.Duration(a.DurationMinutes) * time.Minute)
}

// IsInSeries returns true if the appointment belongs to a recurring series
func (a *Appointment) IsInSeries() bool {
	return a.SeriesID != nil && *a.SeriesID != ""
}

// Overlaps reports strict interval intersection with [start, end).
// Touching intervals (one ends exactly when the other starts) do not overlap.
func (a *Appointment) Overlaps(start, end time.Time) bool {
	return start.Before(a.EndAt()) && end.After(a.StartAt)
}

// HasTag returns true if the tag is attached to the appointment
func (a *Appointment) HasTag(tagID string) bool {
	for _, id := range a.TagIDs {
		if id == tagID {
			return true
		}
	}
	return false
}

// AppointmentsFilter фильтр выборки записей, все поля опциональны
type AppointmentsFilter struct {
	From     *time.Time // StartAt >= From
	To       *time.Time // StartAt < To
	ClientID *string
	SeriesID *string
}

// Scope selects which occurrences of a series an edit or delete touches
type Scope string

const (
	ScopeSingle Scope = "single" // only the given occurrence
	ScopeFuture Scope = "future" // the occurrence and the later ones of its series
)

// IsValid returns true for a known scope
func (s Scope) IsValid() bool {
	return s == ScopeSingle || s == ScopeFuture
}
