package domain

import "time"

// SentReminder is the dedup marker for an (appointment, preference) pair.
// It is created once and never updated.
type SentReminder struct {
	ID            string // DedupKey(AppointmentID, Preference)
	AppointmentID string
	ClientID      string
	Preference    ReminderPreference
	SentAt        time.Time
}

// DedupKey builds the marker key "<appointmentId>_<preference>"
func DedupKey(appointmentID string, preference ReminderPreference) string {
	return appointmentID + "_" + string(preference)
}
