package domain

import "time"

// ReminderPreference is the client's WhatsApp reminder lead time
type ReminderPreference string

const (
	ReminderNone    ReminderPreference = ""
	Reminder24h     ReminderPreference = "24h"
	Reminder48h     ReminderPreference = "48h"
	ReminderOneWeek ReminderPreference = "1week"
)

// IsValid returns true for a known preference (including none)
func (p ReminderPreference) IsValid() bool {
	switch p {
	case ReminderNone, Reminder24h, Reminder48h, ReminderOneWeek:
		return true
	default:
		return false
	}
}

// LeadHours returns how many hours before the appointment the reminder is due
func (p ReminderPreference) LeadHours() (int, bool) {
	switch p {
	case Reminder24h:
		return 24, true
	case Reminder48h:
		return 48, true
	case ReminderOneWeek:
		return 168, true
	default:
		return 0, false
	}
}

// IsDue reports whether hoursUntil falls into the one-hour eligibility window
// (lead-1, lead]. The window width matches the hourly scheduler cadence.
func (p ReminderPreference) IsDue(hoursUntil float64) bool {
	lead, ok := p.LeadHours()
	if !ok {
		return false
	}
	return hoursUntil > float64(lead-1) && hoursUntil <= float64(lead)
}

// Client represents a customer of the practice
type Client struct {
	ID               string
	Name             string
	Surname          *string
	Phone            string // digits, optional "+<country>" prefix
	WhatsappReminder ReminderPreference
	Notes            *string

	// Visits is the number of appointments, filled by list queries only
	Visits int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// WhatsappEnabled returns true when the client opted in to WhatsApp reminders.
// Opt-in is expressed by choosing a lead time; ReminderNone means opted out.
func (c *Client) WhatsappEnabled() bool {
	return c.WhatsappReminder != ReminderNone
}

// IsReminderEligible returns true if the scheduler may remind this client
func (c *Client) IsReminderEligible() bool {
	return c.Phone != "" && c.WhatsappEnabled()
}

// FullName returns name and surname joined by a space
func (c *Client) FullName() string {
	if c.Surname == nil || *c.Surname == "" {
		return c.Name
	}
	return c.Name + " " + *c.Surname
}
