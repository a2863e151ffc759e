package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReminderPreference_IsDue(t *testing.T) {
	tests := []struct {
		pref  ReminderPreference
		hours float64
		want  bool
	}{
		{Reminder24h, 24 + 1.0/60, false},
		{Reminder24h, 24, true},
		{Reminder24h, 23 + 59.0/60, true},
		{Reminder24h, 23, false},
		{Reminder24h, 22, false},
		{Reminder48h, 47.5, true},
		{Reminder48h, 23.5, false},
		{ReminderOneWeek, 167.2, true},
		{ReminderOneWeek, 168.1, false},
		{ReminderNone, 23.5, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.pref.IsDue(tt.hours), "%q at %.3fh", tt.pref, tt.hours)
	}
}

func TestClient_IsReminderEligible(t *testing.T) {
	assert.True(t, (&Client{Phone: "612345678", WhatsappReminder: Reminder24h}).IsReminderEligible())
	assert.False(t, (&Client{Phone: "", WhatsappReminder: Reminder24h}).IsReminderEligible())
	assert.False(t, (&Client{Phone: "612345678"}).IsReminderEligible())
}

func TestClient_FullName(t *testing.T) {
	surname := "López"
	assert.Equal(t, "Marta López", (&Client{Name: "Marta", Surname: &surname}).FullName())
	assert.Equal(t, "Marta", (&Client{Name: "Marta"}).FullName())
}

func TestDedupKey(t *testing.T) {
	assert.Equal(t, "apt-1_24h", DedupKey("apt-1", Reminder24h))
	assert.Equal(t, "apt-1_1week", DedupKey("apt-1", ReminderOneWeek))
}
