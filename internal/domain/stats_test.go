package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeClientStats(t *testing.T) {
	now := time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)
	cost := func(v float64) *float64 { return &v }

	clients := []*Client{{ID: "c1", Name: "Ana"}, {ID: "c2", Name: "Luis"}}
	appointments := []*Appointment{
		{ID: "a1", ClientID: "c1", StartAt: now.Add(-48 * time.Hour), DurationMinutes: 60, Cost: cost(40)},
		{ID: "a2", ClientID: "c1", StartAt: now.Add(-24 * time.Hour), DurationMinutes: 45},
		{ID: "a3", ClientID: "c1", StartAt: now.Add(24 * time.Hour), DurationMinutes: 90, Cost: cost(70)},
	}

	stats := ComputeClientStats(clients, appointments, now)
	require.Len(t, stats, 2)

	assert.Equal(t, "c1", stats[0].Client.ID)
	assert.Equal(t, 2, stats[0].Total)
	assert.Equal(t, 40.0, stats[0].Revenue)
	assert.Equal(t, 53, stats[0].AvgDurationMinutes)

	assert.Equal(t, "c2", stats[1].Client.ID)
	assert.Zero(t, stats[1].Total)
	assert.Zero(t, stats[1].AvgDurationMinutes)
}
