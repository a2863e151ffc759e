package calendar

import (
	"strings"
	"testing"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/pkg/logger"
)

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time { return f.now }

func TestBuild(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Madrid")
	require.NoError(t, err)

	svc := NewService(nil, nil, nil, nil, "Agenda", loc, logger.NewNop())
	svc.timeProvider = fixedTime{now: time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)}

	cost := 45.0
	out := svc.build(
		[]*domain.Appointment{{
			ID:              "a1",
			ClientID:        "c1",
			StartAt:         time.Date(2025, time.March, 4, 10, 0, 0, 0, loc),
			DurationMinutes: 90,
			Cost:            &cost,
			TagIDs:          []string{"t1", "missing"},
		}},
		[]*domain.Client{{ID: "c1", Name: "Ana"}},
		[]*domain.Tag{{ID: "t1", Name: "Deportivo"}},
		[]*domain.Holiday{{ID: "h1", Date: time.Date(2025, time.March, 19, 0, 0, 0, 0, loc), Name: "San José"}},
	)

	cal, err := ical.ParseCalendar(strings.NewReader(out))
	require.NoError(t, err)

	events := cal.Events()
	require.Len(t, events, 2)

	appointment := events[0]
	assert.Equal(t, "a1", appointment.GetProperty(ical.ComponentPropertyUniqueId).Value)
	assert.Equal(t, "Ana", appointment.GetProperty(ical.ComponentPropertySummary).Value)
	assert.Equal(t, "Deportivo", appointment.GetProperty(ical.ComponentPropertyCategories).Value)

	start, err := appointment.GetStartAt()
	require.NoError(t, err)
	assert.True(t, start.Equal(time.Date(2025, time.March, 4, 9, 0, 0, 0, time.UTC)))

	end, err := appointment.GetEndAt()
	require.NoError(t, err)
	assert.Equal(t, 90*time.Minute, end.Sub(start))

	assert.Equal(t, "San José", events[1].GetProperty(ical.ComponentPropertySummary).Value)
}
