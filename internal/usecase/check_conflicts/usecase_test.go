package check_conflicts

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/internal/planning"
	"github.com/m04kA/SMC-AgendaService/pkg/logger"
	"github.com/m04kA/SMC-AgendaService/pkg/ptr"
)

type stubLoader struct {
	snapshot *planning.Snapshot
	err      error
}

func (s stubLoader) Snapshot(context.Context) (*planning.Snapshot, error) {
	return s.snapshot, s.err
}

func TestExecute(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Madrid")
	require.NoError(t, err)

	holidays := []*domain.Holiday{{ID: "h1", Date: time.Date(2025, time.March, 18, 0, 0, 0, 0, loc), Name: "San José"}}
	existing := &domain.Appointment{
		ID:              "a1",
		ClientID:        "c1",
		StartAt:         time.Date(2025, time.March, 25, 10, 30, 0, 0, loc),
		DurationMinutes: 60,
	}
	uc := NewUseCase(stubLoader{snapshot: &planning.Snapshot{
		Schedule:     domain.NewScheduleModel(domain.DefaultWeeklySchedule(), holidays),
		Appointments: []*domain.Appointment{existing},
		ClientNames:  map[string]string{"c1": "Ana"},
	}}, 6, logger.NewNop())

	start := time.Date(2025, time.March, 4, 10, 0, 0, 0, loc)

	t.Run("single candidate", func(t *testing.T) {
		resp, err := uc.Execute(context.Background(), &Request{StartAt: start, DurationMinutes: 60})
		require.NoError(t, err)
		assert.Empty(t, resp.Findings)
		assert.Empty(t, resp.Occurrences)
	})

	t.Run("recurring candidate", func(t *testing.T) {
		weekly := domain.RecurrenceWeekly
		resp, err := uc.Execute(context.Background(), &Request{
			StartAt:          start,
			DurationMinutes:  60,
			Recurrence:       &weekly,
			RecurrenceMonths: ptr.Ptr(1),
		})
		require.NoError(t, err)

		assert.Empty(t, resp.Findings)
		require.Len(t, resp.Occurrences, 2)
		assert.Equal(t, 2, resp.Occurrences[0].Index)
		assert.Equal(t, "2025-03-18", resp.Occurrences[0].Date)
		assert.Equal(t, planning.FindingHoliday, resp.Occurrences[0].Findings[0].Kind)
		assert.Equal(t, 3, resp.Occurrences[1].Index)
		assert.Equal(t, "2025-03-25", resp.Occurrences[1].Date)
		assert.Equal(t, "Solapamiento con: Ana", resp.Occurrences[1].Findings[0].Message)
	})

	t.Run("edit excludes itself", func(t *testing.T) {
		resp, err := uc.Execute(context.Background(), &Request{
			StartAt:         existing.StartAt,
			DurationMinutes: 60,
			ExcludeID:       "a1",
		})
		require.NoError(t, err)
		assert.Empty(t, resp.Findings)
	})

	t.Run("invalid duration", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), &Request{StartAt: start})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestExecute_LoaderError(t *testing.T) {
	uc := NewUseCase(stubLoader{err: errors.New("db down")}, 6, logger.NewNop())

	_, err := uc.Execute(context.Background(), &Request{
		StartAt:         time.Date(2025, time.March, 4, 10, 0, 0, 0, time.UTC),
		DurationMinutes: 60,
	})
	assert.ErrorIs(t, err, ErrInternal)
}
