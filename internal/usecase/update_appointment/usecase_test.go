package update_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-AgendaService/internal/planning"
	"github.com/m04kA/SMC-AgendaService/pkg/logger"
	"github.com/m04kA/SMC-AgendaService/pkg/ptr"
)

type mockAppointmentRepo struct{ mock.Mock }

func (m *mockAppointmentRepo) GetByID(ctx context.Context, id string) (*domain.Appointment, error) {
	args := m.Called(ctx, id)
	if a, ok := args.Get(0).(*domain.Appointment); ok {
		return a, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAppointmentRepo) ListBySeries(ctx context.Context, seriesID string) ([]*domain.Appointment, error) {
	args := m.Called(ctx, seriesID)
	if list, ok := args.Get(0).([]*domain.Appointment); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAppointmentRepo) Update(ctx context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	args := m.Called(ctx, a)
	if err := args.Error(1); err != nil {
		return nil, err
	}
	return a, nil
}

type mockClientRepo struct{ mock.Mock }

func (m *mockClientRepo) GetByID(ctx context.Context, id string) (*domain.Client, error) {
	args := m.Called(ctx, id)
	if c, ok := args.Get(0).(*domain.Client); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

type stubLoader struct{ snapshot *planning.Snapshot }

func (s stubLoader) Snapshot(context.Context) (*planning.Snapshot, error) {
	return s.snapshot, nil
}

var madrid, _ = time.LoadLocation("Europe/Madrid")

// series три вхождения по вторникам в 10:00
func series() []*domain.Appointment {
	seriesID := "s1"
	weekly := domain.RecurrenceWeekly
	start := time.Date(2025, time.March, 4, 10, 0, 0, 0, madrid)

	list := make([]*domain.Appointment, 0, 3)
	for i, id := range []string{"a0", "a1", "a2"} {
		list = append(list, &domain.Appointment{
			ID:              id,
			ClientID:        "c1",
			StartAt:         start.AddDate(0, 0, 7*i),
			DurationMinutes: 60,
			TagIDs:          []string{},
			Recurrence:      &weekly,
			SeriesID:        &seriesID,
		})
	}
	return list
}

func setup(stored []*domain.Appointment) (*UseCase, *mockAppointmentRepo) {
	appointments := &mockAppointmentRepo{}
	clients := &mockClientRepo{}

	for _, a := range stored {
		copied := *a
		appointments.On("GetByID", mock.Anything, a.ID).Return(&copied, nil)
	}
	appointments.On("GetByID", mock.Anything, "missing").Return(nil, appointmentRepo.ErrAppointmentNotFound)
	clients.On("GetByID", mock.Anything, mock.Anything).Return(&domain.Client{ID: "c1", Name: "Ana"}, nil)

	loader := stubLoader{snapshot: &planning.Snapshot{
		Schedule:     domain.NewScheduleModel(domain.DefaultWeeklySchedule(), nil),
		Appointments: stored,
		ClientNames:  map[string]string{"c1": "Ana"},
	}}

	return NewUseCase(appointments, clients, loader, logger.NewNop()), appointments
}

func TestExecute_FutureShiftsTail(t *testing.T) {
	stored := series()
	uc, appointments := setup(stored)
	appointments.On("ListBySeries", mock.Anything, "s1").Return(series(), nil)
	appointments.On("Update", mock.Anything, mock.AnythingOfType("*domain.Appointment")).Return(nil, nil)

	edited := stored[1].StartAt.Add(2 * time.Hour)
	resp, err := uc.Execute(context.Background(), &Request{
		ID:              "a1",
		Scope:           domain.ScopeFuture,
		ClientID:        "c1",
		StartAt:         edited,
		DurationMinutes: 90,
		Cost:            ptr.Ptr(50.0),
		TagIDs:          []string{"t1"},
	})
	require.NoError(t, err)

	require.Len(t, resp.Updated, 2)
	assert.Equal(t, "a1", resp.Updated[0].Appointment.ID)
	assert.True(t, resp.Updated[0].Appointment.StartAt.Equal(edited))
	assert.Equal(t, "a2", resp.Updated[1].Appointment.ID)
	assert.True(t, resp.Updated[1].Appointment.StartAt.Equal(stored[2].StartAt.Add(2*time.Hour)))

	for _, occ := range resp.Updated {
		assert.Equal(t, 90, occ.Appointment.DurationMinutes)
		assert.Equal(t, 50.0, *occ.Appointment.Cost)
		assert.Equal(t, []string{"t1"}, occ.Appointment.TagIDs)
		assert.Equal(t, "s1", *occ.Appointment.SeriesID)
		// 12:00-13:30 в пределах 08:00-16:00, пересечений нет
		assert.Empty(t, occ.Findings)
	}

	// a0 раньше редактируемого вхождения и не трогается
	appointments.AssertNumberOfCalls(t, "Update", 2)
	for _, call := range appointments.Calls {
		if call.Method == "Update" {
			assert.NotEqual(t, "a0", call.Arguments.Get(1).(*domain.Appointment).ID)
		}
	}
}

func TestExecute_FutureShiftOntoSiblingSlot(t *testing.T) {
	stored := series()
	uc, appointments := setup(stored)
	appointments.On("ListBySeries", mock.Anything, "s1").Return(series(), nil)
	appointments.On("Update", mock.Anything, mock.AnythingOfType("*domain.Appointment")).Return(nil, nil)

	// a1 переносится на неделю, на место a2, которое тоже сдвигается
	edited := stored[1].StartAt.AddDate(0, 0, 7)
	resp, err := uc.Execute(context.Background(), &Request{
		ID:              "a1",
		Scope:           domain.ScopeFuture,
		ClientID:        "c1",
		StartAt:         edited,
		DurationMinutes: 60,
		TagIDs:          []string{},
	})
	require.NoError(t, err)

	require.Len(t, resp.Updated, 2)
	assert.True(t, resp.Updated[0].Appointment.StartAt.Equal(time.Date(2025, time.March, 18, 10, 0, 0, 0, madrid)))
	for _, occ := range resp.Updated {
		for _, f := range occ.Findings {
			assert.NotEqual(t, planning.FindingOverlap, f.Kind, "id=%s: %s", occ.Appointment.ID, f.Message)
		}
	}
}

func TestExecute_Single(t *testing.T) {
	stored := series()
	uc, appointments := setup(stored)
	appointments.On("Update", mock.Anything, mock.AnythingOfType("*domain.Appointment")).Return(nil, nil).Once()

	// переносим на 15:30, выходит за конец рабочего дня
	resp, err := uc.Execute(context.Background(), &Request{
		ID:              "a1",
		ClientID:        "c1",
		StartAt:         time.Date(2025, time.March, 11, 15, 30, 0, 0, madrid),
		DurationMinutes: 60,
	})
	require.NoError(t, err)

	require.Len(t, resp.Updated, 1)
	assert.Equal(t, "s1", *resp.Updated[0].Appointment.SeriesID)
	require.Len(t, resp.Updated[0].Findings, 1)
	assert.Equal(t, planning.FindingSchedule, resp.Updated[0].Findings[0].Kind)

	appointments.AssertNotCalled(t, "ListBySeries", mock.Anything, mock.Anything)
}

func TestExecute_FutureWithoutSeries(t *testing.T) {
	lone := &domain.Appointment{ID: "x1", ClientID: "c1", StartAt: time.Date(2025, time.March, 4, 10, 0, 0, 0, madrid), DurationMinutes: 60}
	uc, appointments := setup([]*domain.Appointment{lone})

	_, err := uc.Execute(context.Background(), &Request{
		ID:              "x1",
		Scope:           domain.ScopeFuture,
		ClientID:        "c1",
		StartAt:         lone.StartAt,
		DurationMinutes: 60,
	})
	assert.ErrorIs(t, err, ErrNotInSeries)
	appointments.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestExecute_NotFound(t *testing.T) {
	uc, _ := setup(nil)

	_, err := uc.Execute(context.Background(), &Request{
		ID:              "missing",
		ClientID:        "c1",
		StartAt:         time.Date(2025, time.March, 4, 10, 0, 0, 0, madrid),
		DurationMinutes: 60,
	})
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestExecute_InvalidScope(t *testing.T) {
	uc, _ := setup(nil)

	_, err := uc.Execute(context.Background(), &Request{
		ID:              "a1",
		Scope:           domain.Scope("all"),
		ClientID:        "c1",
		StartAt:         time.Date(2025, time.March, 4, 10, 0, 0, 0, madrid),
		DurationMinutes: 60,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
