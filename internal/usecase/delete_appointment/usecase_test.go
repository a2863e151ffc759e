package delete_appointment

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-AgendaService/pkg/logger"
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

func (m *mockAppointmentRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

// nineWeekly девять вхождений серии s1 с шагом в неделю
func nineWeekly(anchor time.Time) []*domain.Appointment {
	seriesID := "s1"
	list := make([]*domain.Appointment, 0, 9)
	for i := 0; i < 9; i++ {
		list = append(list, &domain.Appointment{
			ID:              fmt.Sprintf("a%d", i),
			ClientID:        "c1",
			StartAt:         anchor.AddDate(0, 0, 7*i),
			DurationMinutes: 60,
			SeriesID:        &seriesID,
		})
	}
	return list
}

func TestExecute_FutureUsesNowAsCutoff(t *testing.T) {
	anchor := time.Date(2025, time.March, 3, 10, 0, 0, 0, time.UTC)
	series := nineWeekly(anchor)
	// сейчас между 6-м и 7-м вхождением, в будущем остаются a6, a7, a8
	now := anchor.AddDate(0, 0, 7*5).Add(24 * time.Hour)

	repo := &mockAppointmentRepo{}
	// удаляем начиная со 2-го вхождения, но граница - текущий момент
	repo.On("GetByID", mock.Anything, "a1").Return(series[1], nil)
	repo.On("ListBySeries", mock.Anything, "s1").Return(series, nil)
	repo.On("Delete", mock.Anything, mock.Anything).Return(nil)

	uc := NewUseCase(repo, fixedTime{now: now}, logger.NewNop())
	resp, err := uc.Execute(context.Background(), &Request{ID: "a1", Scope: domain.ScopeFuture})
	require.NoError(t, err)

	assert.Equal(t, []string{"a6", "a7", "a8"}, resp.Deleted)
	repo.AssertNumberOfCalls(t, "Delete", 3)
	for i := 0; i < 6; i++ {
		repo.AssertNotCalled(t, "Delete", mock.Anything, fmt.Sprintf("a%d", i))
	}
}

func TestExecute_Single(t *testing.T) {
	series := nineWeekly(time.Date(2025, time.March, 3, 10, 0, 0, 0, time.UTC))

	repo := &mockAppointmentRepo{}
	repo.On("GetByID", mock.Anything, "a4").Return(series[4], nil)
	repo.On("Delete", mock.Anything, "a4").Return(nil).Once()

	uc := NewUseCase(repo, fixedTime{now: series[0].StartAt}, logger.NewNop())
	resp, err := uc.Execute(context.Background(), &Request{ID: "a4"})
	require.NoError(t, err)

	assert.Equal(t, []string{"a4"}, resp.Deleted)
	repo.AssertNotCalled(t, "ListBySeries", mock.Anything, mock.Anything)
}

func TestExecute_FutureWithoutSeriesDeletesOne(t *testing.T) {
	lone := &domain.Appointment{ID: "x1", StartAt: time.Date(2025, time.March, 3, 10, 0, 0, 0, time.UTC)}

	repo := &mockAppointmentRepo{}
	repo.On("GetByID", mock.Anything, "x1").Return(lone, nil)
	repo.On("Delete", mock.Anything, "x1").Return(nil).Once()

	uc := NewUseCase(repo, fixedTime{now: lone.StartAt}, logger.NewNop())
	resp, err := uc.Execute(context.Background(), &Request{ID: "x1", Scope: domain.ScopeFuture})
	require.NoError(t, err)
	assert.Equal(t, []string{"x1"}, resp.Deleted)
}

func TestExecute_Errors(t *testing.T) {
	anchor := time.Date(2025, time.March, 3, 10, 0, 0, 0, time.UTC)

	t.Run("not found", func(t *testing.T) {
		repo := &mockAppointmentRepo{}
		repo.On("GetByID", mock.Anything, "missing").Return(nil, appointmentRepo.ErrAppointmentNotFound)

		uc := NewUseCase(repo, fixedTime{now: anchor}, logger.NewNop())
		_, err := uc.Execute(context.Background(), &Request{ID: "missing"})
		assert.ErrorIs(t, err, ErrAppointmentNotFound)
	})

	t.Run("invalid scope", func(t *testing.T) {
		uc := NewUseCase(&mockAppointmentRepo{}, fixedTime{now: anchor}, logger.NewNop())
		_, err := uc.Execute(context.Background(), &Request{ID: "a1", Scope: "all"})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("partial series", func(t *testing.T) {
		series := nineWeekly(anchor)
		repo := &mockAppointmentRepo{}
		repo.On("GetByID", mock.Anything, "a0").Return(series[0], nil)
		repo.On("ListBySeries", mock.Anything, "s1").Return(series, nil)
		repo.On("Delete", mock.Anything, "a0").Return(nil)
		repo.On("Delete", mock.Anything, "a1").Return(errors.New("db down"))

		uc := NewUseCase(repo, fixedTime{now: anchor}, logger.NewNop())
		resp, err := uc.Execute(context.Background(), &Request{ID: "a0", Scope: domain.ScopeFuture})
		require.ErrorIs(t, err, ErrPartialSeries)
		assert.Equal(t, []string{"a0"}, resp.Deleted)
	})
}
