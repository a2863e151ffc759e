package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	holidayRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/holiday"
	scheduleRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/schedule"
	"github.com/m04kA/SMC-AgendaService/pkg/logger"
)

type mockScheduleRepo struct {
	mock.Mock
}

func (m *mockScheduleRepo) Get(ctx context.Context) (domain.WeeklySchedule, error) {
	args := m.Called(ctx)
	if s := args.Get(0); s != nil {
		return s.(domain.WeeklySchedule), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockScheduleRepo) Save(ctx context.Context, schedule domain.WeeklySchedule) error {
	return m.Called(ctx, schedule).Error(0)
}

type mockHolidayRepo struct {
	mock.Mock
}

func (m *mockHolidayRepo) Create(ctx context.Context, holidays ...*domain.Holiday) ([]*domain.Holiday, error) {
	args := m.Called(ctx, holidays)
	return holidays, args.Error(0)
}

func (m *mockHolidayRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockHolidayRepo) List(ctx context.Context, from *time.Time) ([]*domain.Holiday, error) {
	args := m.Called(ctx, from)
	return args.Get(0).([]*domain.Holiday), args.Error(1)
}

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time { return f.now }

func newService(t *testing.T) (*Service, *mockScheduleRepo, *mockHolidayRepo) {
	t.Helper()
	sr := &mockScheduleRepo{}
	hr := &mockHolidayRepo{}
	loc, err := time.LoadLocation("Europe/Madrid")
	require.NoError(t, err)

	svc := NewService(sr, hr, loc, logger.NewNop())
	svc.timeProvider = fixedTime{now: time.Date(2025, time.May, 10, 23, 30, 0, 0, time.UTC)}
	return svc, sr, hr
}

func TestWeekly_DefaultsWhenMissing(t *testing.T) {
	svc, sr, _ := newService(t)
	sr.On("Get", mock.Anything).Return(nil, scheduleRepo.ErrScheduleNotFound)

	weekly, err := svc.Weekly(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultWeeklySchedule(), weekly)
}

func TestSaveWeekly_FillsMissingDays(t *testing.T) {
	svc, sr, _ := newService(t)
	sr.On("Save", mock.Anything, mock.MatchedBy(func(s domain.WeeklySchedule) bool {
		return len(s) == 7 && s[time.Friday] != nil && s[time.Monday] == nil
	})).Return(nil)

	saved, err := svc.SaveWeekly(context.Background(), domain.WeeklySchedule{
		time.Friday: {Start: "10:00", End: "14:00"},
	})
	require.NoError(t, err)
	assert.Len(t, saved, 7)
	sr.AssertExpectations(t)
}

func TestSaveWeekly_Invalid(t *testing.T) {
	svc, _, _ := newService(t)

	_, err := svc.SaveWeekly(context.Background(), domain.WeeklySchedule{
		time.Friday: {Start: "14:00", End: "10:00"},
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestListHolidays_UpcomingUsesBusinessDate(t *testing.T) {
	svc, _, hr := newService(t)

	// 23:30 UTC 10 мая = 01:30 11 мая в Мадриде
	hr.On("List", mock.Anything, mock.MatchedBy(func(from *time.Time) bool {
		return from != nil && from.Format(domain.DateFormat) == "2025-05-11"
	})).Return([]*domain.Holiday{}, nil)

	_, err := svc.ListHolidays(context.Background(), true)
	require.NoError(t, err)
	hr.AssertExpectations(t)
}

func TestCreateHolidays_Bulk(t *testing.T) {
	svc, _, hr := newService(t)
	hr.On("Create", mock.Anything, mock.Anything).Return(nil)

	created, err := svc.CreateHolidays(context.Background(), []HolidayInput{
		{Date: "2025-12-25", Name: "Navidad"},
		{Date: "2026-01-06", Name: "Reyes"},
	})
	require.NoError(t, err)
	require.Len(t, created, 2)
	assert.Equal(t, "2026-01-06", created[1].DateKey())
}

func TestCreateHolidays_InvalidDate(t *testing.T) {
	svc, _, _ := newService(t)

	_, err := svc.CreateHolidays(context.Background(), []HolidayInput{{Date: "25/12/2025", Name: "Navidad"}})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDeleteHoliday_NotFound(t *testing.T) {
	svc, _, hr := newService(t)
	hr.On("Delete", mock.Anything, "h1").Return(holidayRepo.ErrHolidayNotFound)

	err := svc.DeleteHoliday(context.Background(), "h1")
	assert.ErrorIs(t, err, ErrHolidayNotFound)
}
