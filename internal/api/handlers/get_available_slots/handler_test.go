package get_available_slots

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	getAvailableSlots "github.com/m04kA/SMC-AgendaService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-AgendaService/pkg/logger"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	args := m.Called(ctx, req)
	if resp := args.Get(0); resp != nil {
		return resp.(*getAvailableSlots.Response), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestHandle(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Madrid")
	require.NoError(t, err)

	day := time.Date(2025, time.March, 4, 0, 0, 0, 0, loc)

	t.Run("returns free slots", func(t *testing.T) {
		uc := &mockUseCase{}
		uc.On("Execute", mock.Anything, &getAvailableSlots.Request{Date: day, DurationMinutes: 45, StepMinutes: 15}).
			Return(&getAvailableSlots.Response{
				Date:         day,
				WorkingHours: &getAvailableSlots.WorkingWindow{Start: "08:00", End: "16:00"},
				Slots: []getAvailableSlots.Slot{{
					StartAt:         time.Date(2025, time.March, 4, 9, 15, 0, 0, loc),
					StartTime:       "09:15",
					DurationMinutes: 45,
				}},
			}, nil)

		rr := httptest.NewRecorder()
		NewHandler(uc, loc, logger.NewNop()).Handle(rr,
			httptest.NewRequest(http.MethodGet, "/api/v1/slots?date=2025-03-04&duration=45&step=15", nil))

		require.Equal(t, http.StatusOK, rr.Code)

		var body AvailableSlotsResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, "2025-03-04", body.Date)
		assert.Empty(t, body.Closed)
		require.Len(t, body.Slots, 1)
		assert.Equal(t, "09:15", body.Slots[0].StartTime)
		assert.Equal(t, "2025-03-04T09:15", body.Slots[0].DateTime)
		uc.AssertExpectations(t)
	})

	t.Run("holiday", func(t *testing.T) {
		uc := &mockUseCase{}
		uc.On("Execute", mock.Anything, mock.Anything).Return(&getAvailableSlots.Response{
			Date:        day,
			Closed:      getAvailableSlots.ClosedHoliday,
			HolidayName: "San José",
			Slots:       []getAvailableSlots.Slot{},
		}, nil)

		rr := httptest.NewRecorder()
		NewHandler(uc, loc, logger.NewNop()).Handle(rr,
			httptest.NewRequest(http.MethodGet, "/api/v1/slots?date=2025-03-04", nil))

		require.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"date":"2025-03-04","closed":"holiday","holiday":"San José","slots":[]}`, rr.Body.String())
	})

	tests := []struct {
		name   string
		url    string
		ucErr  error
		status int
	}{
		{name: "missing date", url: "/api/v1/slots", status: http.StatusBadRequest},
		{name: "bad date", url: "/api/v1/slots?date=04/03/2025", status: http.StatusBadRequest},
		{name: "bad duration", url: "/api/v1/slots?date=2025-03-04&duration=abc", status: http.StatusBadRequest},
		{name: "past date", url: "/api/v1/slots?date=2025-03-04", ucErr: getAvailableSlots.ErrInvalidDate, status: http.StatusBadRequest},
		{name: "internal", url: "/api/v1/slots?date=2025-03-04", ucErr: getAvailableSlots.ErrInternal, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			if tt.ucErr != nil {
				uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.ucErr)
			}

			rr := httptest.NewRecorder()
			NewHandler(uc, loc, logger.NewNop()).Handle(rr, httptest.NewRequest(http.MethodGet, tt.url, nil))

			assert.Equal(t, tt.status, rr.Code)
			uc.AssertExpectations(t)
		})
	}
}
