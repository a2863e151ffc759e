package send_reminder

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/appointment"
	clientRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/client"
	"github.com/m04kA/SMC-AgendaService/internal/notification"
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

type mockClientRepo struct{ mock.Mock }

func (m *mockClientRepo) GetByID(ctx context.Context, id string) (*domain.Client, error) {
	args := m.Called(ctx, id)
	if c, ok := args.Get(0).(*domain.Client); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockSender struct{ mock.Mock }

func (m *mockSender) Send(ctx context.Context, to, body string) (string, error) {
	args := m.Called(ctx, to, body)
	return args.String(0), args.Error(1)
}

func setup(t *testing.T) (*UseCase, *mockSender) {
	t.Helper()
	loc, err := time.LoadLocation("Europe/Madrid")
	require.NoError(t, err)

	appointments := &mockAppointmentRepo{}
	appointments.On("GetByID", mock.Anything, "a1").Return(&domain.Appointment{
		ID: "a1", ClientID: "c1", StartAt: time.Date(2025, time.March, 3, 10, 0, 0, 0, loc), DurationMinutes: 60,
	}, nil)
	appointments.On("GetByID", mock.Anything, "a2").Return(&domain.Appointment{ID: "a2", ClientID: "c2"}, nil)
	appointments.On("GetByID", mock.Anything, "a3").Return(&domain.Appointment{ID: "a3", ClientID: "gone"}, nil)
	appointments.On("GetByID", mock.Anything, "missing").Return(nil, appointmentRepo.ErrAppointmentNotFound)

	clients := &mockClientRepo{}
	clients.On("GetByID", mock.Anything, "c1").Return(&domain.Client{ID: "c1", Name: "Ana", Phone: "612345678"}, nil)
	clients.On("GetByID", mock.Anything, "c2").Return(&domain.Client{ID: "c2", Name: "Luis"}, nil)
	clients.On("GetByID", mock.Anything, "gone").Return(nil, clientRepo.ErrClientNotFound)

	sender := &mockSender{}
	composer := notification.NewComposer("+34", "masaje", "Patrick Masajes", loc)

	return NewUseCase(appointments, clients, composer, sender, logger.NewNop()), sender
}

func TestExecute(t *testing.T) {
	uc, sender := setup(t)
	sender.On("Send", mock.Anything, "whatsapp:+34612345678", mock.Anything).Return("SM1", nil).Once()

	resp, err := uc.Execute(context.Background(), "a1")
	require.NoError(t, err)

	assert.True(t, resp.Success)
	assert.Equal(t, "+34612345678", resp.Phone)
	assert.Contains(t, resp.Message, "lunes, 3 de marzo")
	assert.Contains(t, resp.Message, "10:00")
}

func TestExecute_TransportFailureIsNotAnError(t *testing.T) {
	uc, sender := setup(t)
	sender.On("Send", mock.Anything, mock.Anything, mock.Anything).Return("", errors.New("twilio down")).Once()

	resp, err := uc.Execute(context.Background(), "a1")
	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, "+34612345678", resp.Phone)
}

func TestExecute_Errors(t *testing.T) {
	tests := []struct {
		name          string
		appointmentID string
		wantErr       error
	}{
		{name: "missing id", appointmentID: "", wantErr: ErrInvalidInput},
		{name: "appointment not found", appointmentID: "missing", wantErr: ErrAppointmentNotFound},
		{name: "client not found", appointmentID: "a3", wantErr: ErrClientNotFound},
		{name: "client without phone", appointmentID: "a2", wantErr: ErrNoPhone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, sender := setup(t)
			_, err := uc.Execute(context.Background(), tt.appointmentID)
			assert.ErrorIs(t, err, tt.wantErr)
			sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestSendTest(t *testing.T) {
	uc, sender := setup(t)
	sender.On("Send", mock.Anything, "whatsapp:+447700900000", "🧪 Prueba de recordatorio de Patrick Masajes!").Return("SM2", nil).Once()

	resp, err := uc.SendTest(context.Background(), "+447700900000")
	require.NoError(t, err)
	assert.True(t, resp.Success)

	_, err = uc.SendTest(context.Background(), " ")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
