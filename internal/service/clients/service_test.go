package clients

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	clientRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/client"
	"github.com/m04kA/SMC-AgendaService/pkg/logger"
)

type mockClientRepo struct {
	mock.Mock
}

func (m *mockClientRepo) Create(ctx context.Context, client *domain.Client) (*domain.Client, error) {
	args := m.Called(ctx, client)
	return client, args.Error(0)
}

func (m *mockClientRepo) Update(ctx context.Context, client *domain.Client) (*domain.Client, error) {
	args := m.Called(ctx, client)
	return client, args.Error(0)
}

func (m *mockClientRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockClientRepo) GetByID(ctx context.Context, id string) (*domain.Client, error) {
	args := m.Called(ctx, id)
	if c := args.Get(0); c != nil {
		return c.(*domain.Client), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockClientRepo) List(ctx context.Context, search string) ([]*domain.Client, error) {
	args := m.Called(ctx, search)
	return args.Get(0).([]*domain.Client), args.Error(1)
}

type mockAppointmentRepo struct {
	mock.Mock
}

func (m *mockAppointmentRepo) DeleteByClientID(ctx context.Context, clientID string) (int64, error) {
	args := m.Called(ctx, clientID)
	return args.Get(0).(int64), args.Error(1)
}

// passthroughTx выполняет fn без транзакции и считает вызовы
type passthroughTx struct {
	calls int
}

func (p *passthroughTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	p.calls++
	return fn(ctx)
}

func newService() (*Service, *mockClientRepo, *mockAppointmentRepo, *passthroughTx) {
	cr := &mockClientRepo{}
	ar := &mockAppointmentRepo{}
	tx := &passthroughTx{}
	return NewService(cr, ar, tx, logger.NewNop()), cr, ar, tx
}

func TestCreate_Valid(t *testing.T) {
	svc, cr, _, _ := newService()
	cr.On("Create", mock.Anything, mock.MatchedBy(func(c *domain.Client) bool {
		return c.Name == "Lucía" && c.Phone == "612345678" && c.WhatsappReminder == domain.Reminder24h && c.Surname == nil
	})).Return(nil)

	blank := "  "
	created, err := svc.Create(context.Background(), ClientInput{
		Name:             " Lucía ",
		Surname:          &blank,
		Phone:            "612345678",
		WhatsappReminder: "24h",
	})
	require.NoError(t, err)
	assert.Equal(t, "Lucía", created.Name)
	cr.AssertExpectations(t)
}

func TestCreate_Validation(t *testing.T) {
	tests := []struct {
		name string
		in   ClientInput
	}{
		{name: "empty name", in: ClientInput{Name: " "}},
		{name: "bad phone", in: ClientInput{Name: "Ana", Phone: "61-23"}},
		{name: "plus only", in: ClientInput{Name: "Ana", Phone: "+"}},
		{name: "unknown preference", in: ClientInput{Name: "Ana", Phone: "612345678", WhatsappReminder: "2h"}},
		{name: "reminder without phone", in: ClientInput{Name: "Ana", WhatsappReminder: "48h"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _, _ := newService()
			_, err := svc.Create(context.Background(), tt.in)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestUpdate_NotFound(t *testing.T) {
	svc, cr, _, _ := newService()
	cr.On("Update", mock.Anything, mock.Anything).Return(clientRepo.ErrClientNotFound)

	_, err := svc.Update(context.Background(), "c1", ClientInput{Name: "Ana"})
	assert.ErrorIs(t, err, ErrClientNotFound)
}

func TestDelete_CascadesInTransaction(t *testing.T) {
	svc, cr, ar, tx := newService()
	ar.On("DeleteByClientID", mock.Anything, "c1").Return(int64(5), nil)
	cr.On("Delete", mock.Anything, "c1").Return(nil)

	require.NoError(t, svc.Delete(context.Background(), "c1"))
	assert.Equal(t, 1, tx.calls)
	ar.AssertExpectations(t)
	cr.AssertExpectations(t)
}

func TestDelete_NotFound(t *testing.T) {
	svc, cr, ar, _ := newService()
	ar.On("DeleteByClientID", mock.Anything, "c1").Return(int64(0), nil)
	cr.On("Delete", mock.Anything, "c1").Return(clientRepo.ErrClientNotFound)

	err := svc.Delete(context.Background(), "c1")
	assert.ErrorIs(t, err, ErrClientNotFound)
}

func TestDelete_AppointmentsFailure(t *testing.T) {
	svc, cr, ar, _ := newService()
	ar.On("DeleteByClientID", mock.Anything, "c1").Return(int64(0), errors.New("db down"))

	err := svc.Delete(context.Background(), "c1")
	assert.ErrorIs(t, err, ErrInternal)
	cr.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
