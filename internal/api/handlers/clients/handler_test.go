package clients

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	clientsService "github.com/m04kA/SMC-AgendaService/internal/service/clients"
	"github.com/m04kA/SMC-AgendaService/pkg/logger"
)

type mockService struct{ mock.Mock }

func (m *mockService) Create(ctx context.Context, in clientsService.ClientInput) (*domain.Client, error) {
	args := m.Called(ctx, in)
	if c, ok := args.Get(0).(*domain.Client); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockService) Update(ctx context.Context, id string, in clientsService.ClientInput) (*domain.Client, error) {
	args := m.Called(ctx, id, in)
	if c, ok := args.Get(0).(*domain.Client); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockService) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockService) Get(ctx context.Context, id string) (*domain.Client, error) {
	args := m.Called(ctx, id)
	if c, ok := args.Get(0).(*domain.Client); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockService) List(ctx context.Context, search string) ([]*domain.Client, error) {
	args := m.Called(ctx, search)
	if list, ok := args.Get(0).([]*domain.Client); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func newRouter(service ClientService) *mux.Router {
	h := NewHandler(service, logger.NewNop())
	r := mux.NewRouter()
	r.HandleFunc("/clients", h.Create).Methods(http.MethodPost)
	r.HandleFunc("/clients", h.List).Methods(http.MethodGet)
	r.HandleFunc("/clients/{clientId}", h.Get).Methods(http.MethodGet)
	r.HandleFunc("/clients/{clientId}", h.Update).Methods(http.MethodPut)
	r.HandleFunc("/clients/{clientId}", h.Delete).Methods(http.MethodDelete)
	return r
}

func TestCreate(t *testing.T) {
	service := &mockService{}
	service.On("Create", mock.Anything, clientsService.ClientInput{Name: "Ana", Phone: "612345678", WhatsappReminder: "24h"}).
		Return(&domain.Client{ID: "c1", Name: "Ana", Phone: "612345678", WhatsappReminder: domain.Reminder24h}, nil)

	rec := httptest.NewRecorder()
	body := `{"name":"Ana","phone":"612345678","whatsappReminder":"24h"}`
	newRouter(service).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/clients", strings.NewReader(body)))

	require.Equal(t, http.StatusCreated, rec.Code)
	var resp ClientResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "c1", resp.ID)
	assert.True(t, resp.WhatsappEnabled)
}

func TestErrors(t *testing.T) {
	service := &mockService{}
	service.On("Create", mock.Anything, mock.Anything).Return(nil, clientsService.ErrInvalidInput)
	service.On("Get", mock.Anything, "missing").Return(nil, clientsService.ErrClientNotFound)
	service.On("Delete", mock.Anything, "missing").Return(clientsService.ErrClientNotFound)
	service.On("Delete", mock.Anything, "c1").Return(nil)

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
	}{
		{name: "invalid input", method: http.MethodPost, path: "/clients", body: `{"name":""}`, wantStatus: http.StatusBadRequest},
		{name: "malformed body", method: http.MethodPost, path: "/clients", body: `{`, wantStatus: http.StatusBadRequest},
		{name: "get missing", method: http.MethodGet, path: "/clients/missing", wantStatus: http.StatusNotFound},
		{name: "delete missing", method: http.MethodDelete, path: "/clients/missing", wantStatus: http.StatusNotFound},
		{name: "delete", method: http.MethodDelete, path: "/clients/c1", wantStatus: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			newRouter(service).ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body)))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
