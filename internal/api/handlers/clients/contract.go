package clients

import (
	"context"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	clientsService "github.com/m04kA/SMC-AgendaService/internal/service/clients"
)

type ClientService interface {
	Create(ctx context.Context, in clientsService.ClientInput) (*domain.Client, error)
	Update(ctx context.Context, id string, in clientsService.ClientInput) (*domain.Client, error)
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (*domain.Client, error)
	List(ctx context.Context, search string) ([]*domain.Client, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
