package tags

import (
	"context"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

type TagService interface {
	Create(ctx context.Context, name, color string) (*domain.Tag, error)
	Update(ctx context.Context, id, name, color string) (*domain.Tag, error)
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (*domain.Tag, error)
	List(ctx context.Context) ([]*domain.Tag, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
