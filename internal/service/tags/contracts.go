package tags

import (
	"context"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

// TagRepository интерфейс репозитория меток
type TagRepository interface {
	Create(ctx context.Context, tag *domain.Tag) (*domain.Tag, error)
	Update(ctx context.Context, tag *domain.Tag) (*domain.Tag, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Tag, error)
	List(ctx context.Context) ([]*domain.Tag, error)
}

// AppointmentRepository интерфейс репозитория записей (для открепления меток)
type AppointmentRepository interface {
	RemoveTag(ctx context.Context, tagID string) (int64, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
