package schedule

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

// ScheduleRepository интерфейс хранилища недельного расписания
type ScheduleRepository interface {
	Get(ctx context.Context) (domain.WeeklySchedule, error)
	Save(ctx context.Context, schedule domain.WeeklySchedule) error
}

// HolidayRepository интерфейс репозитория праздников
type HolidayRepository interface {
	Create(ctx context.Context, holidays ...*domain.Holiday) ([]*domain.Holiday, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, from *time.Time) ([]*domain.Holiday, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
