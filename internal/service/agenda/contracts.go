package agenda

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	List(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error)
}

// ClientRepository интерфейс репозитория клиентов
type ClientRepository interface {
	List(ctx context.Context, search string) ([]*domain.Client, error)
}

// ScheduleProvider источник недельного расписания (с расписанием по умолчанию)
type ScheduleProvider interface {
	Weekly(ctx context.Context) (domain.WeeklySchedule, error)
}

// HolidayRepository интерфейс репозитория праздников
type HolidayRepository interface {
	List(ctx context.Context, from *time.Time) ([]*domain.Holiday, error)
}
