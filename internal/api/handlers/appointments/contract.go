package appointments

import (
	"context"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

type AppointmentService interface {
	Get(ctx context.Context, id string) (*domain.Appointment, error)
	List(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
