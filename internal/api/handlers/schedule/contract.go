package schedule

import (
	"context"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	scheduleService "github.com/m04kA/SMC-AgendaService/internal/service/schedule"
)

type ScheduleService interface {
	Weekly(ctx context.Context) (domain.WeeklySchedule, error)
	SaveWeekly(ctx context.Context, weekly domain.WeeklySchedule) (domain.WeeklySchedule, error)
	ListHolidays(ctx context.Context, upcoming bool) ([]*domain.Holiday, error)
	CreateHolidays(ctx context.Context, inputs []scheduleService.HolidayInput) ([]*domain.Holiday, error)
	DeleteHoliday(ctx context.Context, id string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
