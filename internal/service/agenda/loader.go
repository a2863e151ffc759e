// Package agenda собирает снимок расписания, праздников и записей
// для поиска конфликтов.
package agenda

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/internal/planning"
)

// Loader читает все коллекции, нужные planning.Snapshot
type Loader struct {
	appointmentRepo AppointmentRepository
	clientRepo      ClientRepository
	schedule        ScheduleProvider
	holidayRepo     HolidayRepository
	practitioner    string
}

// NewLoader создает загрузчик снимка
func NewLoader(
	appointmentRepo AppointmentRepository,
	clientRepo ClientRepository,
	schedule ScheduleProvider,
	holidayRepo HolidayRepository,
	practitioner string,
) *Loader {
	return &Loader{
		appointmentRepo: appointmentRepo,
		clientRepo:      clientRepo,
		schedule:        schedule,
		holidayRepo:     holidayRepo,
		practitioner:    practitioner,
	}
}

// Snapshot загружает текущее состояние агенды
func (l *Loader) Snapshot(ctx context.Context) (*planning.Snapshot, error) {
	weekly, err := l.schedule.Weekly(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: load schedule: %v", ErrInternal, err)
	}

	holidays, err := l.holidayRepo.List(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: load holidays: %v", ErrInternal, err)
	}

	appointments, err := l.appointmentRepo.List(ctx, domain.AppointmentsFilter{})
	if err != nil {
		return nil, fmt.Errorf("%w: load appointments: %v", ErrInternal, err)
	}

	clients, err := l.clientRepo.List(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("%w: load clients: %v", ErrInternal, err)
	}

	names := make(map[string]string, len(clients))
	for _, c := range clients {
		names[c.ID] = c.FullName()
	}

	return &planning.Snapshot{
		Schedule:     domain.NewScheduleModel(weekly, holidays),
		Appointments: appointments,
		ClientNames:  names,
		Practitioner: l.practitioner,
	}, nil
}
