package schedule

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	holidayRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/holiday"
	scheduleRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/schedule"
)

// Service сервис недельного расписания и праздников
type Service struct {
	scheduleRepo ScheduleRepository
	holidayRepo  HolidayRepository
	loc          *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(
	scheduleRepo ScheduleRepository,
	holidayRepo HolidayRepository,
	loc *time.Location,
	logger Logger,
) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		holidayRepo:  holidayRepo,
		loc:          loc,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Weekly возвращает недельное расписание или расписание по умолчанию, если оно не сохранено
func (s *Service) Weekly(ctx context.Context) (domain.WeeklySchedule, error) {
	weekly, err := s.scheduleRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			return domain.DefaultWeeklySchedule(), nil
		}
		s.logger.Error("Weekly: repository error: %v", err)
		return nil, fmt.Errorf("%w: Weekly - repository error: %v", ErrInternal, err)
	}
	return weekly, nil
}

// SaveWeekly заменяет недельное расписание целиком
func (s *Service) SaveWeekly(ctx context.Context, weekly domain.WeeklySchedule) (domain.WeeklySchedule, error) {
	if err := weekly.Validate(); err != nil {
		s.logger.Warn("SaveWeekly: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// отсутствующие дни явно храним как нерабочие
	normalized := make(domain.WeeklySchedule, 7)
	for day := time.Sunday; day <= time.Saturday; day++ {
		normalized[day] = weekly[day]
	}

	if err := s.scheduleRepo.Save(ctx, normalized); err != nil {
		s.logger.Error("SaveWeekly: repository error: %v", err)
		return nil, fmt.Errorf("%w: SaveWeekly - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("SaveWeekly: schedule updated")
	return normalized, nil
}

// ListHolidays возвращает праздники по дате. upcoming оставляет только с сегодняшнего дня
func (s *Service) ListHolidays(ctx context.Context, upcoming bool) ([]*domain.Holiday, error) {
	var from *time.Time
	if upcoming {
		now := s.timeProvider.Now().In(s.loc)
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.loc)
		from = &today
	}

	holidays, err := s.holidayRepo.List(ctx, from)
	if err != nil {
		s.logger.Error("ListHolidays: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListHolidays - repository error: %v", ErrInternal, err)
	}
	return holidays, nil
}

// CreateHolidays создает один или несколько праздников
func (s *Service) CreateHolidays(ctx context.Context, inputs []HolidayInput) ([]*domain.Holiday, error) {
	if len(inputs) == 0 {
		return nil, fmt.Errorf("%w: at least one holiday is required", ErrInvalidInput)
	}

	holidays := make([]*domain.Holiday, 0, len(inputs))
	for i, in := range inputs {
		date, err := time.ParseInLocation(domain.DateFormat, strings.TrimSpace(in.Date), s.loc)
		if err != nil {
			s.logger.Warn("CreateHolidays: invalid date %q at index %d", in.Date, i)
			return nil, fmt.Errorf("%w: holiday %d: date must be YYYY-MM-DD", ErrInvalidInput, i)
		}
		name := strings.TrimSpace(in.Name)
		if name == "" || len(name) > domain.MaxNameLength {
			return nil, fmt.Errorf("%w: holiday %d: name is required", ErrInvalidInput, i)
		}
		holidays = append(holidays, &domain.Holiday{Date: date, Name: name})
	}

	created, err := s.holidayRepo.Create(ctx, holidays...)
	if err != nil {
		s.logger.Error("CreateHolidays: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateHolidays - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateHolidays: created %d holidays", len(created))
	return created, nil
}

// DeleteHoliday удаляет праздник
func (s *Service) DeleteHoliday(ctx context.Context, id string) error {
	if err := s.holidayRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, holidayRepo.ErrHolidayNotFound) {
			s.logger.Warn("DeleteHoliday: holiday id=%s not found", id)
			return ErrHolidayNotFound
		}
		s.logger.Error("DeleteHoliday: repository error for id=%s: %v", id, err)
		return fmt.Errorf("%w: DeleteHoliday - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteHoliday: deleted holiday id=%s", id)
	return nil
}
