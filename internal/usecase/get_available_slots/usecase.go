package get_available_slots

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

// UseCase use case для получения свободных слотов на день
type UseCase struct {
	loader       SnapshotLoader
	loc          *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(loader SnapshotLoader, loc *time.Location, logger Logger) *UseCase {
	return &UseCase{
		loader:       loader,
		loc:          loc,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения свободных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	y, m, d := req.Date.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, uc.loc)
	step := req.StepMinutes
	if step == 0 {
		step = req.DurationMinutes
	}

	uc.logger.Info("GetAvailableSlots: date=%s, duration=%d, step=%d",
		day.Format(domain.DateFormat), req.DurationMinutes, step)

	// 2. День не должен быть в прошлом
	now := uc.timeProvider.Now().In(uc.loc)
	if err := validateDate(day, now); err != nil {
		uc.logger.Warn("GetAvailableSlots: date %s is in the past", day.Format(domain.DateFormat))
		return nil, err
	}

	// 3. Снимок агенды
	snapshot, err := uc.loader.Snapshot(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to load agenda snapshot: %v", err)
		return nil, fmt.Errorf("%w: failed to load snapshot: %v", ErrInternal, err)
	}

	resp := &Response{Date: day, Slots: []Slot{}}

	// 4. Праздник закрывает весь день
	if snapshot.Schedule != nil {
		if holiday := snapshot.Schedule.IsHoliday(day); holiday != nil {
			uc.logger.Info("GetAvailableSlots: %s is a holiday (%s)", day.Format(domain.DateFormat), holiday.Name)
			resp.Closed = ClosedHoliday
			resp.HolidayName = holiday.Name
			return resp, nil
		}
	}

	// 5. Рабочие часы на указанный день недели
	var hours *domain.WorkingHours
	if snapshot.Schedule != nil {
		hours = snapshot.Schedule.WorkingHours(day.Weekday())
	}
	if hours == nil {
		uc.logger.Info("GetAvailableSlots: %s is a day off", day.Format(domain.DateFormat))
		resp.Closed = ClosedDayOff
		return resp, nil
	}
	resp.WorkingHours = &WorkingWindow{Start: hours.Start, End: hours.End}

	// 6. Генерируем сетку слотов
	starts, err := generateTimeSlots(*hours, req.DurationMinutes, step, day, now)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate time slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate time slots: %v", ErrInternal, err)
	}

	// 7. Убираем слоты, пересекающиеся с записями
	resp.Slots = freeSlots(snapshot, starts, req.DurationMinutes)

	uc.logger.Info("GetAvailableSlots: %d of %d slots free on %s",
		len(resp.Slots), len(starts), day.Format(domain.DateFormat))

	return resp, nil
}
