package delete_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/appointment"
)

// UseCase use case для удаления записи или будущих вхождений серии
type UseCase struct {
	appointmentRepo AppointmentRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		timeProvider:    timeProvider,
		logger:          logger,
	}
}

// Execute удаляет запись.
// Scope future удаляет все вхождения серии, начинающиеся не раньше текущего момента.
// Граница считается от "сейчас", а не от выбранной записи, в отличие от редактирования.
// Для записи без серии scope future равен single.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("DeleteAppointment: id=%s, scope=%s", req.ID, req.Scope)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("DeleteAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Запись должна существовать
	stored, err := uc.appointmentRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			uc.logger.Warn("DeleteAppointment: appointment id=%s not found", req.ID)
			return nil, ErrAppointmentNotFound
		}
		uc.logger.Error("DeleteAppointment: failed to get appointment id=%s: %v", req.ID, err)
		return nil, fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
	}

	if req.Scope == domain.ScopeSingle || !stored.IsInSeries() {
		return uc.deleteSingle(ctx, stored.ID)
	}
	return uc.deleteFuture(ctx, *stored.SeriesID)
}

func (uc *UseCase) deleteSingle(ctx context.Context, id string) (*Response, error) {
	if err := uc.appointmentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			return nil, ErrAppointmentNotFound
		}
		uc.logger.Error("DeleteAppointment: failed to delete id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: failed to delete appointment: %v", ErrInternal, err)
	}

	uc.logger.Info("DeleteAppointment: deleted id=%s", id)
	return &Response{Deleted: []string{id}}, nil
}

func (uc *UseCase) deleteFuture(ctx context.Context, seriesID string) (*Response, error) {
	now := uc.timeProvider.Now()

	series, err := uc.appointmentRepo.ListBySeries(ctx, seriesID)
	if err != nil {
		uc.logger.Error("DeleteAppointment: failed to list series=%s: %v", seriesID, err)
		return nil, fmt.Errorf("%w: failed to list series: %v", ErrInternal, err)
	}

	resp := &Response{Deleted: make([]string, 0)}
	for _, a := range series {
		if a.StartAt.Before(now) {
			continue
		}
		err := uc.appointmentRepo.Delete(ctx, a.ID)
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			// уже удалена параллельно
			continue
		}
		if err != nil {
			uc.logger.Error("DeleteAppointment: series=%s stopped at id=%s after %d deletions: %v",
				seriesID, a.ID, len(resp.Deleted), err)
			return resp, fmt.Errorf("%w: series=%s deleted %d: %v", ErrPartialSeries, seriesID, len(resp.Deleted), err)
		}
		resp.Deleted = append(resp.Deleted, a.ID)
	}

	uc.logger.Info("DeleteAppointment: deleted %d future occurrences of series=%s", len(resp.Deleted), seriesID)
	return resp, nil
}
