package update_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/appointment"
	clientRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/client"
	"github.com/m04kA/SMC-AgendaService/internal/planning"
)

// UseCase use case для изменения записи или хвоста серии
type UseCase struct {
	appointmentRepo AppointmentRepository
	clientRepo      ClientRepository
	loader          SnapshotLoader
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	clientRepo ClientRepository,
	loader SnapshotLoader,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		clientRepo:      clientRepo,
		loader:          loader,
		logger:          logger,
	}
}

// Execute изменяет запись.
// Scope single меняет только ее, scope future сдвигает на ту же дельту все вхождения серии,
// начинающиеся не раньше исходного времени записи, и переносит на них остальные поля.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateAppointment: id=%s, scope=%s", req.ID, req.Scope)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Исходная запись
	stored, err := uc.appointmentRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			uc.logger.Warn("UpdateAppointment: appointment id=%s not found", req.ID)
			return nil, ErrAppointmentNotFound
		}
		uc.logger.Error("UpdateAppointment: failed to get appointment id=%s: %v", req.ID, err)
		return nil, fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
	}

	if req.Scope == domain.ScopeFuture && !stored.IsInSeries() {
		uc.logger.Warn("UpdateAppointment: appointment id=%s has no series", req.ID)
		return nil, ErrNotInSeries
	}

	// 3. Клиент должен существовать
	if _, err := uc.clientRepo.GetByID(ctx, req.ClientID); err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			uc.logger.Warn("UpdateAppointment: client id=%s not found", req.ClientID)
			return nil, ErrClientNotFound
		}
		uc.logger.Error("UpdateAppointment: failed to get client id=%s: %v", req.ClientID, err)
		return nil, fmt.Errorf("%w: failed to get client: %v", ErrInternal, err)
	}

	snapshot, err := uc.loader.Snapshot(ctx)
	if err != nil {
		uc.logger.Error("UpdateAppointment: failed to load agenda: %v", err)
		return nil, fmt.Errorf("%w: failed to load agenda: %v", ErrInternal, err)
	}

	// 4. Набор сдвигов: одна запись или хвост серии
	shifts := []planning.Shift{{Appointment: stored, NewStartAt: req.StartAt}}
	if req.Scope == domain.ScopeFuture {
		series, err := uc.appointmentRepo.ListBySeries(ctx, *stored.SeriesID)
		if err != nil {
			uc.logger.Error("UpdateAppointment: failed to list series=%s: %v", *stored.SeriesID, err)
			return nil, fmt.Errorf("%w: failed to list series: %v", ErrInternal, err)
		}
		shifts = planning.ShiftSeries(series, stored.StartAt, req.StartAt)
	}

	// старые позиции сдвигаемых записей не участвуют в проверке пересечений
	moving := make([]string, 0, len(shifts))
	for _, shift := range shifts {
		moving = append(moving, shift.Appointment.ID)
	}

	// 5. Запись по одной, без отката
	resp := &Response{Updated: make([]Occurrence, 0, len(shifts))}
	for _, shift := range shifts {
		appointment := uc.merge(shift.Appointment, req)
		appointment.StartAt = shift.NewStartAt

		findings := snapshot.Detect(planning.Candidate{
			StartAt:         appointment.StartAt,
			DurationMinutes: appointment.DurationMinutes,
			ExcludeID:       appointment.ID,
			ExcludeIDs:      moving,
		})

		updated, err := uc.appointmentRepo.Update(ctx, appointment)
		if err != nil {
			if req.Scope == domain.ScopeSingle {
				if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
					return nil, ErrAppointmentNotFound
				}
				uc.logger.Error("UpdateAppointment: failed to update id=%s: %v", appointment.ID, err)
				return nil, fmt.Errorf("%w: failed to update appointment: %v", ErrInternal, err)
			}
			uc.logger.Error("UpdateAppointment: stopped at id=%s after %d of %d occurrences: %v",
				appointment.ID, len(resp.Updated), len(shifts), err)
			return resp, fmt.Errorf("%w: updated %d of %d: %v", ErrPartialSeries, len(resp.Updated), len(shifts), err)
		}

		resp.Updated = append(resp.Updated, Occurrence{Appointment: updated, Findings: findings})
	}

	uc.logger.Info("UpdateAppointment: updated %d occurrences from id=%s", len(resp.Updated), req.ID)
	return resp, nil
}

// merge копирует изменяемые поля запроса, метаданные серии остаются прежними
func (uc *UseCase) merge(stored *domain.Appointment, req *Request) *domain.Appointment {
	tagIDs := req.TagIDs
	if tagIDs == nil {
		tagIDs = []string{}
	}

	merged := *stored
	merged.ClientID = req.ClientID
	merged.DurationMinutes = req.DurationMinutes
	merged.Cost = req.Cost
	merged.TagIDs = tagIDs
	return &merged
}
