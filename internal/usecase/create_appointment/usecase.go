package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	clientRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/client"
	"github.com/m04kA/SMC-AgendaService/internal/planning"
)

// UseCase use case для создания записи или серии записей
type UseCase struct {
	appointmentRepo AppointmentRepository
	clientRepo      ClientRepository
	loader          SnapshotLoader
	defaultMonths   int
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	clientRepo ClientRepository,
	loader SnapshotLoader,
	defaultMonths int,
	logger Logger,
) *UseCase {
	if defaultMonths < 1 {
		defaultMonths = domain.DefaultRecurrenceMonths
	}
	return &UseCase{
		appointmentRepo: appointmentRepo,
		clientRepo:      clientRepo,
		loader:          loader,
		defaultMonths:   defaultMonths,
		logger:          logger,
	}
}

// Execute создает запись. Конфликты не блокируют сохранение, а возвращаются вместе с результатом.
// Серия сохраняется по одному вхождению без отката: при ошибке посередине возвращается
// ErrPartialSeries вместе с уже созданными вхождениями.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: client=%s, start=%s, duration=%d, recurrence=%v",
		req.ClientID, req.StartAt.Format(domain.DateFormat+" "+domain.TimeFormat), req.DurationMinutes, req.Recurrence)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Клиент должен существовать, иначе ничего не сохраняем
	if _, err := uc.clientRepo.GetByID(ctx, req.ClientID); err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			uc.logger.Warn("CreateAppointment: client id=%s not found", req.ClientID)
			return nil, ErrClientNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get client id=%s: %v", req.ClientID, err)
		return nil, fmt.Errorf("%w: failed to get client: %v", ErrInternal, err)
	}

	// 3. Снимок агенды для поиска конфликтов
	snapshot, err := uc.loader.Snapshot(ctx)
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to load agenda: %v", err)
		return nil, fmt.Errorf("%w: failed to load agenda: %v", ErrInternal, err)
	}

	if req.Recurrence == nil {
		return uc.createSingle(ctx, req, snapshot)
	}
	return uc.createSeries(ctx, req, snapshot)
}

func (uc *UseCase) createSingle(ctx context.Context, req *Request, snapshot *planning.Snapshot) (*Response, error) {
	findings := snapshot.Detect(planning.Candidate{StartAt: req.StartAt, DurationMinutes: req.DurationMinutes})

	created, err := uc.appointmentRepo.Create(ctx, uc.newAppointment(req, req.StartAt))
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
		return nil, fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateAppointment: created appointment id=%s with %d findings", created.ID, len(findings))
	return &Response{
		Created: []Occurrence{{Appointment: created, Findings: findings}},
		Skipped: []string{},
	}, nil
}

func (uc *UseCase) createSeries(ctx context.Context, req *Request, snapshot *planning.Snapshot) (*Response, error) {
	months := uc.defaultMonths
	if req.RecurrenceMonths != nil {
		months = *req.RecurrenceMonths
	}

	occurrences, err := planning.Expand(req.StartAt, *req.Recurrence, months)
	if err != nil {
		uc.logger.Warn("CreateAppointment: failed to expand recurrence: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	skip := make(map[string]struct{}, len(req.SkipDates))
	for _, d := range req.SkipDates {
		skip[d] = struct{}{}
	}

	seriesID := uuid.NewString()
	resp := &Response{
		SeriesID: &seriesID,
		Created:  make([]Occurrence, 0, len(occurrences)),
		Skipped:  make([]string, 0),
	}

	for _, startAt := range occurrences {
		date := startAt.Format(domain.DateFormat)
		if _, ok := skip[date]; ok {
			resp.Skipped = append(resp.Skipped, date)
			continue
		}

		findings := snapshot.Detect(planning.Candidate{StartAt: startAt, DurationMinutes: req.DurationMinutes})

		appointment := uc.newAppointment(req, startAt)
		appointment.Recurrence = req.Recurrence
		appointment.RecurrenceMonths = &months
		appointment.SeriesID = &seriesID

		created, err := uc.appointmentRepo.Create(ctx, appointment)
		if err != nil {
			uc.logger.Error("CreateAppointment: series=%s stopped at %s after %d of %d occurrences: %v",
				seriesID, date, len(resp.Created), len(occurrences), err)
			return resp, fmt.Errorf("%w: series=%s created %d of %d: %v",
				ErrPartialSeries, seriesID, len(resp.Created), len(occurrences), err)
		}

		resp.Created = append(resp.Created, Occurrence{Appointment: created, Findings: findings})
	}

	uc.logger.Info("CreateAppointment: created series=%s with %d occurrences, skipped %d",
		seriesID, len(resp.Created), len(resp.Skipped))
	return resp, nil
}

func (uc *UseCase) newAppointment(req *Request, startAt time.Time) *domain.Appointment {
	tagIDs := req.TagIDs
	if tagIDs == nil {
		tagIDs = []string{}
	}
	return &domain.Appointment{
		ClientID:        req.ClientID,
		StartAt:         startAt,
		DurationMinutes: req.DurationMinutes,
		Cost:            req.Cost,
		TagIDs:          tagIDs,
	}
}
