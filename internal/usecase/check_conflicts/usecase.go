package check_conflicts

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/internal/planning"
)

// UseCase use case для предварительной проверки конфликтов, ничего не сохраняет
type UseCase struct {
	loader        SnapshotLoader
	defaultMonths int
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(loader SnapshotLoader, defaultMonths int, logger Logger) *UseCase {
	if defaultMonths < 1 {
		defaultMonths = domain.DefaultRecurrenceMonths
	}
	return &UseCase{
		loader:        loader,
		defaultMonths: defaultMonths,
		logger:        logger,
	}
}

// Execute возвращает конфликты кандидата. Для повторяющегося кандидата дополнительно
// возвращает конфликтные будущие вхождения с датами для списка пропусков.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckConflicts: validation failed: %v", err)
		return nil, err
	}

	snapshot, err := uc.loader.Snapshot(ctx)
	if err != nil {
		uc.logger.Error("CheckConflicts: failed to load agenda: %v", err)
		return nil, fmt.Errorf("%w: failed to load agenda: %v", ErrInternal, err)
	}

	resp := &Response{
		Findings: snapshot.Detect(planning.Candidate{
			StartAt:         req.StartAt,
			DurationMinutes: req.DurationMinutes,
			ExcludeID:       req.ExcludeID,
		}),
		Occurrences: []planning.OccurrenceConflict{},
	}

	if req.Recurrence != nil {
		months := uc.defaultMonths
		if req.RecurrenceMonths != nil {
			months = *req.RecurrenceMonths
		}

		occurrences, err := planning.Expand(req.StartAt, *req.Recurrence, months)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		resp.Occurrences = snapshot.PreviewSeries(occurrences, req.DurationMinutes, req.ExcludeID)
	}

	uc.logger.Info("CheckConflicts: %d findings, %d conflicting occurrences",
		len(resp.Findings), len(resp.Occurrences))
	return resp, nil
}
