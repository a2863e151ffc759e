package check_conflicts

import (
	"fmt"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

// validateRequest проверяет кандидата
func validateRequest(req *Request) error {
	if req.StartAt.IsZero() {
		return fmt.Errorf("%w: dateTime is required", ErrInvalidInput)
	}
	if req.DurationMinutes < domain.MinDurationMinutes || req.DurationMinutes > domain.MaxDurationMinutes {
		return fmt.Errorf("%w: duration must be between %d and %d minutes",
			ErrInvalidInput, domain.MinDurationMinutes, domain.MaxDurationMinutes)
	}
	if req.Recurrence != nil && !req.Recurrence.IsValid() {
		return fmt.Errorf("%w: unknown recurrence %q", ErrInvalidInput, *req.Recurrence)
	}
	if req.RecurrenceMonths != nil && (*req.RecurrenceMonths < 1 || *req.RecurrenceMonths > domain.MaxRecurrenceMonths) {
		return fmt.Errorf("%w: recurrenceMonths must be between 1 and %d", ErrInvalidInput, domain.MaxRecurrenceMonths)
	}
	return nil
}
