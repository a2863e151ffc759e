package create_appointment

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

// validateRequest проверяет обязательные и числовые поля
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.ClientID) == "" {
		return fmt.Errorf("%w: clientId is required", ErrInvalidInput)
	}
	if req.StartAt.IsZero() {
		return fmt.Errorf("%w: dateTime is required", ErrInvalidInput)
	}
	if req.DurationMinutes < domain.MinDurationMinutes || req.DurationMinutes > domain.MaxDurationMinutes {
		return fmt.Errorf("%w: duration must be between %d and %d minutes",
			ErrInvalidInput, domain.MinDurationMinutes, domain.MaxDurationMinutes)
	}
	if req.Cost != nil && *req.Cost < 0 {
		return fmt.Errorf("%w: cost must not be negative", ErrInvalidInput)
	}

	if req.Recurrence == nil {
		return nil
	}
	if !req.Recurrence.IsValid() {
		return fmt.Errorf("%w: unknown recurrence %q", ErrInvalidInput, *req.Recurrence)
	}
	if req.RecurrenceMonths != nil && (*req.RecurrenceMonths < 1 || *req.RecurrenceMonths > domain.MaxRecurrenceMonths) {
		return fmt.Errorf("%w: recurrenceMonths must be between 1 and %d", ErrInvalidInput, domain.MaxRecurrenceMonths)
	}
	for _, d := range req.SkipDates {
		if _, err := time.Parse(domain.DateFormat, d); err != nil {
			return fmt.Errorf("%w: skip date %q must be YYYY-MM-DD", ErrInvalidInput, d)
		}
	}

	return nil
}
