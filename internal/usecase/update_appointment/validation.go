package update_appointment

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

// validateRequest проверяет входные данные и подставляет scope по умолчанию
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.ID) == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidInput)
	}
	if req.Scope == "" {
		req.Scope = domain.ScopeSingle
	}
	if !req.Scope.IsValid() {
		return fmt.Errorf("%w: unknown scope %q", ErrInvalidInput, req.Scope)
	}
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
	return nil
}
