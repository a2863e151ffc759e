package delete_appointment

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
	return nil
}
