package clients

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

// ClientInput данные клиента при создании и изменении
type ClientInput struct {
	Name             string
	Surname          *string
	Phone            string
	WhatsappReminder string
	Notes            *string
}

// toDomain валидирует ввод и собирает доменного клиента
func (in ClientInput) toDomain(id string) (*domain.Client, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(name) > domain.MaxNameLength {
		return nil, fmt.Errorf("%w: name is too long", ErrInvalidInput)
	}

	phone := strings.TrimSpace(in.Phone)
	if !isPhone(phone) {
		return nil, fmt.Errorf("%w: phone must contain digits and an optional leading +", ErrInvalidInput)
	}

	pref := domain.ReminderPreference(in.WhatsappReminder)
	if !pref.IsValid() {
		return nil, fmt.Errorf("%w: whatsappReminder must be one of 24h, 48h, 1week or empty", ErrInvalidInput)
	}
	if pref != domain.ReminderNone && phone == "" {
		return nil, fmt.Errorf("%w: whatsapp reminders require a phone number", ErrInvalidInput)
	}

	if in.Notes != nil && len(*in.Notes) > domain.MaxNotesLength {
		return nil, fmt.Errorf("%w: notes are too long", ErrInvalidInput)
	}

	return &domain.Client{
		ID:               id,
		Name:             name,
		Surname:          trimmed(in.Surname),
		Phone:            phone,
		WhatsappReminder: pref,
		Notes:            in.Notes,
	}, nil
}

// isPhone пустая строка тоже допустима: телефон необязателен
func isPhone(s string) bool {
	for i, r := range s {
		if r == '+' && i == 0 {
			continue
		}
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return s != "+"
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
