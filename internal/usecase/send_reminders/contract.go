package send_reminders

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

// ClientRepository интерфейс репозитория клиентов
type ClientRepository interface {
	ListReminderEligible(ctx context.Context) ([]*domain.Client, error)
}

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	ListAfter(ctx context.Context, after time.Time) ([]*domain.Appointment, error)
}

// ReminderRepository интерфейс хранилища маркеров отправки.
// Claim атомарно создает маркер, если его еще нет.
type ReminderRepository interface {
	ListKeys(ctx context.Context) (map[string]struct{}, error)
	Claim(ctx context.Context, marker *domain.SentReminder) (bool, error)
	Release(ctx context.Context, id string) error
}

// Composer форматирует адрес и текст напоминания
type Composer interface {
	Address(rawPhone string) string
	ReminderMessage(clientName string, startAt time.Time, durationMinutes int) string
}

// Sender отправляет сообщение в WhatsApp
type Sender interface {
	Send(ctx context.Context, to, body string) (string, error)
}

// Metrics счетчики напоминаний, может быть nil
type Metrics interface {
	ReminderSent(preference string)
	ReminderFailed(preference string)
	ObserveReminderRun(duration time.Duration)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
