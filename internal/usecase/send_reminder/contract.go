package send_reminder

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Appointment, error)
}

// ClientRepository интерфейс репозитория клиентов
type ClientRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Client, error)
}

// Composer форматирует адрес и текст сообщений
type Composer interface {
	Phone(raw string) string
	Address(raw string) string
	ReminderMessage(clientName string, startAt time.Time, durationMinutes int) string
	TestMessage() string
}

// Sender отправляет сообщение в WhatsApp
type Sender interface {
	Send(ctx context.Context, to, body string) (string, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
