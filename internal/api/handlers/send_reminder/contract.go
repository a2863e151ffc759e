package send_reminder

import (
	"context"

	sendReminder "github.com/m04kA/SMC-AgendaService/internal/usecase/send_reminder"
)

type SendReminderUseCase interface {
	Execute(ctx context.Context, appointmentID string) (*sendReminder.Response, error)
	SendTest(ctx context.Context, phone string) (*sendReminder.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
