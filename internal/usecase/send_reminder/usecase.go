package send_reminder

import (
	"context"
	"errors"
	"fmt"
	"strings"

	appointmentRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/appointment"
	clientRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/client"
)

// UseCase ручная отправка напоминания оператором.
// Не проверяет окно и маркеры и не создает маркер.
type UseCase struct {
	appointmentRepo AppointmentRepository
	clientRepo      ClientRepository
	composer        Composer
	sender          Sender
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	clientRepo ClientRepository,
	composer Composer,
	sender Sender,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		clientRepo:      clientRepo,
		composer:        composer,
		sender:          sender,
		logger:          logger,
	}
}

// Execute отправляет напоминание по записи appointmentID
func (uc *UseCase) Execute(ctx context.Context, appointmentID string) (*Response, error) {
	if strings.TrimSpace(appointmentID) == "" {
		return nil, fmt.Errorf("%w: appointmentId is required", ErrInvalidInput)
	}

	appointment, err := uc.appointmentRepo.GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			uc.logger.Warn("SendReminder: appointment id=%s not found", appointmentID)
			return nil, ErrAppointmentNotFound
		}
		uc.logger.Error("SendReminder: failed to get appointment id=%s: %v", appointmentID, err)
		return nil, fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
	}

	client, err := uc.clientRepo.GetByID(ctx, appointment.ClientID)
	if err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			uc.logger.Warn("SendReminder: client id=%s not found", appointment.ClientID)
			return nil, ErrClientNotFound
		}
		uc.logger.Error("SendReminder: failed to get client id=%s: %v", appointment.ClientID, err)
		return nil, fmt.Errorf("%w: failed to get client: %v", ErrInternal, err)
	}

	if strings.TrimSpace(client.Phone) == "" {
		uc.logger.Warn("SendReminder: client id=%s has no phone", client.ID)
		return nil, ErrNoPhone
	}

	body := uc.composer.ReminderMessage(client.Name, appointment.StartAt, appointment.DurationMinutes)
	return uc.send(ctx, "SendReminder", client.Phone, body), nil
}

// SendTest отправляет тестовое сообщение на указанный номер
func (uc *UseCase) SendTest(ctx context.Context, phone string) (*Response, error) {
	if strings.TrimSpace(phone) == "" {
		return nil, fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}
	return uc.send(ctx, "SendTestReminder", phone, uc.composer.TestMessage()), nil
}

func (uc *UseCase) send(ctx context.Context, op, rawPhone, body string) *Response {
	phone := uc.composer.Phone(rawPhone)
	resp := &Response{Phone: phone, Message: body}

	sid, err := uc.sender.Send(ctx, uc.composer.Address(rawPhone), body)
	if err != nil {
		uc.logger.Warn("%s: failed to send to %s: %v", op, phone, err)
		return resp
	}

	uc.logger.Info("%s: sent to %s, sid=%s", op, phone, sid)
	resp.Success = true
	return resp
}
