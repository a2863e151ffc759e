package send_reminders

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

// UseCase один прогон планировщика напоминаний
type UseCase struct {
	clientRepo      ClientRepository
	appointmentRepo AppointmentRepository
	reminderRepo    ReminderRepository
	composer        Composer
	sender          Sender
	metrics         Metrics
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	clientRepo ClientRepository,
	appointmentRepo AppointmentRepository,
	reminderRepo ReminderRepository,
	composer Composer,
	sender Sender,
	metrics Metrics,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		clientRepo:      clientRepo,
		appointmentRepo: appointmentRepo,
		reminderRepo:    reminderRepo,
		composer:        composer,
		sender:          sender,
		metrics:         metrics,
		timeProvider:    timeProvider,
		logger:          logger,
	}
}

// Execute отправляет напоминания, срок которых наступил в текущий час.
// Маркер занимается до отправки и снимается при ошибке, так что параллельные
// прогоны не отправят одно напоминание дважды, а неудачная отправка повторится
// в следующем прогоне, если запись еще в окне. Пропущенные окна не догоняются.
func (uc *UseCase) Execute(ctx context.Context) (*Result, error) {
	started := time.Now()
	defer func() {
		if uc.metrics != nil {
			uc.metrics.ObserveReminderRun(time.Since(started))
		}
	}()

	now := uc.timeProvider.Now()

	// 1. Клиенты с телефоном и выбранным сроком напоминания
	clients, err := uc.clientRepo.ListReminderEligible(ctx)
	if err != nil {
		uc.logger.Error("SendReminders: failed to list clients: %v", err)
		return nil, fmt.Errorf("%w: failed to list clients: %v", ErrInternal, err)
	}
	byID := make(map[string]*domain.Client, len(clients))
	for _, c := range clients {
		if c.IsReminderEligible() {
			byID[c.ID] = c
		}
	}

	// 2. Только будущие записи
	appointments, err := uc.appointmentRepo.ListAfter(ctx, now)
	if err != nil {
		uc.logger.Error("SendReminders: failed to list appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to list appointments: %v", ErrInternal, err)
	}

	// 3. Уже отправленные
	sent, err := uc.reminderRepo.ListKeys(ctx)
	if err != nil {
		uc.logger.Error("SendReminders: failed to list sent reminders: %v", err)
		return nil, fmt.Errorf("%w: failed to list sent reminders: %v", ErrInternal, err)
	}

	result := &Result{Checked: len(appointments)}
	for _, appointment := range appointments {
		client, ok := byID[appointment.ClientID]
		if !ok {
			continue
		}

		hoursUntil := appointment.StartAt.Sub(now).Hours()
		if !client.WhatsappReminder.IsDue(hoursUntil) {
			continue
		}
		result.Eligible++

		key := domain.DedupKey(appointment.ID, client.WhatsappReminder)
		if _, done := sent[key]; done {
			result.Skipped++
			continue
		}

		uc.remind(ctx, now, client, appointment, result)
	}

	uc.logger.Info("SendReminders: checked=%d, eligible=%d, sent=%d, failed=%d, skipped=%d",
		result.Checked, result.Eligible, result.Sent, result.Failed, result.Skipped)
	return result, nil
}

// remind занимает маркер, отправляет сообщение и снимает маркер при ошибке отправки
func (uc *UseCase) remind(ctx context.Context, now time.Time, client *domain.Client, appointment *domain.Appointment, result *Result) {
	preference := string(client.WhatsappReminder)
	marker := &domain.SentReminder{
		ID:            domain.DedupKey(appointment.ID, client.WhatsappReminder),
		AppointmentID: appointment.ID,
		ClientID:      client.ID,
		Preference:    client.WhatsappReminder,
		SentAt:        now,
	}

	claimed, err := uc.reminderRepo.Claim(ctx, marker)
	if err != nil {
		uc.logger.Error("SendReminders: failed to claim %s: %v", marker.ID, err)
		uc.failed(preference, result)
		return
	}
	if !claimed {
		// занят параллельным прогоном
		result.Skipped++
		return
	}

	to := uc.composer.Address(client.Phone)
	body := uc.composer.ReminderMessage(client.Name, appointment.StartAt, appointment.DurationMinutes)

	sid, err := uc.sender.Send(ctx, to, body)
	if err != nil {
		uc.logger.Warn("SendReminders: failed to send %s to %s: %v", marker.ID, to, err)
		// маркер снимается и после отмены ctx прогона, иначе напоминание потеряется
		if releaseErr := uc.reminderRepo.Release(context.WithoutCancel(ctx), marker.ID); releaseErr != nil {
			uc.logger.Error("SendReminders: failed to release %s: %v", marker.ID, releaseErr)
		}
		uc.failed(preference, result)
		return
	}

	uc.logger.Info("SendReminders: sent %s to %s, sid=%s", marker.ID, to, sid)
	result.Sent++
	if uc.metrics != nil {
		uc.metrics.ReminderSent(preference)
	}
}

func (uc *UseCase) failed(preference string, result *Result) {
	result.Failed++
	if uc.metrics != nil {
		uc.metrics.ReminderFailed(preference)
	}
}
