package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/m04kA/SMC-AgendaService/internal/usecase/send_reminders"
)

// ReminderRunner один проход рассылки напоминаний
type ReminderRunner interface {
	Execute(ctx context.Context) (*send_reminders.Result, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Scheduler запускает рассылку напоминаний по cron расписанию в часовом поясе бизнеса
type Scheduler struct {
	cron    *cron.Cron
	spec    string
	runner  ReminderRunner
	timeout time.Duration
	logger  Logger

	// пересекающиеся прогоны не запускаются
	mu sync.Mutex
}

// New создает планировщик напоминаний с cron выражением spec в часовом поясе loc
func New(spec string, loc *time.Location, timeout time.Duration, runner ReminderRunner, logger Logger) *Scheduler {
	return &Scheduler{
		cron:    cron.New(cron.WithLocation(loc)),
		spec:    spec,
		runner:  runner,
		timeout: timeout,
		logger:  logger,
	}
}

// Start регистрирует задачу и запускает cron
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.spec, s.RunOnce); err != nil {
		return fmt.Errorf("add reminders job %q: %w", s.spec, err)
	}

	s.cron.Start()
	s.logger.Info("Scheduler started (spec: %s, TZ: %s)", s.spec, s.cron.Location())
	return nil
}

// Stop останавливает cron и дожидается завершения текущего прогона
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("Scheduler stopped")
}

// RunOnce выполняет один прогон рассылки
func (s *Scheduler) RunOnce() {
	if !s.mu.TryLock() {
		s.logger.Warn("Scheduler: previous reminders run still in progress, skipping")
		return
	}
	defer s.mu.Unlock()

	ctx := context.Background()
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	result, err := s.runner.Execute(ctx)
	if err != nil {
		s.logger.Error("Scheduler: reminders run failed: %v", err)
		return
	}
	s.logger.Info("Scheduler: reminders run done (checked=%d, eligible=%d, sent=%d, failed=%d, skipped=%d)",
		result.Checked, result.Eligible, result.Sent, result.Failed, result.Skipped)
}
