package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	appointmentsHandler "github.com/m04kA/SMC-AgendaService/internal/api/handlers/appointments"
	calendarHandler "github.com/m04kA/SMC-AgendaService/internal/api/handlers/calendar"
	changesHandler "github.com/m04kA/SMC-AgendaService/internal/api/handlers/changes"
	checkConflictsHandler "github.com/m04kA/SMC-AgendaService/internal/api/handlers/check_conflicts"
	clientsHandler "github.com/m04kA/SMC-AgendaService/internal/api/handlers/clients"
	createAppointmentHandler "github.com/m04kA/SMC-AgendaService/internal/api/handlers/create_appointment"
	deleteAppointmentHandler "github.com/m04kA/SMC-AgendaService/internal/api/handlers/delete_appointment"
	getAvailableSlotsHandler "github.com/m04kA/SMC-AgendaService/internal/api/handlers/get_available_slots"
	scheduleHandler "github.com/m04kA/SMC-AgendaService/internal/api/handlers/schedule"
	sendReminderHandler "github.com/m04kA/SMC-AgendaService/internal/api/handlers/send_reminder"
	sendRemindersHandler "github.com/m04kA/SMC-AgendaService/internal/api/handlers/send_reminders"
	statsHandler "github.com/m04kA/SMC-AgendaService/internal/api/handlers/stats"
	tagsHandler "github.com/m04kA/SMC-AgendaService/internal/api/handlers/tags"
	updateAppointmentHandler "github.com/m04kA/SMC-AgendaService/internal/api/handlers/update_appointment"
	"github.com/m04kA/SMC-AgendaService/internal/api/middleware"
	"github.com/m04kA/SMC-AgendaService/internal/config"
	appointmentRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-AgendaService/internal/infra/storage/changes"
	clientRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/client"
	holidayRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/holiday"
	reminderRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/reminder"
	scheduleRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/schedule"
	tagRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/tag"
	"github.com/m04kA/SMC-AgendaService/internal/integrations/whatsapp"
	"github.com/m04kA/SMC-AgendaService/internal/notification"
	"github.com/m04kA/SMC-AgendaService/internal/scheduler"
	"github.com/m04kA/SMC-AgendaService/internal/service/agenda"
	appointmentsService "github.com/m04kA/SMC-AgendaService/internal/service/appointments"
	calendarService "github.com/m04kA/SMC-AgendaService/internal/service/calendar"
	clientsService "github.com/m04kA/SMC-AgendaService/internal/service/clients"
	scheduleService "github.com/m04kA/SMC-AgendaService/internal/service/schedule"
	statsService "github.com/m04kA/SMC-AgendaService/internal/service/stats"
	tagsService "github.com/m04kA/SMC-AgendaService/internal/service/tags"
	checkConflictsUC "github.com/m04kA/SMC-AgendaService/internal/usecase/check_conflicts"
	createAppointmentUC "github.com/m04kA/SMC-AgendaService/internal/usecase/create_appointment"
	deleteAppointmentUC "github.com/m04kA/SMC-AgendaService/internal/usecase/delete_appointment"
	getAvailableSlotsUC "github.com/m04kA/SMC-AgendaService/internal/usecase/get_available_slots"
	sendReminderUC "github.com/m04kA/SMC-AgendaService/internal/usecase/send_reminder"
	sendRemindersUC "github.com/m04kA/SMC-AgendaService/internal/usecase/send_reminders"
	updateAppointmentUC "github.com/m04kA/SMC-AgendaService/internal/usecase/update_appointment"
	"github.com/m04kA/SMC-AgendaService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AgendaService/pkg/logger"
	"github.com/m04kA/SMC-AgendaService/pkg/metrics"
	"github.com/m04kA/SMC-AgendaService/pkg/txmanager"
)

const reminderRunTimeout = 10 * time.Minute

// messageSender транспорт WhatsApp
type messageSender interface {
	Send(ctx context.Context, to, body string) (string, error)
}

// unconfiguredSender используется, когда учетные данные Twilio не заданы:
// каждая отправка завершается ошибкой транспорта, маркеры не пишутся
type unconfiguredSender struct{}

func (unconfiguredSender) Send(context.Context, string, string) (string, error) {
	return "", whatsapp.ErrNotConfigured
}

func main() {
	configPath := flag.String("config", "", "path to config.toml")
	flag.Parse()

	path := *configPath
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	if path == "" {
		path = "config.toml"
	}

	// Загружаем конфигурацию
	cfg, err := config.Load(path)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-AgendaService...")
	log.Info("Configuration loaded from %s", path)

	loc, err := cfg.Business.Location()
	if err != nil {
		log.Fatal("Failed to load business timezone %q: %v", cfg.Business.Timezone, err)
	}

	// Инициализируем метрики (если включены)
	var (
		dbRecorder      dbmetrics.Recorder
		httpRecorder    middleware.MetricsRecorder
		reminderMetrics sendRemindersUC.Metrics
	)
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector := metrics.New(cfg.Metrics.ServiceName, prometheus.DefaultRegisterer)
		dbRecorder = metricsCollector
		httpRecorder = metricsCollector
		reminderMetrics = metricsCollector
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	wrappedDB := dbmetrics.WrapWithDefault(db, dbRecorder, stopMetricsCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Инициализируем репозитории
	clientRepository := clientRepo.NewRepository(wrappedDB, loc)
	appointmentRepository := appointmentRepo.NewRepository(wrappedDB, loc)
	tagRepository := tagRepo.NewRepository(wrappedDB)
	holidayRepository := holidayRepo.NewRepository(wrappedDB, loc)
	scheduleRepository := scheduleRepo.NewRepository(wrappedDB)
	reminderRepository := reminderRepo.NewRepository(wrappedDB)

	// Инициализируем интеграционных клиентов
	var sender messageSender
	whatsappClient, err := whatsapp.NewClient(
		cfg.Twilio.AccountSID,
		cfg.Twilio.AuthToken,
		cfg.Twilio.From,
		time.Duration(cfg.Twilio.Timeout)*time.Second,
		log,
	)
	switch {
	case errors.Is(err, whatsapp.ErrNotConfigured):
		log.Warn("Twilio credentials are not configured, WhatsApp reminders will fail")
		sender = unconfiguredSender{}
	case err != nil:
		log.Fatal("Failed to initialize WhatsApp client: %v", err)
	default:
		sender = whatsappClient
		log.Info("WhatsApp client initialized (from=%s, timeout=%ds)", cfg.Twilio.From, cfg.Twilio.Timeout)
	}

	composer := notification.NewComposer(
		cfg.Business.DefaultCountryCode,
		cfg.Business.ServiceName,
		cfg.Business.BusinessName,
		loc,
	)

	// Инициализируем сервисы
	scheduleSvc := scheduleService.NewService(scheduleRepository, holidayRepository, loc, log)
	clientsSvc := clientsService.NewService(clientRepository, appointmentRepository, txMgr, log)
	tagsSvc := tagsService.NewService(tagRepository, appointmentRepository, txMgr, log)
	appointmentsSvc := appointmentsService.NewService(appointmentRepository, log)
	statsSvc := statsService.NewService(clientRepository, appointmentRepository, log)
	calendarSvc := calendarService.NewService(
		appointmentRepository,
		clientRepository,
		tagRepository,
		holidayRepository,
		cfg.Business.BusinessName,
		loc,
		log,
	)
	snapshotLoader := agenda.NewLoader(
		appointmentRepository,
		clientRepository,
		scheduleSvc,
		holidayRepository,
		cfg.Business.PractitionerName,
	)

	// Инициализируем use cases
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		clientRepository,
		snapshotLoader,
		cfg.Business.DefaultRecurrenceMonths,
		log,
	)
	updateAppointmentUseCase := updateAppointmentUC.NewUseCase(
		appointmentRepository,
		clientRepository,
		snapshotLoader,
		log,
	)
	deleteAppointmentUseCase := deleteAppointmentUC.NewUseCase(
		appointmentRepository,
		&deleteAppointmentUC.RealTimeProvider{},
		log,
	)
	checkConflictsUseCase := checkConflictsUC.NewUseCase(
		snapshotLoader,
		cfg.Business.DefaultRecurrenceMonths,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(snapshotLoader, loc, log)
	sendRemindersUseCase := sendRemindersUC.NewUseCase(
		clientRepository,
		appointmentRepository,
		reminderRepository,
		composer,
		sender,
		reminderMetrics,
		&sendRemindersUC.RealTimeProvider{},
		log,
	)
	sendReminderUseCase := sendReminderUC.NewUseCase(
		appointmentRepository,
		clientRepository,
		composer,
		sender,
		log,
	)

	// Поток изменений из PostgreSQL (LISTEN/NOTIFY)
	ctx, cancelBackground := context.WithCancel(context.Background())
	defer cancelBackground()

	hub := changes.NewHub(log)
	go func() {
		if err := hub.Listen(ctx, cfg.Database.DSN()); err != nil && ctx.Err() == nil {
			log.Error("Changes hub stopped: %v", err)
		}
	}()

	// Планировщик напоминаний
	var reminderScheduler *scheduler.Scheduler
	if cfg.Reminders.Enabled {
		schedulerLoc, err := cfg.Reminders.Location(loc)
		if err != nil {
			log.Fatal("Failed to load reminders timezone %q: %v", cfg.Reminders.Timezone, err)
		}
		reminderScheduler = scheduler.New(cfg.Reminders.Schedule, schedulerLoc, reminderRunTimeout, sendRemindersUseCase, log)
		if err := reminderScheduler.Start(); err != nil {
			log.Fatal("Failed to start reminders scheduler: %v", err)
		}
	} else {
		log.Info("Reminders scheduler disabled")
	}

	// Инициализируем handlers
	clients := clientsHandler.NewHandler(clientsSvc, log)
	tags := tagsHandler.NewHandler(tagsSvc, log)
	schedule := scheduleHandler.NewHandler(scheduleSvc, log)
	appointments := appointmentsHandler.NewHandler(appointmentsSvc, loc, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, loc, log)
	updateAppointment := updateAppointmentHandler.NewHandler(updateAppointmentUseCase, loc, log)
	deleteAppointment := deleteAppointmentHandler.NewHandler(deleteAppointmentUseCase, log)
	checkConflicts := checkConflictsHandler.NewHandler(checkConflictsUseCase, loc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, loc, log)
	sendReminders := sendRemindersHandler.NewHandler(sendRemindersUseCase, log)
	sendReminder := sendReminderHandler.NewHandler(sendReminderUseCase, log)
	stats := statsHandler.NewHandler(statsSvc, log)
	calendar := calendarHandler.NewHandler(calendarSvc, log)
	changeStream := changesHandler.NewHandler(hub, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.Logging(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(httpRecorder, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Клиенты ---
	api.HandleFunc("/clients", clients.List).Methods(http.MethodGet)
	api.HandleFunc("/clients", clients.Create).Methods(http.MethodPost)
	api.HandleFunc("/clients/{clientId}", clients.Get).Methods(http.MethodGet)
	api.HandleFunc("/clients/{clientId}", clients.Update).Methods(http.MethodPut)
	api.HandleFunc("/clients/{clientId}", clients.Delete).Methods(http.MethodDelete)

	// --- Метки ---
	api.HandleFunc("/tags", tags.List).Methods(http.MethodGet)
	api.HandleFunc("/tags", tags.Create).Methods(http.MethodPost)
	api.HandleFunc("/tags/{tagId}", tags.Get).Methods(http.MethodGet)
	api.HandleFunc("/tags/{tagId}", tags.Update).Methods(http.MethodPut)
	api.HandleFunc("/tags/{tagId}", tags.Delete).Methods(http.MethodDelete)

	// --- Расписание и праздники ---
	api.HandleFunc("/schedule", schedule.GetWeekly).Methods(http.MethodGet)
	api.HandleFunc("/schedule", schedule.SaveWeekly).Methods(http.MethodPut)
	api.HandleFunc("/holidays", schedule.ListHolidays).Methods(http.MethodGet)
	api.HandleFunc("/holidays", schedule.CreateHolidays).Methods(http.MethodPost)
	api.HandleFunc("/holidays/{holidayId}", schedule.DeleteHoliday).Methods(http.MethodDelete)

	// --- Записи ---
	// /appointments/conflicts регистрируется раньше /appointments/{appointmentId}
	api.HandleFunc("/appointments/conflicts", checkConflicts.Handle).Methods(http.MethodPost)
	api.HandleFunc("/appointments", appointments.List).Methods(http.MethodGet)
	api.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)
	api.HandleFunc("/appointments/{appointmentId}", appointments.Get).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{appointmentId}", updateAppointment.Handle).Methods(http.MethodPut)
	api.HandleFunc("/appointments/{appointmentId}", deleteAppointment.Handle).Methods(http.MethodDelete)

	// Свободные слоты на день
	api.HandleFunc("/slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// --- Напоминания ---
	api.HandleFunc("/reminders/run", sendReminders.Handle).Methods(http.MethodPost)
	api.HandleFunc("/reminders/send", sendReminder.Send).Methods(http.MethodPost)
	api.HandleFunc("/reminders/test", sendReminder.Test).Methods(http.MethodPost)

	// --- Статистика, календарь, поток изменений ---
	api.HandleFunc("/stats", stats.Handle).Methods(http.MethodGet)
	api.HandleFunc("/calendar.ics", calendar.Handle).Methods(http.MethodGet)
	api.HandleFunc("/changes", changeStream.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
		BaseContext:  func(_ net.Listener) context.Context { return ctx },
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	if reminderScheduler != nil {
		reminderScheduler.Stop()
	}

	// Закрываем поток изменений и SSE подписчиков
	cancelBackground()

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
