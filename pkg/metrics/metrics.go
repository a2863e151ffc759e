package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор Prometheus метрик сервиса
type Metrics struct {
	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec

	dbQueryDuration *prometheus.HistogramVec
	dbOpenConns     *prometheus.GaugeVec
	dbInUseConns    *prometheus.GaugeVec
	dbWaitCount     *prometheus.GaugeVec

	remindersSent   *prometheus.CounterVec
	remindersFailed *prometheus.CounterVec
	reminderRuns    prometheus.Counter
	reminderRunTime prometheus.Histogram
}

// New создает и регистрирует метрики в указанном registerer
// В production передается prometheus.DefaultRegisterer, в тестах - prometheus.NewRegistry()
func New(serviceName string, reg prometheus.Registerer) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),
		dbQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query duration",
			ConstLabels: constLabels,
			Buckets:     []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		}, []string{"operation"}),
		dbOpenConns: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Number of established database connections",
			ConstLabels: constLabels,
		}, []string{}),
		dbInUseConns: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Number of database connections currently in use",
			ConstLabels: constLabels,
		}, []string{}),
		dbWaitCount: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_wait_count",
			Help:        "Total number of connections waited for",
			ConstLabels: constLabels,
		}, []string{}),
		remindersSent: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "reminders_sent_total",
			Help:        "Reminders dispatched successfully",
			ConstLabels: constLabels,
		}, []string{"preference"}),
		remindersFailed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "reminders_failed_total",
			Help:        "Reminder dispatch failures",
			ConstLabels: constLabels,
		}, []string{"preference"}),
		reminderRuns: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "reminder_runs_total",
			Help:        "Reminder scheduler runs",
			ConstLabels: constLabels,
		}),
		reminderRunTime: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:        "reminder_run_duration_seconds",
			Help:        "Reminder scheduler run duration",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}),
	}

	reg.MustRegister(
		m.httpRequests,
		m.httpDuration,
		m.dbQueryDuration,
		m.dbOpenConns,
		m.dbInUseConns,
		m.dbWaitCount,
		m.remindersSent,
		m.remindersFailed,
		m.reminderRuns,
		m.reminderRunTime,
	)

	return m
}

// ObserveHTTPRequest записывает метрики HTTP запроса
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// ObserveDBQuery записывает длительность запроса к БД
func (m *Metrics) ObserveDBQuery(operation string, duration time.Duration) {
	m.dbQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// SetDBPoolStats обновляет метрики пула соединений
func (m *Metrics) SetDBPoolStats(open, inUse int, waitCount int64) {
	m.dbOpenConns.WithLabelValues().Set(float64(open))
	m.dbInUseConns.WithLabelValues().Set(float64(inUse))
	m.dbWaitCount.WithLabelValues().Set(float64(waitCount))
}

// ReminderSent увеличивает счетчик отправленных напоминаний
func (m *Metrics) ReminderSent(preference string) {
	m.remindersSent.WithLabelValues(preference).Inc()
}

// ReminderFailed увеличивает счетчик неудачных отправок
func (m *Metrics) ReminderFailed(preference string) {
	m.remindersFailed.WithLabelValues(preference).Inc()
}

// ObserveReminderRun записывает выполнение прохода планировщика напоминаний
func (m *Metrics) ObserveReminderRun(duration time.Duration) {
	m.reminderRuns.Inc()
	m.reminderRunTime.Observe(duration.Seconds())
}
