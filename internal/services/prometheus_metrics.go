package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	transactionsRecorded *prometheus.CounterVec
	budgetsCreated       prometheus.Counter
	savingsGoalsCreated  prometheus.Counter
	notificationsCreated prometheus.Counter
	notificationsRead    prometheus.Counter
	dashboardDuration    prometheus.Histogram
	activeUsersTotal     prometheus.Gauge
	authEventsTotal      *prometheus.CounterVec
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		transactionsRecorded: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transactions_recorded_total",
				Help: "Total number of transactions recorded",
			},
			[]string{"type"},
		),
		budgetsCreated: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "budgets_created_total",
				Help: "Total number of budgets created",
			},
		),
		savingsGoalsCreated: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "savings_goals_created_total",
				Help: "Total number of savings goals created",
			},
		),
		notificationsCreated: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "notifications_created_total",
				Help: "Total number of notifications created",
			},
		),
		notificationsRead: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "notifications_read_total",
				Help: "Total number of notifications marked read",
			},
		),
		dashboardDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "dashboard_overview_duration_milliseconds",
				Help:    "Dashboard assembly duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		activeUsersTotal: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "active_users_total",
				Help: "Current number of registered users",
			},
		),
		authEventsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "authentication_events_total",
				Help: "Total number of authentication events",
			},
			[]string{"event_type"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "transactions_recorded":
		transactionType := tags["type"]
		if transactionType == "" {
			transactionType = "unknown"
		}
		m.transactionsRecorded.WithLabelValues(transactionType).Inc()
	case "budgets_created":
		m.budgetsCreated.Inc()
	case "savings_goals_created":
		m.savingsGoalsCreated.Inc()
	case "notifications_created":
		m.notificationsCreated.Inc()
	case "notifications_read":
		m.notificationsRead.Inc()
	case "authentication_event":
		if eventType := tags["event_type"]; eventType != "" {
			m.authEventsTotal.WithLabelValues(eventType).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "dashboard_overview":
		m.dashboardDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "active_users":
		m.activeUsersTotal.Set(value)
	}
}

// NoopMetrics discards every recording. Used in tests where the global
// prometheus registry would otherwise collide between suites.
type NoopMetrics struct{}

func NewNoopMetrics() MetricsRecorderInterface { return &NoopMetrics{} }

func (m *NoopMetrics) IncrementCounter(name string, tags map[string]string)           {}
func (m *NoopMetrics) RecordProcessingTime(name string, duration time.Duration)       {}
func (m *NoopMetrics) RecordGauge(name string, value float64, tags map[string]string) {}
