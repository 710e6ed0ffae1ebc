// Package metrics provides Prometheus metrics for the webhook pipeline.
package metrics

import (
	"net/http"

	"github.com/ngmachado/web3-hooks/domain/interfaces"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics.
type Metrics struct {
	registry *prometheus.Registry

	// Webhook intake
	webhooksSucceeded *prometheus.CounterVec
	webhooksFailed    prometheus.Counter

	// Drain loop
	jobsProcessed *prometheus.CounterVec
	jobsFailed    *prometheus.CounterVec
	eventsFetched *prometheus.CounterVec
	queueDepth    prometheus.Gauge

	// Delivery
	notificationsSent   prometheus.Counter
	notificationsFailed prometheus.Counter
}

var _ interfaces.PipelineMetrics = (*Metrics)(nil)

// NewMetrics creates a new Metrics instance on its own registry.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		webhooksSucceeded: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "successful_webhooks",
				Help: "Number of webhooks accepted, by event type",
			},
			[]string{"event_type"},
		),
		webhooksFailed: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "failed_webhooks",
				Help: "Number of webhooks that failed during intake",
			},
		),
		jobsProcessed: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "web3_hooks_jobs_processed_total",
				Help: "Jobs drained and delivered without error",
			},
			[]string{"event_type"},
		),
		jobsFailed: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "web3_hooks_jobs_failed_total",
				Help: "Jobs dropped after a fetch, format or send error",
			},
			[]string{"event_type"},
		),
		eventsFetched: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "web3_hooks_events_fetched_total",
				Help: "Token events returned by the subgraph",
			},
			[]string{"event_type"},
		),
		queueDepth: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "web3_hooks_queue_depth",
				Help: "Jobs waiting in the in-memory queue",
			},
		),
		notificationsSent: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "web3_hooks_notifications_sent_total",
				Help: "Messages accepted by the chat channel",
			},
		),
		notificationsFailed: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "web3_hooks_notifications_failed_total",
				Help: "Messages rejected by or undeliverable to the chat channel",
			},
		),
	}
}

// WebhookSucceeded increments the accepted webhook counter for eventType.
func (m *Metrics) WebhookSucceeded(eventType string) {
	m.webhooksSucceeded.WithLabelValues(eventType).Inc()
}

// WebhookFailed increments the failed webhook counter.
func (m *Metrics) WebhookFailed() {
	m.webhooksFailed.Inc()
}

// JobProcessed increments the processed job counter.
func (m *Metrics) JobProcessed(eventType string) {
	m.jobsProcessed.WithLabelValues(eventType).Inc()
}

// JobFailed increments the failed job counter.
func (m *Metrics) JobFailed(eventType string) {
	m.jobsFailed.WithLabelValues(eventType).Inc()
}

// EventsFetched adds count fetched events.
func (m *Metrics) EventsFetched(eventType string, count int) {
	m.eventsFetched.WithLabelValues(eventType).Add(float64(count))
}

// NotificationSent increments the sent message counter.
func (m *Metrics) NotificationSent() {
	m.notificationsSent.Inc()
}

// NotificationFailed increments the failed message counter.
func (m *Metrics) NotificationFailed() {
	m.notificationsFailed.Inc()
}

// SetQueueDepth records the current queue length.
func (m *Metrics) SetQueueDepth(depth int) {
	m.queueDepth.Set(float64(depth))
}

// Handler returns the exposition handler for this registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
