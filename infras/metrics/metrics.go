package metrics

//go:generate go run go.uber.org/mock/mockgen -source=./metrics.go -destination=./mocks/metrics_mock.go -package=mocks

import (
	"darshan/config"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "darshan"

const (
	EventUnknown = "unknown"

	OutcomeHandled   = "handled"
	OutcomeIgnored   = "ignored"
	OutcomeDuplicate = "duplicate"
	OutcomeRejected  = "rejected"
	OutcomeFailed    = "failed"

	ResultCreated  = "created"
	ResultFailed   = "failed"
	ResultDisabled = "disabled"
)

type Metrics interface {
	BookingCreated(museum string)
	BookingRejected(kind string)
	Transition(from, to, source string)
	WebhookEvent(eventType, outcome string)
	PaymentIntent(result string, duration time.Duration)
	Handler() http.Handler
}

type metricsImpl struct {
	registry          *prometheus.Registry
	bookings          *prometheus.CounterVec
	bookingRejections *prometheus.CounterVec
	transitions       *prometheus.CounterVec
	webhookEvents     *prometheus.CounterVec
	paymentIntents    *prometheus.HistogramVec
}

// New registers the ticketing collectors on a private registry so repeated
// construction never collides with the default one.
func New(cfg *config.Config) Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	factory := promauto.With(registry)
	constLabels := prometheus.Labels{"app": cfg.App.Name}

	return &metricsImpl{
		registry: registry,
		bookings: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   namespace,
				Name:        "bookings_total",
				Help:        "Tickets booked per museum",
				ConstLabels: constLabels,
			},
			[]string{"museum"},
		),
		bookingRejections: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   namespace,
				Name:        "booking_rejections_total",
				Help:        "Booking requests rejected per error kind",
				ConstLabels: constLabels,
			},
			[]string{"kind"},
		),
		transitions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   namespace,
				Name:        "ticket_transitions_total",
				Help:        "Applied payment status transitions",
				ConstLabels: constLabels,
			},
			[]string{"from", "to", "source"},
		),
		webhookEvents: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   namespace,
				Name:        "payment_webhook_events_total",
				Help:        "Payment webhook deliveries per type and outcome",
				ConstLabels: constLabels,
			},
			[]string{"type", "outcome"},
		),
		paymentIntents: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace:   namespace,
				Name:        "payment_intent_duration_seconds",
				Help:        "Latency of payment intent creation",
				ConstLabels: constLabels,
				Buckets:     prometheus.ExponentialBuckets(0.05, 2, 8),
			},
			[]string{"result"},
		),
	}
}

func (m *metricsImpl) BookingCreated(museum string) {
	m.bookings.WithLabelValues(museum).Inc()
}

func (m *metricsImpl) BookingRejected(kind string) {
	m.bookingRejections.WithLabelValues(kind).Inc()
}

func (m *metricsImpl) Transition(from, to, source string) {
	m.transitions.WithLabelValues(from, to, source).Inc()
}

func (m *metricsImpl) WebhookEvent(eventType, outcome string) {
	m.webhookEvents.WithLabelValues(eventType, outcome).Inc()
}

func (m *metricsImpl) PaymentIntent(result string, duration time.Duration) {
	m.paymentIntents.WithLabelValues(result).Observe(duration.Seconds())
}

func (m *metricsImpl) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
