package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns every collector the service exposes. Collectors are registered
// on the registry given to New so tests can use an isolated one.
type Metrics struct {
	ServiceName string

	requestCounter      *prometheus.CounterVec
	requestDuration     *prometheus.HistogramVec
	statusCategoryCount *prometheus.CounterVec
	webhookEvents       *prometheus.CounterVec
	accountsProvisioned prometheus.Counter
	quotesSaved         *prometheus.CounterVec

	gatherer prometheus.Gatherer
}

func New(serviceName string, reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		ServiceName: serviceName,
		requestCounter: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"service", "method", "path", "status"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"service", "method", "path", "status"},
		),
		statusCategoryCount: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_status_category_total",
				Help: "Total number of responses by status category (2xx, 4xx, 5xx)",
			},
			[]string{"service", "category", "method", "path"},
		),
		webhookEvents: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "billing_webhook_events_total",
				Help: "Webhook deliveries by provider, event kind and outcome",
			},
			[]string{"provider", "kind", "outcome"},
		),
		accountsProvisioned: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "billing_accounts_provisioned_total",
				Help: "Accounts created from completed checkouts",
			},
		),
		quotesSaved: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "quotes_saved_total",
				Help: "Quotes persisted by operation",
			},
			[]string{"operation"},
		),
		gatherer: reg,
	}
	reg.MustRegister(
		m.requestCounter,
		m.requestDuration,
		m.statusCategoryCount,
		m.webhookEvents,
		m.accountsProvisioned,
		m.quotesSaved,
	)
	return m
}

func statusCategory(status int) string {
	switch {
	case status >= 200 && status < 300:
		return "2xx"
	case status >= 400 && status < 500:
		return "4xx"
	case status >= 500 && status < 600:
		return "5xx"
	}
	return ""
}

// Middleware records request count, duration and status category.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := c.Writer.Status()
		method := c.Request.Method
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		statusStr := strconv.Itoa(status)

		m.requestCounter.WithLabelValues(m.ServiceName, method, path, statusStr).Inc()
		if category := statusCategory(status); category != "" {
			m.statusCategoryCount.WithLabelValues(m.ServiceName, category, method, path).Inc()
		}
		m.requestDuration.WithLabelValues(m.ServiceName, method, path, statusStr).Observe(time.Since(start).Seconds())
	}
}

func (m *Metrics) WebhookEvent(provider, kind, outcome string) {
	m.webhookEvents.WithLabelValues(provider, kind, outcome).Inc()
}

func (m *Metrics) AccountProvisioned() {
	m.accountsProvisioned.Inc()
}

func (m *Metrics) QuoteSaved(operation string) {
	m.quotesSaved.WithLabelValues(operation).Inc()
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
