package prometheus

import (
	"fmt"
	"time"

	"github.com/sm8ta/cep_cache_microservice/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

type PrometheusAdapter struct {
	appName             string
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	resolutionsTotal    *prometheus.CounterVec
	storeWriteFailures  prometheus.Counter
}

// NewPrometheusAdapter registers the service metrics on reg. appName fills
// the app_name label of the HTTP series.
// Pass prometheus.DefaultRegisterer to expose them on /metrics.
func NewPrometheusAdapter(reg prometheus.Registerer, appName string) ports.MetricsPort {
	adapter := &PrometheusAdapter{
		appName: appName,

		httpRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"path", "method", "status", "app_name"},
		),
		httpRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "api_request_duration_seconds",
				Help:    "Duration API requests",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"path", "method", "status", "app_name"},
		),
		resolutionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cep_resolutions_total",
				Help: "CEP resolutions by outcome",
			},
			[]string{"outcome"},
		),
		storeWriteFailures: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "cep_store_write_failures_total",
				Help: "Addresses fetched from the source that could not be cached",
			},
		),
	}

	reg.MustRegister(
		adapter.httpRequestsTotal,
		adapter.httpRequestDuration,
		adapter.resolutionsTotal,
		adapter.storeWriteFailures,
	)

	adapter.httpRequestsTotal.WithLabelValues("/health", "GET", "200", appName).Add(0)
	return adapter
}

func (p *PrometheusAdapter) IncrementCounter(name string, labels map[string]string) {
	p.httpRequestsTotal.WithLabelValues(
		labels["path"],
		labels["method"],
		labels["status"],
		p.appName,
	).Inc()
}

func (p *PrometheusAdapter) RecordDuration(name string, duration time.Duration, labels map[string]string) {
	p.httpRequestDuration.WithLabelValues(
		labels["path"],
		labels["method"],
		labels["status"],
		p.appName,
	).Observe(duration.Seconds())
}

// RecordMetrics labels by route template so every CEP shares one series.
func (p *PrometheusAdapter) RecordMetrics(c *gin.Context, start time.Time) {
	path := c.FullPath()
	if path == "" {
		path = "unmatched"
	}
	labels := map[string]string{
		"path":   path,
		"method": c.Request.Method,
		"status": fmt.Sprintf("%d", c.Writer.Status()),
	}

	p.IncrementCounter("http_requests_total", labels)
	p.RecordDuration("api_request_duration_seconds", time.Since(start), labels)
}

func (p *PrometheusAdapter) RecordResolution(outcome string) {
	p.resolutionsTotal.WithLabelValues(outcome).Inc()
}

func (p *PrometheusAdapter) RecordStoreWriteFailure() {
	p.storeWriteFailures.Inc()
}
