package middleware

import (
	"strconv"
	"time"

	"refboard/internal/infra/metrics"

	"github.com/labstack/echo/v4"
)

// MetricsMiddleware records per-request Prometheus metrics.
type MetricsMiddleware struct {
	metrics *metrics.Metrics
}

// NewMetricsMiddleware creates a new metrics middleware
func NewMetricsMiddleware(m *metrics.Metrics) *MetricsMiddleware {
	return &MetricsMiddleware{metrics: m}
}

// Handle observes request count and latency, labelled by the matched route
// rather than the raw path to keep cardinality bounded.
func (m *MetricsMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		err := next(c)

		route := c.Path()
		if route == "" {
			route = "unmatched"
		}
		method := c.Request().Method

		m.metrics.HTTPRequestDuration.
			WithLabelValues(method, route).
			Observe(time.Since(start).Seconds())
		m.metrics.HTTPRequestsTotal.
			WithLabelValues(method, route, strconv.Itoa(c.Response().Status)).
			Inc()

		return err
	}
}
