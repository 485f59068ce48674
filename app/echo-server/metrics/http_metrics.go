package metrics

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "toolsplaza_http_request_duration_seconds",
		Help:    "Latency of HTTP requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})

	RequestTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "toolsplaza_http_requests_total",
		Help: "Total HTTP requests served",
	}, []string{"method", "path", "status"})
)

func Init() {
	prometheus.MustRegister(RequestDuration, RequestTotal)
}

// Middleware observes every request against the registered collectors,
// labelled by route template rather than raw URL to keep cardinality down.
func Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			path := c.Path()
			if path == "" {
				path = c.Request().URL.Path
			}

			RequestDuration.WithLabelValues(c.Request().Method, path).
				Observe(time.Since(start).Seconds())
			RequestTotal.WithLabelValues(c.Request().Method, path,
				strconv.Itoa(c.Response().Status)).Inc()

			return err
		}
	}
}
