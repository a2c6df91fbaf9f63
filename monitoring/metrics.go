package monitoring

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "musicpass_http_requests_total",
			Help: "Total HTTP requests by route and status",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "musicpass_http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.ExponentialBuckets(0.0005, 2, 12),
		},
		[]string{"method", "route"},
	)

	navigationTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "musicpass_navigation_transitions_total",
			Help: "Navigation actions by kind and result",
		},
		[]string{"action", "result"},
	)

	activeSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "musicpass_active_sessions",
			Help: "Sessions currently held in memory",
		},
	)
)

// Middleware records every request under its route template, so /tickets/8
// and /tickets/9 share a series.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		httpRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		httpDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

// Handler serves the default registry.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}

func TrackTransition(action string, err error) {
	result := "ok"
	if err != nil {
		result = "rejected"
	}
	navigationTransitions.WithLabelValues(action, result).Inc()
}

func SetActiveSessions(n int) {
	activeSessions.Set(float64(n))
}
