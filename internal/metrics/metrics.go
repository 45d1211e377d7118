package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// OrdersCreated counts orders accepted through POST /orders.
	OrdersCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "adalicious_orders_created_total",
		Help: "Number of orders created.",
	})

	// StatusUpdates counts status changes applied by the kitchen,
	// labelled with the target status.
	StatusUpdates = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "adalicious_order_status_updates_total",
		Help: "Number of order status updates, by target status.",
	}, []string{"status"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "adalicious_http_request_duration_seconds",
		Help:    "HTTP request latency by route and status code.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "code"})
)

// Middleware records the duration of every request against its route
// template, so /orders/:id/status stays a single series.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		requestDuration.WithLabelValues(
			c.Request.Method,
			path,
			strconv.Itoa(c.Writer.Status()),
		).Observe(time.Since(start).Seconds())
	}
}
