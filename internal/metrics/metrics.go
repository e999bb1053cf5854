package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "platypus"

const (
	ResultSucceeded = "succeeded"
	ResultFailed    = "failed"
	ResultApplied   = "applied"
	ResultRejected  = "rejected"
)

type Metrics struct {
	HTTPRequests        *prometheus.CounterVec
	HTTPDuration        *prometheus.HistogramVec
	CheckoutSubmissions *prometheus.CounterVec
	AgeGateDeclined     prometheus.Counter
	PromotionAttempts   *prometheus.CounterVec
	OrderValue          prometheus.Histogram
}

// New registers the storefront collectors on reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status.",
		}, []string{"method", "route", "status"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		CheckoutSubmissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "checkout_submissions_total",
			Help:      "Checkout submissions by outcome.",
		}, []string{"result"}),
		AgeGateDeclined: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "checkout_age_gate_declined_total",
			Help:      "Checkouts torn down because the visitor declined age verification.",
		}),
		PromotionAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "promotion_attempts_total",
			Help:      "Promo code attempts by outcome.",
		}, []string{"result"}),
		OrderValue: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "order_value_kes",
			Help:      "Total of placed orders in KES.",
			Buckets:   []float64{1000, 2500, 5000, 10000, 25000, 50000},
		}),
	}

	reg.MustRegister(
		m.HTTPRequests,
		m.HTTPDuration,
		m.CheckoutSubmissions,
		m.AgeGateDeclined,
		m.PromotionAttempts,
		m.OrderValue,
	)
	return m
}

// Middleware records every request under its route template.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.HTTPRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		m.HTTPDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

// The recorders below accept a nil *Metrics so callers can run without
// instrumentation.

func (m *Metrics) PromotionAttempt(applied bool) {
	if m == nil {
		return
	}
	result := ResultRejected
	if applied {
		result = ResultApplied
	}
	m.PromotionAttempts.WithLabelValues(result).Inc()
}

func (m *Metrics) CheckoutFailed() {
	if m == nil {
		return
	}
	m.CheckoutSubmissions.WithLabelValues(ResultFailed).Inc()
}

func (m *Metrics) CheckoutSucceeded(total float64) {
	if m == nil {
		return
	}
	m.CheckoutSubmissions.WithLabelValues(ResultSucceeded).Inc()
	m.OrderValue.Observe(total)
}

func (m *Metrics) AgeDeclined() {
	if m == nil {
		return
	}
	m.AgeGateDeclined.Inc()
}
