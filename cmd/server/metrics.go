package main

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	words    prometheus.Counter
	handler  http.Handler
}

func newMetrics() *metrics {
	reg := prometheus.NewRegistry()
	m := &metrics{
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "grac_http_requests_total",
				Help: "HTTP requests by endpoint and status code.",
			},
			[]string{"endpoint", "code"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "grac_http_request_duration_seconds",
				Help:    "HTTP request latency by endpoint.",
				Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
			},
			[]string{"endpoint"},
		),
		words: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "grac_words_syllabified_total",
				Help: "Words segmented by the syllabify endpoints.",
			},
		),
	}
	reg.MustRegister(m.requests, m.duration, m.words)
	reg.MustRegister(collectors.NewGoCollector())
	m.handler = promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
	return m
}

// statusRecorder captures the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// instrument counts and times requests to h under the endpoint label.
func (m *metrics) instrument(endpoint string, h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		h(rec, r)
		m.duration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
		m.requests.WithLabelValues(endpoint, strconv.Itoa(rec.status)).Inc()
	}
}
