package metrics

import (
	"bufio"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type HTTPServerMetrics struct {
	registry *prometheus.Registry

	requestTotal    *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	requestInFlight prometheus.Gauge

	analysisTotal       *prometheus.CounterVec
	analysisDuration    *prometheus.HistogramVec
	analysisMedications *prometheus.HistogramVec
	analysisAlerts      *prometheus.HistogramVec
	extractionFailures  *prometheus.CounterVec
}

func NewHTTPServerMetrics(service string) *HTTPServerMetrics {
	registry := prometheus.NewRegistry()

	requestTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mediscan",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests processed.",
		},
		[]string{"service", "method", "path", "status"},
	)
	requestDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "mediscan",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"service", "method", "path"},
	)
	requestInFlight := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "mediscan",
			Subsystem: "http",
			Name:      "in_flight_requests",
			Help:      "Number of in-flight HTTP requests.",
			ConstLabels: prometheus.Labels{
				"service": service,
			},
		},
	)
	analysisTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mediscan",
			Subsystem: "analysis",
			Name:      "documents_total",
			Help:      "Total analyzed documents by source type and outcome.",
		},
		[]string{"service", "source_type", "status"},
	)
	analysisDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "mediscan",
			Subsystem: "analysis",
			Name:      "duration_seconds",
			Help:      "End-to-end analysis duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"service", "source_type"},
	)
	analysisMedications := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "mediscan",
			Subsystem: "analysis",
			Name:      "medications_found",
			Help:      "Distribution of medications found per analyzed document.",
			Buckets:   []float64{0, 1, 2, 3, 5, 8, 13, 21},
		},
		[]string{"service", "source_type"},
	)
	analysisAlerts := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "mediscan",
			Subsystem: "analysis",
			Name:      "alerts_raised",
			Help:      "Distribution of alerts raised per analyzed document.",
			Buckets:   []float64{0, 1, 2, 3, 5, 8, 13},
		},
		[]string{"service", "source_type"},
	)
	extractionFailures := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mediscan",
			Subsystem: "extraction",
			Name:      "failures_total",
			Help:      "Total failed text extractions by source type and code.",
		},
		[]string{"service", "source_type", "code"},
	)

	registry.MustRegister(
		requestTotal,
		requestDuration,
		requestInFlight,
		analysisTotal,
		analysisDuration,
		analysisMedications,
		analysisAlerts,
		extractionFailures,
	)

	return &HTTPServerMetrics{
		registry:            registry,
		requestTotal:        requestTotal,
		requestDuration:     requestDuration,
		requestInFlight:     requestInFlight,
		analysisTotal:       analysisTotal,
		analysisDuration:    analysisDuration,
		analysisMedications: analysisMedications,
		analysisAlerts:      analysisAlerts,
		extractionFailures:  extractionFailures,
	}
}

func (m *HTTPServerMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *HTTPServerMetrics) Middleware(service string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		path := r.URL.Path
		recorder := &statusRecorder{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		m.requestInFlight.Inc()
		defer m.requestInFlight.Dec()

		next.ServeHTTP(recorder, r)

		m.requestTotal.WithLabelValues(
			service,
			r.Method,
			path,
			strconv.Itoa(recorder.statusCode),
		).Inc()
		m.requestDuration.WithLabelValues(service, r.Method, path).Observe(time.Since(start).Seconds())
	})
}

func (m *HTTPServerMetrics) RecordAnalysis(service, sourceType, status string, medications, alerts int, duration time.Duration) {
	if sourceType == "" {
		sourceType = "unknown"
	}
	m.analysisTotal.WithLabelValues(service, sourceType, status).Inc()
	if status != "ok" {
		return
	}
	m.analysisDuration.WithLabelValues(service, sourceType).Observe(duration.Seconds())
	m.analysisMedications.WithLabelValues(service, sourceType).Observe(float64(medications))
	m.analysisAlerts.WithLabelValues(service, sourceType).Observe(float64(alerts))
}

func (m *HTTPServerMetrics) RecordExtractionFailure(service, sourceType, code string) {
	if sourceType == "" {
		sourceType = "unknown"
	}
	if code == "" {
		code = "unknown"
	}
	m.extractionFailures.WithLabelValues(service, sourceType, code).Inc()
}

type statusRecorder struct {
	http.ResponseWriter
	statusCode int
}

func (w *statusRecorder) WriteHeader(statusCode int) {
	w.statusCode = statusCode
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *statusRecorder) Flush() {
	flusher, ok := w.ResponseWriter.(http.Flusher)
	if ok {
		flusher.Flush()
	}
}

func (w *statusRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	hijacker, ok := w.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, fmt.Errorf("response writer does not implement http.Hijacker")
	}
	return hijacker.Hijack()
}
