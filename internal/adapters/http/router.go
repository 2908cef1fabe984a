package httpadapter

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/AVII-VERSE/mediscan/internal/core/domain"
	"github.com/AVII-VERSE/mediscan/internal/core/ports"
	"github.com/AVII-VERSE/mediscan/internal/observability/metrics"
)

const serviceName = "mediscan-api"

type Options struct {
	MaxFileSizeBytes int64

	RateLimitRPS   int
	RateLimitBurst int
	MaxConcurrent  int
	QueueWait      time.Duration
}

type Router struct {
	analyzer ports.DocumentAnalyzer
	metrics  *metrics.HTTPServerMetrics
	opts     Options
}

func NewRouter(analyzer ports.DocumentAnalyzer, m *metrics.HTTPServerMetrics, opts Options) *Router {
	return &Router{analyzer: analyzer, metrics: m, opts: opts}
}

// Handler builds the route table. Traffic control guards only the analysis
// routes: health checks and scrapes must keep answering under load.
func (rt *Router) Handler() http.Handler {
	analyze := rateLimitMiddleware(
		backpressureMiddleware(http.HandlerFunc(rt.analyzeDocument), rt.opts.MaxConcurrent, rt.opts.QueueWait),
		rt.opts.RateLimitRPS,
		rt.opts.RateLimitBurst,
	)

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", rt.healthz)
	mux.HandleFunc("/analysis/health", rt.analysisHealth)
	mux.Handle("/analysis/analyze", analyze)
	mux.Handle("/metrics", rt.metrics.Handler())

	var handler http.Handler = mux
	handler = rt.metrics.Middleware(serviceName, handler)
	handler = accessLogMiddleware(handler)
	handler = requestIDMiddleware(handler)
	return handler
}

func (rt *Router) healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (rt *Router) analysisHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "document-analysis",
	})
}

// analyzeDocument accepts exactly one of the multipart fields "file" and
// "text". Ambiguous requests are rejected before any byte of the payload is
// processed.
func (rt *Router) analyzeDocument(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	if err := r.ParseMultipartForm(rt.opts.MaxFileSizeBytes + 1<<20); err != nil {
		writeError(w, http.StatusBadRequest, domain.NewValidationError(
			domain.CodeMissingInput, "request must be multipart form data with a 'file' or 'text' field"))
		return
	}

	text := r.FormValue("text")
	file, header, fileErr := r.FormFile("file")
	hasFile := fileErr == nil
	if hasFile {
		defer file.Close()
	}
	hasText := strings.TrimSpace(text) != ""

	switch {
	case hasFile && hasText:
		writeError(w, http.StatusBadRequest, domain.NewValidationError(
			domain.CodeMultipleInputs, "provide either a file or text, not both"))
		return
	case !hasFile && !hasText:
		writeError(w, http.StatusBadRequest, domain.NewValidationError(
			domain.CodeMissingInput, "either a file or text must be provided"))
		return
	}

	start := time.Now()
	var (
		result     *domain.AnalysisResult
		err        error
		sourceType = string(domain.SourceText)
	)
	if hasFile {
		sourceType = string(domain.SourceUnknown)
		content, readErr := io.ReadAll(file)
		if readErr != nil {
			writeError(w, http.StatusBadRequest, domain.NewValidationError(
				domain.CodeMissingInput, "uploaded file could not be read"))
			return
		}
		result, err = rt.analyzer.AnalyzeFile(r.Context(), domain.RawInput{
			Content:     content,
			Filename:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
		})
	} else {
		result, err = rt.analyzer.AnalyzeText(r.Context(), text)
	}

	if err != nil {
		if domain.IsKind(err, domain.ErrExtraction) {
			rt.metrics.RecordExtractionFailure(serviceName, sourceType, domain.CodeOf(err))
		}
		rt.metrics.RecordAnalysis(serviceName, sourceType, "error", 0, 0, time.Since(start))
		writeError(w, mapErrorToHTTPStatus(err), err)
		return
	}

	rt.metrics.RecordAnalysis(
		serviceName,
		string(result.Metadata.SourceType),
		"ok",
		len(result.Medications),
		len(result.Alerts),
		time.Since(start),
	)
	writeJSON(w, http.StatusOK, result)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, err error) {
	message := "internal server error"
	var coded *domain.Coded
	if errors.As(err, &coded) {
		message = coded.Message
	}
	writeJSON(w, status, map[string]any{
		"success":    false,
		"error":      message,
		"error_code": domain.CodeOf(err),
	})
}
