// Package extractor provides the shared admission gate in front of the
// format extractors. Extraction is the only CPU- and subprocess-heavy stage,
// so it runs under a bounded semaphore, a per-call deadline and a circuit
// breaker shared per format.
package extractor

import (
	"context"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/AVII-VERSE/mediscan/internal/core/domain"
	"github.com/AVII-VERSE/mediscan/internal/core/ports"
	"github.com/AVII-VERSE/mediscan/internal/infrastructure/resilience"
)

type Gate struct {
	sem      *semaphore.Weighted
	timeout  time.Duration
	executor *resilience.Executor
}

func NewGate(workers int, timeout time.Duration, executor *resilience.Executor) *Gate {
	if workers <= 0 {
		workers = 1
	}
	return &Gate{
		sem:      semaphore.NewWeighted(int64(workers)),
		timeout:  timeout,
		executor: executor,
	}
}

// Wrap returns inner guarded by the gate. operation names the breaker, so
// wrapping each format separately isolates their failure domains.
func (g *Gate) Wrap(operation string, inner ports.FormatExtractor) ports.FormatExtractor {
	return &gated{gate: g, operation: operation, inner: inner}
}

type gated struct {
	gate      *Gate
	operation string
	inner     ports.FormatExtractor
}

func (e *gated) ExtractText(ctx context.Context, content []byte) (domain.ExtractedText, error) {
	if err := e.gate.sem.Acquire(ctx, 1); err != nil {
		return domain.ExtractedText{}, err
	}
	defer e.gate.sem.Release(1)

	if e.gate.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.gate.timeout)
		defer cancel()
	}

	var extracted domain.ExtractedText
	err := e.gate.executor.Execute(ctx, e.operation, func(ctx context.Context) error {
		var innerErr error
		extracted, innerErr = e.inner.ExtractText(ctx, content)
		return innerErr
	}, extractionClassifier)
	if err != nil {
		return domain.ExtractedText{}, err
	}
	return extracted, nil
}

// extractionClassifier never retries: a document that failed to parse once
// will fail the same way again. Failures still count toward the breaker
// unless the document itself was at fault.
func extractionClassifier(err error) resilience.ErrorClassification {
	return resilience.ErrorClassification{
		Retryable:     false,
		RecordFailure: !domain.IsKind(err, domain.ErrExtraction),
	}
}
