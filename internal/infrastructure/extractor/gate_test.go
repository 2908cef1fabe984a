package extractor

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/AVII-VERSE/mediscan/internal/core/domain"
	"github.com/AVII-VERSE/mediscan/internal/infrastructure/resilience"
)

type stubExtractor struct {
	text  string
	err   error
	delay time.Duration
}

func (s *stubExtractor) ExtractText(ctx context.Context, _ []byte) (domain.ExtractedText, error) {
	if s.delay > 0 {
		select {
		case <-ctx.Done():
			return domain.ExtractedText{}, ctx.Err()
		case <-time.After(s.delay):
		}
	}
	return domain.ExtractedText{Text: s.text}, s.err
}

func newTestGate(workers int, timeout time.Duration) *Gate {
	return NewGate(workers, timeout, resilience.NewExecutor(resilience.Config{BreakerEnabled: false}))
}

func TestGatePassesThroughResults(t *testing.T) {
	gate := newTestGate(2, time.Second)
	wrapped := gate.Wrap("extract_text", &stubExtractor{text: "hello notes"})

	extracted, err := wrapped.ExtractText(context.Background(), []byte("ignored"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if extracted.Text != "hello notes" {
		t.Fatalf("expected text passed through, got %q", extracted.Text)
	}
}

func TestGatePropagatesExtractorErrors(t *testing.T) {
	wantErr := domain.NewExtractionError(domain.CodeParseError, "broken document")
	gate := newTestGate(1, time.Second)
	wrapped := gate.Wrap("extract_pdf", &stubExtractor{err: wantErr})

	_, err := wrapped.ExtractText(context.Background(), nil)
	if !errors.Is(err, domain.ErrExtraction) {
		t.Fatalf("expected extraction error, got %v", err)
	}
	if domain.CodeOf(err) != domain.CodeParseError {
		t.Fatalf("expected parse error code, got %s", domain.CodeOf(err))
	}
}

func TestGateEnforcesTimeout(t *testing.T) {
	gate := newTestGate(1, 10*time.Millisecond)
	wrapped := gate.Wrap("extract_image", &stubExtractor{delay: time.Second})

	_, err := wrapped.ExtractText(context.Background(), nil)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
}
