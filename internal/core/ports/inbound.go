package ports

import (
	"context"

	"github.com/AVII-VERSE/mediscan/internal/core/domain"
)

// DocumentAnalyzer is the single inbound capability: turn one raw document
// (or plain text) into a structured analysis result.
type DocumentAnalyzer interface {
	AnalyzeFile(ctx context.Context, raw domain.RawInput) (*domain.AnalysisResult, error)
	AnalyzeText(ctx context.Context, text string) (*domain.AnalysisResult, error)
}
