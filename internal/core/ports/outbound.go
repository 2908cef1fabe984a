package ports

import (
	"context"

	"github.com/AVII-VERSE/mediscan/internal/core/domain"
)

// FormatExtractor turns validated bytes into raw text. Implementations own
// the format-library specifics entirely; the core treats the call as atomic.
// Per-page failures inside a multi-page document are swallowed and logged as
// long as at least one page yields text.
type FormatExtractor interface {
	ExtractText(ctx context.Context, content []byte) (domain.ExtractedText, error)
}

// KnowledgeSource is the read-only medication knowledge boundary. All four
// queries are deterministic given their inputs and safe for concurrent use.
type KnowledgeSource interface {
	MedicationInfo(ctx context.Context, name string) (domain.MedicationRecord, error)
	CheckInteractions(ctx context.Context, names []string) ([]domain.Interaction, error)
	SpecialtyRecommendations(ctx context.Context, terms []string) ([]domain.SpecialtyAdvice, error)
	IdentifyRedFlags(ctx context.Context, text string, names []string) ([]domain.RedFlag, error)
}
