// Package engine derives structured clinical insights from normalized text
// using deterministic rule tables. Every sub-extractor is a pure function of
// its input; the knowledge source is the only external collaborator and is
// queried read-only.
package engine

import (
	"context"
	"fmt"

	"github.com/AVII-VERSE/mediscan/internal/core/domain"
	"github.com/AVII-VERSE/mediscan/internal/core/ports"
)

type Engine struct {
	kb ports.KnowledgeSource
}

func New(kb ports.KnowledgeSource) *Engine {
	return &Engine{kb: kb}
}

// Report is the combined output of all sub-extractors for one document.
type Report struct {
	Summary         string
	Medications     []domain.Medication
	Prescriptions   []domain.Prescription
	Schedule        domain.TimingSchedule
	Recommendations []domain.Recommendation
	Facilities      []domain.FacilitySuggestion
	Alerts          []domain.Alert
	Insights        domain.AdditionalInsights
}

// Analyze runs every sub-extractor over the normalized text. The output is
// byte-identical across repeated runs for the same input.
func (e *Engine) Analyze(ctx context.Context, text string) (*Report, error) {
	medications := ExtractMedications(text)
	names := MedicationNames(medications)

	prescriptions, err := ParsePrescriptions(ctx, e.kb, text, names)
	if err != nil {
		return nil, fmt.Errorf("parse prescriptions: %w", err)
	}

	recommendations, facilities := Recommend(text)
	advice, err := e.kb.SpecialtyRecommendations(ctx, append(names, text))
	if err != nil {
		return nil, fmt.Errorf("specialty recommendations: %w", err)
	}
	recommendations = MergeSpecialtyAdvice(recommendations, advice)

	insights, err := BuildInsights(ctx, e.kb, text, names)
	if err != nil {
		return nil, fmt.Errorf("build insights: %w", err)
	}

	return &Report{
		Summary:         ExtractSummary(text),
		Medications:     medications,
		Prescriptions:   prescriptions,
		Schedule:        BuildSchedule(prescriptions),
		Recommendations: recommendations,
		Facilities:      facilities,
		Alerts:          ExtractAlerts(text),
		Insights:        insights,
	}, nil
}
