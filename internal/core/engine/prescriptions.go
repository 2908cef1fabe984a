package engine

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/AVII-VERSE/mediscan/internal/core/domain"
	"github.com/AVII-VERSE/mediscan/internal/core/ports"
)

var prescriptionDosageUnits = `(\d+\s*(?:mg|g|ml|mcg))`

// ParsePrescriptions cross-references each named medication against the
// document and the knowledge source. Missing dosage and frequency fall back
// to the fixed defaults; a missing duration stays empty.
func ParsePrescriptions(ctx context.Context, kb ports.KnowledgeSource, text string, names []string) ([]domain.Prescription, error) {
	prescriptions := make([]domain.Prescription, 0, len(names))

	for _, name := range names {
		dosage := "As prescribed"
		dosageRe, err := regexp.Compile(`(?i)` + regexp.QuoteMeta(name) + `[:\s]+` + prescriptionDosageUnits)
		if err == nil {
			if m := dosageRe.FindStringSubmatch(text); m != nil {
				dosage = m[1]
			}
		}

		frequency := "As directed"
		for _, pattern := range frequencyPatterns {
			if m := pattern.FindStringSubmatch(text); m != nil {
				frequency = m[1]
				break
			}
		}

		var duration string
		if m := prescriptionDuration.FindStringSubmatch(text); m != nil {
			duration = m[1]
		}

		record, err := kb.MedicationInfo(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("medication info for %q: %w", name, err)
		}

		prescriptions = append(prescriptions, domain.Prescription{
			MedicationName: name,
			Dosage:         dosage,
			Frequency:      frequency,
			Duration:       duration,
			Notes:          strings.Join(record.Precautions, ", "),
		})
	}

	return prescriptions, nil
}
