// Package static serves the bundled medication knowledge dataset. The
// dataset is compiled in and parsed once at startup; every query is a pure
// lookup over it, so the source is deterministic and safe for concurrent use.
package static

import (
	"context"
	_ "embed"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/AVII-VERSE/mediscan/internal/core/domain"
)

//go:embed data.yaml
var rawDataset []byte

type interactionRule struct {
	Medications []string        `yaml:"medications"`
	Requires    []string        `yaml:"requires"`
	AnyOf       []string        `yaml:"any_of"`
	Severity    domain.Severity `yaml:"severity"`
	Description string          `yaml:"description"`
	Action      string          `yaml:"action"`
}

type specialtyRule struct {
	Specialty string         `yaml:"specialty"`
	Reason    string         `yaml:"reason"`
	Priority  domain.Urgency `yaml:"priority"`
	Triggers  []string       `yaml:"triggers"`
}

type dataset struct {
	Medications  map[string]domain.MedicationRecord `yaml:"medications"`
	Interactions []interactionRule                  `yaml:"interactions"`
	Specialties  []specialtyRule                    `yaml:"specialties"`
}

type Source struct {
	data dataset
	keys []string
}

func NewSource() (*Source, error) {
	var data dataset
	if err := yaml.Unmarshal(rawDataset, &data); err != nil {
		return nil, fmt.Errorf("parse knowledge dataset: %w", err)
	}
	if len(data.Medications) == 0 {
		return nil, fmt.Errorf("knowledge dataset has no medications")
	}
	keys := make([]string, 0, len(data.Medications))
	for key := range data.Medications {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return &Source{data: data, keys: keys}, nil
}

// MedicationInfo matches by substring in either direction, so both
// "amoxicillin 500mg" and a bare "amox" entry resolve. Candidate keys are
// walked in sorted order, so an ambiguous name resolves to the same record
// on every run. Unknown names get a default record rather than an error.
func (s *Source) MedicationInfo(_ context.Context, name string) (domain.MedicationRecord, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for _, key := range s.keys {
		if strings.Contains(normalized, key) || strings.Contains(key, normalized) {
			return s.data.Medications[key], nil
		}
	}
	return domain.MedicationRecord{
		GenericName: name,
		Class:       "Unknown",
		Precautions: []string{"Consult your doctor"},
	}, nil
}

func (s *Source) CheckInteractions(_ context.Context, names []string) ([]domain.Interaction, error) {
	normalized := make([]string, len(names))
	for i, n := range names {
		normalized[i] = strings.ToLower(strings.TrimSpace(n))
	}

	var found []domain.Interaction
	for _, rule := range s.data.Interactions {
		if !matchesAll(normalized, rule.Requires) {
			continue
		}
		if len(rule.AnyOf) > 0 && !matchesAny(normalized, rule.AnyOf) {
			continue
		}
		found = append(found, domain.Interaction{
			Medications: rule.Medications,
			Severity:    rule.Severity,
			Description: rule.Description,
			Action:      rule.Action,
		})
	}
	return found, nil
}

func (s *Source) SpecialtyRecommendations(_ context.Context, terms []string) ([]domain.SpecialtyAdvice, error) {
	joined := strings.ToLower(strings.Join(terms, " "))

	var advice []domain.SpecialtyAdvice
	for _, rule := range s.data.Specialties {
		for _, trigger := range rule.Triggers {
			if strings.Contains(joined, trigger) {
				advice = append(advice, domain.SpecialtyAdvice{
					Specialty: rule.Specialty,
					Reason:    rule.Reason,
					Priority:  rule.Priority,
				})
				break
			}
		}
	}
	return advice, nil
}

var (
	urgencyTerms          = []string{"severe", "emergency", "immediate", "urgent", "critical"}
	allergyTerms          = []string{"allergy", "allergies", "allergic", "adverse reaction"}
	contraindicationTerms = []string{"contraindicated", "should not", "avoid", "discontinue"}
)

const polypharmacyThreshold = 5

func (s *Source) IdentifyRedFlags(_ context.Context, text string, names []string) ([]domain.RedFlag, error) {
	lower := strings.ToLower(text)
	var flags []domain.RedFlag

	if containsAnyTerm(lower, urgencyTerms) {
		flags = append(flags, domain.RedFlag{
			Category:       "Urgency",
			Description:    "Document contains urgent or critical terminology",
			Severity:       domain.SeverityHigh,
			Recommendation: "Ensure immediate follow-up with healthcare provider",
		})
	}
	if containsAnyTerm(lower, allergyTerms) {
		flags = append(flags, domain.RedFlag{
			Category:       "Allergies",
			Description:    "Allergies or adverse reactions mentioned",
			Severity:       domain.SeverityHigh,
			Recommendation: "Verify current medications against known allergies",
		})
	}
	if len(names) > polypharmacyThreshold {
		flags = append(flags, domain.RedFlag{
			Category:       "Polypharmacy",
			Description:    fmt.Sprintf("Patient on %d medications - potential for interactions", len(names)),
			Severity:       domain.SeverityMedium,
			Recommendation: "Review medication list with pharmacist or physician",
		})
	}
	if containsAnyTerm(lower, contraindicationTerms) {
		flags = append(flags, domain.RedFlag{
			Category:       "Contraindication",
			Description:    "Potential contraindications mentioned in document",
			Severity:       domain.SeverityHigh,
			Recommendation: "Review contraindications with prescribing physician immediately",
		})
	}
	return flags, nil
}

func matchesAll(names []string, terms []string) bool {
	for _, term := range terms {
		if !matchesAny(names, []string{term}) {
			return false
		}
	}
	return true
}

func matchesAny(names []string, terms []string) bool {
	for _, name := range names {
		for _, term := range terms {
			if strings.Contains(name, term) {
				return true
			}
		}
	}
	return false
}

func containsAnyTerm(text string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(text, term) {
			return true
		}
	}
	return false
}
