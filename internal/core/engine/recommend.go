package engine

import (
	"strings"

	"github.com/AVII-VERSE/mediscan/internal/core/domain"
)

// Recommend scans the specialty table in order and resolves urgency from the
// global urgency keyword table. The synthesized follow-up recommendation
// resolves its urgency by explicit priority: critical keywords outrank high
// keywords regardless of position in the text.
func Recommend(text string) ([]domain.Recommendation, []domain.FacilitySuggestion) {
	lower := strings.ToLower(text)

	urgency, matched := resolveUrgency(lower)

	var recs []domain.Recommendation
	for _, rule := range specialtyRules {
		if !containsAny(lower, rule.triggers) {
			continue
		}
		ruleUrgency := urgency
		if rule.specialty == "General Medicine" && !matched {
			ruleUrgency = domain.UrgencyLow
		}
		recs = append(recs, domain.Recommendation{
			Specialty: rule.specialty,
			Reason:    rule.reason,
			Urgency:   ruleUrgency,
		})
	}

	if followUpPattern.MatchString(lower) && !hasSpecialty(recs, "General Medicine") {
		recs = append(recs, domain.Recommendation{
			Specialty: "General Medicine",
			Reason:    "Follow-up visit mentioned in document",
			Urgency:   followUpUrgency(lower),
		})
	}

	if len(recs) > maxRecommendation {
		recs = recs[:maxRecommendation]
	}

	return recs, suggestFacilities(lower)
}

// resolveUrgency walks the keyword groups in check order; the first hit
// wins. matched reports whether any keyword fired at all.
func resolveUrgency(lower string) (domain.Urgency, bool) {
	for _, rule := range urgencyRules {
		if containsAny(lower, rule.keywords) {
			return rule.urgency, true
		}
	}
	return domain.UrgencyMedium, false
}

// followUpUrgency upgrades the default low urgency by ordered priority.
func followUpUrgency(lower string) domain.Urgency {
	for _, rule := range urgencyRules {
		if rule.urgency != domain.UrgencyCritical && rule.urgency != domain.UrgencyHigh {
			continue
		}
		if containsAny(lower, rule.keywords) {
			return rule.urgency
		}
	}
	return domain.UrgencyLow
}

func hasSpecialty(recs []domain.Recommendation, specialty string) bool {
	for _, rec := range recs {
		if rec.Specialty == specialty {
			return true
		}
	}
	return false
}

func suggestFacilities(lower string) []domain.FacilitySuggestion {
	var facilities []domain.FacilitySuggestion
	for _, rule := range facilityRules {
		if containsAny(lower, rule.triggers) {
			facilities = append(facilities, domain.FacilitySuggestion{
				FacilityType: rule.facilityType,
				Purpose:      rule.purpose,
				Urgency:      rule.urgency,
			})
		}
	}
	return facilities
}

// MergeSpecialtyAdvice appends knowledge-source referrals that the rule
// table did not already produce, keeping the recommendation cap.
func MergeSpecialtyAdvice(recs []domain.Recommendation, advice []domain.SpecialtyAdvice) []domain.Recommendation {
	for _, a := range advice {
		if hasSpecialty(recs, a.Specialty) {
			continue
		}
		recs = append(recs, domain.Recommendation{
			Specialty: a.Specialty,
			Reason:    a.Reason,
			Urgency:   a.Priority,
		})
	}
	if len(recs) > maxRecommendation {
		recs = recs[:maxRecommendation]
	}
	return recs
}
