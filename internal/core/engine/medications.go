package engine

import (
	"strings"

	"github.com/AVII-VERSE/mediscan/internal/core/domain"
)

// ExtractMedications scans lines with a medication-section state machine.
// A line qualifies when it names a known medication, or when the section is
// active and the line carries a dosage-unit token. Every extracted entry has
// non-empty name, dosage and frequency; unmatched fields get the fixed
// defaults. Capped at 20 entries.
func ExtractMedications(text string) []domain.Medication {
	var meds []domain.Medication
	seen := make(map[string]bool)
	inSection := false

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		lower := strings.ToLower(line)

		if line == "" || isAllCapsHeading(line) {
			// The section closes only after it produced something, so a
			// heading directly above the list does not end it early.
			if inSection && len(meds) > 0 {
				inSection = false
			}
			if line == "" {
				continue
			}
		}

		if containsAny(lower, medicationHeadings) {
			inSection = true
		}

		dosageLoc := dosagePattern.FindStringIndex(line)
		qualifies := containsAny(lower, commonMedications) || (inSection && dosageLoc != nil)
		if !qualifies {
			continue
		}

		name := medicationName(line, dosageLoc)
		if name == "" || seen[strings.ToLower(name)] {
			continue
		}
		seen[strings.ToLower(name)] = true

		meds = append(meds, domain.Medication{
			Name:      name,
			Dosage:    matchOrDefault(dosagePattern.FindString(line), "As prescribed"),
			Frequency: matchOrDefault(lineFrequency(line), "As directed"),
			Timing:    timingPhrase(lower),
			Duration:  lineDuration(line),
		})
		if len(meds) >= maxMedications {
			break
		}
	}

	return meds
}

// MedicationNames returns the extracted names for cross-referencing.
func MedicationNames(meds []domain.Medication) []string {
	names := make([]string, 0, len(meds))
	for _, med := range meds {
		names = append(names, med.Name)
	}
	return names
}

// medicationName takes the text before the dosage token, or before the
// first '-'/':' when no dosage matched, stripped of surrounding non-word
// characters and truncated to 100 characters.
func medicationName(line string, dosageLoc []int) string {
	name := line
	if dosageLoc != nil {
		name = line[:dosageLoc[0]]
	} else if idx := strings.IndexAny(line, "-:"); idx >= 0 {
		name = line[:idx]
	}
	name = strings.TrimFunc(name, func(r rune) bool {
		return !isWordRune(r)
	})
	if runes := []rune(name); len(runes) > maxMedicationName {
		name = string(runes[:maxMedicationName])
	}
	return name
}

func isWordRune(r rune) bool {
	return r == '_' ||
		(r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') ||
		r > 127
}

// timingPhrase infers a timing hint by substring checks in priority order.
func timingPhrase(lower string) string {
	for _, rule := range timingRules {
		if containsAny(lower, rule.triggers) {
			return rule.phrase
		}
	}
	return ""
}

func lineFrequency(line string) string {
	for _, pattern := range frequencyPatterns {
		if m := pattern.FindStringSubmatch(line); m != nil {
			return m[1]
		}
	}
	return ""
}

func lineDuration(line string) string {
	for _, pattern := range durationPatterns {
		if m := pattern.FindString(line); m != "" {
			return m
		}
	}
	return ""
}

func matchOrDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
