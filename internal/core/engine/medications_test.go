package engine

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestExtractMedicationsFromSection(t *testing.T) {
	text := strings.Join([]string{
		"MEDICATIONS:",
		"Amoxicillin 500mg three times daily for 7 days with food",
		"Vitamin D 1000 units daily",
		"",
		"Take rest and drink fluids",
	}, "\n")

	meds := ExtractMedications(text)
	if len(meds) != 2 {
		t.Fatalf("expected 2 medications, got %d: %+v", len(meds), meds)
	}

	amox := meds[0]
	if amox.Name != "Amoxicillin" {
		t.Fatalf("expected Amoxicillin, got %q", amox.Name)
	}
	if amox.Dosage != "500mg" {
		t.Fatalf("expected 500mg, got %q", amox.Dosage)
	}
	if amox.Frequency != "three times" {
		t.Fatalf("expected frequency %q, got %q", "three times", amox.Frequency)
	}
	if amox.Timing != "with meals" {
		t.Fatalf("expected timing %q, got %q", "with meals", amox.Timing)
	}
	if amox.Duration != "7 days" {
		t.Fatalf("expected duration %q, got %q", "7 days", amox.Duration)
	}

	if meds[1].Name != "Vitamin D" {
		t.Fatalf("expected Vitamin D, got %q", meds[1].Name)
	}
}

func TestExtractMedicationsDefaults(t *testing.T) {
	meds := ExtractMedications("Patient was started on lisinopril recently")
	if len(meds) != 1 {
		t.Fatalf("expected 1 medication, got %d", len(meds))
	}
	if meds[0].Dosage != "As prescribed" {
		t.Fatalf("expected default dosage, got %q", meds[0].Dosage)
	}
	if meds[0].Frequency != "As directed" {
		t.Fatalf("expected default frequency, got %q", meds[0].Frequency)
	}
}

func TestExtractMedicationsDeduplicates(t *testing.T) {
	text := "Metformin 500mg twice daily\nmetformin 850mg once daily"
	meds := ExtractMedications(text)
	if len(meds) != 1 {
		t.Fatalf("expected deduplicated single entry, got %d", len(meds))
	}
}

func TestExtractMedicationsIgnoresUnrelatedProse(t *testing.T) {
	meds := ExtractMedications("Patient should rest and stay hydrated for recovery")
	if len(meds) != 0 {
		t.Fatalf("expected no medications, got %+v", meds)
	}
}

func TestExtractMedicationsCapsEntries(t *testing.T) {
	var lines []string
	lines = append(lines, "Prescription list:")
	for i := 0; i < 30; i++ {
		lines = append(lines, "Compound"+string(rune('A'+i))+" 10mg daily")
	}
	meds := ExtractMedications(strings.Join(lines, "\n"))
	if len(meds) != maxMedications {
		t.Fatalf("expected %d medications, got %d", maxMedications, len(meds))
	}
}

func TestExtractMedicationsTruncatesNameOnRuneBoundary(t *testing.T) {
	text := "Medications:\n" + strings.Repeat("é", maxMedicationName+20) + " 10mg daily"
	meds := ExtractMedications(text)
	if len(meds) != 1 {
		t.Fatalf("expected 1 medication, got %d: %+v", len(meds), meds)
	}
	name := meds[0].Name
	if !utf8.ValidString(name) {
		t.Fatalf("name contains invalid UTF-8: %q", name)
	}
	if n := utf8.RuneCountInString(name); n != maxMedicationName {
		t.Fatalf("expected %d runes, got %d", maxMedicationName, n)
	}
}
