package engine

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestExtractSummaryFromHeadingSection(t *testing.T) {
	text := strings.Join([]string{
		"Diagnosis: Type 2 diabetes mellitus",
		"Glucose levels remain elevated",
		"Medications:",
		"Metformin 500mg twice daily",
	}, "\n")

	got := ExtractSummary(text)
	want := "Type 2 diabetes mellitus Glucose levels remain elevated"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestExtractSummaryStopsAtAllCapsHeading(t *testing.T) {
	text := strings.Join([]string{
		"Assessment",
		"Patient is recovering from pneumonia",
		"LABORATORY RESULTS",
		"WBC count within normal range",
	}, "\n")

	got := ExtractSummary(text)
	want := "Patient is recovering from pneumonia"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestExtractSummaryFallsBackToFirstLines(t *testing.T) {
	text := strings.Join([]string{
		"Patient presented with persistent cough",
		"Vitals were within normal limits",
		"No acute distress observed",
		"This fourth line must not appear",
	}, "\n")

	got := ExtractSummary(text)
	want := "Patient presented with persistent cough Vitals were within normal limits No acute distress observed"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestExtractSummaryEmptyTextUsesDefault(t *testing.T) {
	if got := ExtractSummary(""); got != defaultSummary {
		t.Fatalf("expected default summary, got %q", got)
	}
}

func TestExtractSummaryTruncatesLongSections(t *testing.T) {
	long := "Impression: " + strings.Repeat("chronic condition requires monitoring ", 20)
	got := ExtractSummary(long)
	if len(got) != maxSummaryLen+3 {
		t.Fatalf("expected %d characters, got %d", maxSummaryLen+3, len(got))
	}
	if !strings.HasSuffix(got, "...") {
		t.Fatalf("expected ellipsis suffix, got %q", got[len(got)-10:])
	}
}

func TestExtractSummaryTruncatesOnRuneBoundaries(t *testing.T) {
	got := ExtractSummary("Impression: " + strings.Repeat("é", maxSummaryLen+40))
	if !utf8.ValidString(got) {
		t.Fatalf("summary contains invalid UTF-8: %q", got)
	}
	if n := utf8.RuneCountInString(got); n != maxSummaryLen+3 {
		t.Fatalf("expected %d runes, got %d", maxSummaryLen+3, n)
	}
	if !strings.HasSuffix(got, "...") {
		t.Fatalf("expected ellipsis suffix, got %q", got)
	}
}
