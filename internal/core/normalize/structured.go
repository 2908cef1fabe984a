package normalize

import (
	"regexp"
	"strings"
)

// Info holds lightweight statistics about a normalized document. It feeds
// metadata only; MedicationBlocks is a coarse superset scan and is never
// used as the medication list itself.
type Info struct {
	WordCount        int
	LineCount        int
	ParagraphCount   int
	HasTables        bool
	HasLists         bool
	MedicationBlocks []string
}

// Coarse trigger patterns for medication-looking spans. Each match captures
// the rest of the logical block (continuation lines up to a blank line).
var medicationBlockPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:medication|medicine|drug|prescription)[:\s]*([^\n]+(?:\n[^\n]+)*)`),
	regexp.MustCompile(`(?i)(?:take|mg|mcg|ml|tablet|capsule|pill)[:\s]*([^\n]+(?:\n[^\n]+)*)`),
	regexp.MustCompile(`(?i)(?:dosage|dose|frequency)[:\s]*([^\n]+(?:\n[^\n]+)*)`),
}

var (
	tableRun   = regexp.MustCompile(`\t.{2,}`)
	listMarker = regexp.MustCompile(`(?m)^\s*[\d\-*+]\s+`)
)

// Inspect computes document statistics from normalized text.
func Inspect(text string) Info {
	if text == "" {
		return Info{}
	}

	info := Info{
		WordCount: len(strings.Fields(text)),
		LineCount: len(strings.Split(text, "\n")),
		HasTables: tableRun.MatchString(text) || strings.Contains(text, "|"),
		HasLists:  listMarker.MatchString(text),
	}

	for _, para := range strings.Split(text, "\n\n") {
		if strings.TrimSpace(para) != "" {
			info.ParagraphCount++
		}
	}

	for _, pattern := range medicationBlockPatterns {
		for _, match := range pattern.FindAllString(text, -1) {
			info.MedicationBlocks = append(info.MedicationBlocks, strings.TrimSpace(match))
		}
	}

	return info
}
