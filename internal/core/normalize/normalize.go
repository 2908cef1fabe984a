// Package normalize cleans raw extracted text into canonical form and
// computes lightweight document statistics.
package normalize

import (
	"regexp"
	"strings"

	"github.com/AVII-VERSE/mediscan/internal/core/domain"
)

var (
	horizontalWS   = regexp.MustCompile(`[ \t]+`)
	multiNewline   = regexp.MustCompile(`\n{3,}`)
	shortSeparator = regexp.MustCompile(`[_=]{3,}`)
	longSeparator  = regexp.MustCompile(`[-=]{10,}`)
	lineEndings    = regexp.MustCompile(`[\r\n]+`)
	junkLine       = regexp.MustCompile(`^[\d\s\-._,;:!?()]+$`)
	pageNumberLine = regexp.MustCompile(`(?i)^(page\s+\d+|\d+\s+of\s+\d+|\d{1,3})$`)

	pdfArtifacts = regexp.MustCompile(`(?i)(page\s*\d+|\d+\s*of\s*\d+)`)
	pdfContinued = regexp.MustCompile(`(?i)(continued\s*on\s*next\s*page)`)
	ocrArtifacts = regexp.MustCompile(`(?i)(ocr|copyright|watermark)`)
)

// Whitespace canonicalizes whitespace: per-line trim, horizontal runs
// collapsed to one space, 3+ newlines collapsed to exactly two.
func Whitespace(text string) string {
	if text == "" {
		return ""
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	out := strings.Join(lines, "\n")
	out = horizontalWS.ReplaceAllString(out, " ")
	out = multiNewline.ReplaceAllString(out, "\n\n")
	return strings.TrimSpace(out)
}

// Clean strips structural noise and junk lines. Idempotent.
func Clean(text string) string {
	if text == "" {
		return ""
	}
	text = shortSeparator.ReplaceAllString(text, "")
	text = longSeparator.ReplaceAllString(text, "")
	text = strings.ReplaceAll(text, "\x00", "")
	text = lineEndings.ReplaceAllString(text, "\n")

	text = Whitespace(text)

	lines := strings.Split(text, "\n")
	kept := lines[:0]
	for _, line := range lines {
		stripped := strings.TrimSpace(line)
		if stripped == "" ||
			junkLine.MatchString(stripped) ||
			pageNumberLine.MatchString(stripped) ||
			len(stripped) <= 2 {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

// Text runs the full normalization chain with source-type-specific passes.
// Re-applying Text to its own output is a no-op.
func Text(text string, sourceType domain.SourceType) string {
	text = Clean(text)

	switch sourceType {
	case domain.SourcePDF:
		text = pdfArtifacts.ReplaceAllString(text, "")
		text = pdfContinued.ReplaceAllString(text, "")
	case domain.SourceImage:
		text = ocrArtifacts.ReplaceAllString(text, "")
	}

	// The artifact passes can leave stray whitespace or emptied lines;
	// a second clean keeps the whole chain idempotent.
	return Clean(text)
}
