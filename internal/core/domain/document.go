package domain

import "time"

type SourceType string

const (
	SourceText    SourceType = "text"
	SourcePDF     SourceType = "pdf"
	SourceImage   SourceType = "image"
	SourceUnknown SourceType = "unknown"
)

// RawInput is the caller-supplied document before any validation.
// Immutable once constructed.
type RawInput struct {
	Content     []byte
	Filename    string
	ContentType string
	Metadata    map[string]string
}

// ClassifiedInput is a RawInput with its resolved source type.
// DetectedType keeps the sniffed or declared MIME string for diagnostics.
type ClassifiedInput struct {
	Raw          RawInput
	SourceType   SourceType
	DetectedType string
}

// ExtractedText is what a format extractor returns for validated bytes.
type ExtractedText struct {
	Text      string
	PageCount int
}

// NormalizedDocument is the canonical cleaned text plus lightweight
// statistics computed from it. Derived once, never mutated afterwards.
// MedicationBlocks is an unvalidated superset scan kept for metadata only;
// it is never a source of truth for the medication list.
type NormalizedDocument struct {
	Text             string     `json:"text"`
	SourceType       SourceType `json:"source_type"`
	Filename         string     `json:"filename,omitempty"`
	PageCount        int        `json:"page_count,omitempty"`
	WordCount        int        `json:"word_count"`
	LineCount        int        `json:"line_count"`
	ParagraphCount   int        `json:"paragraph_count"`
	HasTables        bool       `json:"has_tables"`
	HasLists         bool       `json:"has_lists"`
	MedicationBlocks []string   `json:"medication_blocks,omitempty"`
	ExtractedAt      time.Time  `json:"extracted_at"`
}
