package classify

import (
	"bytes"
	"testing"

	"github.com/AVII-VERSE/mediscan/internal/core/domain"
)

func TestClassifyResolvesSourceTypes(t *testing.T) {
	classifier := New(1 << 20)

	tests := []struct {
		name string
		raw  domain.RawInput
		want domain.SourceType
	}{
		{
			name: "declared plain text with charset parameter",
			raw: domain.RawInput{
				Content:     []byte("patient notes"),
				Filename:    "notes.txt",
				ContentType: "text/plain; charset=utf-8",
			},
			want: domain.SourceText,
		},
		{
			name: "sniffed pdf without declared type",
			raw: domain.RawInput{
				Content:  []byte("%PDF-1.4\n1 0 obj"),
				Filename: "report.pdf",
			},
			want: domain.SourcePDF,
		},
		{
			name: "extension fallback for unrecognized bytes",
			raw: domain.RawInput{
				Content:  []byte{0x00, 0x01, 0x02, 0x03, 0x04},
				Filename: "scan.tiff",
			},
			want: domain.SourceImage,
		},
		{
			name: "declared jpeg wins over filename",
			raw: domain.RawInput{
				Content:     bytes.Repeat([]byte{0xFF}, 16),
				Filename:    "photo.bin",
				ContentType: "image/jpeg",
			},
			want: domain.SourceImage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			classified, err := classifier.Classify(tt.raw)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if classified.SourceType != tt.want {
				t.Fatalf("source type = %s, want %s", classified.SourceType, tt.want)
			}
		})
	}
}

func TestClassifyRejectsEmptyContent(t *testing.T) {
	classifier := New(1 << 20)

	_, err := classifier.Classify(domain.RawInput{Filename: "empty.txt"})
	if err == nil {
		t.Fatalf("expected error for empty content")
	}
	if !domain.IsKind(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if code := domain.CodeOf(err); code != domain.CodeEmptyInput {
		t.Fatalf("expected code %s, got %s", domain.CodeEmptyInput, code)
	}
}

func TestClassifyRejectsOversizedContent(t *testing.T) {
	classifier := New(8)

	_, err := classifier.Classify(domain.RawInput{
		Content:     []byte("well over eight bytes"),
		Filename:    "big.txt",
		ContentType: "text/plain",
	})
	if code := domain.CodeOf(err); code != domain.CodeOversized {
		t.Fatalf("expected code %s, got %v", domain.CodeOversized, err)
	}
}

func TestClassifyRejectsUnsupportedType(t *testing.T) {
	classifier := New(1 << 20)

	classified, err := classifier.Classify(domain.RawInput{
		Content:  []byte{0x50, 0x4B, 0x03, 0x04, 0x00, 0x00},
		Filename: "records.docx",
	})
	if code := domain.CodeOf(err); code != domain.CodeUnsupportedType {
		t.Fatalf("expected code %s, got %v", domain.CodeUnsupportedType, err)
	}
	if classified.SourceType != domain.SourceUnknown {
		t.Fatalf("expected unknown source type, got %s", classified.SourceType)
	}
	if classified.DetectedType == "" {
		t.Fatalf("expected detected type to be populated for diagnostics")
	}
}
