package plaintext

import (
	"context"
	"testing"
)

func TestExtractTextEncodings(t *testing.T) {
	tests := []struct {
		name    string
		content []byte
		want    string
	}{
		{
			name:    "plain utf-8",
			content: []byte("Patient notes"),
			want:    "Patient notes",
		},
		{
			name:    "utf-8 with bom",
			content: append([]byte{0xEF, 0xBB, 0xBF}, []byte("Take 500mg")...),
			want:    "Take 500mg",
		},
		{
			name:    "utf-16 little endian",
			content: []byte{0xFF, 0xFE, 'H', 0x00, 'i', 0x00},
			want:    "Hi",
		},
		{
			name:    "utf-16 big endian",
			content: []byte{0xFE, 0xFF, 0x00, 'H', 0x00, 'i'},
			want:    "Hi",
		},
		{
			name:    "latin-1 fallback",
			content: []byte{'c', 'a', 'f', 0xE9},
			want:    "café",
		},
	}

	extractor := NewExtractor()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			extracted, err := extractor.ExtractText(context.Background(), tt.content)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if extracted.Text != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, extracted.Text)
			}
		})
	}
}

func TestExtractTextTrimsWhitespace(t *testing.T) {
	extractor := NewExtractor()
	extracted, err := extractor.ExtractText(context.Background(), []byte("  padded note \n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if extracted.Text != "padded note" {
		t.Fatalf("expected trimmed text, got %q", extracted.Text)
	}
}
