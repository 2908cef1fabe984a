// Package classify resolves a raw upload into a supported source type.
package classify

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/AVII-VERSE/mediscan/internal/core/domain"
)

// Fixed type tables, read-only after init. Lookup order: declared MIME type,
// sniffed MIME type, filename extension. Anything unresolved fails closed.
var mimeSourceTypes = map[string]domain.SourceType{
	"text/plain":      domain.SourceText,
	"application/pdf": domain.SourcePDF,
	"image/jpeg":      domain.SourceImage,
	"image/png":       domain.SourceImage,
	"image/tiff":      domain.SourceImage,
	"image/bmp":       domain.SourceImage,
	"image/gif":       domain.SourceImage,
}

var extSourceTypes = map[string]domain.SourceType{
	".txt":  domain.SourceText,
	".pdf":  domain.SourcePDF,
	".jpg":  domain.SourceImage,
	".jpeg": domain.SourceImage,
	".png":  domain.SourceImage,
	".tiff": domain.SourceImage,
	".tif":  domain.SourceImage,
	".bmp":  domain.SourceImage,
	".gif":  domain.SourceImage,
}

type Classifier struct {
	maxFileBytes int64
}

func New(maxFileBytes int64) *Classifier {
	return &Classifier{maxFileBytes: maxFileBytes}
}

// Classify validates size and support constraints and resolves the source
// type. Pure function of (content, filename, declared type).
func (c *Classifier) Classify(raw domain.RawInput) (domain.ClassifiedInput, error) {
	if len(raw.Content) == 0 {
		return domain.ClassifiedInput{}, domain.NewValidationError(
			domain.CodeEmptyInput, "uploaded file is empty")
	}
	if c.maxFileBytes > 0 && int64(len(raw.Content)) > c.maxFileBytes {
		return domain.ClassifiedInput{}, domain.NewValidationError(
			domain.CodeOversized,
			fmt.Sprintf("file size %d bytes exceeds maximum of %d bytes", len(raw.Content), c.maxFileBytes))
	}

	detected := detectMIME(raw)
	sourceType, ok := resolveSourceType(detected, raw.Filename)
	if !ok {
		err := domain.NewValidationError(
			domain.CodeUnsupportedType,
			fmt.Sprintf("unsupported file type: %s (filename: %s)", detected, raw.Filename))
		return domain.ClassifiedInput{Raw: raw, SourceType: domain.SourceUnknown, DetectedType: detected}, err
	}

	return domain.ClassifiedInput{Raw: raw, SourceType: sourceType, DetectedType: detected}, nil
}

// detectMIME prefers the declared content type, then buffer sniffing.
func detectMIME(raw domain.RawInput) string {
	if declared := normalizeMIME(raw.ContentType); declared != "" {
		if _, ok := mimeSourceTypes[declared]; ok {
			return declared
		}
	}
	sniffed := normalizeMIME(http.DetectContentType(raw.Content))
	if _, ok := mimeSourceTypes[sniffed]; ok {
		return sniffed
	}
	if declared := normalizeMIME(raw.ContentType); declared != "" {
		return declared
	}
	return sniffed
}

func resolveSourceType(mimeType, filename string) (domain.SourceType, bool) {
	if st, ok := mimeSourceTypes[mimeType]; ok {
		return st, true
	}
	if filename != "" {
		ext := strings.ToLower(filepath.Ext(filename))
		if st, ok := extSourceTypes[ext]; ok {
			return st, true
		}
	}
	return domain.SourceUnknown, false
}

// normalizeMIME strips parameters like "; charset=utf-8" and lowercases.
func normalizeMIME(mimeType string) string {
	mimeType = strings.TrimSpace(strings.ToLower(mimeType))
	if idx := strings.IndexByte(mimeType, ';'); idx >= 0 {
		mimeType = strings.TrimSpace(mimeType[:idx])
	}
	return mimeType
}
