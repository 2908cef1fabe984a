// Package ocr extracts text from scanned images by shelling out to the
// tesseract binary. The image bytes are staged in a temp file because
// tesseract does not reliably read all formats from stdin.
package ocr

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/AVII-VERSE/mediscan/internal/core/domain"
)

type Extractor struct {
	binary   string
	language string
}

func NewExtractor(binary, language string) *Extractor {
	if binary == "" {
		binary = "tesseract"
	}
	if language == "" {
		language = "eng"
	}
	return &Extractor{binary: binary, language: language}
}

func (e *Extractor) ExtractText(ctx context.Context, content []byte) (domain.ExtractedText, error) {
	tmp, err := os.CreateTemp("", "mediscan-ocr-*.img")
	if err != nil {
		return domain.ExtractedText{}, fmt.Errorf("create temp image: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		return domain.ExtractedText{}, fmt.Errorf("write temp image: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return domain.ExtractedText{}, fmt.Errorf("close temp image: %w", err)
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, e.binary, tmp.Name(), "stdout", "-l", e.language)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return domain.ExtractedText{}, ctx.Err()
		}
		return domain.ExtractedText{}, &domain.Coded{
			Kind:    domain.ErrExtraction,
			Code:    domain.CodeParseError,
			Message: "image could not be processed by OCR",
			Details: strings.TrimSpace(stderr.String()),
		}
	}

	return domain.ExtractedText{Text: strings.TrimSpace(stdout.String())}, nil
}
