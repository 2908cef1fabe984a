// Package pdfdoc extracts text from PDF uploads page by page. A page that
// fails to render is logged and skipped rather than failing the document;
// surviving pages keep their position via a page marker line.
package pdfdoc

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/AVII-VERSE/mediscan/internal/core/domain"
)

type Extractor struct{}

func NewExtractor() *Extractor {
	return &Extractor{}
}

func (e *Extractor) ExtractText(ctx context.Context, content []byte) (domain.ExtractedText, error) {
	reader, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return domain.ExtractedText{}, &domain.Coded{
			Kind:    domain.ErrExtraction,
			Code:    domain.CodeParseError,
			Message: "document is not a readable PDF",
			Details: err.Error(),
		}
	}

	pageCount := reader.NumPage()
	var sb strings.Builder
	for n := 1; n <= pageCount; n++ {
		if err := ctx.Err(); err != nil {
			return domain.ExtractedText{}, err
		}
		page := reader.Page(n)
		if page.V.IsNull() {
			slog.Warn("pdf_page_skipped", "page", n, "reason", "null page object")
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			slog.Warn("pdf_page_skipped", "page", n, "reason", err.Error())
			continue
		}
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		fmt.Fprintf(&sb, "[Page %d]\n%s\n\n", n, text)
	}

	return domain.ExtractedText{
		Text:      strings.TrimSpace(sb.String()),
		PageCount: pageCount,
	}, nil
}
