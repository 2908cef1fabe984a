// Package plaintext extracts text from plain-text uploads. Encoding is
// resolved in order: BOM-declared UTF-16, valid UTF-8, then a Latin-1
// fallback so that legacy exports never fail outright.
package plaintext

import (
	"bytes"
	"context"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/AVII-VERSE/mediscan/internal/core/domain"
)

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

type Extractor struct{}

func NewExtractor() *Extractor {
	return &Extractor{}
}

func (e *Extractor) ExtractText(_ context.Context, content []byte) (domain.ExtractedText, error) {
	return domain.ExtractedText{Text: strings.TrimSpace(decode(content))}, nil
}

func decode(raw []byte) string {
	switch {
	case bytes.HasPrefix(raw, bomUTF8):
		return string(raw[len(bomUTF8):])
	case bytes.HasPrefix(raw, bomUTF16LE):
		return decodeUTF16(raw[2:], false)
	case bytes.HasPrefix(raw, bomUTF16BE):
		return decodeUTF16(raw[2:], true)
	case utf8.Valid(raw):
		return string(raw)
	default:
		return decodeLatin1(raw)
	}
}

func decodeUTF16(raw []byte, bigEndian bool) string {
	if len(raw)%2 != 0 {
		raw = raw[:len(raw)-1]
	}
	units := make([]uint16, 0, len(raw)/2)
	for i := 0; i+1 < len(raw); i += 2 {
		if bigEndian {
			units = append(units, uint16(raw[i])<<8|uint16(raw[i+1]))
		} else {
			units = append(units, uint16(raw[i+1])<<8|uint16(raw[i]))
		}
	}
	return string(utf16.Decode(units))
}

func decodeLatin1(raw []byte) string {
	runes := make([]rune, len(raw))
	for i, b := range raw {
		runes[i] = rune(b)
	}
	return string(runes)
}
