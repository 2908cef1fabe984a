package domain

import (
	"errors"
	"fmt"
)

// Error kinds. Validation and analysis failures are always recoverable;
// extraction failures are terminal for the request and never retried.
var (
	ErrValidation = errors.New("validation failure")
	ErrExtraction = errors.New("extraction failure")
	ErrAnalysis   = errors.New("analysis failure")
)

// Stable machine-readable failure codes surfaced to callers.
const (
	CodeMissingInput    = "MISSING_INPUT"
	CodeMultipleInputs  = "MULTIPLE_INPUTS"
	CodeEmptyInput      = "EMPTY_INPUT"
	CodeOversized       = "OVERSIZED"
	CodeUnsupportedType = "UNSUPPORTED_TYPE"
	CodeNoTextExtracted = "NO_TEXT_EXTRACTED"
	CodeParseError      = "PARSE_ERROR"
	CodeTextTooShort    = "TEXT_TOO_SHORT"
	CodeInternal        = "INTERNAL_ERROR"
)

// Coded is a user-visible failure: a kind for classification, a stable code
// and a human message. Details is a bounded field for diagnostics; raw
// internal error text never goes anywhere else.
type Coded struct {
	Kind    error
	Code    string
	Message string
	Details string
}

func (e *Coded) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Coded) Unwrap() error { return e.Kind }

func NewValidationError(code, message string) *Coded {
	return &Coded{Kind: ErrValidation, Code: code, Message: message}
}

func NewExtractionError(code, message string) *Coded {
	return &Coded{Kind: ErrExtraction, Code: code, Message: message}
}

func NewAnalysisError(code, message string) *Coded {
	return &Coded{Kind: ErrAnalysis, Code: code, Message: message}
}

// CodeOf returns the stable code carried by err, or CodeInternal.
func CodeOf(err error) string {
	var coded *Coded
	if errors.As(err, &coded) {
		return coded.Code
	}
	return CodeInternal
}

// WrapError preserves typed semantic errors with operation context.
func WrapError(kind error, operation string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w: %w", operation, kind, err)
}

func IsKind(err error, kind error) bool {
	return errors.Is(err, kind)
}
