package httpadapter

import (
	"net/http"

	"github.com/AVII-VERSE/mediscan/internal/core/domain"
	"github.com/AVII-VERSE/mediscan/internal/infrastructure/resilience"
)

func mapErrorToHTTPStatus(err error) int {
	switch {
	case resilience.IsCircuitOpen(err):
		return http.StatusServiceUnavailable
	case domain.IsKind(err, domain.ErrValidation):
		return http.StatusBadRequest
	case domain.IsKind(err, domain.ErrExtraction):
		return http.StatusBadRequest
	case domain.IsKind(err, domain.ErrAnalysis):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
