package response

import (
	"net/http"

	"github.com/academia/malla-api/internal/apperror"
)

// Client-facing messages raised outside the services.
const (
	MsgInvalidBody       = "El cuerpo de la solicitud debe ser un objeto JSON válido"
	MsgNotFound          = "Recurso no encontrado"
	MsgRateLimitExceeded = "Demasiadas solicitudes. Intente nuevamente más tarde."
)

// StatusOf returns the HTTP status for an error kind.
func StatusOf(kind apperror.Kind) int {
	switch kind {
	// ─── Client errors ─────────────────────────────────────────────────
	case apperror.KindValidation, apperror.KindInvalidReference:
		return http.StatusBadRequest
	case apperror.KindNotFound:
		return http.StatusNotFound
	case apperror.KindConflict, apperror.KindDependencyExists:
		return http.StatusConflict
	case apperror.KindRateLimited:
		return http.StatusTooManyRequests

	// ─── Server ────────────────────────────────────────────────────────
	default:
		return http.StatusInternalServerError
	}
}
