package response

import (
	"errors"

	"github.com/academia/malla-api/internal/apperror"
	"github.com/gin-gonic/gin"
)

// ErrorBody is the only shape an error response ever takes.
type ErrorBody struct {
	Error string `json:"error"`
}

// ────────────────────────────────────────────────────────────────────────────
// Helper builders
// ────────────────────────────────────────────────────────────────────────────

// Success sends data as the bare JSON body.
func Success(c *gin.Context, statusCode int, data any) {
	c.JSON(statusCode, data)
}

// Fail sends err as {"error": message} with the status its kind maps to.
// Anything that is not an *apperror.Error is reported as internal.
func Fail(c *gin.Context, err error) {
	status, body := build(err)
	c.JSON(status, body)
}

// AbortFail aborts the middleware chain and sends an error response.
func AbortFail(c *gin.Context, err error) {
	status, body := build(err)
	c.AbortWithStatusJSON(status, body)
}

// ────────────────────────────────────────────────────────────────────────────
// Internal helpers
// ────────────────────────────────────────────────────────────────────────────

func build(err error) (int, ErrorBody) {
	var appErr *apperror.Error
	if !errors.As(err, &appErr) {
		return StatusOf(apperror.KindInternal), ErrorBody{Error: apperror.InternalMessage}
	}
	msg := appErr.Message
	if appErr.Kind == apperror.KindInternal || msg == "" {
		msg = apperror.InternalMessage
	}
	return StatusOf(appErr.Kind), ErrorBody{Error: msg}
}
