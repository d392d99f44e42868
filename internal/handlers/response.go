package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"family_expenses/internal/service"

	"github.com/gin-gonic/gin"
)

// Every endpoint answers HTTP 200 and signals success through the `res`
// discriminator; the old web client never looks at status codes.

// failBody maps a service error to the `{res:false, text}` envelope.
func failBody(err error) gin.H {
	return gin.H{"res": false, "text": failText(err)}
}

func failText(err error) string {
	switch {
	case errors.Is(err, service.ErrInvalidSession):
		return "invalid session"
	case errors.Is(err, service.ErrInvalidUser):
		return "invalid user"
	case errors.Is(err, service.ErrInvalidCredentials):
		return "authentication failed"
	case errors.Is(err, service.ErrNotFound):
		return "not found"
	case errors.Is(err, service.ErrStoreUnavailable):
		return "store unavailable"
	case errors.Is(err, service.ErrValidation):
		return err.Error()
	case err == nil:
		return "unknown"
	default:
		return err.Error()
	}
}

// wrapValidation turns a JSON bind error into a ValidationFailure so the
// envelope text keeps the taxonomy shape.
func wrapValidation(err error) error {
	return fmt.Errorf("%w: %v", service.ErrValidation, err)
}

func (h *Handler) fail(c *gin.Context, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Infow(logKey, fields...)
	}
	c.JSON(http.StatusOK, failBody(err))
}
