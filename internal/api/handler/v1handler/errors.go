package v1handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"ocrflow/pkg/logger"
	"ocrflow/pkg/serrors"
)

// statusOf maps a semantic error kind to an HTTP status code.
func statusOf(kind *serrors.Kind) int {
	switch kind {
	case serrors.ErrNotFound:
		return http.StatusNotFound
	case serrors.ErrInvalid:
		return http.StatusBadRequest
	case serrors.ErrConflict:
		return http.StatusConflict
	case serrors.ErrUnauthorized:
		return http.StatusUnauthorized
	case serrors.ErrForbidden:
		return http.StatusForbidden
	case serrors.ErrUnavailable:
		return http.StatusServiceUnavailable
	case serrors.ErrTimeout:
		return http.StatusGatewayTimeout
	case serrors.ErrUpstream:
		return http.StatusBadGateway
	case serrors.ErrRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes a JSON error response for the given error. Client
// errors expose the semantic error message, server errors are logged and
// replaced with a generic message so internals never leak to callers.
func respondError(c *gin.Context, err error) {
	kind := serrors.KindOf(err)
	status := statusOf(kind)

	msg := serrors.Message(err)
	if status >= http.StatusInternalServerError {
		logger.Get(c.Request.Context()).Error("request failed",
			zap.Int("status", status),
			zap.Error(err))
		if kind == nil || kind == serrors.ErrInternal {
			msg = "internal error"
		}
	}

	c.AbortWithStatusJSON(status, gin.H{"error": msg})
}
