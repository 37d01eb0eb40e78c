package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/marketprobe/internal/domain/dto"
	"github.com/guttosm/marketprobe/internal/domain/models"
	"github.com/guttosm/marketprobe/internal/logger"
)

// MsgInternal is returned for any failure that is not an *dto.APIError.
const MsgInternal = "An internal error occurred."

// ErrorHandler renders the last error attached with c.Error once the
// handler chain has finished, unless a response was already written.
//
// *dto.APIError keeps its status and code; anything else becomes a 500
// internal_error and is logged.
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 || c.Writer.Written() {
		return
	}
	err := c.Errors.Last().Err

	var apiErr *dto.APIError
	if errors.As(err, &apiErr) {
		c.AbortWithStatusJSON(apiErr.Status, apiErr.Response())
		return
	}

	logger.L().Error().
		Err(err).
		Str("request_id", c.GetString(RequestIDKey)).
		Str("path", c.Request.URL.Path).
		Msg("request_failed")
	c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse(models.CodeInternalError, MsgInternal, nil))
}

// AbortWithError stops the chain and writes an error envelope. err, when
// non-nil, is attached to the context for logging.
func AbortWithError(c *gin.Context, status int, code, message string, err error) {
	if err != nil {
		_ = c.Error(err)
	}
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(code, message, nil))
}
