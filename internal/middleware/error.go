package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pyweop/polypulse/internal/domain/dto"
	"github.com/pyweop/polypulse/internal/logger"
)

// ErrorHandler is a Gin middleware that converts errors attached to the
// context into a standardized JSON error response.
//
// Behavior:
//   - Lets the request run first (c.Next()).
//   - If a handler attached errors via c.Error(...) and no response body was
//     written, responds 500 with dto.NewErrorResponse wrapping the last error.
//   - Handlers that already wrote a response are left untouched.
//
// Usage:
//
//	router := gin.New()
//	router.Use(middleware.ErrorHandler)
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 || c.Writer.Written() {
		return
	}

	err := c.Errors.Last().Err
	logger.L().Error().
		Err(err).
		Str("path", c.Request.URL.Path).
		Msg("unhandled request error")

	c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error", err))
}

// AbortWithError stops request processing and writes a standardized error body.
//
// Parameters:
//   - c: the request context to abort.
//   - status: HTTP status code to respond with.
//   - message: human-readable summary placed in the response "message" field.
//   - err: underlying cause, recorded on the context and echoed in "error" (may be nil).
func AbortWithError(c *gin.Context, status int, message string, err error) {
	if err != nil {
		_ = c.Error(err)
	}
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(message, err))
}
