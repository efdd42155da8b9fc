package utils

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse is the body of every error reply.
type ErrorResponse struct {
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

const (
	msgInternal     = "Error interno del servidor"
	detailsInternal = "Ha ocurrido un error inesperado. Inténtalo de nuevo más tarde."
)

// ContextLogger prefers the request logger stored under "logger".
func ContextLogger(c *gin.Context) *zap.Logger {
	if l, ok := c.Get("logger"); ok {
		if logger, ok := l.(*zap.Logger); ok {
			return logger
		}
	}
	return GetLogger()
}

// ErrorHandler recovers panics into a JSON 500.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				ContextLogger(c).Error("Unhandled panic",
					zap.String("panic", fmt.Sprint(rec)),
					zap.String("method", c.Request.Method),
					zap.String("path", c.Request.URL.Path),
				)
				if c.Writer.Written() {
					c.Abort()
					return
				}
				c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
					Message: msgInternal,
					Details: detailsInternal,
				})
			}
		}()
		c.Next()
	}
}

// JSONError aborts the request with an ErrorResponse. 5xx replies log at
// error level, everything else at warn.
func JSONError(c *gin.Context, status int, message string, details string) {
	logger := ContextLogger(c)
	fields := []zap.Field{zap.Int("status", status), zap.String("details", details)}
	if status >= http.StatusInternalServerError {
		logger.Error(message, fields...)
	} else {
		logger.Warn(message, fields...)
	}
	c.AbortWithStatusJSON(status, ErrorResponse{Message: message, Details: details})
}
