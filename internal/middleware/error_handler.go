package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/jaijaish98/invoice-generator-business-management-backend/internal/apperrors"
	"github.com/jaijaish98/invoice-generator-business-management-backend/internal/common"
)

// NewHTTPErrorHandler translates every error raised by handlers, services or
// middleware into the response envelope exactly once. Internal errors are
// logged with full detail but only a generic message leaves the process.
func NewHTTPErrorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		message := "An unexpected error occurred"

		if appErr, ok := apperrors.As(err); ok {
			status = appErr.Status()
			if appErr.Kind == apperrors.KindInternal {
				logger.Error("internal error",
					zap.String("path", c.Request().URL.Path),
					zap.String("method", c.Request().Method),
					zap.Error(err),
				)
			} else {
				message = appErr.Message
			}
		} else if httpErr, ok := err.(*echo.HTTPError); ok {
			status = httpErr.Code
			if msg, ok := httpErr.Message.(string); ok {
				message = msg
			}
		} else {
			logger.Error("unhandled error",
				zap.String("path", c.Request().URL.Path),
				zap.String("method", c.Request().Method),
				zap.Error(err),
			)
		}

		if writeErr := common.RespondError(c, status, message); writeErr != nil {
			logger.Error("failed to write error response", zap.Error(writeErr))
		}
	}
}
