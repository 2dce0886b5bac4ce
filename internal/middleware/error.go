package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	apperrors "tradelog/internal/errors"
	"tradelog/internal/logger"
)

// ErrorHandler renders the last error a handler recorded with c.Error as the
// standard error envelope. Handlers that already wrote a response are left
// alone. Bind errors become INVALID_INPUT; anything that is not an AppError
// is logged and reported as INTERNAL_ERROR.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		abortWithError(c, toAppError(c, c.Errors.Last()))
	}
}

func toAppError(c *gin.Context, ginErr *gin.Error) *apperrors.AppError {
	log := logger.Named("http").With(
		"request_id", c.GetString(RequestIDKey),
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
	)

	var appErr *apperrors.AppError
	switch {
	case errors.As(ginErr.Err, &appErr):
		if appErr.Internal != nil {
			log.Errorw("app error", "code", appErr.Code, "internal", appErr.Internal.Error())
		}
		return appErr
	case ginErr.IsType(gin.ErrorTypeBind):
		return apperrors.WithMessage(apperrors.ErrInvalidInput, ginErr.Error())
	default:
		log.Errorw("unexpected error", "error", ginErr.Error())
		return apperrors.ErrInternalServer
	}
}
