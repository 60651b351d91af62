package middleware

import (
	"errors"
	"net/http"

	"go-contact-relay/internal/delivery/http/response"
	"go-contact-relay/pkg/apperror"
	"go-contact-relay/pkg/logger"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if !errors.As(err, &appErr) {
			logger.Log.Error("Unhandled error", "error", err, "request_id", GetRequestID(c))
			response.Error(c, http.StatusInternalServerError, "Server error")
			return
		}

		if appErr.Code >= http.StatusInternalServerError {
			logger.Log.Error("Request failed",
				"status", appErr.Code,
				"error", appErr.Message,
				"cause", appErr.Err,
				"request_id", GetRequestID(c),
			)
		}

		body := response.ErrorBody{Error: appErr.Message, Origin: appErr.Origin}
		if appErr.Details != nil {
			body.Details = appErr.Details
		}
		response.ErrorWith(c, appErr.Code, body)
	}
}
