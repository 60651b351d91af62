package middleware

import (
	"context"

	"go-contact-relay/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-ID"

// RequestID reuses a caller-supplied X-Request-ID or generates one, and
// exposes it on the gin context, the request context and the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}

		c.Set(string(domain.KeyRequestID), id)
		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), domain.KeyRequestID, id))
		c.Header(RequestIDHeader, id)

		c.Next()
	}
}

// GetRequestID returns the id set by RequestID, or ""
func GetRequestID(c *gin.Context) string {
	return c.GetString(string(domain.KeyRequestID))
}
