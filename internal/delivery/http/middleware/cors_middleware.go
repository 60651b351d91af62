package middleware

import (
	"net/http"

	"go-contact-relay/pkg/apperror"
	"go-contact-relay/pkg/security"

	"github.com/gin-gonic/gin"
)

// CORSPolicy is the allow-list applied to the contact endpoint
type CORSPolicy struct {
	AllowedOrigins []string
	// DefaultOrigin is sent when the request origin is missing or not allowed,
	// so browsers can still read our error bodies
	DefaultOrigin  string
	AllowedHeaders string
}

// CORSMiddleware applies the contact endpoint's CORS policy.
//
// Headers are always written before anything else can return. Preflight
// requests are answered here with 200 for any origin. A browser origin outside
// the allow-list is refused with 403 and the rejected origin in the body.
// Requests without an Origin header (server-to-server) pass through.
func CORSMiddleware(policy CORSPolicy, secLog *security.SecurityLogger) gin.HandlerFunc {
	allowed := make(map[string]bool, len(policy.AllowedOrigins))
	for _, origin := range policy.AllowedOrigins {
		allowed[origin] = true
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		isAllowed := origin != "" && allowed[origin]

		if isAllowed {
			c.Header("Access-Control-Allow-Origin", origin)
		} else if policy.DefaultOrigin != "" {
			c.Header("Access-Control-Allow-Origin", policy.DefaultOrigin)
		}
		c.Header("Vary", "Origin")
		c.Header("Access-Control-Allow-Methods", "POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", policy.AllowedHeaders)
		c.Header("Cache-Control", "no-store")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusOK)
			return
		}

		if origin != "" && !isAllowed {
			secLog.LogOriginRejected(c.Request.Context(), origin, RequestInfo(c))
			_ = c.Error(apperror.Forbidden("Origin not allowed", origin))
			c.Abort()
			return
		}

		c.Next()
	}
}

// RequestInfo collects caller metadata for security logging
func RequestInfo(c *gin.Context) security.RequestInfo {
	return security.RequestInfo{
		IP:        c.ClientIP(),
		UserAgent: c.GetHeader("User-Agent"),
		RequestID: GetRequestID(c),
	}
}
