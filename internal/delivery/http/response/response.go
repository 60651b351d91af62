package response

import (
	"github.com/gin-gonic/gin"
)

// Result is the body of a successful (or silently accepted) submission
type Result struct {
	OK bool   `json:"ok"`
	ID string `json:"id,omitempty"`
}

// ErrorBody is the body of every failed request. Details is kept whenever it
// is set, even when the provider body decoded to an empty object.
type ErrorBody struct {
	Error   string `json:"error"`
	Origin  string `json:"origin,omitempty"`
	Details any    `json:"details,omitempty"`
}

// Success sends a success response
func Success(c *gin.Context, code int, id string) {
	c.JSON(code, Result{OK: true, ID: id})
}

// Error sends an error response
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, ErrorBody{Error: message})
}

// ErrorWith sends an error response carrying origin and provider details
func ErrorWith(c *gin.Context, code int, body ErrorBody) {
	c.JSON(code, body)
}
