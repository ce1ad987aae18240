package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RequestIDKey is the gin context key holding the correlation id.
	RequestIDKey = "request_id"

	requestIDHeader = "X-Request-ID"
)

// RequestID tags every request with a correlation id for log grepping. A
// caller-supplied X-Request-ID is honored, otherwise one is generated, and
// either way the id is echoed back in the response header.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(RequestIDKey, id)
		c.Writer.Header().Set(requestIDHeader, id)
		c.Next()
	}
}
