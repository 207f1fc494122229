package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const headerRequestID = "X-Request-Id"

// RequestID ensures every request carries an X-Request-Id, honoring one sent
// by the client and generating one otherwise. The id is echoed back on the
// response so clients can correlate logs.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.Request.Header.Get(headerRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
			c.Request.Header.Set(headerRequestID, requestID)
		}
		c.Writer.Header().Set(headerRequestID, requestID)

		c.Next()
	}
}
