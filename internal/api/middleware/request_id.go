package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CtxRequestID is the context key carrying the request ID.
const CtxRequestID = "request_id"

const requestIDHeader = "X-Request-ID"

// RequestID accepts a caller-supplied X-Request-ID or generates one,
// and echoes it back on the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		c.Set(CtxRequestID, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}
