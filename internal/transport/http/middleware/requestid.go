package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// KeyRequestID is the header and context key carrying the request id.
const KeyRequestID = "X-Request-ID"

// RequestID keeps the caller's id when one arrives, so a request can
// be correlated across the access log and the client's own traces;
// requests without one get a fresh uuid.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(KeyRequestID)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set(KeyRequestID, rid)
		c.Header(KeyRequestID, rid)
		c.Next()
	}
}
