package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
)

// Deadline attaches a timeout to each request context. Store calls
// inherit it, so a saturated connection pool fails the acquire with
// context.DeadlineExceeded instead of queueing indefinitely; the
// services map that onto the retryable STORE_BUSY answer.
func Deadline(d time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if d <= 0 {
			c.Next()
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), d)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
