// Package middleware holds the gin middleware chain: cookie-token auth,
// correlation IDs and request logging.
package middleware

import (
	"github.com/gin-gonic/gin"
)

// getClientIP extracts the real client IP address
func getClientIP(c *gin.Context) string {
	// Check for forwarded headers
	if ip := c.GetHeader("X-Forwarded-For"); ip != "" {
		return ip
	}
	if ip := c.GetHeader("X-Real-IP"); ip != "" {
		return ip
	}

	return c.ClientIP()
}
