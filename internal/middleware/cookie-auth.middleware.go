package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/skillwaves/skillwaves-server/internal/constant"
	"github.com/skillwaves/skillwaves-server/internal/model"
	"github.com/skillwaves/skillwaves-server/internal/token"
)

// VerifyCookieToken is the auth gate: it reads the signed token from the
// request cookie, verifies it and attaches the decoded identity to the gin
// context. A missing, invalid or expired token aborts with 401; the caller
// cannot tell those cases apart.
func VerifyCookieToken(codec *token.Codec, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(cookieName)
		if err != nil || tokenString == "" {
			zap.L().Warn("Auth cookie missing",
				zap.String("path", c.Request.URL.Path),
				zap.String("ip", getClientIP(c)))
			c.AbortWithStatusJSON(http.StatusUnauthorized, constant.UNAUTHORIZED)
			return
		}

		payload, err := codec.Verify(tokenString)
		if err != nil {
			zap.L().Warn("Token verification failed",
				zap.Error(err),
				zap.String("path", c.Request.URL.Path),
				zap.String("ip", getClientIP(c)))
			c.AbortWithStatusJSON(http.StatusUnauthorized, constant.UNAUTHORIZED)
			return
		}

		c.Set(constant.JWTPayloadKey, *payload)
		c.Next()
	}
}

// TokenEmail returns the email of the verified identity, or empty when the
// auth gate did not run on this route.
func TokenEmail(c *gin.Context) string {
	v, exists := c.Get(constant.JWTPayloadKey)
	if !exists {
		return ""
	}
	payload, ok := v.(model.JWTPayload)
	if !ok {
		return ""
	}
	return payload.Email
}
