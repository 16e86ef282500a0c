package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/harentsoaR/doctors-portal-api/internal/auth"
	"github.com/harentsoaR/doctors-portal-api/internal/logger"
)

// ContextEmailKey is where the verified identity lives in the Gin context.
// Handlers that never find it must treat the caller as anonymous.
const ContextEmailKey = "userEmail"

const bearerScheme = "bearer "

// Identity attaches the verified email to the request context when the
// Authorization header carries a token the identity provider signed.
// Verification failures are logged and the request proceeds anonymous;
// rejecting is the job of the handlers that require an identity, not of
// this layer.
func Identity(v *auth.Verifier, log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if strings.HasPrefix(authHeader, bearerScheme) {
			token := strings.TrimPrefix(authHeader, bearerScheme)
			email, err := v.Verify(token)
			if err != nil {
				log.Warn("bearer token rejected", "path", c.FullPath(), "err", err)
			} else {
				c.Set(ContextEmailKey, email)
			}
		}
		c.Next()
	}
}

// VerifiedEmail returns the identity bound by Identity, or "" for an
// anonymous request.
func VerifiedEmail(c *gin.Context) string {
	return c.GetString(ContextEmailKey)
}
