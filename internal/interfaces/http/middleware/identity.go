package middleware

import (
	"github.com/gin-gonic/gin"

	"helpdesk/internal/shared/authorization"
)

// IdentityFromContext returns the identity stored by RequireAuth.
// The second return is false when the route skipped authentication.
func IdentityFromContext(c *gin.Context) (authorization.Identity, bool) {
	value, exists := c.Get("identity")
	if !exists {
		return authorization.Identity{}, false
	}

	identity, ok := value.(authorization.Identity)
	return identity, ok
}
