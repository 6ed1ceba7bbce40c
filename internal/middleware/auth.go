package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking/internal/auth"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
)

const ContextAdmin = "admin"

// AdminAuth accepts `Authorization: Bearer <secret>`. With no secret
// configured every request is rejected.
func AdminAuth(authenticator auth.Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := auth.BearerToken(c.GetHeader("Authorization"))
		if !ok || !authenticator.Authenticate(token) {
			httperr.AbortUnauthorized(c, "unauthorized", "Nicht autorisiert")
			return
		}

		c.Set(ContextAdmin, true)
		c.Next()
	}
}
