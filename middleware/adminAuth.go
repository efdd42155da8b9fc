package middleware

import (
	"net/http"
	"strings"

	"barberia/utils"

	"github.com/gin-gonic/gin"
)

// AdminAuthorizer decides whether a bearer credential opens the admin view.
type AdminAuthorizer interface {
	Authorize(credential string) bool
}

func AdminAuthMiddleware(gate AdminAuthorizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, utils.ErrorResponse{
				Message: "Acceso no autorizado",
				Details: "Missing or invalid Authorization header",
			})
			return
		}
		credential := strings.TrimPrefix(authHeader, "Bearer ")

		if !gate.Authorize(credential) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, utils.ErrorResponse{
				Message: "Contraseña incorrecta",
				Details: "Unauthorized admin access",
			})
			return
		}

		c.Set("isAdmin", true)
		c.Next()
	}
}
