package middleware

import (
	"strings"

	"garagespace/constants"
	"garagespace/response"
	"garagespace/services"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware requires a bearer token and, when roles are given,
// membership in one of them. The resolved identity lands in the context
// under userID / userRole.
func AuthMiddleware(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		userID, userRole, err := services.GetUserIDFromToken(tokenString)
		if err != nil {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		if len(roles) > 0 {
			hasRole := false
			for _, role := range roles {
				if role == userRole {
					hasRole = true
					break
				}
			}
			if !hasRole {
				response.Forbidden(c)
				c.Abort()
				return
			}
		}

		c.Set("userID", userID)
		c.Set("userRole", userRole)
		c.Next()
	}
}

// AdminOnly is shorthand for AuthMiddleware(admin)
func AdminOnly() gin.HandlerFunc {
	return AuthMiddleware(constants.RoleAdmin)
}

// CurrentActor reads the identity AuthMiddleware stored on the context.
// The second return value is false on unauthenticated routes.
func CurrentActor(c *gin.Context) (services.Actor, bool) {
	userID, ok := c.Get("userID")
	if !ok {
		return services.Actor{}, false
	}
	role, _ := c.Get("userRole")

	return services.Actor{
		UserID:  userID.(uint),
		IsAdmin: role == constants.RoleAdmin,
	}, true
}
