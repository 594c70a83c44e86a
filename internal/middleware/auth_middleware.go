package middleware

import (
	"net/http"
	"strings"

	"newscheck/internal/models"
	"newscheck/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	ctxUserID = "userID"
	ctxRole   = "role"
)

// bearerToken extracts the token from an "Authorization: Bearer <token>" header.
func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", false
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", false
	}
	return parts[1], true
}

// Authenticate is the strict guard for write endpoints: missing or invalid
// tokens abort with 401.
func Authenticate(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing or malformed authorization header"})
			c.Abort()
			return
		}

		claims, err := authService.ValidateToken(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		c.Set(ctxUserID, claims.UserID)
		c.Set(ctxRole, claims.Role)
		c.Next()
	}
}

// OptionalAuthenticate is the lenient guard for read endpoints: a missing or
// undecodable token degrades to an anonymous identity instead of failing the
// request. This is what lets a public listing still honor admin visibility
// when a valid admin token happens to be present.
func OptionalAuthenticate(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if ok {
			if claims, err := authService.ValidateToken(token); err == nil {
				c.Set(ctxUserID, claims.UserID)
				c.Set(ctxRole, claims.Role)
			}
		}
		c.Next()
	}
}

// RequireRole checks that the authenticated caller holds one of the allowed
// roles. Roles are capability sets per action, not ranks: MEMBER may author
// news while only ADMIN moderates.
func RequireRole(allowed ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleValue, exists := c.Get(ctxRole)
		if !exists {
			c.JSON(http.StatusForbidden, gin.H{"error": "insufficient permissions"})
			c.Abort()
			return
		}
		role, ok := roleValue.(models.Role)
		if !ok {
			c.JSON(http.StatusForbidden, gin.H{"error": "insufficient permissions"})
			c.Abort()
			return
		}

		for _, want := range allowed {
			if role == want {
				c.Next()
				return
			}
		}

		c.JSON(http.StatusForbidden, gin.H{"error": "insufficient permissions"})
		c.Abort()
	}
}

// CallerIdentity resolves the identity set by Authenticate or
// OptionalAuthenticate; absent context values mean anonymous.
func CallerIdentity(c *gin.Context) service.Identity {
	userID, ok := c.Get(ctxUserID)
	if !ok {
		return service.Anonymous()
	}
	role, ok := c.Get(ctxRole)
	if !ok {
		return service.Anonymous()
	}

	id, okID := userID.(string)
	r, okRole := role.(models.Role)
	if !okID || !okRole {
		return service.Anonymous()
	}

	return service.Identity{UserID: id, Role: r, Authenticated: true}
}
