package middleware

import (
	"net/http"
	"strings"

	"giraffecabs/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const sessionKey = "session"

// Auth verifies the bearer token and stores a RequestContext in the gin
// context. Requests without a valid token are rejected.
func Auth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		raw := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))

		claims := jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return secret, nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		rc := domain.RequestContext{Authenticated: true}
		if v, ok := claims["user_id"].(float64); ok {
			rc.UserID = domain.ID(v)
		}
		if v, ok := claims["role"].(string); ok {
			rc.Role = v
		}
		if rc.UserID <= 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token claims"})
			return
		}

		c.Set(sessionKey, rc)
		c.Next()
	}
}

// RequireRole gates a route group to one role (admin bypasses).
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		rc := GetSession(c)
		if !rc.Authenticated || (rc.Role != role && rc.Role != "admin") {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "insufficient permissions"})
			return
		}
		c.Next()
	}
}

// GetSession returns the RequestContext for the request; the zero value
// means not authenticated.
func GetSession(c *gin.Context) domain.RequestContext {
	if v, ok := c.Get(sessionKey); ok {
		if rc, ok := v.(domain.RequestContext); ok {
			return rc
		}
	}
	return domain.RequestContext{}
}
