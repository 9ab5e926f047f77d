package middleware

import (
	"net/http"
	"strings"

	"github.com/01moynul/locify-golang/internal/auth"
	"github.com/gin-gonic/gin"
)

// UserIDKey is the gin context key holding the authenticated user ID.
const UserIDKey = "userID"

// Identify resolves the caller's identity from a Bearer token.
//
// A request with no Authorization header continues anonymously: the
// handlers decide what an anonymous caller may do. A header that is
// present but malformed, expired or forged is rejected with 401.
func Identify(secret []byte) gin.HandlerFunc {
	return identify(secret, true)
}

// OptionalIdentify is Identify for public read routes: a bad token is
// ignored and the request continues anonymously.
func OptionalIdentify(secret []byte) gin.HandlerFunc {
	return identify(secret, false)
}

func identify(secret []byte, strict bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. --- Get Authorization Header ---
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			if !strict {
				c.Next()
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token format (must be Bearer)"})
			return
		}

		// 2. --- Validate Token ---
		userID, err := auth.ValidateToken(secret, parts[1])
		if err != nil {
			if !strict {
				c.Next()
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		// 3. --- Success ---
		c.Set(UserIDKey, userID)
		c.Next()
	}
}

// UserID returns the authenticated user ID, or "" for anonymous callers.
func UserID(c *gin.Context) string {
	return c.GetString(UserIDKey)
}
