package middleware

import (
	"context"  // Context for user lookups
	"errors"   // Error matching
	"net/http" // HTTP status codes
	"strings"  // String manipulation

	"career_portal/internal/domain" // Domain models
	"career_portal/internal/store"  // Store errors
	"career_portal/internal/utils"  // JWT utility functions

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// UserContextKey is the gin context key holding the authenticated domain.User
const UserContextKey = "user"

// UserFinder resolves a token subject to a stored user
type UserFinder interface {
	FindByID(ctx context.Context, id uint) (domain.User, error)
}

// tokenFromRequest returns the session token from Authorization or token headers
func tokenFromRequest(c *gin.Context) string {
	if auth := strings.TrimSpace(c.GetHeader("Authorization")); auth != "" {
		if len(auth) > 7 && strings.EqualFold(auth[:7], "Bearer ") {
			return strings.TrimSpace(auth[7:]) // Bearer scheme
		}
		return auth // Raw token
	}
	return strings.TrimSpace(c.GetHeader("token"))
}

// JWTAuthMiddleware validates the session token and attaches the resolved user
func JWTAuthMiddleware(secret string, users UserFinder) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := tokenFromRequest(c)
		if tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"statusCode": http.StatusUnauthorized, "message": "Unauthorized - No token provided"})
			return
		}
		claims, err := utils.ParseJWT(tokenStr, secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"statusCode": http.StatusUnauthorized, "message": "Token invalid or expired"})
			return
		}
		user, err := users.FindByID(c.Request.Context(), claims.UserID)
		if errors.Is(err, store.ErrNotFound) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"statusCode": http.StatusUnauthorized, "message": "User not found"})
			return
		}
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id": claims.UserID,
				"error":   err.Error(),
			}).Error("Failed to resolve token user")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"statusCode": http.StatusInternalServerError, "message": "Internal Server Error"})
			return
		}
		user.Password = "" // Hash never travels with the request
		c.Set(UserContextKey, user)
		c.Next()
	}
}

// CurrentUser returns the user attached by JWTAuthMiddleware
func CurrentUser(c *gin.Context) (domain.User, bool) {
	v, exists := c.Get(UserContextKey)
	if !exists {
		return domain.User{}, false
	}
	user, ok := v.(domain.User)
	return user, ok
}
