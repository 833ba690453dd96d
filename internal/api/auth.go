package api

import (
	"errors"   // Error matching
	"net/http" // HTTP status codes
	"strings"  // String manipulation

	"career_portal/internal/store" // Store errors
	"career_portal/internal/utils" // JWT helpers

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"golang.org/x/crypto/bcrypt" // Password hashing
)

// Request struct for admin login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"` // Admin email
	Password string `json:"password" binding:"required"`    // Plain password
}

// Response struct for a successful login
type LoginResponse struct {
	StatusCode int    `json:"statusCode"` // HTTP status code
	Message    string `json:"message"`    // Human readable message
	Token      string `json:"token"`      // Session token
}

// AdminLoginHandler verifies admin credentials and issues a one hour session token
func AdminLoginHandler(users UserStore, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "Invalid request", err)
			return
		}
		email := strings.TrimSpace(req.Email)
		admin, err := users.FindAdminByEmail(c.Request.Context(), email)
		if errors.Is(err, store.ErrNotFound) {
			badRequest(c, "You are not an admin", nil)
			return
		}
		if err != nil {
			internalError(c, "Admin lookup failed", err, logrus.Fields{"email": email})
			return
		}
		// Compare provided password with stored hash
		if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(req.Password)); err != nil {
			badRequest(c, "Password is incorrect", nil)
			return
		}
		token, err := utils.GenerateJWT(admin.ID, jwtSecret)
		if err != nil {
			internalError(c, "Failed to generate token", err, logrus.Fields{"user_id": admin.ID})
			return
		}
		logrus.WithField("user_id", admin.ID).Info("Admin logged in")
		c.JSON(http.StatusOK, LoginResponse{
			StatusCode: http.StatusOK,
			Message:    "Login successful",
			Token:      token,
		})
	}
}
