package domain

import "time" // Time for account timestamps

// Roles a user account can hold
const (
	RoleUser  = "user"  // Default role for accounts
	RoleAdmin = "Admin" // Role allowed to manage applications
)

// Account statuses
const (
	AccountUnblocked = "unblock" // Account may sign in
	AccountBlocked   = "block"   // Account is blocked
)

// User Model
type User struct {
	ID          uint       `gorm:"primaryKey" json:"id"`                       // Primary key
	Name        string     `gorm:"not null" json:"name"`                       // Display name
	Email       string     `gorm:"uniqueIndex;size:191;not null" json:"email"` // Login lookup key
	Password    string     `gorm:"not null" json:"-"`                          // Hashed password, never serialized
	OTP         string     `json:"-"`                                          // One-time password (unused)
	OTPExpires  *time.Time `json:"-"`                                          // One-time password expiry (unused)
	OTPVerified bool       `json:"-"`                                          // One-time password verified flag (unused)
	PhoneNumber string     `gorm:"default:'0'" json:"phoneNumber"`             // Contact number
	Status      string     `gorm:"size:16;default:unblock" json:"status"`      // Account status: block or unblock
	Role        string     `gorm:"size:16;default:user;index" json:"role"`     // Role: user or Admin
	CreatedOn   time.Time  `gorm:"autoCreateTime" json:"createdOn"`            // Creation timestamp
}

// IsAdmin reports whether the user holds the Admin role
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
