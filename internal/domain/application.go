package domain

import (
	"errors"  // Sentinel errors for status transitions
	"strings" // Skill list parsing
	"time"    // Record timestamps
)

// Application review statuses
const (
	StatusView        = "view"        // Submitted, not yet opened by an admin
	StatusViewed      = "viewed"      // Opened by an admin
	StatusShortlisted = "shortlisted" // Accepted for the next round
	StatusRejected    = "rejected"    // Declined
)

// Statuses lists every valid status in display order
var Statuses = []string{StatusView, StatusViewed, StatusShortlisted, StatusRejected}

// ErrInvalidStatus is returned when a status is not settable by an admin
var ErrInvalidStatus = errors.New("status must be shortlisted or rejected")

// ErrTerminalStatus is returned when a decided application would be moved to another decision
var ErrTerminalStatus = errors.New("application has already been decided")

// JobApplication Model
type JobApplication struct {
	ID        uint      `gorm:"primaryKey" json:"id"`                              // Primary key
	Name      string    `gorm:"not null" json:"name"`                              // Candidate name
	Email     string    `gorm:"not null" json:"email"`                             // Candidate email
	JobRole   string    `gorm:"not null" json:"jobRole"`                           // Role applied for
	Degree    string    `gorm:"not null" json:"degree"`                            // Highest degree
	Gender    string    `gorm:"default:NA" json:"gender"`                          // Gender
	Skills    []string  `gorm:"serializer:json;type:json;not null" json:"skills"`  // Ordered skill list
	MobileNo  int64     `gorm:"not null" json:"mobileNo"`                          // 10 digit mobile number
	Status    string    `gorm:"size:16;not null;default:view;index" json:"status"` // Review status
	Resume    string    `gorm:"not null" json:"resume"`                            // Stored resume path
	CreatedAt time.Time `gorm:"index" json:"createdAt"`                            // Creation timestamp
	UpdatedAt time.Time `json:"updatedAt"`                                         // Last update timestamp
}

// IsValidStatus reports whether s is one of the four review statuses
func IsValidStatus(s string) bool {
	for _, v := range Statuses {
		if v == s {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the status is a final review decision
func IsTerminal(s string) bool {
	return s == StatusShortlisted || s == StatusRejected
}

// ParseSkills splits a comma separated skill list and trims each entry
func ParseSkills(raw string) []string {
	parts := strings.Split(raw, ",")
	skills := make([]string, len(parts))
	for i, p := range parts {
		skills[i] = strings.TrimSpace(p)
	}
	return skills
}

// MarkViewed advances an undecided application to viewed.
// It reports whether the status changed; calling it again is a no-op.
func (a *JobApplication) MarkViewed() bool {
	if IsTerminal(a.Status) || a.Status == StatusViewed {
		return false
	}
	a.Status = StatusViewed
	return true
}

// ApplyReviewDecision sets an admin decision on the application.
// Only shortlisted and rejected are accepted, and a decided application
// cannot be switched to the other decision.
func (a *JobApplication) ApplyReviewDecision(status string) error {
	if !IsTerminal(status) {
		return ErrInvalidStatus
	}
	if IsTerminal(a.Status) && a.Status != status {
		return ErrTerminalStatus
	}
	a.Status = status
	return nil
}
