package db

import (
	"context" // Context for store calls
	"errors"  // Error matching
	"strings" // String manipulation

	"career_portal/internal/domain" // Domain models
	"career_portal/internal/store"  // Store errors

	"github.com/sirupsen/logrus" // Logging library
	"golang.org/x/crypto/bcrypt" // Password hashing
)

// AdminStore is what the admin bootstrap needs from persistence
type AdminStore interface {
	FirstAdmin(ctx context.Context) (domain.User, error)
	Create(ctx context.Context, user *domain.User) error
}

// AdminSeed describes the default admin account
type AdminSeed struct {
	Name     string
	Email    string
	Password string
}

// EnsureDefaultAdmin creates the default admin unless an Admin already exists.
// It reports whether an account was created.
func EnsureDefaultAdmin(ctx context.Context, users AdminStore, seed AdminSeed) (bool, error) {
	existing, err := users.FirstAdmin(ctx)
	if err == nil {
		logrus.WithField("email", existing.Email).Info("Default admin already present")
		return false, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return false, err
	}
	if strings.TrimSpace(seed.Email) == "" || seed.Password == "" {
		return false, errors.New("no admin account exists and ADMIN_EMAIL/ADMIN_PASSWORD are not set")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(seed.Password), bcrypt.DefaultCost)
	if err != nil {
		return false, err
	}
	admin := domain.User{
		Name:     seed.Name,
		Email:    strings.TrimSpace(seed.Email),
		Password: string(hash),
		Role:     domain.RoleAdmin,
		Status:   domain.AccountUnblocked,
	}
	if err := users.Create(ctx, &admin); err != nil {
		return false, err
	}
	logrus.WithField("email", admin.Email).Info("Default admin created")
	return true, nil
}
