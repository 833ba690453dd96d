package store

import (
	"context" // Request scoped cancellation
	"errors"  // Error matching

	"career_portal/internal/domain" // Domain models

	"gorm.io/gorm" // ORM library
)

// UserStore handles persistence for user accounts.
type UserStore struct {
	db *gorm.DB
}

func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{db: db}
}

// FindByID returns the user with the given primary key.
func (s *UserStore) FindByID(ctx context.Context, id uint) (domain.User, error) {
	var user domain.User
	if err := s.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return domain.User{}, translate(err)
	}
	return user, nil
}

// FindAdminByEmail returns the Admin account registered under email.
func (s *UserStore) FindAdminByEmail(ctx context.Context, email string) (domain.User, error) {
	var user domain.User
	err := s.db.WithContext(ctx).
		Where("email = ? AND role = ?", email, domain.RoleAdmin).
		First(&user).Error
	if err != nil {
		return domain.User{}, translate(err)
	}
	return user, nil
}

// FirstAdmin returns any Admin account.
func (s *UserStore) FirstAdmin(ctx context.Context) (domain.User, error) {
	var user domain.User
	if err := s.db.WithContext(ctx).Where("role = ?", domain.RoleAdmin).First(&user).Error; err != nil {
		return domain.User{}, translate(err)
	}
	return user, nil
}

// Create inserts a new user.
func (s *UserStore) Create(ctx context.Context, user *domain.User) error {
	return s.db.WithContext(ctx).Create(user).Error
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
