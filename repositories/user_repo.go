// Data-access layer. Repositories hide GORM details behind interfaces so
// services stay DB-agnostic and tests can swap in mocks.

package repositories

import (
	"errors"

	"github.com/adhilX/Stock-Image-Platform/models"

	"gorm.io/gorm"
)

// UserRepository defines the account-store operations the auth service needs.
type UserRepository interface {
	Create(user *models.User) error
	FindByEmail(email string) (*models.User, error)
	FindByID(id uint) (*models.User, error)
	Update(user *models.User) error
}

// userRepo is the private struct implementing UserRepository.
// It holds a *gorm.DB that can connect to any configured dialect.
type userRepo struct{ db *gorm.DB }

// NewUserRepository injects *gorm.DB and returns the interface, so main.go
// can wire dependencies without exposing concrete types to other layers.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepo{db: db}
}

// Create inserts a new user row; GORM populates the ID on success.
func (r *userRepo) Create(u *models.User) error {
	return r.db.Create(u).Error
}

// FindByEmail queries for a user with the given email using a
// parameterized WHERE clause.
func (r *userRepo) FindByEmail(email string) (*models.User, error) {
	var u models.User
	if err := r.db.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) FindByID(id uint) (*models.User, error) {
	var u models.User
	if err := r.db.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// Update saves fields on an existing user (assumes u has a valid ID).
func (r *userRepo) Update(u *models.User) error {
	return r.db.Save(u).Error
}

// IsNotFound checks GORM's "record not found" sentinel.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
