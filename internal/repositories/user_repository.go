package repositories

import "dvstore/internal/models"

// UserRepository defines the interface for user data access.
// Email lookups are case-insensitive.
type UserRepository interface {
	Create(user *models.User) error
	GetByEmail(email string) (*models.User, error)
	GetByID(id string) (*models.User, error)
	UpdatePassword(email string, passwordHash string) error
}
