package repositories

import (
	"dvstore/internal/models"
)

// AdminRepository defines the interface for admin credential access.
// The application only ever seeds and reads this table.
type AdminRepository interface {
	Create(admin *models.Admin) error
	GetByUsername(username string) (*models.Admin, error)
	Count() (int64, error)
}
