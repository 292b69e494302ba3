package models

import "gorm.io/gorm"

// User represents a registered customer of the store.
type User struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name       string `json:"name" gorm:"type:varchar(100)" validate:"required,min=1,max=100"`
	Email      string `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Password   string `gorm:"type:varchar(255)" validate:"required"` // bcrypt hash; no json tag for security
	AuthKey    string `gorm:"type:varchar(16)"`                      // 16-digit recovery key issued once at registration
	gorm.Model        // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
