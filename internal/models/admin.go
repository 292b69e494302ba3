package models

import "gorm.io/gorm"

// Admin is a static administrator credential row. The table is seeded
// once at startup and never mutated by the application.
type Admin struct {
	Username   string `json:"username" gorm:"uniqueIndex;type:varchar(255)"`
	Password   string `gorm:"type:varchar(255)"` // bcrypt hash; no json tag for security
	gorm.Model        // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
