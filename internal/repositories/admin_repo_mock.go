package repositories

import (
	"fmt"
	"sync"

	"dvstore/internal/models"
)

// MockAdminRepository is an in-memory implementation of AdminRepository.
type MockAdminRepository struct {
	admins map[string]models.Admin
	mu     sync.RWMutex
}

// NewMockAdminRepository creates a new instance of MockAdminRepository.
func NewMockAdminRepository() *MockAdminRepository {
	return &MockAdminRepository{
		admins: make(map[string]models.Admin),
	}
}

// Create adds a new admin row.
func (r *MockAdminRepository) Create(admin *models.Admin) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.admins[admin.Username]; ok {
		return fmt.Errorf("admin with username %s already exists", admin.Username)
	}
	r.admins[admin.Username] = *admin
	return nil
}

// GetByUsername returns an admin by their username.
func (r *MockAdminRepository) GetByUsername(username string) (*models.Admin, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	admin, ok := r.admins[username]
	if !ok {
		return nil, fmt.Errorf("admin with username %s not found", username)
	}
	return &admin, nil
}

// Count returns the number of admin rows.
func (r *MockAdminRepository) Count() (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return int64(len(r.admins)), nil
}
