package repositories

import (
	"fmt"
	"strings"
	"sync"

	"dvstore/internal/models"

	"github.com/google/uuid"
)

// MockUserRepository is an in-memory implementation of UserRepository.
type MockUserRepository struct {
	users map[string]models.User // keyed by lowercased email
	mu    sync.RWMutex
}

// NewMockUserRepository creates a new instance of MockUserRepository.
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		users: make(map[string]models.User),
	}
}

// Create adds a new user.
func (r *MockUserRepository) Create(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := strings.ToLower(user.Email)
	if _, ok := r.users[key]; ok {
		return fmt.Errorf("user with email %s already exists", user.Email)
	}
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	r.users[key] = *user
	return nil
}

// GetByEmail returns a user by email, matched case-insensitively.
func (r *MockUserRepository) GetByEmail(email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[strings.ToLower(email)]
	if !ok {
		return nil, fmt.Errorf("user with email %s not found", email)
	}
	return &user, nil
}

// GetByID returns a user by their ID.
func (r *MockUserRepository) GetByID(id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.ID == id {
			u := user
			return &u, nil
		}
	}
	return nil, fmt.Errorf("user with ID %s not found", id)
}

// UpdatePassword overwrites the stored password hash for the given email.
func (r *MockUserRepository) UpdatePassword(email string, passwordHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := strings.ToLower(email)
	user, ok := r.users[key]
	if !ok {
		return fmt.Errorf("user with email %s not found for password update", email)
	}
	user.Password = passwordHash
	r.users[key] = user
	return nil
}
