package services_test

import (
	"fmt"
	"testing"

	"dvstore/internal/models"
	"dvstore/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

// MockUserRepository is a mock implementation of repositories.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(id string) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) UpdatePassword(email string, passwordHash string) error {
	args := m.Called(email, passwordHash)
	return args.Error(0)
}

const testJWTSecret = "test_jwt_secret"

func TestAuthService_Register(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, testJWTSecret)

	// Successful registration returns a 16-digit auth key
	mockRepo.On("GetByEmail", "test@example.com").Return(nil, fmt.Errorf("user with email test@example.com not found")).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).Return(nil).Once()

	authKey, err := authService.Register("Test User", "test@example.com", "Abcd1234")
	assert.NoError(t, err)
	assert.Len(t, authKey, 16)
	for _, c := range authKey {
		assert.True(t, c >= '0' && c <= '9', "auth key must be numeric")
	}
	mockRepo.AssertExpectations(t)

	// The stored password is a bcrypt hash, never the plaintext
	createdUser := mockRepo.Calls[1].Arguments.Get(0).(*models.User)
	assert.NotEqual(t, "Abcd1234", createdUser.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(createdUser.Password), []byte("Abcd1234")))
	assert.Equal(t, authKey, createdUser.AuthKey)

	// Blank fields
	_, err = authService.Register("", "test@example.com", "Abcd1234")
	assert.ErrorIs(t, err, services.ErrValidation)

	// Email missing "@" and "."
	_, err = authService.Register("Test User", "not-an-email", "Abcd1234")
	assert.ErrorIs(t, err, services.ErrValidation)

	// Email already registered
	mockRepo.On("GetByEmail", "taken@example.com").Return(&models.User{ID: "1", Email: "taken@example.com"}, nil).Once()
	_, err = authService.Register("Test User", "taken@example.com", "Abcd1234")
	assert.ErrorIs(t, err, services.ErrValidation)
	assert.Contains(t, err.Error(), "already registered")
	mockRepo.AssertExpectations(t)
}

func TestAuthService_Register_PasswordPolicy(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, testJWTSecret)

	cases := []struct {
		password string
		valid    bool
	}{
		{"abc12345", false}, // no uppercase
		{"Abcdefgh", false}, // no digit
		{"Abc1234", false},  // too short
		{"Abcd1234", true},
	}

	for _, tc := range cases {
		if tc.valid {
			mockRepo.On("GetByEmail", "policy@example.com").Return(nil, fmt.Errorf("not found")).Once()
			mockRepo.On("Create", mock.AnythingOfType("*models.User")).Return(nil).Once()
		} else {
			mockRepo.On("GetByEmail", "policy@example.com").Return(nil, fmt.Errorf("not found")).Once()
		}

		_, err := authService.Register("Policy User", "policy@example.com", tc.password)
		if tc.valid {
			assert.NoError(t, err, "password %q should pass policy", tc.password)
		} else {
			assert.ErrorIs(t, err, services.ErrValidation, "password %q should fail policy", tc.password)
		}
	}
	mockRepo.AssertExpectations(t)
}

func TestAuthService_Login(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, testJWTSecret)

	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("Abcd1234"), bcrypt.DefaultCost)
	user := &models.User{
		ID:       "user-123",
		Name:     "Test User",
		Email:    "test@example.com",
		Password: string(hashedPassword),
		AuthKey:  "1234567890123456",
	}

	// Successful login issues a token carrying the user claims
	mockRepo.On("GetByEmail", user.Email).Return(user, nil).Once()
	token, err := authService.Login(user.Email, "Abcd1234")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := authService.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, user.ID, claims["user_id"])
	assert.Equal(t, user.Email, claims["email"])
	assert.Equal(t, "user", claims["role"])
	mockRepo.AssertExpectations(t)

	// Wrong password
	mockRepo.On("GetByEmail", user.Email).Return(user, nil).Once()
	_, err = authService.Login(user.Email, "WrongPass1")
	assert.ErrorIs(t, err, services.ErrAuth)

	// Unknown email gets the same generic failure
	mockRepo.On("GetByEmail", "nobody@example.com").Return(nil, fmt.Errorf("user with email nobody@example.com not found")).Once()
	_, err = authService.Login("nobody@example.com", "Abcd1234")
	assert.ErrorIs(t, err, services.ErrAuth)
	assert.Contains(t, err.Error(), "invalid credentials")
	mockRepo.AssertExpectations(t)
}

func TestAuthService_ResetPassword(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, testJWTSecret)

	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("Abcd1234"), bcrypt.DefaultCost)
	user := &models.User{
		ID:       "user-123",
		Email:    "test@example.com",
		Password: string(hashedPassword),
		AuthKey:  "1234567890123456",
	}

	// Unknown email
	mockRepo.On("GetByEmail", "nobody@example.com").Return(nil, fmt.Errorf("not found")).Once()
	err := authService.ResetPassword("nobody@example.com", user.AuthKey, "Efgh5678")
	assert.ErrorIs(t, err, services.ErrNotFound)

	// Wrong auth key fails regardless of new password validity
	mockRepo.On("GetByEmail", user.Email).Return(user, nil).Once()
	err = authService.ResetPassword(user.Email, "0000000000000000", "Efgh5678")
	assert.ErrorIs(t, err, services.ErrAuth)

	// New password failing policy
	mockRepo.On("GetByEmail", user.Email).Return(user, nil).Once()
	err = authService.ResetPassword(user.Email, user.AuthKey, "weak")
	assert.ErrorIs(t, err, services.ErrValidation)

	// Successful reset overwrites the hash; the auth key is untouched
	mockRepo.On("GetByEmail", user.Email).Return(user, nil).Once()
	mockRepo.On("UpdatePassword", user.Email, mock.AnythingOfType("string")).Return(nil).Once()
	err = authService.ResetPassword(user.Email, user.AuthKey, "Efgh5678")
	assert.NoError(t, err)

	newHash := mockRepo.Calls[len(mockRepo.Calls)-1].Arguments.Get(1).(string)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(newHash), []byte("Efgh5678")))
	mockRepo.AssertExpectations(t)
}

func TestAuthService_ValidateToken_Invalid(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, testJWTSecret)

	_, err := authService.ValidateToken("invalid.token.string")
	assert.ErrorIs(t, err, services.ErrAuth)

	// Token signed with a different secret
	other := services.NewAuthService(mockRepo, "other_secret")
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("Abcd1234"), bcrypt.DefaultCost)
	user := &models.User{ID: "u", Email: "t@e.com", Password: string(hashedPassword)}
	mockRepo.On("GetByEmail", user.Email).Return(user, nil).Once()
	token, err := other.Login(user.Email, "Abcd1234")
	assert.NoError(t, err)

	_, err = authService.ValidateToken(token)
	assert.ErrorIs(t, err, services.ErrAuth)
}
