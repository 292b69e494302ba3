package services

import (
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"log"
	"strings"
	"time"
	"unicode"

	"dvstore/internal/models"
	"dvstore/internal/repositories"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles business logic for registration, sign-in, and
// password recovery.
type AuthService struct {
	userRepo   repositories.UserRepository
	jwtSecret  []byte
	tokenDurat time.Duration // Duration for which JWT is valid
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository, jwtSecret string) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtSecret:  []byte(jwtSecret),
		tokenDurat: 24 * time.Hour, // Token valid for 24 hours
	}
}

// Register creates a new user and returns the generated 16-digit auth
// key. The key is returned exactly once, here; it is never shown again.
func (s *AuthService) Register(name, email, password string) (string, error) {
	if name == "" || email == "" || password == "" {
		return "", fmt.Errorf("%w: all fields required", ErrValidation)
	}
	if !emailValid(email) {
		return "", fmt.Errorf("%w: invalid email", ErrValidation)
	}
	// Email uniqueness is case-insensitive.
	if existing, err := s.userRepo.GetByEmail(email); err == nil && existing != nil {
		return "", fmt.Errorf("%w: email '%s' already registered", ErrValidation, email)
	}
	if err := passwordValid(password); err != nil {
		return "", err
	}

	authKey, err := generateAuthKey()
	if err != nil {
		return "", fmt.Errorf("failed to generate auth key: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Name:     name,
		Email:    email,
		Password: string(hashedPassword),
		AuthKey:  authKey,
	}
	if err := s.userRepo.Create(user); err != nil {
		return "", fmt.Errorf("failed to register user: %w", err)
	}
	return authKey, nil
}

// Login authenticates a user and returns a JWT token if successful.
// The failure message never reveals whether the email exists.
func (s *AuthService) Login(email, password string) (string, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		return "", fmt.Errorf("%w: invalid credentials", ErrAuth)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", fmt.Errorf("%w: invalid credentials", ErrAuth)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"role":    "user",
		"exp":     time.Now().Add(s.tokenDurat).Unix(),
		"iat":     time.Now().Unix(),
	})

	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return tokenString, nil
}

// ResetPassword authorizes a password change with the auth key issued at
// registration. The key itself is left unchanged and stays valid for
// future resets.
func (s *AuthService) ResetPassword(email, authKey, newPassword string) error {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		return fmt.Errorf("%w: email not registered", ErrNotFound)
	}
	if subtle.ConstantTimeCompare([]byte(user.AuthKey), []byte(authKey)) != 1 {
		return fmt.Errorf("%w: invalid authentication key", ErrAuth)
	}
	if err := passwordValid(newPassword); err != nil {
		return err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if err := s.userRepo.UpdatePassword(email, string(hashedPassword)); err != nil {
		return fmt.Errorf("failed to reset password: %w", err)
	}
	return nil
}

// ValidateToken parses and validates a JWT token, returning the claims if valid.
func (s *AuthService) ValidateToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Validate the alg is what we expect:
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})

	if err != nil {
		log.Printf("Token validation error: %v", err)
		return nil, fmt.Errorf("%w: invalid token", ErrAuth)
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, fmt.Errorf("%w: invalid token", ErrAuth)
}

// emailValid applies the minimal shape check the store requires: an "@"
// and a ".".
func emailValid(email string) bool {
	return strings.Contains(email, "@") && strings.Contains(email, ".")
}

// passwordValid enforces the password policy: at least 8 characters,
// one digit, and one uppercase letter.
func passwordValid(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("%w: minimum 8 characters required", ErrValidation)
	}
	var hasDigit, hasUpper bool
	for _, c := range password {
		switch {
		case unicode.IsDigit(c):
			hasDigit = true
		case unicode.IsUpper(c):
			hasUpper = true
		}
	}
	if !hasDigit {
		return fmt.Errorf("%w: must contain a digit", ErrValidation)
	}
	if !hasUpper {
		return fmt.Errorf("%w: must contain an uppercase letter", ErrValidation)
	}
	return nil
}

// generateAuthKey mints a 16-digit numeric recovery key.
func generateAuthKey() (string, error) {
	const digits = "0123456789"
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	for i := range buf {
		buf[i] = digits[int(buf[i])%len(digits)]
	}
	return string(buf), nil
}
