package services

import (
	"fmt"
	"log"
	"time"

	"dvstore/internal/models"
	"dvstore/internal/repositories"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

// defaultAdmins are the two fixed credential rows the table is seeded
// with. Passwords are hashed before insertion; the application never
// mutates the table afterwards.
var defaultAdmins = []struct {
	Username string
	Password string
}{
	{Username: "admin", Password: "admin123"},
	{Username: "dishanthv06@admin.com", Password: "admin123"},
}

// AdminService handles the static administrator credential table.
type AdminService struct {
	adminRepo  repositories.AdminRepository
	jwtSecret  []byte
	tokenDurat time.Duration
}

// NewAdminService creates a new AdminService.
func NewAdminService(adminRepo repositories.AdminRepository, jwtSecret string) *AdminService {
	return &AdminService{
		adminRepo:  adminRepo,
		jwtSecret:  []byte(jwtSecret),
		tokenDurat: 24 * time.Hour,
	}
}

// Seed inserts the default admin rows when the table is empty.
func (s *AdminService) Seed() error {
	count, err := s.adminRepo.Count()
	if err != nil {
		return fmt.Errorf("failed to count admins: %w", err)
	}
	if count > 0 {
		return nil
	}
	for _, a := range defaultAdmins {
		hashed, err := bcrypt.GenerateFromPassword([]byte(a.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash admin password: %w", err)
		}
		if err := s.adminRepo.Create(&models.Admin{Username: a.Username, Password: string(hashed)}); err != nil {
			return fmt.Errorf("failed to seed admin %s: %w", a.Username, err)
		}
		log.Printf("Seeded admin: %s", a.Username)
	}
	return nil
}

// Login authenticates an administrator and returns a JWT token carrying
// the admin role. The failure message never reveals whether the
// username exists.
func (s *AdminService) Login(username, password string) (string, error) {
	admin, err := s.adminRepo.GetByUsername(username)
	if err != nil {
		return "", fmt.Errorf("%w: invalid admin credentials", ErrAuth)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)); err != nil {
		return "", fmt.Errorf("%w: invalid admin credentials", ErrAuth)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"username": admin.Username,
		"role":     "admin",
		"exp":      time.Now().Add(s.tokenDurat).Unix(),
		"iat":      time.Now().Unix(),
	})
	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return tokenString, nil
}
