package services

import (
	"fmt"
	"time"

	"portfolio/internal/apperr"
	"portfolio/internal/models"
	"portfolio/internal/repositories"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles the admin credential check and the signed session
// token presented on every admin request.
type AuthService struct {
	adminRepo  repositories.AdminRepository
	jwtSecret  []byte
	tokenDurat time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(adminRepo repositories.AdminRepository, jwtSecret string) *AuthService {
	return &AuthService{
		adminRepo:  adminRepo,
		jwtSecret:  []byte(jwtSecret),
		tokenDurat: 24 * time.Hour,
	}
}

// EnsureAdmin creates the operator account on first startup if it does not
// exist yet. The bootstrap password is required only for that first run.
func (s *AuthService) EnsureAdmin(username, password string) error {
	if _, err := s.adminRepo.GetByUsername(username); err == nil {
		return nil
	} else if !apperr.IsCode(err, apperr.CodeNotFound) {
		return fmt.Errorf("failed to look up admin account: %w", err)
	}

	if password == "" {
		return fmt.Errorf("no admin account exists and ADMIN_PASSWORD is not set")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}
	admin := &models.Admin{Username: username, PasswordHash: string(hashed)}
	if err := s.adminRepo.Create(admin); err != nil {
		return fmt.Errorf("failed to create admin account: %w", err)
	}
	return nil
}

// Login authenticates the admin and returns a signed session token. The same
// generic error covers a missing user and a wrong password.
func (s *AuthService) Login(username, password string) (string, error) {
	const op = "AuthService.Login"

	admin, err := s.adminRepo.GetByUsername(username)
	if err != nil {
		return "", apperr.E(apperr.CodeUnauthorized, op, "Invalid username or password", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return "", apperr.E(apperr.CodeUnauthorized, op, "Invalid username or password", err)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"admin_id": admin.ID,
		"username": admin.Username,
		"exp":      time.Now().Add(s.tokenDurat).Unix(),
		"iat":      time.Now().Unix(),
	})

	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}

	return tokenString, nil
}

// TokenDuration is how long an issued session token stays valid.
func (s *AuthService) TokenDuration() time.Duration {
	return s.tokenDurat
}

// ValidateToken parses and validates a session token, returning the claims
// if valid.
func (s *AuthService) ValidateToken(tokenString string) (jwt.MapClaims, error) {
	const op = "AuthService.ValidateToken"

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, apperr.E(apperr.CodeUnauthorized, op, "invalid session", err)
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, apperr.E(apperr.CodeUnauthorized, op, "invalid session", nil)
}
