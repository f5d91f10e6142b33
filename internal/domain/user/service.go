// internal/domain/user/service.go
package user

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/your-org/mealbox-backend/internal/config"
	"github.com/your-org/mealbox-backend/internal/pkg/auth"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCredentials is returned for a wrong email/password pair
	ErrInvalidCredentials = fmt.Errorf("invalid email or password")

	// ErrEmailTaken is returned when registering an email that already exists
	ErrEmailTaken = fmt.Errorf("email already registered")

	// ErrNotFound is returned when a user does not exist
	ErrNotFound = fmt.Errorf("user not found")
)

// RegisterRequest represents a registration request
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
	Address  string `json:"address"`
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Service is the mock user store: accounts live in process memory, seeded
// with demo users at startup. Password hashes are real bcrypt so the login
// flow exercises the same code paths a persistent store would.
type Service struct {
	passwordManager *auth.PasswordManager

	mu    sync.RWMutex
	users map[string]*User // keyed by normalized email
}

// NewService creates a user service seeded with the demo accounts
func NewService(cfg *config.Config) *Service {
	s := &Service{
		passwordManager: auth.NewPasswordManager(cfg),
		users:           make(map[string]*User),
	}
	s.seed()
	return s
}

// Register creates a new member account
func (s *Service) Register(req *RegisterRequest) (*User, error) {
	hash, err := s.passwordManager.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	email := NormalizeEmail(req.Email)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[email]; exists {
		return nil, ErrEmailTaken
	}

	u := &User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: hash,
		Name:         req.Name,
		Phone:        req.Phone,
		Role:         RoleMember,
		Address:      req.Address,
		CreatedAt:    time.Now().UTC(),
	}
	s.users[email] = u

	result := *u
	return &result, nil
}

// Authenticate verifies credentials and records the login time
func (s *Service) Authenticate(req *LoginRequest) (*User, error) {
	email := NormalizeEmail(req.Email)

	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[email]
	if !ok {
		return nil, ErrInvalidCredentials
	}

	if err := s.passwordManager.VerifyPassword(req.Password, u.PasswordHash); err != nil {
		return nil, ErrInvalidCredentials
	}

	now := time.Now().UTC()
	u.LastLoginAt = &now

	result := *u
	return &result, nil
}

// GetByID returns one user by id
func (s *Service) GetByID(userID string) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.ID == userID {
			result := *u
			return &result, nil
		}
	}
	return nil, ErrNotFound
}

// RequestPasswordReset simulates the forgot-password flow. It reports
// whether the account exists; no email is actually sent.
func (s *Service) RequestPasswordReset(email string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.users[NormalizeEmail(email)]
	return ok
}

// seed loads the demo accounts. MinCost keeps startup fast; real accounts
// created through Register use the configured cost.
func (s *Service) seed() {
	demo := []struct {
		email    string
		name     string
		phone    string
		role     Role
		password string
	}{
		{"admin@mealbox.sa", "Admin", "+966500000001", RoleAdmin, "Admin1234"},
		{"sara@example.com", "Sara Al-Qahtani", "+966500000002", RoleMember, "Member1234"},
		{"courier@mealbox.sa", "Courier", "+966500000003", RoleCourier, "Courier1234"},
	}

	for _, d := range demo {
		hash, err := bcrypt.GenerateFromPassword([]byte(d.password), bcrypt.MinCost)
		if err != nil {
			continue
		}
		s.users[d.email] = &User{
			ID:           uuid.New().String(),
			Email:        d.email,
			PasswordHash: string(hash),
			Name:         d.name,
			Phone:        d.phone,
			Role:         d.role,
			CreatedAt:    time.Now().UTC(),
		}
	}
}
