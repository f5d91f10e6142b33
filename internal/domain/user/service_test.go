// internal/domain/user/service_test.go
package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/mealbox-backend/internal/config"
	"golang.org/x/crypto/bcrypt"
)

func newTestService() *Service {
	cfg := &config.Config{}
	cfg.Security.BcryptCost = bcrypt.MinCost
	return NewService(cfg)
}

func TestSeededDemoAccounts(t *testing.T) {
	s := newTestService()

	admin, err := s.Authenticate(&LoginRequest{Email: "admin@mealbox.sa", Password: "Admin1234"})
	require.NoError(t, err)
	assert.True(t, admin.IsAdmin())

	member, err := s.Authenticate(&LoginRequest{Email: "sara@example.com", Password: "Member1234"})
	require.NoError(t, err)
	assert.Equal(t, RoleMember, member.Role)
}

func TestRegisterAndAuthenticate(t *testing.T) {
	s := newTestService()

	u, err := s.Register(&RegisterRequest{
		Name:     "Noura",
		Email:    "Noura@Example.com",
		Phone:    "+966500000009",
		Password: "Secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, "noura@example.com", u.Email, "email is normalized")
	assert.Equal(t, RoleMember, u.Role)
	assert.NotEqual(t, "Secret123", u.PasswordHash, "password must not be stored in clear")

	// Login is case-insensitive on email
	logged, err := s.Authenticate(&LoginRequest{Email: "noura@example.com", Password: "Secret123"})
	require.NoError(t, err)
	assert.Equal(t, u.ID, logged.ID)
	assert.NotNil(t, logged.LastLoginAt)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	s := newTestService()

	req := &RegisterRequest{
		Name:     "Noura",
		Email:    "noura@example.com",
		Phone:    "+966500000009",
		Password: "Secret123",
	}
	_, err := s.Register(req)
	require.NoError(t, err)

	_, err = s.Register(req)
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegisterWeakPassword(t *testing.T) {
	s := newTestService()

	_, err := s.Register(&RegisterRequest{
		Name:     "Noura",
		Email:    "noura@example.com",
		Phone:    "+966500000009",
		Password: "lettersonly",
	})
	require.Error(t, err)
}

func TestAuthenticateWrongPassword(t *testing.T) {
	s := newTestService()

	_, err := s.Authenticate(&LoginRequest{Email: "sara@example.com", Password: "WrongPass1"})
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = s.Authenticate(&LoginRequest{Email: "nobody@example.com", Password: "Whatever1"})
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRequestPasswordReset(t *testing.T) {
	s := newTestService()

	assert.True(t, s.RequestPasswordReset("sara@example.com"))
	assert.False(t, s.RequestPasswordReset("nobody@example.com"))
}
