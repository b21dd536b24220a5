package services

import (
	"context"
	"errors"
	"log"

	"luxpackers-admin/internal/adapters/persistence/repositories"
	"luxpackers-admin/internal/core/domain"
	"luxpackers-admin/internal/pkg/password"
	"luxpackers-admin/internal/pkg/session"

	"gorm.io/gorm"
)

// AuthService handles the login decision. It is a pure check: it never
// touches the session store, so the caller decides what to do with the
// returned session.
type AuthService struct {
	employeeRepo repositories.EmployeeRepository
}

// NewAuthService creates a new auth service
func NewAuthService(employeeRepo repositories.EmployeeRepository) *AuthService {
	return &AuthService{employeeRepo: employeeRepo}
}

// LoginInput represents login input
type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login validates a username/password pair against the stored hash.
// Failure kinds stay distinct so the handler can render them separately:
// domain.ErrInvalidUsername, domain.ErrMisconfiguredAccount,
// domain.ErrIncorrectPassword. Any other error is a transport failure
// from the database and passes through untouched.
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*session.Session, error) {
	// 1. Find credential record by exact username
	employee, err := s.employeeRepo.GetByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInvalidUsername
		}
		return nil, err
	}

	// 2. A blank hash means the account was set up wrong, not that the
	// password is wrong. Logged loudly: this is the operational alert.
	if employee.PasswordHash == "" {
		log.Printf("❌ employees_access row %d (%s) has no password hash", employee.ID, employee.Username)
		return nil, domain.ErrMisconfiguredAccount
	}

	// 3. Verify password against the bcrypt hash
	if !password.Verify(input.Password, employee.PasswordHash) {
		return nil, domain.ErrIncorrectPassword
	}

	// 4. Build the session; installing it is the caller's job
	log.Printf("✅ Staff logged in: %s", employee.Username)

	return &session.Session{
		ID:       employee.ID,
		Username: employee.Username,
		Role:     employee.Role,
	}, nil
}
