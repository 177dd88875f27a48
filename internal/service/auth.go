package service

import (
	"context"

	"github.com/google/uuid"

	"locshare/internal/domain"
	"locshare/internal/phone"
)

// AuthService handles phone number registration.
type AuthService struct {
	directory UserDirectory
	newID     func() string
}

// NewAuthService creates a new AuthService.
func NewAuthService(directory UserDirectory) *AuthService {
	return &AuthService{
		directory: directory,
		newID:     func() string { return uuid.New().String() },
	}
}

// RegisterRequest contains the parameters for registering a user.
type RegisterRequest struct {
	PhoneNumber string
	Role        domain.Role // Optional: empty means customer
	Service     string      // Required for providers
}

// Register creates a user for the given phone number and makes it active.
// The number is stored in its formatted form.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*domain.User, error) {
	if !phone.IsValid(req.PhoneNumber) {
		return nil, ErrInvalidPhoneNumber
	}

	role := req.Role
	if role == "" {
		role = domain.RoleCustomer
	}

	if role == domain.RoleProvider || req.Service != "" {
		if _, ok := domain.LookupService(req.Service); !ok {
			return nil, ErrUnknownService
		}
	}

	user := domain.User{
		ID:          s.newID(),
		PhoneNumber: phone.Format(req.PhoneNumber),
		Role:        role,
		Service:     req.Service,
	}
	s.directory.AddUser(user)

	return &user, nil
}
