package service_test

import (
	"context"
	"errors"
	"testing"

	"locshare/internal/directory"
	"locshare/internal/domain"
	"locshare/internal/service"
)

func TestRegister_CreatesActiveCustomer(t *testing.T) {
	t.Parallel()

	dir := directory.New()
	svc := service.NewAuthService(dir)

	user, err := svc.Register(context.Background(), service.RegisterRequest{PhoneNumber: "+44 123 456 7890"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID == "" {
		t.Error("expected generated id")
	}
	if user.PhoneNumber != "+441234567890" {
		t.Errorf("expected formatted phone number, got %q", user.PhoneNumber)
	}
	if user.Role != domain.RoleCustomer {
		t.Errorf("expected customer role, got %q", user.Role)
	}
	if len(dir.Users()) != 1 || len(dir.ActiveUsers()) != 1 {
		t.Errorf("expected user in roster and active subset")
	}
}

func TestRegister_UniqueIDs(t *testing.T) {
	t.Parallel()

	svc := service.NewAuthService(directory.New())
	a, _ := svc.Register(context.Background(), service.RegisterRequest{PhoneNumber: "+15551234567"})
	b, _ := svc.Register(context.Background(), service.RegisterRequest{PhoneNumber: "+15551234567"})
	if a.ID == b.ID {
		t.Errorf("expected distinct ids, got %q twice", a.ID)
	}
}

func TestRegister_Validation(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		req     service.RegisterRequest
		wantErr error
	}{
		{
			name:    "missing country code",
			req:     service.RegisterRequest{PhoneNumber: "5551234567"},
			wantErr: service.ErrInvalidPhoneNumber,
		},
		{
			name:    "empty",
			req:     service.RegisterRequest{},
			wantErr: service.ErrInvalidPhoneNumber,
		},
		{
			name:    "provider without service",
			req:     service.RegisterRequest{PhoneNumber: "+15551234567", Role: domain.RoleProvider},
			wantErr: service.ErrUnknownService,
		},
		{
			name:    "unknown service",
			req:     service.RegisterRequest{PhoneNumber: "+15551234567", Role: domain.RoleProvider, Service: "astronaut"},
			wantErr: service.ErrUnknownService,
		},
		{
			name: "provider with service",
			req:  service.RegisterRequest{PhoneNumber: "+15551234567", Role: domain.RoleProvider, Service: "taxi"},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			dir := directory.New()
			svc := service.NewAuthService(dir)

			_, err := svc.Register(context.Background(), tc.req)
			if tc.wantErr == nil {
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
				return
			}
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("expected %v, got %v", tc.wantErr, err)
			}
			if len(dir.Users()) != 0 {
				t.Errorf("expected nothing added on error")
			}
		})
	}
}
