package service_test

import (
	"context"
	"errors"
	"testing"

	"locshare/internal/directory"
	"locshare/internal/domain"
	"locshare/internal/service"
)

func TestSubmitRating_Average(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := service.NewDirectoryService(directory.New(domain.User{ID: "p-1", Role: domain.RoleProvider}))

	user, err := svc.SubmitRating(ctx, "p-1", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *user.Rating != 5 {
		t.Errorf("expected 5, got %v", *user.Rating)
	}

	user, _ = svc.SubmitRating(ctx, "p-1", 3)
	if *user.Rating != 4 {
		t.Errorf("expected 4, got %v", *user.Rating)
	}
}

func TestSubmitRating_ActiveOnlyUser(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	dir := directory.New()
	svc := service.NewDirectoryService(dir)
	if err := svc.AddActiveUser(ctx, domain.User{ID: "+15551234567"}); err != nil {
		t.Fatalf("add active: %v", err)
	}

	user, err := svc.SubmitRating(ctx, "+15551234567", 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Rating == nil || *user.Rating != 4 {
		t.Errorf("expected rating 4, got %v", user.Rating)
	}
	if len(dir.Users()) != 0 {
		t.Errorf("expected roster untouched, got %d users", len(dir.Users()))
	}
}

func TestSubmitRating_Validation(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		userID  string
		rating  float64
		wantErr error
	}{
		{name: "empty id", userID: "", rating: 3, wantErr: service.ErrInvalidUserID},
		{name: "below range", userID: "p-1", rating: 0, wantErr: service.ErrInvalidRating},
		{name: "above range", userID: "p-1", rating: 5.5, wantErr: service.ErrInvalidRating},
		{name: "unknown user", userID: "nobody", rating: 3, wantErr: service.ErrUserNotFound},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			svc := service.NewDirectoryService(directory.New(domain.User{ID: "p-1"}))
			if _, err := svc.SubmitRating(context.Background(), tc.userID, tc.rating); !errors.Is(err, tc.wantErr) {
				t.Errorf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestActiveUsers_AddAndRemove(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	dir := directory.New(domain.User{ID: "p-1"})
	svc := service.NewDirectoryService(dir)

	if err := svc.AddActiveUser(ctx, domain.User{ID: "p-1"}); err != nil {
		t.Fatalf("add active: %v", err)
	}
	active := svc.ActiveUsers(ctx)
	if len(active) != 1 || active[0].Role != domain.RoleUnknown {
		t.Fatalf("expected one active user with defaulted role, got %+v", active)
	}

	if err := svc.RemoveActiveUser(ctx, "p-1"); err != nil {
		t.Fatalf("remove active: %v", err)
	}
	if len(svc.ActiveUsers(ctx)) != 0 {
		t.Errorf("expected empty active subset")
	}
	if len(svc.Users(ctx)) != 1 {
		t.Errorf("expected roster unaffected")
	}

	if err := svc.AddActiveUser(ctx, domain.User{}); !errors.Is(err, service.ErrInvalidUserID) {
		t.Errorf("expected ErrInvalidUserID, got %v", err)
	}
}

func TestDirectoryUpdateUserLocation(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	dir := directory.New(domain.User{ID: "p-1"})
	svc := service.NewDirectoryService(dir)

	if err := svc.UpdateUserLocation(ctx, "p-1", 91, 0); !errors.Is(err, service.ErrInvalidLocation) {
		t.Errorf("expected ErrInvalidLocation, got %v", err)
	}
	if err := svc.UpdateUserLocation(ctx, "p-1", 51.5, -0.1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	u, _ := dir.FindUser("p-1")
	if u.Location == nil || u.Location.Latitude != 51.5 {
		t.Errorf("expected location set, got %+v", u.Location)
	}
}
