package geolocation

import (
	"context"
	"errors"
	"testing"
)

func TestFixed_ReturnsPosition(t *testing.T) {
	pos, err := Fixed{Latitude: 1.5, Longitude: 2.5}.CurrentPosition(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pos.Latitude != 1.5 || pos.Longitude != 2.5 {
		t.Errorf("unexpected position: %+v", pos)
	}
}

func TestUnavailable_DefaultsToPositionUnavailable(t *testing.T) {
	_, err := Unavailable{}.CurrentPosition(context.Background())
	if !errors.Is(err, ErrPositionUnavailable) {
		t.Errorf("expected ErrPositionUnavailable, got %v", err)
	}

	_, err = Unavailable{Err: ErrPermissionDenied}.CurrentPosition(context.Background())
	if !errors.Is(err, ErrPermissionDenied) {
		t.Errorf("expected ErrPermissionDenied, got %v", err)
	}
}
