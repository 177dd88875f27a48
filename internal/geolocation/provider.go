// Package geolocation describes where a device position fix comes from.
package geolocation

import (
	"context"
	"errors"
)

var (
	// ErrPositionUnavailable is returned when no fix could be obtained.
	ErrPositionUnavailable = errors.New("position unavailable")

	// ErrPermissionDenied is returned when the user refused location access.
	ErrPermissionDenied = errors.New("location permission denied")
)

// Position is a single location fix.
type Position struct {
	Latitude  float64
	Longitude float64
}

// Provider obtains the current position of the device.
type Provider interface {
	CurrentPosition(ctx context.Context) (Position, error)
}

// Fixed is a Provider that reports a position known ahead of time, such as
// one the client sent along with its request.
type Fixed Position

func (f Fixed) CurrentPosition(ctx context.Context) (Position, error) {
	if err := ctx.Err(); err != nil {
		return Position{}, err
	}
	return Position(f), nil
}

// Unavailable is a Provider that always fails with Err.
type Unavailable struct {
	Err error
}

func (u Unavailable) CurrentPosition(ctx context.Context) (Position, error) {
	if u.Err != nil {
		return Position{}, u.Err
	}
	return Position{}, ErrPositionUnavailable
}
