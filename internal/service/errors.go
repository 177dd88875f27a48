package service

import "errors"

var (
	// ErrInvalidPhoneNumber is returned when a phone number lacks a country code or has the wrong length.
	ErrInvalidPhoneNumber = errors.New("invalid phone number")

	// ErrInvalidUserID is returned when user ID is empty.
	ErrInvalidUserID = errors.New("invalid user id")

	// ErrInvalidLocation is returned when location coordinates are invalid.
	ErrInvalidLocation = errors.New("invalid location")

	// ErrInvalidRating is returned when a submitted rating is outside 1..5.
	ErrInvalidRating = errors.New("invalid rating")

	// ErrInvalidLimit is returned when the nearest-users limit is not one of the offered sizes.
	ErrInvalidLimit = errors.New("invalid limit")

	// ErrUnknownService is returned when a service ID is not in the catalog.
	ErrUnknownService = errors.New("unknown service")

	// ErrUserNotFound is returned when no directory entry has the given ID.
	ErrUserNotFound = errors.New("user not found")
)
