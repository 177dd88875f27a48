package service

import (
	"context"

	"locshare/internal/domain"
)

// LocationStore is the location record store the services read and write.
type LocationStore interface {
	UpsertLocation(ctx context.Context, phoneNumber string, lat, lng float64) error
	GetAllLocations(ctx context.Context) ([]domain.LocationRecord, error)
}

// UserDirectory is the roster the services mutate.
type UserDirectory interface {
	AddUser(user domain.User)
	UpdateUserLocation(userID string, lat, lng float64)
	UpdateUserRating(userID string, rating float64)
	AddActiveUser(user domain.User)
	RemoveActiveUser(userID string)
	Users() []domain.User
	ActiveUsers() []domain.User
	FindUser(userID string) (domain.User, bool)
	FindActiveUser(userID string) (domain.User, bool)
}
