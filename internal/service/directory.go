package service

import (
	"context"

	"locshare/internal/domain"
	"locshare/internal/geo"
)

const (
	minRating = 1
	maxRating = 5
)

// DirectoryService exposes the user directory to the view layer.
type DirectoryService struct {
	directory UserDirectory
}

// NewDirectoryService creates a new DirectoryService.
func NewDirectoryService(directory UserDirectory) *DirectoryService {
	return &DirectoryService{directory: directory}
}

// Users returns the full roster.
func (s *DirectoryService) Users(ctx context.Context) []domain.User {
	return s.directory.Users()
}

// ActiveUsers returns the users currently live on the map.
func (s *DirectoryService) ActiveUsers(ctx context.Context) []domain.User {
	return s.directory.ActiveUsers()
}

// SubmitRating folds a rating from the rating dialog into the user's average.
// Users that are only on the map, such as those built from location records,
// can be rated too.
func (s *DirectoryService) SubmitRating(ctx context.Context, userID string, rating float64) (*domain.User, error) {
	if userID == "" {
		return nil, ErrInvalidUserID
	}
	if rating < minRating || rating > maxRating {
		return nil, ErrInvalidRating
	}
	if _, ok := s.findUser(userID); !ok {
		return nil, ErrUserNotFound
	}

	s.directory.UpdateUserRating(userID, rating)

	user, _ := s.findUser(userID)
	return &user, nil
}

// findUser looks in the roster first, then in the active subset.
func (s *DirectoryService) findUser(userID string) (domain.User, bool) {
	if u, ok := s.directory.FindUser(userID); ok {
		return u, true
	}
	return s.directory.FindActiveUser(userID)
}

// UpdateUserLocation sets the directory location for every entry with userID.
// Unknown ids are ignored, matching the directory.
func (s *DirectoryService) UpdateUserLocation(ctx context.Context, userID string, lat, lng float64) error {
	if userID == "" {
		return ErrInvalidUserID
	}
	if !geo.IsValidLatitude(lat) || !geo.IsValidLongitude(lng) {
		return ErrInvalidLocation
	}
	s.directory.UpdateUserLocation(userID, lat, lng)
	return nil
}

// AddActiveUser marks user as live on the map.
func (s *DirectoryService) AddActiveUser(ctx context.Context, user domain.User) error {
	if user.ID == "" {
		return ErrInvalidUserID
	}
	if user.Role == "" {
		user.Role = domain.RoleUnknown
	}
	s.directory.AddActiveUser(user)
	return nil
}

// RemoveActiveUser takes every active entry with userID off the map.
func (s *DirectoryService) RemoveActiveUser(ctx context.Context, userID string) error {
	if userID == "" {
		return ErrInvalidUserID
	}
	s.directory.RemoveActiveUser(userID)
	return nil
}
